package session_test

import (
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/edgecomet/snippet/internal/common/config"
	"github.com/edgecomet/snippet/internal/common/htmlprocessor"
	"github.com/edgecomet/snippet/internal/preview/session"
	"github.com/edgecomet/snippet/internal/preview/source"
	"github.com/edgecomet/snippet/pkg/types"
)

// recordingTarget keeps every render call
type recordingTarget struct {
	metaTitle       string
	metaDescription string
	titles          []string
	descriptions    []string
	placeholders    []string
}

func (r *recordingTarget) MetaTitle() string       { return r.metaTitle }
func (r *recordingTarget) MetaDescription() string { return r.metaDescription }

func (r *recordingTarget) RenderTitle(text, placeholder string) {
	r.titles = append(r.titles, text)
	r.placeholders = append(r.placeholders, placeholder)
}

func (r *recordingTarget) RenderDescription(text, placeholder string) {
	r.descriptions = append(r.descriptions, text)
	r.placeholders = append(r.placeholders, placeholder)
}

// countingRecorder counts session metrics
type countingRecorder struct {
	rendered, unchanged, skipped int
	truncations                  []string
	durations                    int
}

func (c *countingRecorder) RecordRendered()                       { c.rendered++ }
func (c *countingRecorder) RecordUnchanged()                      { c.unchanged++ }
func (c *countingRecorder) RecordSkipped()                        { c.skipped++ }
func (c *countingRecorder) RecordTruncation(field string)         { c.truncations = append(c.truncations, field) }
func (c *countingRecorder) RecordSummarizeDuration(time.Duration) { c.durations++ }

// failingSource returns err from every read
type failingSource struct {
	err error
}

func (f failingSource) Kind() types.EditorKind               { return types.EditorStructured }
func (f failingSource) Title() (string, error)               { return "", f.err }
func (f failingSource) Body() (string, error)                { return "", f.err }
func (f failingSource) Excerpt() (string, error)             { return "", f.err }
func (f failingSource) Subscribe(func(source.Change)) func() { return func() {} }

var autogenerate = session.Settings{AutogenerateDescriptions: true}

var _ = Describe("Session", func() {
	var (
		target   *recordingTarget
		recorder *countingRecorder
	)

	BeforeEach(func() {
		target = &recordingTarget{}
		recorder = &countingRecorder{}
	})

	It("assigns a unique id to every session", func() {
		a := session.New(source.NewStructuredEditorSource(), target, autogenerate)
		b := session.New(source.NewStructuredEditorSource(), target, autogenerate)

		Expect(a.ID()).NotTo(BeEmpty())
		Expect(a.ID()).NotTo(Equal(b.ID()))
		Expect(a.Settings()).To(Equal(autogenerate))
	})

	Context("with the structured editor", func() {
		var (
			src  *source.StructuredEditorSource
			sess *session.Session
		)

		BeforeEach(func() {
			src = source.NewStructuredEditorSource()
			sess = session.New(src, target, autogenerate, session.WithRecorder(recorder))
		})

		It("skips updates until the editor store is loaded", func() {
			preview, err := sess.Attach()
			Expect(err).NotTo(HaveOccurred())
			Expect(preview).To(Equal(session.Preview{}))
			Expect(target.titles).To(BeEmpty())
			Expect(recorder.skipped).To(Equal(1))
		})

		It("renders once the store loads and on every attribute change", func() {
			_, err := sess.Attach()
			Expect(err).NotTo(HaveOccurred())

			src.Load(source.Attributes{Title: "Hello", Content: "<!-- wp:paragraph --><p>First body</p><!-- /wp:paragraph -->"})
			Expect(target.titles).To(Equal([]string{"Hello"}))
			Expect(target.descriptions).To(Equal([]string{"First body"}))

			Expect(src.SetAttribute(types.FieldExcerpt, "The excerpt")).To(Succeed())
			Expect(target.descriptions).To(Equal([]string{"First body", "The excerpt"}))
			Expect(sess.Last().Snippet).To(Equal(types.Snippet{Title: "Hello", Description: "The excerpt"}))
			Expect(recorder.rendered).To(Equal(2))
		})

		It("does not re-render an unchanged preview", func() {
			_, err := sess.Attach()
			Expect(err).NotTo(HaveOccurred())
			src.Load(source.Attributes{Title: "Hello", Content: "Body"})

			// Markup-only edit yields the same plain text
			Expect(src.SetAttribute(types.FieldContent, "<p>Body</p>")).To(Succeed())

			Expect(target.titles).To(HaveLen(1))
			Expect(recorder.rendered).To(Equal(1))
			Expect(recorder.unchanged).To(Equal(1))
			Expect(recorder.durations).To(Equal(2))
		})

		It("stops listening after Detach", func() {
			_, err := sess.Attach()
			Expect(err).NotTo(HaveOccurred())
			sess.Detach()
			sess.Detach()

			src.Load(source.Attributes{Title: "Hello"})
			Expect(target.titles).To(BeEmpty())

			preview, err := sess.Update()
			Expect(err).NotTo(HaveOccurred())
			Expect(preview.Snippet.Title).To(Equal("Hello"))
		})

		It("subscribes only once when attached twice", func() {
			_, err := sess.Attach()
			Expect(err).NotTo(HaveOccurred())
			_, err = sess.Attach()
			Expect(err).NotTo(HaveOccurred())

			src.Load(source.Attributes{Title: "Hello"})
			Expect(recorder.rendered).To(Equal(1))
			Expect(recorder.unchanged).To(Equal(0))
		})

		It("records truncated content", func() {
			_, err := sess.Attach()
			Expect(err).NotTo(HaveOccurred())

			src.Load(source.Attributes{Title: "Long", Content: strings.Repeat("word ", 100)})
			Expect(recorder.truncations).To(Equal([]string{types.FieldContent}))
			Expect(target.descriptions[0]).To(HaveSuffix(types.TruncationSuffix))
		})

		It("uses the meta fields of the target", func() {
			target.metaTitle = "SEO title"
			target.metaDescription = "SEO description"
			_, err := sess.Attach()
			Expect(err).NotTo(HaveOccurred())

			src.Load(source.Attributes{Title: "Post title", Content: "Body"})
			Expect(target.titles).To(Equal([]string{"SEO title"}))
			Expect(target.descriptions).To(Equal([]string{"SEO description"}))
			Expect(target.placeholders).To(Equal([]string{"Post title", "SEO description"}))
		})
	})

	Context("with the plain form editor", func() {
		var (
			src  *source.PlainFormSource
			sess *session.Session
		)

		BeforeEach(func() {
			src = source.NewPlainFormSource(types.TabVisual)
			sess = session.New(src, target, autogenerate, session.WithRecorder(recorder))
			_, err := sess.Attach()
			Expect(err).NotTo(HaveOccurred())
		})

		It("waits for the visual editor to load", func() {
			Expect(src.Keyup(types.FieldTitle, "Classic")).To(Succeed())
			Expect(target.titles).To(BeEmpty())

			src.LoadVisualEditor()
			Expect(target.titles).To(Equal([]string{"Classic"}))
			Expect(recorder.skipped).To(Equal(2))
		})

		It("updates from the text tab without the visual editor", func() {
			Expect(src.Keyup(types.FieldContent, "Typed in text tab")).To(Succeed())
			Expect(src.SwitchTab(types.TabText)).To(Succeed())

			Expect(target.descriptions).To(Equal([]string{"Typed in text tab"}))
		})
	})

	It("honours the skip excerpt setting", func() {
		src := source.NewStructuredEditorSource()
		sess := session.New(src, target, session.Settings{AutogenerateDescriptions: true, SkipExcerpt: true})
		_, err := sess.Attach()
		Expect(err).NotTo(HaveOccurred())

		src.Load(source.Attributes{Title: "Post", Content: "Content", Excerpt: "Excerpt"})
		Expect(target.descriptions).To(Equal([]string{"Content"}))
	})

	It("returns and logs unexpected source errors", func() {
		core, logs := observer.New(zapcore.WarnLevel)
		boom := errors.New("store unavailable")
		sess := session.New(failingSource{err: boom}, target, autogenerate, session.WithLogger(zap.New(core)))

		_, err := sess.Update()
		Expect(err).To(MatchError(boom))

		sess.HandleChange(source.Change{Field: types.FieldTitle})
		Expect(logs.Len()).To(Equal(1))
		Expect(logs.All()[0].ContextMap()).To(HaveKeyWithValue("field", types.FieldTitle))
	})

	Describe("rendering into the edit screen", func() {
		var (
			doc    htmlprocessor.Document
			screen *session.ScreenTarget
			misses *missCounter
		)

		BeforeEach(func() {
			var err error
			doc, err = htmlprocessor.ParseEditScreen([]byte(session.DefaultEditScreen))
			Expect(err).NotTo(HaveOccurred())
			misses = &missCounter{}
			screen = session.NewScreenTarget(doc, config.Default().Preview.Fields, misses, nil)
		})

		It("writes the widget and the placeholders", func() {
			src := source.NewStructuredEditorSource()
			sess := session.New(src, screen, autogenerate)
			_, err := sess.Attach()
			Expect(err).NotTo(HaveOccurred())

			src.Load(source.Attributes{Title: "Fish &amp; Chips", Content: "<p>Crispy.</p>"})

			Expect(doc.ElementText("aiosp_snippet_title")).To(Equal("Fish & Chips"))
			Expect(doc.ElementText("aioseop_snippet_description")).To(Equal("Crispy."))
			out := string(doc.HTML())
			Expect(out).To(ContainSubstring(`placeholder="Fish &amp; Chips"`))
			Expect(out).To(ContainSubstring(`placeholder="Crispy."`))
			Expect(misses.elements).To(BeEmpty())
		})

		It("reads meta fields typed into the screen", func() {
			src := source.NewStructuredEditorSource()
			sess := session.New(src, screen, autogenerate)
			src.Load(source.Attributes{Title: "Post", Content: "Body"})

			Expect(screen.SetMetaTitle("Custom title")).To(BeTrue())
			Expect(screen.SetMetaDescription("Custom description")).To(BeTrue())
			_, err := sess.Update()
			Expect(err).NotTo(HaveOccurred())

			Expect(doc.ElementText("aiosp_snippet_title")).To(Equal("Custom title"))
			Expect(doc.ElementText("aioseop_snippet_description")).To(Equal("Custom description"))
			Expect(screen.Document()).To(BeIdenticalTo(doc))
		})

		It("records missing elements without failing", func() {
			fields := config.Default().Preview.Fields
			fields.SnippetTitleID = "no-such-widget"
			screen = session.NewScreenTarget(doc, fields, misses, nil)

			src := source.NewStructuredEditorSource()
			src.Load(source.Attributes{Title: "Post"})
			_, err := session.New(src, screen, autogenerate).Update()

			Expect(err).NotTo(HaveOccurred())
			Expect(misses.elements).To(Equal([]string{"no-such-widget"}))
		})
	})
})

type missCounter struct {
	elements []string
}

func (m *missCounter) RecordRenderMiss(element string) {
	m.elements = append(m.elements, element)
}
