// Package session keeps a search result preview in sync with the post being
// edited.
//
// A Session is confined to the goroutine delivering editor input, like a UI
// event loop; it is not safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edgecomet/snippet/internal/preview/source"
	"github.com/edgecomet/snippet/pkg/types"
)

// Recorder receives session metrics.
type Recorder interface {
	RecordRendered()
	RecordUnchanged()
	RecordSkipped()
	RecordTruncation(field string)
	RecordSummarizeDuration(d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordRendered()                       {}
func (nopRecorder) RecordUnchanged()                      {}
func (nopRecorder) RecordSkipped()                        {}
func (nopRecorder) RecordTruncation(string)               {}
func (nopRecorder) RecordSummarizeDuration(time.Duration) {}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(recorder Recorder) Option {
	return func(s *Session) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// Session binds a content source to a render target.
type Session struct {
	id       string
	settings Settings
	source   source.ContentSource
	target   Target
	logger   *zap.Logger
	recorder Recorder

	unsubscribe func()
	rendered    bool
	lastHash    uint64
	last        Preview
}

// New creates a session. It does not read the source until Attach or Update.
func New(src source.ContentSource, target Target, settings Settings, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		settings: settings,
		source:   src,
		target:   target,
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(
		zap.String("session_id", s.id),
		zap.String("editor", string(src.Kind())))
	return s
}

// ID returns the unique session id.
func (s *Session) ID() string {
	return s.id
}

// Settings returns the session settings.
func (s *Session) Settings() Settings {
	return s.settings
}

// Last returns the most recently rendered preview.
func (s *Session) Last() Preview {
	return s.last
}

// Attach subscribes the session to source changes and renders the initial preview.
// Calling Attach on an attached session only refreshes the preview.
func (s *Session) Attach() (Preview, error) {
	if s.unsubscribe == nil {
		s.unsubscribe = s.source.Subscribe(s.HandleChange)
	}
	return s.Update()
}

// Detach stops listening to source changes.
func (s *Session) Detach() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// HandleChange updates the preview after a content change.
func (s *Session) HandleChange(change source.Change) {
	if _, err := s.Update(); err != nil {
		s.logger.Warn("Failed to update preview",
			zap.String("field", change.Field),
			zap.Error(err))
	}
}

// Update recomputes the preview and renders it when it changed. While the
// editor is not ready the update is skipped without error.
func (s *Session) Update() (Preview, error) {
	in, err := s.readInput()
	if errors.Is(err, source.ErrEditorNotReady) {
		s.logger.Debug("Editor not ready, skipping preview update")
		s.recorder.RecordSkipped()
		return Preview{}, nil
	}
	if err != nil {
		return Preview{}, fmt.Errorf("failed to read post content: %w", err)
	}

	start := time.Now()
	p := Resolve(in, s.settings)
	s.recorder.RecordSummarizeDuration(time.Since(start))

	if p.ContentTruncated {
		s.recorder.RecordTruncation(types.FieldContent)
	}
	if p.ExcerptTruncated {
		s.recorder.RecordTruncation(types.FieldExcerpt)
	}

	h := p.hash()
	if s.rendered && h == s.lastHash {
		s.recorder.RecordUnchanged()
		return p, nil
	}

	s.target.RenderTitle(p.Snippet.Title, p.TitlePlaceholder)
	s.target.RenderDescription(p.Snippet.Description, p.DescriptionPlaceholder)
	s.rendered = true
	s.lastHash = h
	s.last = p
	s.recorder.RecordRendered()

	s.logger.Debug("Preview rendered",
		zap.String("title", p.Snippet.Title),
		zap.Int("description_length", len([]rune(p.Snippet.Description))))

	return p, nil
}

func (s *Session) readInput() (Input, error) {
	var in Input
	var err error

	if in.Title, err = s.source.Title(); err != nil {
		return Input{}, err
	}
	if in.Body, err = s.source.Body(); err != nil {
		return Input{}, err
	}
	if in.Excerpt, err = s.source.Excerpt(); err != nil {
		return Input{}, err
	}
	in.MetaTitle = s.target.MetaTitle()
	in.MetaDescription = s.target.MetaDescription()
	return in, nil
}
