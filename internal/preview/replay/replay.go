// Package replay drives a preview session with a recorded post fixture, the
// way an author typing into the edit screen would.
package replay

import (
	"fmt"

	"github.com/edgecomet/snippet/internal/common/yamlutil"
	"github.com/edgecomet/snippet/internal/preview/session"
	"github.com/edgecomet/snippet/internal/preview/source"
	"github.com/edgecomet/snippet/pkg/types"
)

// LoadFixture reads and validates a post fixture file.
func LoadFixture(path string) (*types.PostFixture, error) {
	var fixture types.PostFixture
	if err := yamlutil.ReadFileStrict(path, &fixture); err != nil {
		return nil, fmt.Errorf("failed to load post fixture: %w", err)
	}
	if err := fixture.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post fixture %s: %w", path, err)
	}
	return &fixture, nil
}

// Editor is an edit screen with a post open in it.
type Editor struct {
	fixture    *types.PostFixture
	screen     *session.ScreenTarget
	session    *session.Session
	structured *source.StructuredEditorSource
	plain      *source.PlainFormSource
}

// Open creates the source for fixture, attaches a session rendering into
// screen and loads the post, which renders the initial preview.
func Open(fixture *types.PostFixture, screen *session.ScreenTarget, settings session.Settings, opts ...session.Option) (*Editor, error) {
	if err := fixture.Validate(); err != nil {
		return nil, err
	}

	e := &Editor{fixture: fixture, screen: screen}

	var src source.ContentSource
	switch fixture.Editor {
	case types.EditorPlain:
		e.plain = source.NewPlainFormSource(fixture.Tab)
		src = e.plain
	default:
		e.structured = source.NewStructuredEditorSource()
		src = e.structured
	}

	screen.SetMetaTitle(fixture.Meta.Title)
	screen.SetMetaDescription(fixture.Meta.Description)

	e.session = session.New(src, screen, settings, opts...)
	if _, err := e.session.Attach(); err != nil {
		return nil, err
	}

	if err := e.load(); err != nil {
		return nil, err
	}
	return e, nil
}

// Session returns the preview session of the editor.
func (e *Editor) Session() *session.Session {
	return e.session
}

// load fills the editor with the fixture's post, as the editor does on page load.
func (e *Editor) load() error {
	if e.structured != nil {
		e.structured.Load(source.Attributes{
			Title:   e.fixture.Title,
			Content: e.fixture.Content,
			Excerpt: e.fixture.Excerpt,
		})
		return nil
	}

	for _, edit := range []types.PostEdit{
		{Field: types.FieldTitle, Value: e.fixture.Title},
		{Field: types.FieldExcerpt, Value: e.fixture.Excerpt},
		{Field: types.FieldContent, Value: e.fixture.Content},
	} {
		if err := e.plain.Keyup(edit.Field, edit.Value); err != nil {
			return err
		}
	}
	e.plain.LoadVisualEditor()
	return nil
}

// Apply applies a single edit. Every edit triggers a preview update.
func (e *Editor) Apply(edit types.PostEdit) error {
	switch edit.Field {
	case types.FieldMetaTitle:
		e.screen.SetMetaTitle(edit.Value)
		e.session.HandleChange(source.Change{Field: edit.Field})
		return nil
	case types.FieldMetaDescription:
		e.screen.SetMetaDescription(edit.Value)
		e.session.HandleChange(source.Change{Field: edit.Field})
		return nil
	case types.FieldTab:
		if e.plain == nil {
			return fmt.Errorf("editor %q has no tabs", e.fixture.Editor)
		}
		return e.plain.SwitchTab(types.EditorTab(edit.Value))
	}

	if e.structured != nil {
		return e.structured.SetAttribute(edit.Field, edit.Value)
	}
	return e.plain.Keyup(edit.Field, edit.Value)
}

// Replay applies every fixture edit in order and returns the final preview.
func (e *Editor) Replay() (session.Preview, error) {
	for i, edit := range e.fixture.Edits {
		if err := e.Apply(edit); err != nil {
			return session.Preview{}, fmt.Errorf("edit %d (%s): %w", i, edit.Field, err)
		}
	}
	return e.session.Update()
}
