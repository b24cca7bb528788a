package source

import (
	"fmt"
	"strings"

	"github.com/edgecomet/snippet/pkg/types"
)

// PlainFormSource reads content from the classic editor form. Content comes
// from the visual (rich) editor or the text tab, whichever is active. The
// visual editor is not ready until its frame has loaded.
type PlainFormSource struct {
	notifier
	title        string
	excerpt      string
	body         string
	tab          types.EditorTab
	visualLoaded bool
}

var _ ContentSource = (*PlainFormSource)(nil)

// NewPlainFormSource creates a form source with the given tab active.
func NewPlainFormSource(tab types.EditorTab) *PlainFormSource {
	if tab == "" {
		tab = types.TabVisual
	}
	return &PlainFormSource{tab: tab}
}

func (s *PlainFormSource) Kind() types.EditorKind {
	return types.EditorPlain
}

// Tab returns the active content tab.
func (s *PlainFormSource) Tab() types.EditorTab {
	return s.tab
}

// Keyup records the value typed into field and notifies subscribers.
// Both tabs edit the same post body.
func (s *PlainFormSource) Keyup(field, value string) error {
	switch field {
	case types.FieldTitle:
		s.title = value
	case types.FieldExcerpt:
		s.excerpt = value
	case types.FieldContent:
		s.body = value
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	s.emit(field)
	return nil
}

// SwitchTab activates tab and notifies subscribers.
func (s *PlainFormSource) SwitchTab(tab types.EditorTab) error {
	if tab != types.TabVisual && tab != types.TabText {
		return fmt.Errorf("unknown editor tab %q", tab)
	}
	s.tab = tab
	s.emit(types.FieldTab)
	return nil
}

// LoadVisualEditor marks the visual editor frame as loaded and notifies subscribers.
func (s *PlainFormSource) LoadVisualEditor() {
	s.visualLoaded = true
	s.emit(types.FieldContent)
}

func (s *PlainFormSource) Title() (string, error) {
	return strings.TrimSpace(s.title), nil
}

func (s *PlainFormSource) Body() (string, error) {
	if s.tab == types.TabVisual && !s.visualLoaded {
		return "", ErrEditorNotReady
	}
	return s.body, nil
}

func (s *PlainFormSource) Excerpt() (string, error) {
	return strings.TrimSpace(s.excerpt), nil
}
