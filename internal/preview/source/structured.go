package source

import (
	"fmt"
	"strings"

	"github.com/edgecomet/snippet/pkg/types"
)

// Attributes are the edited post attributes of the block editor store.
type Attributes struct {
	Title   string
	Content string
	Excerpt string
}

// StructuredEditorSource reads content from the block editor's attribute store.
// It is not ready until Load is called.
type StructuredEditorSource struct {
	notifier
	attrs  Attributes
	loaded bool
}

var _ ContentSource = (*StructuredEditorSource)(nil)

// NewStructuredEditorSource creates a source whose store is not loaded yet.
func NewStructuredEditorSource() *StructuredEditorSource {
	return &StructuredEditorSource{}
}

func (s *StructuredEditorSource) Kind() types.EditorKind {
	return types.EditorStructured
}

// Load initializes the store and notifies subscribers.
func (s *StructuredEditorSource) Load(attrs Attributes) {
	s.attrs = attrs
	s.loaded = true
	s.emit(types.FieldContent)
}

// SetAttribute updates one edited attribute and notifies subscribers.
// attr is types.FieldTitle, types.FieldContent or types.FieldExcerpt.
func (s *StructuredEditorSource) SetAttribute(attr, value string) error {
	if !s.loaded {
		return ErrEditorNotReady
	}
	switch attr {
	case types.FieldTitle:
		s.attrs.Title = value
	case types.FieldContent:
		s.attrs.Content = value
	case types.FieldExcerpt:
		s.attrs.Excerpt = value
	default:
		return fmt.Errorf("unknown post attribute %q", attr)
	}
	s.emit(attr)
	return nil
}

func (s *StructuredEditorSource) Title() (string, error) {
	if !s.loaded {
		return "", ErrEditorNotReady
	}
	return strings.TrimSpace(s.attrs.Title), nil
}

func (s *StructuredEditorSource) Body() (string, error) {
	if !s.loaded {
		return "", ErrEditorNotReady
	}
	return s.attrs.Content, nil
}

func (s *StructuredEditorSource) Excerpt() (string, error) {
	if !s.loaded {
		return "", ErrEditorNotReady
	}
	return strings.TrimSpace(s.attrs.Excerpt), nil
}
