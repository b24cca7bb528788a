package types

import "fmt"

// Field names accepted by PostEdit.Field.
const (
	FieldTitle           = "title"
	FieldContent         = "content"
	FieldExcerpt         = "excerpt"
	FieldMetaTitle       = "meta_title"
	FieldMetaDescription = "meta_description"
	FieldTab             = "tab"
)

// PostFixture describes a post being edited and the edits replayed against it.
type PostFixture struct {
	Editor  EditorKind `yaml:"editor"`
	Title   string     `yaml:"title"`
	Content string     `yaml:"content"`
	Excerpt string     `yaml:"excerpt"`
	// Tab is the initially active classic editor tab. Ignored for the structured editor.
	Tab  EditorTab `yaml:"tab,omitempty"`
	Meta PostMeta  `yaml:"meta"`
	// Edits are applied in order, each one triggering a preview update.
	Edits []PostEdit `yaml:"edits,omitempty"`
}

// PostMeta holds the SEO meta fields of the post.
type PostMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// PostEdit is a single keystroke-level change to one field.
type PostEdit struct {
	Field string `yaml:"field"`
	Value string `yaml:"value"`
}

// Validate checks the fixture for unknown editors, tabs and edit fields.
func (p *PostFixture) Validate() error {
	if p.Editor == "" {
		p.Editor = EditorStructured
	}
	if !p.Editor.IsValid() {
		return fmt.Errorf("unknown editor %q (expected %q or %q)", p.Editor, EditorStructured, EditorPlain)
	}
	if p.Tab == "" {
		p.Tab = TabVisual
	}
	if p.Tab != TabVisual && p.Tab != TabText {
		return fmt.Errorf("unknown tab %q (expected %q or %q)", p.Tab, TabVisual, TabText)
	}

	for i, edit := range p.Edits {
		switch edit.Field {
		case FieldTitle, FieldContent, FieldExcerpt, FieldMetaTitle, FieldMetaDescription:
		case FieldTab:
			if p.Editor != EditorPlain {
				return fmt.Errorf("edits[%d]: tab switch is only supported by the %q editor", i, EditorPlain)
			}
			if tab := EditorTab(edit.Value); tab != TabVisual && tab != TabText {
				return fmt.Errorf("edits[%d]: unknown tab %q", i, edit.Value)
			}
		default:
			return fmt.Errorf("edits[%d]: unknown field %q", i, edit.Field)
		}
	}
	return nil
}
