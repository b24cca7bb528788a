package types

// Preview text limits
const (
	// DescriptionBudget is the maximum description length (runes) shown in a search result snippet.
	DescriptionBudget = 160
	// PreviewBudget caps raw editor content (runes) before markup is stripped.
	PreviewBudget = 5000
	// TruncationSuffix is appended to descriptions shortened to DescriptionBudget.
	TruncationSuffix = " ..."
)

// EditorKind identifies which editor surface provides post content.
type EditorKind string

const (
	// EditorStructured is the block editor backed by an attribute store.
	EditorStructured EditorKind = "structured"
	// EditorPlain is the classic form editor with visual and text tabs.
	EditorPlain EditorKind = "plain"
)

// IsValid reports whether k is a known editor kind.
func (k EditorKind) IsValid() bool {
	return k == EditorStructured || k == EditorPlain
}

// EditorTab identifies the active content tab of the classic editor.
type EditorTab string

const (
	TabVisual EditorTab = "visual"
	TabText   EditorTab = "text"
)

// Snippet is the rendered search result preview.
type Snippet struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// IsEmpty reports whether neither title nor description is set.
func (s Snippet) IsEmpty() bool {
	return s.Title == "" && s.Description == ""
}
