package htmlprocessor

// Document is the edit screen markup that hosts the preview widget and the
// SEO meta fields.
type Document interface {
	// ElementText returns the text content of the element with the given id.
	// Returns empty string if not found.
	ElementText(id string) string

	// SetElementText replaces the children of the element with the given id by
	// a single text node. Returns false if the element does not exist.
	SetElementText(id, text string) bool

	// FieldValue returns the value of the <input> or <textarea> with the given
	// name attribute, trimmed. Returns empty string if not found.
	FieldValue(name string) string

	// SetFieldValue sets the value of the named <input> or <textarea>.
	// Returns false if the field does not exist.
	SetFieldValue(name, value string) bool

	// SetPlaceholder sets the placeholder attribute of the named field.
	// Returns false if the field does not exist.
	SetPlaceholder(name, text string) bool

	// HTML returns current HTML as bytes (re-serialized from DOM).
	HTML() []byte
}
