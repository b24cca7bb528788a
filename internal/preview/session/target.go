package session

import (
	"go.uber.org/zap"

	"github.com/edgecomet/snippet/internal/common/configtypes"
	"github.com/edgecomet/snippet/internal/common/htmlprocessor"
)

// Target is where a preview is rendered. It also owns the SEO meta fields,
// whose values take part in the preview.
type Target interface {
	MetaTitle() string
	MetaDescription() string
	RenderTitle(text, placeholder string)
	RenderDescription(text, placeholder string)
}

// MissRecorder records writes to elements absent from the edit screen.
type MissRecorder interface {
	RecordRenderMiss(element string)
}

// DefaultEditScreen is the minimal edit screen markup: the preview widget and
// the SEO meta fields, using the default element names.
const DefaultEditScreen = `<!DOCTYPE html>
<html>
<head><title>Edit Post</title></head>
<body>
<div class="aioseop-preview-snippet">
<div id="aiosp_snippet_title" class="snippet-title"></div>
<div class="snippet-url"></div>
<div id="aioseop_snippet_description" class="snippet-description"></div>
</div>
<input type="text" name="aiosp_title" value="">
<textarea name="aiosp_description"></textarea>
</body>
</html>
`

// ScreenTarget renders previews into an edit screen document.
type ScreenTarget struct {
	doc    htmlprocessor.Document
	fields configtypes.FieldsConfig
	misses MissRecorder
	logger *zap.Logger
}

var _ Target = (*ScreenTarget)(nil)

// NewScreenTarget creates a target for doc. misses and logger may be nil.
func NewScreenTarget(doc htmlprocessor.Document, fields configtypes.FieldsConfig, misses MissRecorder, logger *zap.Logger) *ScreenTarget {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScreenTarget{
		doc:    doc,
		fields: fields,
		misses: misses,
		logger: logger,
	}
}

// Document returns the underlying edit screen.
func (t *ScreenTarget) Document() htmlprocessor.Document {
	return t.doc
}

func (t *ScreenTarget) MetaTitle() string {
	return t.doc.FieldValue(t.fields.MetaTitleName)
}

func (t *ScreenTarget) MetaDescription() string {
	return t.doc.FieldValue(t.fields.MetaDescriptionName)
}

// SetMetaTitle types value into the meta title field.
func (t *ScreenTarget) SetMetaTitle(value string) bool {
	return t.check(t.fields.MetaTitleName, t.doc.SetFieldValue(t.fields.MetaTitleName, value))
}

// SetMetaDescription types value into the meta description field.
func (t *ScreenTarget) SetMetaDescription(value string) bool {
	return t.check(t.fields.MetaDescriptionName, t.doc.SetFieldValue(t.fields.MetaDescriptionName, value))
}

func (t *ScreenTarget) RenderTitle(text, placeholder string) {
	t.check(t.fields.SnippetTitleID, t.doc.SetElementText(t.fields.SnippetTitleID, text))
	t.check(t.fields.MetaTitleName, t.doc.SetPlaceholder(t.fields.MetaTitleName, placeholder))
}

func (t *ScreenTarget) RenderDescription(text, placeholder string) {
	t.check(t.fields.SnippetDescriptionID, t.doc.SetElementText(t.fields.SnippetDescriptionID, text))
	t.check(t.fields.MetaDescriptionName, t.doc.SetPlaceholder(t.fields.MetaDescriptionName, placeholder))
}

func (t *ScreenTarget) check(element string, ok bool) bool {
	if !ok {
		t.logger.Debug("Edit screen element not found", zap.String("element", element))
		if t.misses != nil {
			t.misses.RecordRenderMiss(element)
		}
	}
	return ok
}
