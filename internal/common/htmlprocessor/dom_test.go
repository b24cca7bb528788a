package htmlprocessor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const editScreenHTML = `<!DOCTYPE html>
<html><head><title>Edit Post</title></head>
<body>
<div class="preview">
  <p id="aiosp_snippet_title">Old <b>title</b></p>
  <p id="aioseop_snippet_description"></p>
</div>
<input type="text" name="aiosp_title" value="  SEO Title  ">
<textarea name="aiosp_description">
  SEO description
</textarea>
</body></html>`

func parseEditScreen(t *testing.T) Document {
	t.Helper()
	doc, err := ParseEditScreen([]byte(editScreenHTML))
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc
}

func TestElementText(t *testing.T) {
	doc := parseEditScreen(t)

	assert.Equal(t, "Old title", doc.ElementText("aiosp_snippet_title"))
	assert.Equal(t, "", doc.ElementText("aioseop_snippet_description"))
	assert.Equal(t, "", doc.ElementText("missing"))
	assert.Equal(t, "", doc.ElementText(""))
}

func TestSetElementText(t *testing.T) {
	doc := parseEditScreen(t)

	require.True(t, doc.SetElementText("aiosp_snippet_title", "New <title> & more"))
	assert.Equal(t, "New <title> & more", doc.ElementText("aiosp_snippet_title"))

	// Text is escaped on serialization, never interpreted as markup
	out := string(doc.HTML())
	assert.Contains(t, out, `<p id="aiosp_snippet_title">New &lt;title&gt; &amp; more</p>`)

	require.True(t, doc.SetElementText("aiosp_snippet_title", ""))
	assert.Equal(t, "", doc.ElementText("aiosp_snippet_title"))

	assert.False(t, doc.SetElementText("missing", "x"))
}

func TestFieldValue(t *testing.T) {
	doc := parseEditScreen(t)

	assert.Equal(t, "SEO Title", doc.FieldValue("aiosp_title"))
	assert.Equal(t, "SEO description", doc.FieldValue("aiosp_description"))
	assert.Equal(t, "", doc.FieldValue("missing"))
}

func TestSetFieldValue(t *testing.T) {
	doc := parseEditScreen(t)

	require.True(t, doc.SetFieldValue("aiosp_title", "Typed title"))
	assert.Equal(t, "Typed title", doc.FieldValue("aiosp_title"))

	require.True(t, doc.SetFieldValue("aiosp_description", "Typed description"))
	assert.Equal(t, "Typed description", doc.FieldValue("aiosp_description"))

	assert.False(t, doc.SetFieldValue("missing", "x"))
}

func TestSetPlaceholder(t *testing.T) {
	doc := parseEditScreen(t)

	require.True(t, doc.SetPlaceholder("aiosp_title", "Post title"))
	require.True(t, doc.SetPlaceholder("aiosp_title", "Updated title"))
	require.True(t, doc.SetPlaceholder("aiosp_description", "Summary"))
	assert.False(t, doc.SetPlaceholder("missing", "x"))

	out := string(doc.HTML())
	assert.Contains(t, out, `placeholder="Updated title"`)
	assert.Contains(t, out, `placeholder="Summary"`)
	assert.Equal(t, 2, strings.Count(out, "placeholder="))
}

func TestHTML_RoundTrip(t *testing.T) {
	doc := parseEditScreen(t)

	reparsed, err := ParseEditScreen(doc.HTML())
	require.NoError(t, err)
	assert.Equal(t, doc.ElementText("aiosp_snippet_title"), reparsed.ElementText("aiosp_snippet_title"))
	assert.Equal(t, doc.FieldValue("aiosp_title"), reparsed.FieldValue("aiosp_title"))
}
