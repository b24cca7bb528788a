package session

import (
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/edgecomet/snippet/internal/common/configtypes"
	"github.com/edgecomet/snippet/internal/common/htmlprocessor"
	"github.com/edgecomet/snippet/pkg/types"
)

// Settings controls description generation.
type Settings struct {
	// AutogenerateDescriptions derives the description from post content.
	AutogenerateDescriptions bool
	// SkipExcerpt keeps the content summary even when an excerpt exists.
	SkipExcerpt bool
}

// SettingsFromConfig returns the effective settings of cfg.
func SettingsFromConfig(cfg configtypes.PreviewConfig) Settings {
	return Settings{
		AutogenerateDescriptions: cfg.Autogenerate(),
		SkipExcerpt:              cfg.SkipExcerpt,
	}
}

// Input is everything a preview is computed from.
type Input struct {
	Title           string
	Body            string
	Excerpt         string
	MetaTitle       string
	MetaDescription string
}

// Preview is the computed snippet plus the placeholders of the SEO fields.
type Preview struct {
	Snippet                types.Snippet
	TitlePlaceholder       string
	DescriptionPlaceholder string

	ContentTruncated bool
	ExcerptTruncated bool
}

// Resolve computes the preview for in.
//
// The snippet title is the post title unless a meta title is set; the title
// placeholder always shows the post title. With autogeneration on, the
// description is the content summary, replaced by the excerpt summary when an
// excerpt exists and excerpts are not skipped. A meta description wins over
// both and is also shown as placeholder.
func Resolve(in Input, settings Settings) Preview {
	var p Preview

	postTitle := htmlprocessor.StripMarkup(strings.TrimSpace(in.Title))
	p.Snippet.Title = postTitle
	p.TitlePlaceholder = postTitle

	if metaTitle := htmlprocessor.StripMarkup(strings.TrimSpace(in.MetaTitle)); metaTitle != "" {
		p.Snippet.Title = metaTitle
	}

	if settings.AutogenerateDescriptions {
		content, truncated := htmlprocessor.SummarizeTruncated(in.Body)
		p.Snippet.Description = content
		p.DescriptionPlaceholder = content
		p.ContentTruncated = truncated

		if !settings.SkipExcerpt {
			excerpt, truncated := htmlprocessor.SummarizeTruncated(strings.TrimSpace(in.Excerpt))
			if excerpt != "" {
				p.Snippet.Description = excerpt
				p.DescriptionPlaceholder = excerpt
				p.ExcerptTruncated = truncated
			}
		}
	}

	if metaDescription := htmlprocessor.StripMarkup(strings.TrimSpace(in.MetaDescription)); metaDescription != "" {
		p.Snippet.Description = metaDescription
		p.DescriptionPlaceholder = metaDescription
	}

	return p
}

// hash identifies what a preview writes to the edit screen.
func (p Preview) hash() uint64 {
	d := xxhash.New()
	for _, s := range []string{p.Snippet.Title, p.TitlePlaceholder, p.Snippet.Description, p.DescriptionPlaceholder} {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
