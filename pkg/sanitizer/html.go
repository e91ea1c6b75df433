package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	emailPolicy  *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()

		// emailPolicy keeps the markup email clients actually render:
		// structural tags, basic formatting, links, and images.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowStandardURLs()
		emailPolicy.AllowElements(
			"html", "head", "body", "title",
			"div", "span", "p", "br", "hr",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"strong", "b", "em", "i", "u", "small",
			"ul", "ol", "li",
			"table", "thead", "tbody", "tfoot", "tr", "td", "th",
			"code", "pre", "blockquote",
		)
		emailPolicy.AllowElements("a", "img")
		emailPolicy.AllowAttrs("href").OnElements("a")
		emailPolicy.AllowAttrs("src", "alt", "width", "height").OnElements("img")
		emailPolicy.AllowAttrs("align", "valign", "colspan", "rowspan").OnElements("table", "td", "th", "tr")
	})
}

// SanitizeEmailHTML keeps the tags and attributes transactional emails use
// (structure, headings, tables, links, images) and strips everything
// dangerous: scripts, event handlers, and javascript: URLs. Rendered
// previews pass through here before display.
func SanitizeEmailHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}

// StripTags removes all HTML, returning plain text. Used for the text
// alternative of an HTML body and for log-friendly subjects.
func StripTags(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
