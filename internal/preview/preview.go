package preview

import (
	"regexp"

	"mojocode_server/internal/types"
)

// NoHTML is served when the project has no index.html.
const NoHTML = "<p>No HTML file found</p>"

var (
	stylesheetLink = regexp.MustCompile(`(?i)<link[^>]*href=["']style\.css["'][^>]*>`)
	scriptTag      = regexp.MustCompile(`(?i)<script[^>]*src=["']script\.js["'][^>]*></script>`)
)

// Render builds a self-contained document from a project's index.html by inlining
// style.css and script.js in place of the first tag that references each of them.
// A nil project renders as the empty string.
func Render(p *types.Project) string {
	if p == nil {
		return ""
	}
	htmlFile, ok := p.FileByName("index.html")
	if !ok {
		return NoHTML
	}

	doc := htmlFile.Content
	if css, ok := p.FileByName("style.css"); ok {
		doc = replaceFirst(stylesheetLink, doc, "<style>"+css.Content+"</style>")
	}
	if js, ok := p.FileByName("script.js"); ok {
		doc = replaceFirst(scriptTag, doc, "<script>"+js.Content+"</script>")
	}
	return doc
}

// replaceFirst substitutes the first match of re with repl taken literally.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
