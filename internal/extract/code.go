package extract

import (
	"regexp"
	"strings"
	"unicode"

	"mojocode_server/internal/types"
)

var (
	htmlFenceRe = regexp.MustCompile("(?is)```html\\s*\\n(.*?)\\n```")
	cssFenceRe  = regexp.MustCompile("(?is)```css\\s*\\n(.*?)\\n```")
	jsFenceRe   = regexp.MustCompile("(?is)```(?:javascript|js)\\s*\\n(.*?)\\n```")
	anyFenceRe  = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*\\n(.*?)\\n```")

	// Used for chat replies: first block with its (optional) language label.
	labelledFenceRe = regexp.MustCompile("(?s)```(\\w+)?\\n(.*?)\\n```")
	suggestionRe    = regexp.MustCompile(`(?m)^\s*(?:\d+\.|[-*+])\s+(.+)`)

	titleRe = regexp.MustCompile(`(?i)<title>(.*?)</title>`)
	h1Re    = regexp.MustCompile(`(?i)<h1[^>]*>(.*?)</h1>`)
	tagRe   = regexp.MustCompile(`<[^>]*>`)
)

// ParseCode pulls HTML, CSS and JavaScript out of a generate-app reply.
// It never fails: any blob it cannot find is replaced by its fallback template.
func ParseCode(text string) types.GeneratedCode {
	code, _ := parseCode(text)
	return code
}

// ParseCodeWithFallbacks is ParseCode that also reports which fields fell back to templates.
func ParseCodeWithFallbacks(text string) (types.GeneratedCode, []string) {
	return parseCode(text)
}

func parseCode(text string) (types.GeneratedCode, []string) {
	html := firstGroup(htmlFenceRe, text)
	css := firstGroup(cssFenceRe, text)
	js := firstGroup(jsFenceRe, text)

	if html == "" && css == "" && js == "" {
		for _, m := range anyFenceRe.FindAllStringSubmatch(text, -1) {
			block := strings.TrimSpace(m[1])
			switch {
			case strings.Contains(block, "<!DOCTYPE html") || strings.Contains(block, "<html"):
				if html == "" {
					html = block
				}
			case strings.Contains(block, "body {") || strings.Contains(block, ".container") || strings.Contains(block, "@media"):
				if css == "" {
					css = block
				}
			case strings.Contains(block, "function") || strings.Contains(block, "document.") || strings.Contains(block, "addEventListener"):
				if js == "" {
					js = block
				}
			}
		}
	}

	var fallbacks []string
	if html == "" {
		html = DefaultHTML
		fallbacks = append(fallbacks, "html")
	}
	if css == "" {
		css = DefaultCSS
		fallbacks = append(fallbacks, "css")
	}
	if js == "" {
		js = DefaultJS
		fallbacks = append(fallbacks, "javascript")
	}
	return types.GeneratedCode{HTML: html, CSS: css, JavaScript: js}, fallbacks
}

func firstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// FirstCodeBlock returns the first fenced block of a chat reply and its language.
// An unlabelled block is reported as javascript; ok is false when there is no block.
func FirstCodeBlock(text string) (code, language string, ok bool) {
	m := labelledFenceRe.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	language = m[1]
	if language == "" {
		language = "javascript"
	}
	return m[2], language, true
}

// Suggestions returns up to three list items from a chat reply.
func Suggestions(text string) []string {
	var out []string
	for _, m := range suggestionRe.FindAllStringSubmatch(text, -1) {
		out = append(out, strings.TrimSpace(m[1]))
		if len(out) == 3 {
			break
		}
	}
	return out
}

// ProjectName derives a name for a generated app when no plan supplied one:
// the page <title>, else the first <h1> that is not a greeting, else the prompt's
// first three significant words plus " App".
func ProjectName(content, prompt string) string {
	if m := titleRe.FindStringSubmatch(content); m != nil {
		title := strings.TrimSpace(m[1])
		if title != "" && !strings.Contains(title, DefaultProjectName) {
			return title
		}
	}

	if m := h1Re.FindStringSubmatch(content); m != nil {
		h1 := strings.TrimSpace(tagRe.ReplaceAllString(m[1], ""))
		if h1 != "" && !strings.Contains(strings.ToLower(h1), "welcome") {
			return h1
		}
	}

	var words []string
	for _, w := range strings.Split(prompt, " ") {
		if len([]rune(w)) > 2 {
			words = append(words, capitalize(w))
		}
		if len(words) == 3 {
			break
		}
	}
	if len(words) == 0 {
		return DefaultProjectName
	}
	return strings.Join(words, " ") + " App"
}

// ProjectDescription clips a prompt to 150 characters for use as a description.
func ProjectDescription(prompt string) string {
	r := []rune(prompt)
	if len(r) > 150 {
		return string(r[:147]) + "..."
	}
	return prompt
}

func capitalize(w string) string {
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
