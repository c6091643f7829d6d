package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const fence = "```"

func TestParseCode_LabelledFences(t *testing.T) {
	reply := "I'll build it in three files.\n\n" +
		fence + "html\n<!DOCTYPE html>\n<html><body><h1>Hi</h1></body></html>\n" + fence + "\n\n" +
		"Now the styles:\n" +
		fence + "CSS\n  body { color: red; }  \n" + fence + "\n\n" +
		fence + "javascript\nconsole.log('hi');\n" + fence + "\n"

	code := ParseCode(reply)

	assert.Equal(t, "<!DOCTYPE html>\n<html><body><h1>Hi</h1></body></html>", code.HTML)
	assert.Equal(t, "body { color: red; }", code.CSS)
	assert.Equal(t, "console.log('hi');", code.JavaScript)
}

func TestParseCode_JSLabelAlias(t *testing.T) {
	reply := fence + "js\nalert(1);\n" + fence
	code, fallbacks := ParseCodeWithFallbacks(reply)

	assert.Equal(t, "alert(1);", code.JavaScript)
	assert.Equal(t, DefaultHTML, code.HTML)
	assert.Equal(t, DefaultCSS, code.CSS)
	assert.Equal(t, []string{"html", "css"}, fallbacks)
}

func TestParseCode_NoFences(t *testing.T) {
	code, fallbacks := ParseCodeWithFallbacks("Sorry, I can't help with that.")

	assert.Equal(t, DefaultHTML, code.HTML)
	assert.Equal(t, DefaultCSS, code.CSS)
	assert.Equal(t, DefaultJS, code.JavaScript)
	assert.Equal(t, []string{"html", "css", "javascript"}, fallbacks)

	assert.NotEmpty(t, code.HTML)
	assert.NotEmpty(t, code.CSS)
	assert.NotEmpty(t, code.JavaScript)
	assert.Contains(t, code.HTML, `href="style.css"`)
	assert.Contains(t, code.HTML, `src="script.js"`)
	assert.Contains(t, code.JavaScript, "DOMContentLoaded")
}

func TestParseCode_OnlyCSS(t *testing.T) {
	reply := "Styles only:\n" + fence + "css\n.card { padding: 1rem; }\n" + fence
	code := ParseCode(reply)

	assert.Equal(t, ".card { padding: 1rem; }", code.CSS)
	assert.Equal(t, DefaultHTML, code.HTML)
	assert.Equal(t, DefaultJS, code.JavaScript)
}

func TestParseCode_ContentSniffing(t *testing.T) {
	reply := fence + "\n<html><body>first</body></html>\n" + fence + "\n" +
		fence + "text\n<!DOCTYPE html><html>second</html>\n" + fence + "\n" +
		fence + "\n@media (max-width: 600px) { .a { color: blue; } }\n" + fence + "\n" +
		fence + "plain\ndocument.querySelector('a');\n" + fence + "\n"

	code := ParseCode(reply)

	assert.Equal(t, "<html><body>first</body></html>", code.HTML)
	assert.Equal(t, "@media (max-width: 600px) { .a { color: blue; } }", code.CSS)
	assert.Equal(t, "document.querySelector('a');", code.JavaScript)
}

func TestParseCode_SniffingSkippedWhenAnyLabelMatched(t *testing.T) {
	reply := fence + "css\nbody { margin: 0; }\n" + fence + "\n" +
		fence + "\n<html>unlabelled</html>\n" + fence + "\n"

	code := ParseCode(reply)

	assert.Equal(t, "body { margin: 0; }", code.CSS)
	assert.Equal(t, DefaultHTML, code.HTML)
}

func TestParseCode_UnclassifiableBlocks(t *testing.T) {
	reply := fence + "\nSELECT 1;\n" + fence
	code := ParseCode(reply)

	assert.Equal(t, DefaultHTML, code.HTML)
	assert.Equal(t, DefaultCSS, code.CSS)
	assert.Equal(t, DefaultJS, code.JavaScript)
}

func TestFirstCodeBlock(t *testing.T) {
	code, lang, ok := FirstCodeBlock("x\n" + fence + "go\nfmt.Println()\n" + fence + "\n" + fence + "py\nprint()\n" + fence)
	assert.True(t, ok)
	assert.Equal(t, "go", lang)
	assert.Equal(t, "fmt.Println()", code)

	_, lang, ok = FirstCodeBlock(fence + "\nlet a = 1;\n" + fence)
	assert.True(t, ok)
	assert.Equal(t, "javascript", lang)

	_, _, ok = FirstCodeBlock("no code here")
	assert.False(t, ok)
}

func TestSuggestions(t *testing.T) {
	text := "Try these:\n1. Add tests\n- Use CSS grid\n* Cache results\n+ Ship it"
	assert.Equal(t, []string{"Add tests", "Use CSS grid", "Cache results"}, Suggestions(text))
	assert.Empty(t, Suggestions("nothing to suggest"))
}

func TestProjectName(t *testing.T) {
	assert.Equal(t, "Recipe Box", ProjectName("<html><title>Recipe Box</title></html>", "anything"))
	assert.Equal(t, "Budget Buddy", ProjectName("<title>My App</title><h1 class=\"x\"><span>Budget</span> Buddy</h1>", "p"))
	assert.Equal(t, "Build Photo Sharing App", ProjectName("<h1>Welcome!</h1>", "a build photo sharing site"))
	assert.Equal(t, DefaultProjectName, ProjectName("", "a b c"))
}

func TestProjectDescription(t *testing.T) {
	assert.Equal(t, "short prompt", ProjectDescription("short prompt"))

	long := strings.Repeat("x", 151)
	desc := ProjectDescription(long)
	assert.Len(t, desc, 150)
	assert.True(t, strings.HasSuffix(desc, "..."))
}
