package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mojocode_server/internal/types"
)

func project(files ...types.ProjectFile) *types.Project {
	return &types.Project{ID: "p1", Name: "Demo", Files: files}
}

func TestRender_InlinesAssets(t *testing.T) {
	p := project(
		types.ProjectFile{Name: "index.html", Content: `<html><head><LINK rel="stylesheet" href='style.css'></head>` +
			`<body><script src="script.js"></script></body></html>`},
		types.ProjectFile{Name: "style.css", Content: "body{color:red}"},
		types.ProjectFile{Name: "script.js", Content: "console.log('$1 & $&')"},
	)

	assert.Equal(t,
		`<html><head><style>body{color:red}</style></head><body><script>console.log('$1 & $&')</script></body></html>`,
		Render(p))
}

func TestRender_OnlyFirstReferenceReplaced(t *testing.T) {
	p := project(
		types.ProjectFile{Name: "index.html", Content: `<link href="style.css"><link href="style.css">`},
		types.ProjectFile{Name: "style.css", Content: "a{}"},
	)
	assert.Equal(t, `<style>a{}</style><link href="style.css">`, Render(p))
}

func TestRender_MissingPieces(t *testing.T) {
	assert.Equal(t, "", Render(nil))
	assert.Equal(t, NoHTML, Render(project(types.ProjectFile{Name: "style.css", Content: "a{}"})))

	html := `<link href="style.css"><script src="script.js"></script>`
	assert.Equal(t, html, Render(project(types.ProjectFile{Name: "index.html", Content: html})))
}
