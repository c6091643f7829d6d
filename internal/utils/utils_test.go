package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLanguage(t *testing.T) {
	cases := map[string]string{
		"index.html":         "html",
		"STYLE.CSS":          "css",
		"script.js":          "javascript",
		"src/app.tsx":        "typescript",
		"package.json":       "json",
		"README.md":          "markdown",
		"Dockerfile":         "dockerfile",
		"notes":              "plaintext",
		"docker-compose.yml": "yaml",
	}
	for name, want := range cases {
		assert.Equal(t, want, DetermineLanguage(name), name)
	}
}

func TestFilePath(t *testing.T) {
	assert.Equal(t, "/index.html", FilePath("index.html"))
	assert.Equal(t, "/README.md", FilePath("/README.md"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 150))

	long := strings.Repeat("a", 200)
	out := Truncate(long, 150)
	assert.Len(t, out, 150)
	assert.True(t, strings.HasSuffix(out, "..."))
	assert.Equal(t, strings.Repeat("a", 147), strings.TrimSuffix(out, "..."))
}
