package projects

import (
	"fmt"
	"strings"
	"time"

	"mojocode_server/internal/types"
)

const readmePath = "/README.md"

// Export concatenates every file plus a generated README into one text blob.
// Each file becomes "\n\n=== <path> ===\n<content>" and sections are joined by "\n".
// A project file at /README.md is replaced in place by the generated one.
func Export(p types.Project, at time.Time) (filename, body string) {
	type section struct{ path, content string }
	sections := make([]section, 0, len(p.Files)+1)
	readmeAt := -1
	for _, f := range p.Files {
		if f.Path == readmePath {
			if readmeAt < 0 {
				readmeAt = len(sections)
				sections = append(sections, section{path: readmePath})
			}
			continue
		}
		sections = append(sections, section{f.Path, f.Content})
	}

	generated := section{readmePath, readme(p, at)}
	if readmeAt >= 0 {
		sections[readmeAt] = generated
	} else {
		sections = append(sections, generated)
	}

	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, fmt.Sprintf("\n\n=== %s ===\n%s", s.path, s.content))
	}
	return p.Name + ".txt", strings.Join(parts, "\n")
}

func readme(p types.Project, at time.Time) string {
	description := "A project created with MojoCode"
	if p.Description != nil && *p.Description != "" {
		description = *p.Description
	}
	paths := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		paths = append(paths, "- "+f.Path)
	}

	return fmt.Sprintf(`# %s

%s

## Files Structure
%s

## Getting Started
1. Open index.html in your browser
2. Start editing the files to customize your project
3. Have fun coding!

Generated by MojoCode - %s
`, p.Name, description, strings.Join(paths, "\n"), at.Format("2006-01-02"))
}
