package extract

import (
	"regexp"
	"strings"

	"mojocode_server/internal/types"
)

// Defaults used when a create-plan reply does not yield a value.
const (
	DefaultProjectName = "My App"
	DefaultDescription = "Generated application"
)

// Fallback lists for sections the reply left empty. Callers get copies.
var (
	DefaultFeatures = []string{
		"Responsive user interface",
		"Interactive core functionality",
		"Clean, modern design",
	}
	DefaultTechStack = []string{
		"HTML5",
		"CSS3",
		"JavaScript (ES6+)",
	}
	DefaultFileStructure = []string{
		"index.html",
		"style.css",
		"script.js",
	}
)

type section int

const (
	sectionNone section = iota
	sectionFeatures
	sectionTech
	sectionFiles
	sectionClarifications
)

// listItemRe matches "- item", "• item", "* item", "+ item" and "3. item".
var listItemRe = regexp.MustCompile(`^(?:[-•*+]|\d+\.)\s*(.+)$`)

// ParsePlan turns a free-text create-plan reply into a ProjectPlan.
//
// Lines are classified in a fixed priority order and the first matching rule wins,
// so a bullet that happens to mention "description" is read as a description header.
func ParsePlan(text string) types.ProjectPlan {
	plan := types.ProjectPlan{
		ProjectName:         DefaultProjectName,
		Description:         DefaultDescription,
		Features:            []string{},
		TechStack:           []string{},
		FileStructure:       []string{},
		Clarifications:      []string{},
		EstimatedComplexity: types.ComplexityMedium,
	}

	current := sectionNone
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		hasColon := strings.Contains(line, ":")

		switch {
		case strings.Contains(lower, "project name") && hasColon:
			if v := afterColon(line); v != "" {
				plan.ProjectName = v
			}
		case strings.Contains(lower, "description") && hasColon:
			if v := afterColon(line); v != "" {
				plan.Description = v
			}
		case strings.Contains(lower, "core features") || strings.Contains(lower, "features:"):
			current = sectionFeatures
		case strings.Contains(lower, "tech stack") || strings.Contains(lower, "technology stack"):
			current = sectionTech
		case strings.Contains(lower, "file structure") || strings.Contains(lower, "files:"):
			current = sectionFiles
		case strings.Contains(lower, "clarifications") || strings.Contains(lower, "questions"):
			current = sectionClarifications
		case strings.Contains(lower, "complexity") && hasColon:
			plan.EstimatedComplexity = parseComplexity(afterColon(line))
		default:
			m := listItemRe.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			item := strings.TrimSpace(m[1])
			switch current {
			case sectionFeatures:
				plan.Features = append(plan.Features, item)
			case sectionTech:
				plan.TechStack = append(plan.TechStack, item)
			case sectionFiles:
				plan.FileStructure = append(plan.FileStructure, item)
			case sectionClarifications:
				plan.Clarifications = append(plan.Clarifications, item)
			}
		}
	}

	if len(plan.Features) == 0 {
		plan.Features = clone(DefaultFeatures)
	}
	if len(plan.TechStack) == 0 {
		plan.TechStack = clone(DefaultTechStack)
	}
	if len(plan.FileStructure) == 0 {
		plan.FileStructure = clone(DefaultFileStructure)
	}
	return plan
}

func afterColon(line string) string {
	_, rest, _ := strings.Cut(line, ":")
	return strings.TrimSpace(rest)
}

func parseComplexity(s string) types.Complexity {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "simple"):
		return types.ComplexitySimple
	case strings.Contains(lower, "complex"):
		return types.ComplexityComplex
	default:
		return types.ComplexityMedium
	}
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
