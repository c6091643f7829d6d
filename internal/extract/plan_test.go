package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mojocode_server/internal/types"
)

func TestParsePlan_PetFinderScenario(t *testing.T) {
	text := "PROJECT NAME: Pet Finder\nDESCRIPTION: Find pets\nCORE FEATURES:\n- Search\n- Map view\nCOMPLEXITY: Complex"

	plan := ParsePlan(text)

	assert.Equal(t, "Pet Finder", plan.ProjectName)
	assert.Equal(t, "Find pets", plan.Description)
	assert.Equal(t, []string{"Search", "Map view"}, plan.Features)
	assert.Equal(t, types.ComplexityComplex, plan.EstimatedComplexity)
	assert.Equal(t, DefaultTechStack, plan.TechStack)
	assert.Equal(t, DefaultFileStructure, plan.FileStructure)
	assert.NotNil(t, plan.Clarifications)
	assert.Empty(t, plan.Clarifications)
}

func TestParsePlan_NoRecognisableHeaders(t *testing.T) {
	inputs := []string{
		"",
		"just some prose\nwith no headings at all",
		"- a bullet before any section\n1. numbered too",
		"Sure! Here is what I think you should build.",
	}
	for _, in := range inputs {
		plan := ParsePlan(in)
		assert.Equal(t, DefaultProjectName, plan.ProjectName, in)
		assert.Equal(t, DefaultDescription, plan.Description, in)
		assert.Equal(t, DefaultFeatures, plan.Features, in)
		assert.Equal(t, DefaultTechStack, plan.TechStack, in)
		assert.Equal(t, DefaultFileStructure, plan.FileStructure, in)
		assert.Equal(t, types.ComplexityMedium, plan.EstimatedComplexity, in)
		assert.NotNil(t, plan.Clarifications, in)
	}
}

func TestParsePlan_Complexity(t *testing.T) {
	cases := []struct {
		line string
		want types.Complexity
	}{
		{"COMPLEXITY: Simple details...", types.ComplexitySimple},
		{"Complexity: simple", types.ComplexitySimple},
		{"COMPLEXITY: Complex details...", types.ComplexityComplex},
		{"complexity: COMPLEX, real-time sync", types.ComplexityComplex},
		{"COMPLEXITY: Medium", types.ComplexityMedium},
		{"COMPLEXITY: hard to say", types.ComplexityMedium},
		{"COMPLEXITY:", types.ComplexityMedium},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParsePlan(tc.line).EstimatedComplexity, tc.line)
	}
}

func TestParsePlan_FullReply(t *testing.T) {
	text := `Here is the plan.

PROJECT NAME: Bean Counter

DESCRIPTION: A coffee shop loyalty tracker for regulars.

CORE FEATURES:
- Stamp cards
• Rewards catalogue
* Visit history
+ Push reminders

TECH STACK:
1. HTML5
2. CSS3 with custom properties
3. Vanilla JavaScript

FILE STRUCTURE:
- index.html
- style.css
- script.js

CLARIFICATIONS NEEDED:
- Should rewards expire?

COMPLEXITY: Simple - a handful of screens`

	plan := ParsePlan(text)

	assert.Equal(t, "Bean Counter", plan.ProjectName)
	assert.Equal(t, "A coffee shop loyalty tracker for regulars.", plan.Description)
	assert.Equal(t, []string{"Stamp cards", "Rewards catalogue", "Visit history", "Push reminders"}, plan.Features)
	assert.Equal(t, []string{"HTML5", "CSS3 with custom properties", "Vanilla JavaScript"}, plan.TechStack)
	assert.Equal(t, []string{"index.html", "style.css", "script.js"}, plan.FileStructure)
	assert.Equal(t, []string{"Should rewards expire?"}, plan.Clarifications)
	assert.Equal(t, types.ComplexitySimple, plan.EstimatedComplexity)
}

func TestParsePlan_SectionSynonyms(t *testing.T) {
	text := "Features:\n- one\nTechnology Stack\n- go\nFiles:\n- main.go\nOpen questions\n- why?"
	plan := ParsePlan(text)

	assert.Equal(t, []string{"one"}, plan.Features)
	assert.Equal(t, []string{"go"}, plan.TechStack)
	assert.Equal(t, []string{"main.go"}, plan.FileStructure)
	assert.Equal(t, []string{"why?"}, plan.Clarifications)
}

func TestParsePlan_FirstMatchWins(t *testing.T) {
	// A feature bullet that mentions "description:" is read as the description,
	// and one mentioning "questions" moves the cursor. Both are known misreads.
	text := "CORE FEATURES:\n- Product description: rich text\n- FAQ with questions\n- Cart"
	plan := ParsePlan(text)

	assert.Equal(t, "rich text", plan.Description)
	assert.Equal(t, DefaultFeatures, plan.Features)
	assert.Equal(t, []string{"Cart"}, plan.Clarifications)
}

func TestParsePlan_FallbacksAreCopies(t *testing.T) {
	plan := ParsePlan("")
	require.NotEmpty(t, plan.Features)
	plan.Features[0] = "mutated"

	assert.NotEqual(t, "mutated", DefaultFeatures[0])
}
