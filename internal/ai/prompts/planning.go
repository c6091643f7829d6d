package prompts

import (
	"fmt"
	"strings"

	"mojocode_server/internal/types"
)

// GetEnhancePrompt asks the planning model to expand a rough idea into a detailed brief.
func GetEnhancePrompt(idea, authNeeds, databaseNeeds string) string {
	return fmt.Sprintf(`As a senior product manager and UX expert, enhance this app idea by adding missing technical details, user experience considerations, and implementation requirements.

ORIGINAL IDEA: "%s"

REQUIREMENTS TO CONSIDER:
- Authentication needs: %s
- Database integration: %s

Please enhance this prompt to include:
1. **Core Functionality**: Detailed feature descriptions and user flows
2. **User Interface**: Specific UI/UX requirements, layout preferences, and visual design direction
3. **Technical Specifications**: Architecture considerations, data requirements, and integration needs
4. **User Experience**: Navigation patterns, interaction design, and accessibility requirements
5. **Visual Design**: Color schemes, typography preferences, and design system requirements
6. **Performance & Quality**: Loading states, error handling, and optimization considerations

Focus on creating a comprehensive, actionable prompt that includes all necessary details for successful development.

Return ONLY the enhanced prompt as a complete, detailed description - no additional commentary or formatting.`, idea, authNeeds, databaseNeeds)
}

const EnhanceInstructions = "You are a senior product strategist with expertise in app development, UX design, and technical architecture. " +
	"Provide comprehensive, actionable enhancements that bridge business requirements with technical implementation."

// GetPlanningPrompt asks for a plan in the section layout the plan parser understands.
func GetPlanningPrompt(concept, authNeeds, databaseNeeds string) string {
	return fmt.Sprintf(`As a technical lead and software architect, analyze this app concept and create a comprehensive project plan.

APP CONCEPT: "%s"

REQUIREMENTS:
- Authentication: %s
- Database: %s

Create a detailed project analysis with the following structure:

PROJECT NAME: [Suggest a memorable, brandable name that reflects the app's purpose]

DESCRIPTION: [Write a compelling 2-3 sentence summary that captures the app's value proposition and target audience]

CORE FEATURES:
- [List 5-7 essential features that deliver the primary user value]
- [Include user authentication and data management features if needed]

TECH STACK:
- [Specify frontend technologies (HTML5, CSS3, JavaScript)]
- [Include any necessary APIs, libraries, or third-party integrations]

FILE STRUCTURE:
- [List main files that will be created (HTML, CSS, JS)]

CLARIFICATIONS NEEDED:
- [Identify any ambiguous requirements that need user input]
- [List assumptions that should be validated]

COMPLEXITY: [Rate as Simple/Medium/Complex based on:]
- Simple: Basic UI, minimal interactivity, no external APIs
- Medium: Multiple features, some state management, possible API integration
- Complex: Advanced functionality, real-time features, complex data relationships

Provide actionable, specific information that enables immediate development start.`, concept, authNeeds, databaseNeeds)
}

const PlanningInstructions = "You are a senior software architect and project lead. " +
	"Use advanced reasoning to create comprehensive, actionable project plans. " +
	"Research current best practices and technologies using available tools when needed."

// GetPlanSpecification renders an approved plan as the specification handed to generate-app.
func GetPlanSpecification(plan types.ProjectPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PROJECT NAME: %s\n", plan.ProjectName)
	fmt.Fprintf(&b, "DESCRIPTION: %s\n", plan.Description)
	if plan.Prompt != "" {
		fmt.Fprintf(&b, "ORIGINAL REQUEST: %s\n", plan.Prompt)
	}
	writeList(&b, "CORE FEATURES", plan.Features)
	writeList(&b, "TECH STACK", plan.TechStack)
	writeList(&b, "FILE STRUCTURE", plan.FileStructure)
	fmt.Fprintf(&b, "\nCOMPLEXITY: %s", plan.EstimatedComplexity)
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}
