package prompts

import "fmt"

// GetAppGenerationPrompt builds the generate-app input for an already detailed specification.
func GetAppGenerationPrompt(specification string) string {
	return fmt.Sprintf(`Create a complete, functional, and beautiful web application based on this detailed specification:

%s

AUTONOMOUS DEVELOPMENT APPROACH:
You have the ability to use autonomous file operations. For this app generation:

1. **EXPLAIN YOUR PLAN**: First, describe what files you'll create and why
2. **USE AUTONOMOUS TOOLS**: Use write_file to create the HTML, CSS, and JavaScript files
3. **PROVIDE REASONING**: Explain each file's purpose and key features
4. **COMMUNICATE PROGRESS**: Keep the user informed of what you're building

DEVELOPMENT REQUIREMENTS:
- Generate clean, semantic HTML5 with proper structure and accessibility
- Create modern, responsive CSS with beautiful design and animations
- Include interactive JavaScript functionality with error handling
- Use a cohesive, professional color scheme and typography
- Follow accessibility standards (ARIA labels, semantic tags, keyboard navigation)
- Use modern CSS features (Grid, Flexbox, custom properties, animations)
- Ensure mobile-first responsive design with smooth transitions
- Include proper form validation and user feedback

TECHNICAL IMPLEMENTATION:
- Use vanilla HTML, CSS, and JavaScript (no frameworks)
- Implement modern ES6+ JavaScript features
- The HTML must link style.css and script.js:
  `+"`<link rel=\"stylesheet\" href=\"style.css\">`"+` and `+"`<script src=\"script.js\"></script>`"+`

OUTPUT FORMAT:
Return each file in its own fenced code block labelled with its language:
`+"```html"+` for index.html, `+"```css"+` for style.css and `+"```javascript"+` for script.js.

Create a polished, production-worthy application that demonstrates modern web development capabilities and best practices.`, specification)
}

// GetAppGenerationInstructions is the system instruction for generate-app.
func GetAppGenerationInstructions() string {
	return "You are an expert full-stack developer with autonomous file operation capabilities. " +
		"Use write_file tools to create the project files directly. Research current best practices using available tools. " +
		"Always explain what you're building and why. Focus on creating beautiful, functional, and accessible applications."
}
