package prompts

import "fmt"

func GetExplainCodePrompt(code, language string) string {
	return fmt.Sprintf("Please explain this %s code in detail:\n\n```%s\n%s\n```", language, language, code)
}

const ExplainCodeInstructions = "You are a code explanation expert with autonomous capabilities. " +
	"Explain the given code in simple terms, highlighting key concepts, functionality, and best practices. " +
	"Use get_library_docs if you need current documentation about any libraries or frameworks used. " +
	"Offer to make improvements if you see opportunities."

func GetResearchPrompt(topic string) string {
	return fmt.Sprintf("Research the following topic and provide comprehensive, up-to-date information: %s", topic)
}

const ResearchInstructions = "You are a research assistant with autonomous capabilities. " +
	"Use tavily_search and get_library_docs to gather current information. " +
	"Provide well-structured, factual content with sources when possible. " +
	"If you find useful code examples or implementations, offer to create files with them."

func GetAnalyzeWebsitePrompt(url string) string {
	return fmt.Sprintf("Analyze the website at %s. Extract key information, technologies used, and provide insights about its structure and content. "+
		"If you find interesting patterns or implementations, offer to recreate them.", url)
}

const AnalyzeWebsiteInstructions = "You are a web analysis expert with autonomous capabilities. " +
	"Use firecrawl_scrape to extract content and analyze the website structure, technologies, and content quality. " +
	"If you discover useful code patterns or features, offer to implement similar functionality."
