package tools

import (
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Tool names declared to the model. Nothing in this server executes them;
// tool calls found in replies are only recorded for display.
const (
	GetLibraryDocs          = "get_library_docs"
	FirecrawlScrape         = "firecrawl_scrape"
	FirecrawlSearch         = "firecrawl_search"
	TavilySearch            = "tavily_search"
	TavilyExtract           = "tavily_extract"
	SupabaseQuery           = "supabase_query"
	WriteFile               = "write_file"
	EditFile                = "edit_file"
	CreateProjectStructure  = "create_project_structure"
	RunSafeCommand          = "run_safe_command"
	RequestUserConfirmation = "request_user_confirmation"
)

var impactEnum = []string{"low", "medium", "high"}

var definitions = []openai.FunctionDefinition{
	{
		Name:        GetLibraryDocs,
		Description: "Fetch up-to-date documentation for a library using Context7. Use this when you need current documentation for frameworks, libraries, or APIs.",
		Parameters: &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"libraryName": {
					Type:        jsonschema.String,
					Description: "The name of the library to search for (e.g., 'React', 'Next.js', 'MongoDB')",
				},
				"topic": {
					Type:        jsonschema.String,
					Description: "Focus the docs on a specific topic (e.g., 'routing', 'hooks', 'authentication')",
				},
				"tokens": {
					Type:        jsonschema.Number,
					Description: "Maximum number of tokens to return (default: 10000)",
				},
			},
			Required: []string{"libraryName"},
		},
	},
	{
		Name:        FirecrawlScrape,
		Description: "Scrape content from a single URL. Use this to extract content from web pages for analysis or integration.",
		Parameters: &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"url": {
					Type:        jsonschema.String,
					Description: "The URL to scrape",
				},
				"formats": {
					Type:        jsonschema.Array,
					Description: "Output formats (e.g., ['markdown', 'html'])",
					Items:       &jsonschema.Definition{Type: jsonschema.String},
				},
				"onlyMainContent": {
					Type:        jsonschema.Boolean,
					Description: "Extract only main content, excluding navigation and ads",
				},
			},
			Required: []string{"url"},
		},
	},
	{
		Name:        FirecrawlSearch,
		Description: "Search the web and optionally extract content from results. Use this to find information across multiple websites.",
		Parameters: &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"query": {
					Type:        jsonschema.String,
					Description: "Search query",
				},
				"limit": {
					Type:        jsonschema.Number,
					Description: "Number of results to return (default: 5)",
				},
				"lang": {
					Type:        jsonschema.String,
					Description: "Language for search results (default: 'en')",
				},
			},
			Required: []string{"query"},
		},
	},
	{
		Name:        TavilySearch,
		Description: "Perform advanced web search with AI-powered analysis. Use for research, finding recent information, or gathering comprehensive data on topics.",
		Parameters: &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"query": {
					Type:        jsonschema.String,
					Description: "Research query or topic",
				},
				"search_depth": {
					Type:        jsonschema.String,
					Description: "Depth of search analysis",
					Enum:        []string{"basic", "advanced"},
				},
				"include_domains": {
					Type:        jsonschema.Array,
					Description: "Specific domains to focus on",
					Items:       &jsonschema.Definition{Type: jsonschema.String},
				},
				"max_results": {
					Type:        jsonschema.Number,
					Description: "Maximum number of results (default: 10)",
				},
			},
			Required: []string{"query"},
		},
	},
	{
		Name:        TavilyExtract,
		Description: "Extract and analyze content from specific URLs with AI processing. Use for detailed content analysis.",
		Parameters: &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"urls": {
					Type:        jsonschema.Array,
					Description: "URLs to extract content from",
					Items:       &jsonschema.Definition{Type: jsonschema.String},
				},
				"extract_type": {
					Type:        jsonschema.String,
					Description: "Type of extraction to perform",
					Enum:        []string{"content", "summary", "key_points"},
				},
			},
			Required: []string{"urls"},
		},
	},
	{
		Name:        SupabaseQuery,
		Description: "Execute database queries or operations. Use this to help users with database design, queries, or data management.",
		Parameters: &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"operation": {
					Type:        jsonschema.String,
					Description: "Type of database operation",
					Enum:        []string{"query_suggestion", "schema_design", "optimization", "migration"},
				},
				"context": {
					Type:        jsonschema.String,
					Description: "Context about the database need or current schema",
				},
				"table_name": {
					Type:        jsonschema.String,
					Description: "Specific table name if relevant",
				},
			},
			Required: []string{"operation", "context"},
		},
	},
	{
		Name:        WriteFile,
		Description: "Write content to a file. Use for creating new files or completely replacing existing ones. ALWAYS explain what you're doing and why.",
		Parameters: &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"path": {
					Type:        jsonschema.String,
					Description: "File path relative to project root (e.g., 'index.html')",
				},
				"content": {
					Type:        jsonschema.String,
					Description: "Complete file content to write",
				},
				"reason": {
					Type:        jsonschema.String,
					Description: "Clear explanation of why this file is being created/modified",
				},
				"impact_level": {
					Type:        jsonschema.String,
					Description: "Impact level: low (new files, minor changes), medium (feature additions), high (major refactoring, deletions)",
					Enum:        impactEnum,
				},
			},
			Required: []string{"path", "content", "reason", "impact_level"},
		},
	},
	{
		Name:        EditFile,
		Description: "Make targeted edits to an existing file. Use for small modifications without rewriting the entire file. ALWAYS explain the changes.",
		Parameters: &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"path": {
					Type:        jsonschema.String,
					Description: "File path to edit",
				},
				"edits": {
					Type:        jsonschema.Array,
					Description: "Array of line-based edits to make",
					Items: &jsonschema.Definition{
						Type: jsonschema.Object,
						Properties: map[string]jsonschema.Definition{
							"start_line":  {Type: jsonschema.Number},
							"end_line":    {Type: jsonschema.Number},
							"new_content": {Type: jsonschema.String},
						},
					},
				},
				"reason": {
					Type:        jsonschema.String,
					Description: "Clear explanation of what changes are being made and why",
				},
				"impact_level": {
					Type:        jsonschema.String,
					Description: "Impact level of these changes",
					Enum:        impactEnum,
				},
			},
			Required: []string{"path", "edits", "reason", "impact_level"},
		},
	},
	{
		Name:        CreateProjectStructure,
		Description: "Create multiple files and folders for a project structure. Use when setting up a new project or major feature.",
		Parameters: &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"structure": {
					Type:        jsonschema.Object,
					Description: "Object representing the folder/file structure to create",
				},
				"reason": {
					Type:        jsonschema.String,
					Description: "Explanation of why this structure is being created",
				},
			},
			Required: []string{"structure", "reason"},
		},
	},
	{
		Name:        RunSafeCommand,
		Description: "Execute safe terminal commands like npm install, build commands, etc. Will request confirmation for potentially risky commands.",
		Parameters: &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"command": {
					Type:        jsonschema.String,
					Description: "Command to execute",
				},
				"working_directory": {
					Type:        jsonschema.String,
					Description: "Directory to run command in (optional)",
				},
				"reason": {
					Type:        jsonschema.String,
					Description: "Why this command needs to be run",
				},
				"risk_level": {
					Type:        jsonschema.String,
					Description: "Risk assessment: safe (npm install, build), moderate (git operations), risky (system changes)",
					Enum:        []string{"safe", "moderate", "risky"},
				},
			},
			Required: []string{"command", "reason", "risk_level"},
		},
	},
	{
		Name:        RequestUserConfirmation,
		Description: "Request explicit user confirmation before proceeding with potentially impactful operations.",
		Parameters: &jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"action": {
					Type:        jsonschema.String,
					Description: "Description of the action that needs confirmation",
				},
				"impact": {
					Type:        jsonschema.String,
					Description: "Detailed explanation of the potential impact",
				},
				"alternatives": {
					Type:        jsonschema.Array,
					Description: "Alternative approaches if user declines",
					Items:       &jsonschema.Definition{Type: jsonschema.String},
				},
			},
			Required: []string{"action", "impact"},
		},
	},
}

// All returns the declared tools in request form. The slice is fresh on every call.
func All() []openai.Tool {
	out := make([]openai.Tool, 0, len(definitions))
	for i := range definitions {
		def := definitions[i]
		out = append(out, openai.Tool{Type: openai.ToolTypeFunction, Function: &def})
	}
	return out
}

// Names lists the declared tool names in declaration order.
func Names() []string {
	out := make([]string, 0, len(definitions))
	for _, d := range definitions {
		out = append(out, d.Name)
	}
	return out
}

// Lookup returns the definition for name.
func Lookup(name string) (openai.FunctionDefinition, bool) {
	for _, d := range definitions {
		if d.Name == name {
			return d, true
		}
	}
	return openai.FunctionDefinition{}, false
}

// NeedsConfirmation reports whether a call to name with the given impact or risk level
// should be shown to the user as awaiting approval rather than pending.
func NeedsConfirmation(name, level string) bool {
	if name == RequestUserConfirmation {
		return true
	}
	switch level {
	case "medium", "high", "moderate", "risky":
		return true
	}
	return false
}
