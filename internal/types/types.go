package types

import "time"

// User is the authenticated account as reported by the hosted auth provider.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectFile is a single source file owned by exactly one Project.
type ProjectFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Content  string `json:"content"`
	Language string `json:"language"` // derived from the file extension, e.g. "html", "css", "javascript"
	Path     string `json:"path"`
}

// Project is the durable record kept by the remote data gateway.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Files       []ProjectFile `json:"files"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	UserID      string        `json:"user_id"`
}

// FileByID returns the file with the given id, if present.
func (p *Project) FileByID(id string) (ProjectFile, bool) {
	for _, f := range p.Files {
		if f.ID == id {
			return f, true
		}
	}
	return ProjectFile{}, false
}

// FileByName returns the first file with the given name, if present.
func (p *Project) FileByName(name string) (ProjectFile, bool) {
	for _, f := range p.Files {
		if f.Name == name {
			return f, true
		}
	}
	return ProjectFile{}, false
}

// Clone returns a deep copy so callers can hand projects across goroutines.
func (p Project) Clone() Project {
	out := p
	if p.Description != nil {
		d := *p.Description
		out.Description = &d
	}
	out.Files = make([]ProjectFile, len(p.Files))
	copy(out.Files, p.Files)
	return out
}

// Complexity is the oracle's rough size estimate for a plan.
type Complexity string

const (
	ComplexitySimple  Complexity = "Simple"
	ComplexityMedium  Complexity = "Medium"
	ComplexityComplex Complexity = "Complex"
)

// ProjectPlan is the structured breakdown parsed from a create-plan reply.
// List fields are never nil.
type ProjectPlan struct {
	ID                  string     `json:"id,omitempty"`
	ProjectName         string     `json:"projectName"`
	Description         string     `json:"description"`
	Features            []string   `json:"features"`
	TechStack           []string   `json:"techStack"`
	FileStructure       []string   `json:"fileStructure"`
	Clarifications      []string   `json:"clarifications"`
	EstimatedComplexity Complexity `json:"estimatedComplexity"`
	Prompt              string     `json:"prompt,omitempty"`
}

// GeneratedCode holds the three blobs pulled out of a generate-app reply.
// All three are always non-empty.
type GeneratedCode struct {
	HTML       string `json:"html"`
	CSS        string `json:"css"`
	JavaScript string `json:"javascript"`
}

// GeneratedApp is GeneratedCode plus the name and description derived for it.
type GeneratedApp struct {
	GeneratedCode
	ProjectName string `json:"projectName"`
	Description string `json:"description"`
}

// ToolCall is a display-only record of a tool the oracle referenced. Nothing executes it.
type ToolCall struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Parameters  map[string]any `json:"parameters"`
	Status      string         `json:"status,omitempty"`       // pending, completed, failed, needs_confirmation
	ImpactLevel string         `json:"impact_level,omitempty"` // low, medium, high
	Reason      string         `json:"reason,omitempty"`
}

// AIResponse is the result of a code-assistant chat turn.
type AIResponse struct {
	Content     string     `json:"content"`
	Code        string     `json:"code,omitempty"`
	Language    string     `json:"language,omitempty"`
	Suggestions []string   `json:"suggestions,omitempty"`
	ToolCalls   []ToolCall `json:"toolCalls,omitempty"`
}

// Chat roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

type ChatMessage struct {
	ID        string     `json:"id"`
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	Timestamp time.Time  `json:"timestamp"`
	ProjectID string     `json:"project_id,omitempty"`
	ToolCalls []ToolCall `json:"toolCalls,omitempty"`
}

type ChatThread struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	UserID    string        `json:"user_id"`
}

// Panel is the UI pane currently in focus.
type Panel string

const (
	PanelChat    Panel = "chat"
	PanelEditor  Panel = "editor"
	PanelPreview Panel = "preview"
)

// Valid reports whether p is one of the known panels.
func (p Panel) Valid() bool {
	switch p {
	case PanelChat, PanelEditor, PanelPreview:
		return true
	}
	return false
}
