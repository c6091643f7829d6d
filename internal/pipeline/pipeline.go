package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"mojocode_server/internal/ai/prompts"
	"mojocode_server/internal/extract"
	"mojocode_server/internal/metrics"
	"mojocode_server/internal/plancache"
	"mojocode_server/internal/projects"
	"mojocode_server/internal/types"
	"mojocode_server/internal/workspace"
)

// Messages shown to the user when an action fails.
const (
	MsgEnhanceFailed  = "Failed to enhance prompt"
	MsgPlanFailed     = "Failed to create project plan"
	MsgGenerateFailed = "Failed to generate app"
	MsgChatFailed     = "Failed to get AI response"
	MsgSaveFailed     = "Failed to save project"
	MsgLoadFailed     = "Failed to load projects"
	MsgCreateFailed   = "Failed to create project"
	MsgDeleteFailed   = "Failed to delete project"
)

// Generation modes, used as a metrics attribute.
const (
	modePlan   = "plan"
	modePrompt = "prompt"
)

// Oracle is the completion client as the pipeline sees it.
type Oracle interface {
	EnhancePrompt(ctx context.Context, prompt, authNeeds, databaseNeeds string) (string, error)
	CreateProjectPlan(ctx context.Context, prompt, authNeeds, databaseNeeds string) (string, error)
	GenerateApp(ctx context.Context, specification string) (types.GeneratedApp, error)
	GenerateCode(ctx context.Context, prompt, contextText string) (types.AIResponse, error)
}

// Pipeline turns prompts into stored projects and keeps each user's workspace in step.
type Pipeline struct {
	oracle     Oracle
	projects   *projects.Service
	plans      plancache.Cache
	workspaces *workspace.Registry
	metrics    *metrics.GenerationMetrics
}

func New(oracle Oracle, projects *projects.Service, plans plancache.Cache, workspaces *workspace.Registry) *Pipeline {
	return &Pipeline{
		oracle:     oracle,
		projects:   projects,
		plans:      plans,
		workspaces: workspaces,
	}
}

// WithMetrics attaches a metrics collector. A nil collector disables recording.
func (p *Pipeline) WithMetrics(m *metrics.GenerationMetrics) *Pipeline {
	p.metrics = m
	return p
}

// Workspace returns the user's workspace store.
func (p *Pipeline) Workspace(userID string) *workspace.Store {
	return p.workspaces.For(userID)
}

// track runs fn with the workspace's loading flag raised. A failure is logged and
// message becomes the workspace error; the rest of the workspace is left as it was.
func (p *Pipeline) track(userID, message string, fn func(ws *workspace.Store) error) error {
	if userID == "" {
		return types.ErrNotAuthenticated
	}
	ws := p.workspaces.For(userID)
	ws.SetError("")
	ws.SetLoading(true)
	defer ws.SetLoading(false)

	if err := fn(ws); err != nil {
		log.Printf("ERROR: %s for user %s: %v", strings.ToLower(message), userID, err)
		ws.SetError(message)
		return err
	}
	return nil
}

// Enhance rewrites a short app idea into a fuller brief.
func (p *Pipeline) Enhance(ctx context.Context, userID, prompt, authNeeds, databaseNeeds string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", types.ErrPromptRequired
	}
	var enhanced string
	err := p.track(userID, MsgEnhanceFailed, func(*workspace.Store) error {
		var err error
		enhanced, err = p.oracle.EnhancePrompt(ctx, prompt, authNeeds, databaseNeeds)
		return err
	})
	return enhanced, err
}

// Plan asks for a project plan, parses it and parks it until the user approves it.
// With enhance set the prompt is first expanded into a fuller brief.
func (p *Pipeline) Plan(ctx context.Context, userID, prompt, authNeeds, databaseNeeds string, enhance bool) (types.ProjectPlan, error) {
	if strings.TrimSpace(prompt) == "" {
		return types.ProjectPlan{}, types.ErrPromptRequired
	}

	var plan types.ProjectPlan
	err := p.track(userID, MsgPlanFailed, func(*workspace.Store) error {
		concept := prompt
		if enhance {
			enhanced, err := p.oracle.EnhancePrompt(ctx, prompt, authNeeds, databaseNeeds)
			if err != nil {
				return err
			}
			concept = enhanced
		}

		text, err := p.oracle.CreateProjectPlan(ctx, concept, authNeeds, databaseNeeds)
		if err != nil {
			return err
		}
		parsed := extract.ParsePlan(text)
		parsed.Prompt = prompt

		plan, err = p.plans.Put(ctx, userID, parsed)
		if err != nil {
			return err
		}
		log.Printf("Info: parked plan %s (%q, %s) for user %s", plan.ID, plan.ProjectName, plan.EstimatedComplexity, userID)
		return nil
	})
	return plan, err
}

// PendingPlans returns the user's parked plans that have not expired.
func (p *Pipeline) PendingPlans(ctx context.Context, userID string) ([]types.ProjectPlan, error) {
	if userID == "" {
		return nil, types.ErrNotAuthenticated
	}
	ids, err := p.plans.Pending(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]types.ProjectPlan, 0, len(ids))
	for _, id := range ids {
		plan, err := p.plans.Get(ctx, userID, id)
		if err != nil {
			// expired between listing and reading
			continue
		}
		out = append(out, plan)
	}
	return out, nil
}

// DiscardPlan drops a parked plan without generating it.
func (p *Pipeline) DiscardPlan(ctx context.Context, userID, planID string) error {
	if userID == "" {
		return types.ErrNotAuthenticated
	}
	return p.plans.Delete(ctx, userID, planID)
}

// Generate builds the app described by an approved plan, stores it as a new project
// and opens it in the user's workspace.
func (p *Pipeline) Generate(ctx context.Context, userID, planID string) (types.Project, error) {
	var project types.Project
	err := p.track(userID, MsgGenerateFailed, func(ws *workspace.Store) error {
		plan, err := p.plans.Get(ctx, userID, planID)
		if err != nil {
			return err
		}

		project, err = p.generate(ctx, ws, userID, modePlan, prompts.GetPlanSpecification(plan), func(types.GeneratedApp) (string, string) {
			return plan.ProjectName, plan.Description
		})
		if err != nil {
			return err
		}

		if err := p.plans.Delete(ctx, userID, planID); err != nil {
			log.Printf("WARN: could not drop plan %s after generating project %s: %v", planID, project.ID, err)
		}
		return nil
	})
	return project, err
}

// GenerateFromPrompt skips planning: the prompt itself is the specification and the
// project name and description are derived from the reply.
func (p *Pipeline) GenerateFromPrompt(ctx context.Context, userID, prompt string) (types.Project, error) {
	if strings.TrimSpace(prompt) == "" {
		return types.Project{}, types.ErrPromptRequired
	}
	var project types.Project
	err := p.track(userID, MsgGenerateFailed, func(ws *workspace.Store) error {
		var err error
		project, err = p.generate(ctx, ws, userID, modePrompt, prompt, func(app types.GeneratedApp) (string, string) {
			return app.ProjectName, app.Description
		})
		return err
	})
	return project, err
}

func (p *Pipeline) generate(ctx context.Context, ws *workspace.Store, userID, mode, specification string, naming func(types.GeneratedApp) (string, string)) (project types.Project, err error) {
	if p.metrics != nil {
		p.metrics.RecordGenerationStarted(ctx, mode)
		defer func() { p.metrics.RecordGenerationFinished(ctx, mode, err == nil) }()
	}

	seq := ws.BeginGeneration()

	app, err := p.oracle.GenerateApp(ctx, specification)
	if err != nil {
		return types.Project{}, err
	}

	name, description := naming(app)
	project, err = p.projects.CreateProjectWithCode(ctx, userID, name, description, app.HTML, app.CSS, app.JavaScript)
	if err != nil {
		return types.Project{}, fmt.Errorf("store generated project: %w", err)
	}

	if !ws.CompleteGeneration(seq, project) {
		log.Printf("Info: generation %d for user %s finished after a newer one, project %s kept but not opened", seq, userID, project.ID)
	}
	return project, nil
}
