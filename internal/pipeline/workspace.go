package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"mojocode_server/internal/types"
	"mojocode_server/internal/workspace"
)

// Chat sends one message to the code assistant, using the active file or else the
// open project as context. Both turns are appended to the workspace thread.
func (p *Pipeline) Chat(ctx context.Context, userID, message string) (types.AIResponse, error) {
	if strings.TrimSpace(message) == "" {
		return types.AIResponse{}, types.ErrPromptRequired
	}
	var resp types.AIResponse
	err := p.track(userID, MsgChatFailed, func(ws *workspace.Store) error {
		st := ws.Snapshot()
		projectID := ""
		if st.CurrentProject != nil {
			projectID = st.CurrentProject.ID
		}

		ws.AppendMessage(types.ChatMessage{Role: types.RoleUser, Content: message, ProjectID: projectID})

		var err error
		resp, err = p.oracle.GenerateCode(ctx, message, ChatContext(st))
		if err != nil {
			return err
		}

		ws.AppendMessage(types.ChatMessage{
			Role:      types.RoleAssistant,
			Content:   resp.Content,
			ProjectID: projectID,
			ToolCalls: resp.ToolCalls,
		})
		return nil
	})
	return resp, err
}

// ChatContext describes what the user is looking at for the code assistant.
func ChatContext(st workspace.State) string {
	switch {
	case st.ActiveFile != nil:
		f := st.ActiveFile
		return fmt.Sprintf("Current file: %s (%s)\n%s", f.Name, f.Language, f.Content)
	case st.CurrentProject != nil:
		return "Current project: " + st.CurrentProject.Name
	}
	return ""
}

// EditFile replaces one file's content in the open project without saving it.
func (p *Pipeline) EditFile(userID, fileID, content string) (workspace.State, error) {
	if userID == "" {
		return workspace.State{}, types.ErrNotAuthenticated
	}
	ws := p.workspaces.For(userID)
	if !ws.UpdateFileContent(fileID, content) {
		return workspace.State{}, types.ErrNoOpenProject
	}
	return ws.Snapshot(), nil
}

// SaveWorkspace writes the open project, with any unsaved edits, to the store.
func (p *Pipeline) SaveWorkspace(ctx context.Context, userID string) (types.Project, error) {
	var saved types.Project
	err := p.track(userID, MsgSaveFailed, func(ws *workspace.Store) error {
		current := ws.Snapshot().CurrentProject
		if current == nil {
			return types.ErrNoOpenProject
		}
		var err error
		saved, err = p.projects.UpdateProject(ctx, userID, *current)
		return err
	})
	return saved, err
}

// ListProjects returns the user's projects, most recently updated first.
func (p *Pipeline) ListProjects(ctx context.Context, userID string) ([]types.Project, error) {
	var list []types.Project
	err := p.track(userID, MsgLoadFailed, func(*workspace.Store) error {
		var err error
		list, err = p.projects.ListProjects(ctx, userID)
		return err
	})
	return list, err
}

// CreateProject stores a starter project and opens it.
func (p *Pipeline) CreateProject(ctx context.Context, userID, name string, description *string) (types.Project, error) {
	var project types.Project
	err := p.track(userID, MsgCreateFailed, func(ws *workspace.Store) error {
		var err error
		project, err = p.projects.CreateProject(ctx, userID, name, description)
		if err != nil {
			return err
		}
		open(ws, project)
		return nil
	})
	return project, err
}

// OpenProject makes a stored project the current one with its first file active.
func (p *Pipeline) OpenProject(ctx context.Context, userID, projectID string) (types.Project, error) {
	if userID == "" {
		return types.Project{}, types.ErrNotAuthenticated
	}
	project, err := p.projects.GetProject(ctx, userID, projectID)
	if err != nil {
		return types.Project{}, err
	}
	open(p.workspaces.For(userID), project)
	return project, nil
}

// DeleteProject removes a project and closes it if it was open.
func (p *Pipeline) DeleteProject(ctx context.Context, userID, projectID string) error {
	return p.track(userID, MsgDeleteFailed, func(ws *workspace.Store) error {
		if err := p.projects.DeleteProject(ctx, userID, projectID); err != nil {
			return err
		}
		if cur := ws.Snapshot().CurrentProject; cur != nil && cur.ID == projectID {
			ws.SetCurrentProject(nil)
			ws.SetActiveFile(nil)
		}
		return nil
	})
}

func open(ws *workspace.Store, project types.Project) {
	ws.SetCurrentProject(&project)
	if len(project.Files) > 0 {
		ws.SetActiveFile(&project.Files[0])
	} else {
		ws.SetActiveFile(nil)
	}
}

// SignIn records the authenticated user on their workspace.
func (p *Pipeline) SignIn(user types.User) workspace.State {
	ws := p.workspaces.For(user.ID)
	ws.SetUser(&user)
	return ws.Snapshot()
}

// SignOut drops the user's workspace.
func (p *Pipeline) SignOut(userID string) {
	p.workspaces.Remove(userID)
	log.Printf("Info: user %s signed out, workspace cleared", userID)
}
