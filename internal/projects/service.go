package projects

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"mojocode_server/internal/store"
	"mojocode_server/internal/types"
	"mojocode_server/internal/utils"
)

// Fixed names of the three files every generated project has.
const (
	HTMLFile = "index.html"
	CSSFile  = "style.css"
	JSFile   = "script.js"
)

// Service maps plans and generated code onto stored projects.
type Service struct {
	gateway store.Gateway
	now     func() time.Time
}

func NewService(gateway store.Gateway) *Service {
	return &Service{gateway: gateway, now: time.Now}
}

// CreateProjectWithCode stores a project whose three files carry the given code verbatim.
func (s *Service) CreateProjectWithCode(ctx context.Context, userID, name, description, html, css, javascript string) (types.Project, error) {
	if err := validate(userID, name); err != nil {
		return types.Project{}, err
	}
	ms := strconv.FormatInt(s.now().UnixMilli(), 10)
	files := []types.ProjectFile{
		newFile("html-"+ms, HTMLFile, html),
		newFile("css-"+ms+"1", CSSFile, css),
		newFile("js-"+ms+"2", JSFile, javascript),
	}

	p, err := s.gateway.CreateProject(ctx, types.Project{
		Name:        name,
		Description: &description,
		Files:       files,
		UserID:      userID,
	})
	if err != nil {
		return types.Project{}, err
	}
	log.Printf("Info: created project %s (%q) with generated code for user %s", p.ID, p.Name, userID)
	return p, nil
}

// CreateProject stores an empty starter project built from templates.
func (s *Service) CreateProject(ctx context.Context, userID, name string, description *string) (types.Project, error) {
	if err := validate(userID, name); err != nil {
		return types.Project{}, err
	}
	ms := strconv.FormatInt(s.now().UnixMilli(), 10)
	files := []types.ProjectFile{
		newFile("html-"+ms, HTMLFile, starterHTML(name)),
		newFile("css-"+ms, CSSFile, starterCSS),
		newFile("js-"+ms, JSFile, starterJS(name)),
	}

	p, err := s.gateway.CreateProject(ctx, types.Project{
		Name:        name,
		Description: description,
		Files:       files,
		UserID:      userID,
	})
	if err != nil {
		return types.Project{}, err
	}
	log.Printf("Info: created starter project %s (%q) for user %s", p.ID, p.Name, userID)
	return p, nil
}

func (s *Service) ListProjects(ctx context.Context, userID string) ([]types.Project, error) {
	if userID == "" {
		return nil, types.ErrNotAuthenticated
	}
	return s.gateway.ListProjects(ctx, userID)
}

// GetProject returns the project if userID owns it; other users see ErrNotFound.
func (s *Service) GetProject(ctx context.Context, userID, id string) (types.Project, error) {
	if userID == "" {
		return types.Project{}, types.ErrNotAuthenticated
	}
	p, err := s.gateway.GetProject(ctx, id)
	if err != nil {
		return types.Project{}, err
	}
	if p.UserID != userID {
		return types.Project{}, fmt.Errorf("project %s: %w", id, types.ErrNotFound)
	}
	return p, nil
}

// UpdateProject saves the whole project and stamps updated_at.
func (s *Service) UpdateProject(ctx context.Context, userID string, p types.Project) (types.Project, error) {
	if err := validate(userID, p.Name); err != nil {
		return types.Project{}, err
	}
	if _, err := s.GetProject(ctx, userID, p.ID); err != nil {
		return types.Project{}, err
	}
	p.UserID = userID
	p.UpdatedAt = s.now().UTC()
	for i := range p.Files {
		if p.Files[i].Language == "" {
			p.Files[i].Language = utils.DetermineLanguage(p.Files[i].Name)
		}
		if p.Files[i].Path == "" {
			p.Files[i].Path = utils.FilePath(p.Files[i].Name)
		}
	}
	return s.gateway.UpdateProject(ctx, p)
}

func (s *Service) DeleteProject(ctx context.Context, userID, id string) error {
	if _, err := s.GetProject(ctx, userID, id); err != nil {
		return err
	}
	if err := s.gateway.DeleteProject(ctx, id); err != nil {
		return err
	}
	log.Printf("Info: deleted project %s for user %s", id, userID)
	return nil
}

// ExportProject renders p as a downloadable text bundle dated now.
func (s *Service) ExportProject(p types.Project) (filename, body string) {
	return Export(p, s.now())
}

func validate(userID, name string) error {
	if userID == "" {
		return types.ErrNotAuthenticated
	}
	if strings.TrimSpace(name) == "" {
		return types.ErrNameRequired
	}
	return nil
}

func newFile(id, name, content string) types.ProjectFile {
	return types.ProjectFile{
		ID:       id,
		Name:     name,
		Content:  content,
		Language: utils.DetermineLanguage(name),
		Path:     utils.FilePath(name),
	}
}
