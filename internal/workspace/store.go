package workspace

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"mojocode_server/internal/types"
	"mojocode_server/internal/utils"
)

// State is one user's workspace as the browser sees it.
type State struct {
	User           *types.User        `json:"user"`
	CurrentProject *types.Project     `json:"currentProject"`
	CurrentThread  *types.ChatThread  `json:"currentThread"`
	ActiveFile     *types.ProjectFile `json:"activeFile"`
	IsLoading      bool               `json:"isLoading"`
	Error          *string            `json:"error"`
	ActivePanel    types.Panel        `json:"activePanel"`
	IsMobile       bool               `json:"isMobile"`
}

func initialState() State {
	return State{ActivePanel: types.PanelChat}
}

// Store holds a State and applies named actions to it. Each action is atomic;
// nothing orders or merges actions coming from concurrent requests, so the last
// write wins.
type Store struct {
	mu    sync.Mutex
	state State

	discardStale bool
	issued       uint64 // last generation sequence handed out
	applied      uint64 // highest generation sequence applied
}

// NewStore returns an empty workspace. With discardStale set, a generation that
// completes after a newer one has already been applied is dropped.
func NewStore(discardStale bool) *Store {
	return &Store{state: initialState(), discardStale: discardStale}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *Store) SetUser(u *types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.state.User = nil
		return
	}
	cp := *u
	s.state.User = &cp
}

func (s *Store) SetCurrentProject(p *types.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentProject = cloneProject(p)
}

func (s *Store) SetCurrentThread(t *types.ChatThread) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentThread = cloneThread(t)
}

func (s *Store) SetActiveFile(f *types.ProjectFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActiveFile = cloneFile(f)
}

// SelectFile makes the current project's file with fileID active.
func (s *Store) SelectFile(fileID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.CurrentProject == nil {
		return false
	}
	f, ok := s.state.CurrentProject.FileByID(fileID)
	if !ok {
		return false
	}
	s.state.ActiveFile = &f
	return true
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsLoading = loading
}

// SetError sets the user-visible error. An empty message clears it.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg == "" {
		s.state.Error = nil
		return
	}
	s.state.Error = &msg
}

func (s *Store) SetActivePanel(p types.Panel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ActivePanel = p
}

func (s *Store) SetMobile(mobile bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.IsMobile = mobile
}

// UpdateFileContent replaces the content of one file of the current project and
// points ActiveFile at the updated copy. ActiveFile becomes nil when fileID is not
// in the project. It reports whether a project was open.
func (s *Store) UpdateFileContent(fileID, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.state.CurrentProject
	if p == nil {
		return false
	}
	var active *types.ProjectFile
	for i := range p.Files {
		if p.Files[i].ID == fileID {
			p.Files[i].Content = content
			f := p.Files[i]
			active = &f
		}
	}
	s.state.ActiveFile = active
	return true
}

// AppendMessage adds msg to the current thread, starting a thread if there is none.
func (s *Store) AppendMessage(msg types.ChatMessage) types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = now
	}

	t := s.state.CurrentThread
	if t == nil {
		t = &types.ChatThread{
			ID:        uuid.New().String(),
			Title:     utils.Truncate(msg.Content, 50),
			Messages:  []types.ChatMessage{},
			CreatedAt: now,
		}
		if s.state.User != nil {
			t.UserID = s.state.User.ID
		}
		s.state.CurrentThread = t
	}
	t.Messages = append(t.Messages, msg)
	t.UpdatedAt = now
	return msg
}

// Reset returns the workspace to its initial state, as on sign-out.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = initialState()
}

// BeginGeneration hands out the sequence number for a new generation.
func (s *Store) BeginGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// CompleteGeneration installs the project produced by generation seq: it becomes
// the current project, its first file becomes active and the editor panel is shown.
//
// By default every completion is applied, so whichever generation resolves last
// wins. With discardStale set, a completion older than one already applied is
// dropped and false is returned.
func (s *Store) CompleteGeneration(seq uint64, p types.Project) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discardStale && seq < s.applied {
		return false
	}
	if seq > s.applied {
		s.applied = seq
	}

	s.state.CurrentProject = cloneProject(&p)
	s.state.ActiveFile = nil
	if len(p.Files) > 0 {
		f := s.state.CurrentProject.Files[0]
		s.state.ActiveFile = &f
	}
	s.state.ActivePanel = types.PanelEditor
	return true
}

func (st State) clone() State {
	out := st
	if st.User != nil {
		u := *st.User
		out.User = &u
	}
	out.CurrentProject = cloneProject(st.CurrentProject)
	out.CurrentThread = cloneThread(st.CurrentThread)
	out.ActiveFile = cloneFile(st.ActiveFile)
	if st.Error != nil {
		e := *st.Error
		out.Error = &e
	}
	return out
}

func cloneProject(p *types.Project) *types.Project {
	if p == nil {
		return nil
	}
	cp := p.Clone()
	return &cp
}

func cloneFile(f *types.ProjectFile) *types.ProjectFile {
	if f == nil {
		return nil
	}
	cp := *f
	return &cp
}

func cloneThread(t *types.ChatThread) *types.ChatThread {
	if t == nil {
		return nil
	}
	cp := *t
	cp.Messages = make([]types.ChatMessage, len(t.Messages))
	copy(cp.Messages, t.Messages)
	return &cp
}
