package workspace

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mojocode_server/internal/types"
)

func sampleProject(id string) types.Project {
	return types.Project{
		ID:     id,
		Name:   "Demo " + id,
		UserID: "user-1",
		Files: []types.ProjectFile{
			{ID: "html-1", Name: "index.html", Content: "<h1>hi</h1>", Language: "html", Path: "/index.html"},
			{ID: "css-11", Name: "style.css", Content: "h1{}", Language: "css", Path: "/style.css"},
			{ID: "js-12", Name: "script.js", Content: "", Language: "javascript", Path: "/script.js"},
		},
	}
}

func TestNewStore_InitialState(t *testing.T) {
	st := NewStore(false).Snapshot()

	assert.Nil(t, st.User)
	assert.Nil(t, st.CurrentProject)
	assert.Nil(t, st.CurrentThread)
	assert.Nil(t, st.ActiveFile)
	assert.Nil(t, st.Error)
	assert.False(t, st.IsLoading)
	assert.False(t, st.IsMobile)
	assert.Equal(t, types.PanelChat, st.ActivePanel)
}

func TestUpdateFileContent(t *testing.T) {
	s := NewStore(false)
	p := sampleProject("p1")
	s.SetCurrentProject(&p)

	require.True(t, s.UpdateFileContent("css-11", "h1{color:red}"))
	st := s.Snapshot()
	assert.Equal(t, "h1{color:red}", st.CurrentProject.Files[1].Content)
	require.NotNil(t, st.ActiveFile)
	assert.Equal(t, "css-11", st.ActiveFile.ID)
	assert.Equal(t, "h1{color:red}", st.ActiveFile.Content)

	// applying the same edit twice leaves the same state
	require.True(t, s.UpdateFileContent("css-11", "h1{color:red}"))
	assert.Equal(t, st, s.Snapshot())

	// the caller's project is untouched
	assert.Equal(t, "h1{}", p.Files[1].Content)
}

func TestUpdateFileContent_UnknownFileClearsActive(t *testing.T) {
	s := NewStore(false)
	p := sampleProject("p1")
	s.SetCurrentProject(&p)
	require.True(t, s.SelectFile("html-1"))

	require.True(t, s.UpdateFileContent("missing", "x"))
	st := s.Snapshot()
	assert.Nil(t, st.ActiveFile)
	assert.Equal(t, sampleProject("p1").Files, st.CurrentProject.Files)
}

func TestUpdateFileContent_NoProject(t *testing.T) {
	s := NewStore(false)
	assert.False(t, s.UpdateFileContent("html-1", "x"))
	assert.Equal(t, NewStore(false).Snapshot(), s.Snapshot())
}

func TestSelectFile(t *testing.T) {
	s := NewStore(false)
	assert.False(t, s.SelectFile("html-1"))

	p := sampleProject("p1")
	s.SetCurrentProject(&p)
	assert.True(t, s.SelectFile("js-12"))
	assert.Equal(t, "script.js", s.Snapshot().ActiveFile.Name)
	assert.False(t, s.SelectFile("nope"))
	assert.Equal(t, "script.js", s.Snapshot().ActiveFile.Name)
}

func TestSetters(t *testing.T) {
	s := NewStore(false)
	s.SetUser(&types.User{ID: "u1", Email: "a@b.c"})
	s.SetLoading(true)
	s.SetError("Failed to generate application. Please try again.")
	s.SetActivePanel(types.PanelPreview)
	s.SetMobile(true)

	st := s.Snapshot()
	assert.Equal(t, "u1", st.User.ID)
	assert.True(t, st.IsLoading)
	require.NotNil(t, st.Error)
	assert.Equal(t, "Failed to generate application. Please try again.", *st.Error)
	assert.Equal(t, types.PanelPreview, st.ActivePanel)
	assert.True(t, st.IsMobile)

	s.SetError("")
	assert.Nil(t, s.Snapshot().Error)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := NewStore(false)
	p := sampleProject("p1")
	s.SetCurrentProject(&p)

	snap := s.Snapshot()
	snap.CurrentProject.Files[0].Content = "mutated"
	snap.CurrentProject.Name = "mutated"

	again := s.Snapshot()
	assert.Equal(t, "<h1>hi</h1>", again.CurrentProject.Files[0].Content)
	assert.Equal(t, "Demo p1", again.CurrentProject.Name)
}

func TestAppendMessage(t *testing.T) {
	s := NewStore(false)
	s.SetUser(&types.User{ID: "u1"})

	first := s.AppendMessage(types.ChatMessage{Role: types.RoleUser, Content: "Make the header sticky and add a dark mode toggle please"})
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Timestamp.IsZero())
	s.AppendMessage(types.ChatMessage{Role: types.RoleAssistant, Content: "Done"})

	th := s.Snapshot().CurrentThread
	require.NotNil(t, th)
	assert.Equal(t, "u1", th.UserID)
	assert.Len(t, []rune(th.Title), 50)
	require.Len(t, th.Messages, 2)
	assert.Equal(t, types.RoleUser, th.Messages[0].Role)
	assert.Equal(t, types.RoleAssistant, th.Messages[1].Role)
}

func TestReset(t *testing.T) {
	s := NewStore(false)
	p := sampleProject("p1")
	s.SetUser(&types.User{ID: "u1"})
	s.SetCurrentProject(&p)
	s.SelectFile("html-1")
	s.AppendMessage(types.ChatMessage{Role: types.RoleUser, Content: "hi"})
	s.SetActivePanel(types.PanelEditor)

	s.Reset()

	st := s.Snapshot()
	assert.Nil(t, st.User)
	assert.Nil(t, st.CurrentProject)
	assert.Nil(t, st.ActiveFile)
	assert.Nil(t, st.CurrentThread)
	assert.Equal(t, types.PanelChat, st.ActivePanel)
}

func TestCompleteGeneration(t *testing.T) {
	s := NewStore(false)
	seq := s.BeginGeneration()
	require.True(t, s.CompleteGeneration(seq, sampleProject("p1")))

	st := s.Snapshot()
	assert.Equal(t, "p1", st.CurrentProject.ID)
	require.NotNil(t, st.ActiveFile)
	assert.Equal(t, "index.html", st.ActiveFile.Name)
	assert.Equal(t, types.PanelEditor, st.ActivePanel)
}

// Two generations in flight: by default the one that resolves last wins even
// though it was started first.
func TestCompleteGeneration_LastResolvedWins(t *testing.T) {
	s := NewStore(false)
	a := s.BeginGeneration()
	b := s.BeginGeneration()

	require.True(t, s.CompleteGeneration(b, sampleProject("B")))
	require.True(t, s.CompleteGeneration(a, sampleProject("A")))

	assert.Equal(t, "A", s.Snapshot().CurrentProject.ID)
}

func TestCompleteGeneration_DiscardStale(t *testing.T) {
	s := NewStore(true)
	a := s.BeginGeneration()
	b := s.BeginGeneration()

	require.True(t, s.CompleteGeneration(b, sampleProject("B")))
	assert.False(t, s.CompleteGeneration(a, sampleProject("A")))
	assert.Equal(t, "B", s.Snapshot().CurrentProject.ID)

	// an older generation still lands when the newer one never completes
	s2 := NewStore(true)
	c := s2.BeginGeneration()
	_ = s2.BeginGeneration()
	assert.True(t, s2.CompleteGeneration(c, sampleProject("C")))
	assert.Equal(t, "C", s2.Snapshot().CurrentProject.ID)
}

func TestStore_ConcurrentActions(t *testing.T) {
	s := NewStore(false)
	p := sampleProject("p1")
	s.SetCurrentProject(&p)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.UpdateFileContent("js-12", "x")
			s.SetLoading(i%2 == 0)
			_ = s.Snapshot()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, "x", s.Snapshot().CurrentProject.Files[2].Content)
}
