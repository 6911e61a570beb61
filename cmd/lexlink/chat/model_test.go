package chat

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/lexlink/lexlink-cli/model"
)

type fakeAsker struct {
	resp       *model.AskResponse
	err        error
	gotMessage string
	gotSession string
}

func (f *fakeAsker) AskQuestion(_ context.Context, message, sessionID string) (*model.AskResponse, error) {
	f.gotMessage = message
	f.gotSession = sessionID
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func sized(m Model) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestEnterSendsQuestion(t *testing.T) {
	m := sized(New(&fakeAsker{}, ""))
	m.textarea.SetValue("what is a tort?")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	require.True(t, m.isLoading)
	require.NotNil(t, cmd)
	require.Len(t, m.history, 1)
	require.Equal(t, "user", m.history[0].Role)
	require.Equal(t, "what is a tort?", m.history[0].Content)
	require.Empty(t, m.textarea.Value())
}

func TestEnterIgnored(t *testing.T) {
	t.Run("while loading", func(t *testing.T) {
		m := sized(New(&fakeAsker{}, ""))
		m.isLoading = true
		m.textarea.SetValue("another question")

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(Model)

		require.Nil(t, cmd)
		require.Empty(t, m.history)
	})

	t.Run("blank input", func(t *testing.T) {
		m := sized(New(&fakeAsker{}, ""))
		m.textarea.SetValue("   ")

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m = updated.(Model)

		require.Nil(t, cmd)
		require.Empty(t, m.history)
		require.False(t, m.isLoading)
	})
}

func TestAnswerAppendsAndStoresSession(t *testing.T) {
	m := sized(New(&fakeAsker{}, ""))
	m.isLoading = true

	updated, _ := m.Update(answerMsg{sessionID: "s1", answer: "An actionable civil wrong."})
	m = updated.(Model)

	require.False(t, m.isLoading)
	require.Equal(t, "s1", m.SessionID())
	require.Len(t, m.history, 1)
	require.Equal(t, "assistant", m.history[0].Role)
}

func TestErrorClearsLoading(t *testing.T) {
	m := sized(New(&fakeAsker{}, ""))
	m.isLoading = true

	updated, _ := m.Update(errorMsg{context.DeadlineExceeded})
	m = updated.(Model)

	require.False(t, m.isLoading)
	require.Error(t, m.lastErr)
	require.Empty(t, m.history)
}

func TestAskCommandCallsBackend(t *testing.T) {
	asker := &fakeAsker{resp: &model.AskResponse{SessionID: "s1", Answer: "hello"}}
	m := New(asker, "s1")

	msg := m.ask("question")()

	answer, ok := msg.(answerMsg)
	require.True(t, ok)
	require.Equal(t, "s1", answer.sessionID)
	require.Equal(t, "hello", answer.answer)
	require.Equal(t, "question", asker.gotMessage)
	require.Equal(t, "s1", asker.gotSession)
}

func TestAskCommandSurfacesError(t *testing.T) {
	asker := &fakeAsker{err: context.DeadlineExceeded}
	m := New(asker, "")

	msg := m.ask("question")()

	failure, ok := msg.(errorMsg)
	require.True(t, ok)
	require.ErrorIs(t, failure.err, context.DeadlineExceeded)
}

func TestWithHistorySeedsScrollback(t *testing.T) {
	m := New(&fakeAsker{}, "s1").WithHistory([]model.ChatMessage{
		{Role: "user", Content: "q"},
		{Role: "assistant", Content: "a"},
	})

	require.Len(t, m.history, 2)
	require.Equal(t, "assistant", m.history[1].Role)
}

func TestCtrlCQuits(t *testing.T) {
	m := sized(New(&fakeAsker{}, ""))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
}
