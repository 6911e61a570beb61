// Package chat is the interactive assistant widget: a scrollback viewport
// over the conversation, a textarea for the next question, and a spinner
// while the backend thinks. All reasoning happens server-side; this is
// rendering and session bookkeeping only.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/lexlink/lexlink-cli/model"
)

// Asker is the slice of the API client the widget depends on.
type Asker interface {
	AskQuestion(ctx context.Context, message, sessionID string) (*model.AskResponse, error)
}

const askTimeout = 2 * time.Minute

// Message is one rendered turn of the conversation.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
	Time    time.Time
}

type answerMsg struct {
	sessionID string
	answer    string
}

type errorMsg struct{ err error }

var (
	userStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	assistantStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

// Model is the bubbletea model for the assistant widget.
type Model struct {
	viewport  viewport.Model
	textarea  textarea.Model
	spinner   spinner.Model
	history   []Message
	asker     Asker
	sessionID string
	isLoading bool
	width     int
	height    int
	ready     bool
	lastErr   error
}

// New creates the widget. A non-empty sessionID continues an existing
// conversation; history for it should be passed via WithHistory.
func New(asker Asker, sessionID string) Model {
	ta := textarea.New()
	ta.Placeholder = "Ask a legal question... (Enter to send, Ctrl+C to exit)"
	ta.Focus()
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		textarea:  ta,
		spinner:   sp,
		asker:     asker,
		sessionID: sessionID,
	}
}

// WithHistory seeds the scrollback, used when resuming a stored session.
func (m Model) WithHistory(messages []model.ChatMessage) Model {
	for _, msg := range messages {
		m.history = append(m.history, Message{Role: msg.Role, Content: msg.Content})
	}
	return m
}

// SessionID returns the conversation ID, set after the first answer for
// new conversations.
func (m Model) SessionID() string { return m.sessionID }

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		viewportHeight := msg.Height - m.textarea.Height() - 4
		if viewportHeight < 1 {
			viewportHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.textarea.SetWidth(msg.Width)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.isLoading {
				return m, nil
			}
			question := strings.TrimSpace(m.textarea.Value())
			if question == "" {
				return m, nil
			}
			m.history = append(m.history, Message{Role: "user", Content: question, Time: time.Now()})
			m.textarea.Reset()
			m.isLoading = true
			m.lastErr = nil
			m.refreshViewport()
			return m, tea.Batch(m.spinner.Tick, m.ask(question))
		}

	case answerMsg:
		m.sessionID = msg.sessionID
		m.history = append(m.history, Message{Role: "assistant", Content: msg.answer, Time: time.Now()})
		m.isLoading = false
		m.refreshViewport()
		return m, nil

	case errorMsg:
		m.lastErr = msg.err
		m.isLoading = false
		return m, nil

	case spinner.TickMsg:
		if !m.isLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var taCmd, vpCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(taCmd, vpCmd)
}

// ask issues the question off the UI loop.
func (m Model) ask(question string) tea.Cmd {
	asker, sessionID := m.asker, m.sessionID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
		defer cancel()

		resp, err := asker.AskQuestion(ctx, question, sessionID)
		if err != nil {
			return errorMsg{err}
		}
		return answerMsg{sessionID: resp.SessionID, answer: resp.Answer}
	}
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}

// renderHistory lays out the conversation, markdown-rendering assistant
// answers.
func (m Model) renderHistory() string {
	var b strings.Builder
	for _, msg := range m.history {
		if msg.Role == "user" {
			b.WriteString(userStyle.Render("You"))
			b.WriteString("\n")
			b.WriteString(msg.Content)
		} else {
			b.WriteString(assistantStyle.Render("Assistant"))
			b.WriteString("\n")
			b.WriteString(renderMarkdown(msg.Content, m.width))
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-2),
	)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(rendered)
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.isLoading {
		b.WriteString(m.spinner.View())
		b.WriteString(" thinking...\n")
	} else {
		b.WriteString(m.textarea.View())
		b.WriteString("\n")
	}
	if m.lastErr != nil {
		b.WriteString(errStyle.Render(m.lastErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("Enter: send • Ctrl+C: exit"))
	return b.String()
}

// Run starts the widget and blocks until the user exits.
func Run(asker Asker, sessionID string, history []model.ChatMessage) error {
	m := New(asker, sessionID).WithHistory(history)
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
