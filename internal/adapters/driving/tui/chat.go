// Package tui implements the terminal chat client.
//
// The client keeps an append-only message list for the session, guarded by
// a single busy flag: while an answer is in flight, further submissions
// are dropped rather than queued.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bourse-labs/regchat/internal/core/domain"
	"github.com/bourse-labs/regchat/internal/core/ports/driving"
)

// welcomeText seeds the session after the first render pass.
const welcomeText = "Welcome to the **NSE Intelligence Hub**.\n\n" +
	"I have access to real-time static data regarding:\n" +
	"• **Membership Regulations**\n" +
	"• **Listing Fees & Penalties**\n" +
	"• **Derivatives & Commodity Markets**\n\n" +
	"How can I assist your trading operations today?"

// networkFailureText is the fixed assistant message appended when the
// answer pipeline fails for any reason other than a tagged answer error.
const networkFailureText = "⚠ **Network Failure**: Unable to contact the " +
	"intelligence core. Please verify your API key configuration."

// answerMsg carries the result of an answer call back to the model.
type answerMsg struct {
	text string
	err  error
}

// Model is the bubbletea model for the chat session.
type Model struct {
	chat   driving.ChatService
	ctx    context.Context
	styles *Styles

	input    textinput.Model
	viewport viewport.Model
	spin     spinner.Model

	messages []domain.ChatMessage
	busy     bool
	seeded   bool
	ready    bool

	width  int
	height int
}

// NewChat creates a chat model over the given service.
func NewChat(chat driving.ChatService) *Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about exchange regulations..."
	ti.CharLimit = 512
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		chat:   chat,
		ctx:    context.Background(),
		styles: DefaultStyles(),
		input:  ti,
		spin:   sp,
		width:  80,
		height: 24,
	}
}

// WithContext sets the context used for answer calls.
func (m *Model) WithContext(ctx context.Context) *Model {
	m.ctx = ctx
	return m
}

// Messages returns the session's message list. Exposed for tests.
func (m *Model) Messages() []domain.ChatMessage {
	return m.messages
}

// Busy reports whether an answer is in flight. Exposed for tests.
func (m *Model) Busy() bool {
	return m.busy
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width, max(msg.Height-5, 3))
		m.ready = true
		// The welcome message is seeded only after the first render pass,
		// and only once per session.
		if !m.seeded {
			m.seeded = true
			m.append(domain.NewChatMessage(domain.RoleAssistant, welcomeText))
		}
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}

	case answerMsg:
		m.busy = false
		m.append(domain.NewChatMessage(domain.RoleAssistant, answerContent(msg)))
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmds []tea.Cmd

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	if inputCmd != nil {
		cmds = append(cmds, inputCmd)
	}

	var vpCmd tea.Cmd
	m.viewport, vpCmd = m.viewport.Update(msg)
	if vpCmd != nil {
		cmds = append(cmds, vpCmd)
	}

	return m, tea.Batch(cmds...)
}

// submit starts an answer round trip. Submissions while busy or with
// empty/whitespace input are no-ops.
func (m *Model) submit() tea.Cmd {
	if m.busy {
		return nil
	}

	question := strings.TrimSpace(m.input.Value())
	if question == "" {
		return nil
	}

	// Optimistic append: the user message goes in before the call.
	m.append(domain.NewChatMessage(domain.RoleUser, question))
	m.input.SetValue("")
	m.busy = true
	m.refreshViewport()

	return tea.Batch(m.spin.Tick, m.ask(question))
}

// ask returns the command performing the answer call.
func (m *Model) ask(question string) tea.Cmd {
	return func() tea.Msg {
		text, err := m.chat.Answer(m.ctx, question)
		return answerMsg{text: text, err: err}
	}
}

// answerContent maps an answer result to the assistant message content.
// Tagged answer errors surface their message (the same payload the HTTP
// contract returns); anything else gets the fixed network-failure notice.
func answerContent(msg answerMsg) string {
	if msg.err == nil {
		return msg.text
	}
	if ae, ok := domain.AsAnswerError(msg.err); ok {
		return ae.Message
	}
	return networkFailureText
}

// append adds a message to the session list. The list is append-only.
func (m *Model) append(msg domain.ChatMessage) {
	m.messages = append(m.messages, msg)
}

// refreshViewport re-renders the transcript and scrolls to the bottom.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// renderTranscript renders every message with speaker label and time.
func (m *Model) renderTranscript() string {
	var b strings.Builder
	for _, msg := range m.messages {
		label := m.styles.AssistantLabel.Render("NSE Intel")
		if msg.Role == domain.RoleUser {
			label = m.styles.UserLabel.Render("You")
		}
		b.WriteString(fmt.Sprintf("%s %s\n%s\n\n",
			label,
			m.styles.Timestamp.Render(msg.Timestamp),
			m.styles.Message.Render(msg.Content),
		))
	}
	return b.String()
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	status := ""
	if m.busy {
		status = m.styles.Status.Render(m.spin.View() + " Consulting the knowledge base...")
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s",
		m.styles.Header.Render("NSE Intelligence Hub"),
		m.viewport.View(),
		status,
		m.input.View(),
		m.styles.Hint.Render("enter: send · esc: quit"),
	)
}
