package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"stagechat/internal/domain"
	"stagechat/internal/playback"
)

// engineEvent wraps a playback event for the bubbletea update loop.
type engineEvent playback.Event

// AppModel drives the chat room view. All playback state lives in the
// engine; the model only holds the latest snapshot plus input chrome.
type AppModel struct {
	engine *playback.Engine
	script *domain.Script
	log    *zap.SugaredLogger

	snap   playback.Snapshot
	input  textinput.Model
	notice string

	// replyIdx indexes snap.Messages for the pending reply target,
	// -1 when no target is selected.
	replyIdx int

	width  int
	height int
}

func NewApp(engine *playback.Engine, script *domain.Script, log *zap.SugaredLogger) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Message"
	ti.Prompt = "> "
	ti.CharLimit = 500
	ti.Focus()

	return AppModel{
		engine:   engine,
		script:   script,
		log:      log,
		snap:     engine.Snapshot(),
		input:    ti,
		replyIdx: -1,
		width:    80,
		height:   24,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEvent(m.engine))
}

// waitForEvent blocks on the engine's event stream and feeds the next
// event back into Update. Re-issued after every received event.
func waitForEvent(e *playback.Engine) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-e.Events()
		if !ok {
			return nil
		}
		return engineEvent(ev)
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case engineEvent:
		if msg.Kind == playback.EventRestricted && msg.Restriction != nil {
			m.notice = msg.Restriction.Notice
		}
		m.snap = m.engine.Snapshot()
		if m.snap.ReplyTarget == nil {
			m.replyIdx = -1
		}
		return m, waitForEvent(m.engine)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.engine.Close()
		return m, tea.Quit

	case "ctrl+p":
		if m.snap.Playing() {
			m.engine.Pause()
		} else {
			m.engine.Play()
		}
		m.snap = m.engine.Snapshot()
		return m, nil

	case "ctrl+n":
		m.engine.Reset()
		m.snap = m.engine.Snapshot()
		m.replyIdx = -1
		m.notice = ""
		return m, nil

	case "ctrl+r":
		m.cycleReply()
		return m, nil

	case "esc":
		m.engine.ClearReply()
		m.replyIdx = -1
		m.snap = m.engine.Snapshot()
		return m, nil

	case "enter":
		text := m.input.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		m.engine.Send(text)
		m.input.Reset()
		m.replyIdx = -1
		m.snap = m.engine.Snapshot()
		return m, nil

	case "ctrl+a":
		m.requestFeature(playback.FeatureAttachments)
		return m, nil
	case "ctrl+l":
		m.requestFeature(playback.FeaturePrivateCalls)
		return m, nil
	case "ctrl+b":
		m.requestFeature(playback.FeatureGroupAccess)
		return m, nil
	case "ctrl+v":
		m.requestFeature(playback.FeatureVoiceMessages)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// cycleReply walks backwards through the visible messages, selecting
// each in turn as the reply target and wrapping past the oldest.
func (m *AppModel) cycleReply() {
	m.snap = m.engine.Snapshot()
	n := len(m.snap.Messages)
	if n == 0 {
		return
	}
	if m.replyIdx < 0 || m.replyIdx >= n {
		m.replyIdx = n
	}
	m.replyIdx--
	if m.replyIdx < 0 {
		m.engine.ClearReply()
		m.snap = m.engine.Snapshot()
		return
	}
	m.engine.SetReply(m.snap.Messages[m.replyIdx].ID)
	m.snap = m.engine.Snapshot()
}

func (m *AppModel) requestFeature(f playback.Feature) {
	r, err := m.engine.RequestFeature(f)
	if err != nil {
		m.log.Warnf("feature request failed: %v", err)
		return
	}
	m.notice = r.Notice
}

func (m AppModel) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	chrome := 6 // header, blanks, typing, input, status
	if m.notice != "" {
		chrome++
	}
	if m.snap.ReplyTarget != nil {
		chrome++
	}
	b.WriteString(m.messagesView(m.height - chrome))
	b.WriteString("\n")

	b.WriteString(m.typingView())
	b.WriteString("\n")

	if m.snap.ReplyTarget != nil {
		t := m.snap.ReplyTarget
		name := m.engine.PersonaFor(t.SpeakerID).DisplayName
		b.WriteString(replyBarStyle.Render(fmt.Sprintf("replying to %s: %s", name, truncateLine(t.Text, 48))))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.statusView())

	return b.String()
}

func (m AppModel) headerView() string {
	title := m.script.Name
	if title == "" {
		title = m.script.ID
	}
	status := m.snap.Status.String()
	progress := fmt.Sprintf("%d/%d", m.snap.Cursor, len(m.script.Messages))
	head := headerStyle.Render(fmt.Sprintf(" %s ", title))
	info := statusBarStyle.Render(fmt.Sprintf("  %s  %s", status, progress))
	if m.snap.Status == domain.StatusPaused {
		info = pausedStyle.Render("  PAUSED  ") + statusBarStyle.Render(progress)
	}
	return head + info
}

func (m AppModel) messagesView(lines int) string {
	if lines < 1 {
		lines = 1
	}
	rendered := make([]string, 0, len(m.snap.Messages))
	for i, msg := range m.snap.Messages {
		s := m.renderMessage(msg)
		if i == m.replyIdx {
			s = replyBarStyle.Render("> ") + s
		}
		rendered = append(rendered, s)
	}

	// keep only the tail that fits the viewport
	var total int
	start := len(rendered)
	for start > 0 {
		h := lipgloss.Height(rendered[start-1])
		if total+h > lines {
			break
		}
		total += h
		start--
	}
	return strings.Join(rendered[start:], "\n")
}

func (m AppModel) renderMessage(msg domain.LiveMessage) string {
	switch msg.Origin {
	case domain.OriginAmbientSystem:
		return systemStyle.Render("• " + msg.Text)
	case domain.OriginAmbientPromo:
		return promoStyle.Render("★ " + msg.Text)
	}

	maxw := m.width * 2 / 3
	if maxw < 20 {
		maxw = 20
	}

	var quote string
	if msg.ReplyTo != nil {
		qn := m.engine.PersonaFor(msg.ReplyTo.SpeakerID).DisplayName
		quote = replyQuoteStyle.Render(fmt.Sprintf("↩ %s: %s", qn, truncateLine(msg.ReplyTo.Text, 40))) + "\n"
	}

	if msg.Origin == domain.OriginUser {
		bubble := quote + bubbleOutStyle.MaxWidth(maxw).Render(msg.Text)
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bubble)
	}

	p := m.engine.PersonaFor(msg.SpeakerID)
	name := senderStyle.Render(fmt.Sprintf("%s %s", p.Avatar, p.DisplayName))
	return name + "\n" + quote + bubbleInStyle.MaxWidth(maxw).Render(msg.Text)
}

func (m AppModel) typingView() string {
	if len(m.snap.Typing) == 0 {
		return ""
	}
	names := make([]string, 0, len(m.snap.Typing))
	for _, p := range m.snap.Typing {
		names = append(names, p.DisplayName)
	}
	verb := "is"
	if len(names) > 1 {
		verb = "are"
	}
	return typingStyle.Render(fmt.Sprintf("%s %s typing…", strings.Join(names, ", "), verb))
}

func (m AppModel) statusView() string {
	keys := []struct{ key, label string }{
		{"^P", "play/pause"},
		{"^N", "reset"},
		{"^R", "reply"},
		{"esc", "clear"},
		{"^A/^L/^B/^V", "extras"},
		{"^C", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, statusKeyStyle.Render(k.key)+statusBarStyle.Render(" "+k.label))
	}
	return statusBarStyle.Render(strings.Join(parts, "  "))
}

func truncateLine(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
