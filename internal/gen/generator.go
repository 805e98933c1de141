package gen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"stagechat/internal/domain"
)

// Compile-time interface check.
var _ domain.ScriptGenerator = (*Generator)(nil)

// scriptLine is the JSON shape the model must return, one object per
// chat message.
type scriptLine struct {
	SpeakerName      string  `json:"speaker_name"`
	Text             string  `json:"text"`
	PostDelaySeconds float64 `json:"post_delay_seconds"`
}

// Generator wraps the Client with prompt building and strict response
// parsing. It is the single entry-point for externally generated scripts.
type Generator struct {
	client *Client
	log    *zap.SugaredLogger
}

// NewGenerator creates a script generator backed by the given client.
func NewGenerator(client *Client, log *zap.SugaredLogger) *Generator {
	return &Generator{client: client, log: log}
}

// Generate asks the model for a conversation and parses it into a
// script. On any parse failure nothing is applied and a descriptive
// error is returned.
func (g *Generator) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.Script, error) {
	raw, err := g.client.Chat(ctx, []Message{
		{Role: RoleSystem, Content: PromptScript},
		{Role: RoleUser, Content: buildRequest(req)},
	})
	if err != nil {
		return nil, err
	}

	sc, err := ParseScript(raw, req.Personas)
	if err != nil {
		g.log.Errorf("gen: rejecting generated script: %v", err)
		return nil, err
	}

	sc.Topic = req.Topic
	sc.Name = "Generated: " + req.Topic
	g.log.Infof("gen: generated script %q (%d lines)", sc.Name, len(sc.Messages))
	return sc, nil
}

// buildRequest renders the structured request as the user message.
func buildRequest(req domain.GenerateRequest) string {
	var b strings.Builder
	b.WriteString("Speakers:\n")
	for _, p := range req.Personas {
		fmt.Fprintf(&b, "- %s (%s)\n", p.DisplayName, p.Archetype)
	}
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	if req.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", req.Tone)
	}
	lines := req.Lines
	if lines <= 0 {
		lines = 10
	}
	fmt.Fprintf(&b, "Lines: %d\n", lines)
	return b.String()
}

// ParseScript converts the model's raw reply into a script against the
// given roster. All-or-nothing: the first malformed record rejects the
// whole response.
func ParseScript(raw string, personas []domain.Persona) (*domain.Script, error) {
	raw = stripCodeFence(raw)

	var lines []scriptLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: response contains no messages", domain.ErrInvalidFormat)
	}

	byName := make(map[string]domain.Persona, len(personas))
	for _, p := range personas {
		byName[strings.ToLower(p.DisplayName)] = p
	}

	sc := &domain.Script{
		ID:       fmt.Sprintf("gen-%d", time.Now().Unix()),
		Personas: personas,
	}
	for i, ln := range lines {
		p, ok := byName[strings.ToLower(strings.TrimSpace(ln.SpeakerName))]
		if !ok {
			return nil, fmt.Errorf("%w: line %d names unknown speaker %q", domain.ErrInvalidFormat, i+1, ln.SpeakerName)
		}
		if strings.TrimSpace(ln.Text) == "" {
			return nil, fmt.Errorf("%w: line %d has empty text", domain.ErrInvalidFormat, i+1)
		}
		sc.Messages = append(sc.Messages, domain.ScriptedMessage{
			ID:        fmt.Sprintf("m%d", i+1),
			SpeakerID: p.ID,
			Text:      ln.Text,
			PostDelay: time.Duration(ln.PostDelaySeconds * float64(time.Second)),
		})
	}

	sc.Normalize()
	return sc, nil
}

// stripCodeFence removes markdown code fences if the model wraps the
// JSON (common despite the prompt).
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
