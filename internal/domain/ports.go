package domain

import "context"

// ScriptSource provides authored scripts. Implementations can be
// in-memory (seeded demos), file-based, or generator-backed.
type ScriptSource interface {
	List(ctx context.Context) ([]ScriptSummary, error)
	Get(ctx context.Context, id string) (*Script, error)
}

// TranscriptStore records the visible message stream of a session so a
// host application can persist or forward it. Best effort only.
type TranscriptStore interface {
	Append(ctx context.Context, sessionID string, msg LiveMessage) error
	Transcript(ctx context.Context, sessionID string) ([]LiveMessage, error)
	Sessions(ctx context.Context) ([]string, error)
}

// ScriptGenerator produces a script from a structured request, usually by
// calling an external text-generation service.
type ScriptGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (*Script, error)
}

// GenerateRequest describes the conversation the generator should write.
type GenerateRequest struct {
	Personas []Persona
	Topic    string
	Tone     string
	// Lines is roughly how many messages the conversation should span.
	Lines int
}
