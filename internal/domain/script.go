package domain

// Script is an authored conversation: a persona roster plus an ordered
// list of scripted messages. Scripts are read-only input to the engine.
type Script struct {
	ID       string
	Name     string
	Topic    string
	Personas []Persona
	Messages []ScriptedMessage
}

// ScriptSummary is a lightweight view of a script for listing.
type ScriptSummary struct {
	ID       string
	Name     string
	Topic    string
	Speakers int
	Lines    int
}

// Roster returns the persona lookup for the script. Reserved sentinel
// speakers are always present.
func (s *Script) Roster() map[string]Persona {
	roster := make(map[string]Persona, len(s.Personas)+2)
	for _, p := range s.Personas {
		roster[p.ID] = p
	}
	roster[SpeakerSystem] = SystemPersona
	roster[SpeakerUser] = UserPersona
	return roster
}

// Normalize clamps negative post-delays to zero. Bad authored data is
// degraded, never rejected.
func (s *Script) Normalize() {
	for i := range s.Messages {
		if s.Messages[i].PostDelay < 0 {
			s.Messages[i].PostDelay = 0
		}
	}
}
