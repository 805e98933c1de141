package domain

// Reserved speaker IDs. "system" and "user" are sentinels that never
// resolve to an authored persona.
const (
	SpeakerSystem = "system"
	SpeakerUser   = "user"
)

// Archetype describes the behavioral flavor of a simulated user.
type Archetype int

const (
	ArchetypeNeutral Archetype = iota
	ArchetypeEnthusiast
	ArchetypeSkeptic
	ArchetypeVeteran
	ArchetypeNewcomer
)

// String returns a human-readable archetype name.
func (a Archetype) String() string {
	switch a {
	case ArchetypeEnthusiast:
		return "enthusiast"
	case ArchetypeSkeptic:
		return "skeptic"
	case ArchetypeVeteran:
		return "veteran"
	case ArchetypeNewcomer:
		return "newcomer"
	default:
		return "neutral"
	}
}

// ArchetypeFromString converts an archetype name to its enum value.
// Unrecognized names map to ArchetypeNeutral.
func ArchetypeFromString(name string) Archetype {
	switch name {
	case "enthusiast":
		return ArchetypeEnthusiast
	case "skeptic":
		return ArchetypeSkeptic
	case "veteran":
		return ArchetypeVeteran
	case "newcomer":
		return ArchetypeNewcomer
	default:
		return ArchetypeNeutral
	}
}

// Persona is a reusable simulated-user identity referenced by messages.
type Persona struct {
	ID          string
	DisplayName string
	// Avatar is a short glyph or initials shown next to the bubble.
	Avatar    string
	Archetype Archetype
}

// FallbackPersona is used when a message references a speaker that isn't
// in the roster. Playback degrades to it instead of aborting.
var FallbackPersona = Persona{
	ID:          "unknown",
	DisplayName: "Guest",
	Avatar:      "?",
}

// SystemPersona renders system notices and promotional inserts.
var SystemPersona = Persona{
	ID:          SpeakerSystem,
	DisplayName: "System",
	Avatar:      "*",
}

// UserPersona renders the live operator's own messages.
var UserPersona = Persona{
	ID:          SpeakerUser,
	DisplayName: "You",
	Avatar:      "@",
}
