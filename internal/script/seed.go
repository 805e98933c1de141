package script

import (
	"time"

	"stagechat/internal/domain"
)

// seed loads the built-in demo conversations. Demo data lives here so a
// fresh checkout previews something without any files or API keys.
func (s *MemorySource) seed() {
	launch := &domain.Script{
		ID:    "launch-room",
		Name:  "Launch Room",
		Topic: "aim assist",
		Personas: []domain.Persona{
			{ID: "ava", DisplayName: "Ava", Avatar: "A", Archetype: domain.ArchetypeEnthusiast},
			{ID: "rex", DisplayName: "Rex_99", Avatar: "R", Archetype: domain.ArchetypeVeteran},
			{ID: "kit", DisplayName: "kitkat", Avatar: "K", Archetype: domain.ArchetypeNewcomer},
			{ID: "moss", DisplayName: "Moss", Avatar: "M", Archetype: domain.ArchetypeSkeptic},
		},
		Messages: []domain.ScriptedMessage{
			{ID: "l1", SpeakerID: "ava", Text: "ok who else grabbed the new build today", PostDelay: 2 * time.Second},
			{ID: "l2", SpeakerID: "rex", Text: "been on it since this morning. the aim assist config is way smoother than v2", PostDelay: 3 * time.Second},
			{ID: "l3", SpeakerID: "kit", Text: "is it hard to set up? I'm new to this", PostDelay: 2 * time.Second},
			{ID: "l4", SpeakerID: "rex", Text: "took me five minutes. the loader does everything", PostDelay: 2 * time.Second, ReplyToID: "l3"},
			{ID: "l5", SpeakerID: "moss", Text: "I'll believe the detection claims when I see a full season without a ban wave", PostDelay: 4 * time.Second},
			{ID: "l6", SpeakerID: "ava", Text: "moss you said that last season too and here you are", PostDelay: 2 * time.Second, ReplyToID: "l5"},
			{ID: "l7", SpeakerID: "kit", Text: "just tried a match. this is wild", PostDelay: 3 * time.Second},
			{ID: "l8", SpeakerID: "rex", Text: "welcome to the club", PostDelay: time.Second, ReplyToID: "l7"},
		},
	}

	support := &domain.Script{
		ID:    "support-room",
		Name:  "Support Room",
		Topic: "radar overlay",
		Personas: []domain.Persona{
			{ID: "nia", DisplayName: "Nia", Avatar: "N", Archetype: domain.ArchetypeEnthusiast},
			{ID: "bolt", DisplayName: "bolt", Avatar: "B", Archetype: domain.ArchetypeVeteran},
		},
		Messages: []domain.ScriptedMessage{
			{ID: "s1", SpeakerID: "nia", Text: "support sorted my radar overlay issue in under ten minutes", PostDelay: 2 * time.Second},
			{ID: "s2", SpeakerID: "bolt", Text: "same experience last week. ticket answered almost instantly", PostDelay: 3 * time.Second, ReplyToID: "s1"},
			{ID: "s3", SpeakerID: "nia", Text: "gold plan was worth it for that alone honestly", PostDelay: 2 * time.Second},
		},
	}

	for _, sc := range []*domain.Script{launch, support} {
		sc.Normalize()
		s.scripts[sc.ID] = sc
	}
}
