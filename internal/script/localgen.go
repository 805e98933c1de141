package script

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"stagechat/internal/domain"
)

// Archetype phrase pools for the local composer. Every line may carry a
// {topic} placeholder; it is substituted at generation time, never at
// playback time.
var archetypeLines = map[domain.Archetype][]string{
	domain.ArchetypeEnthusiast: {
		"the {topic} update is actually unreal",
		"can't go back to playing without {topic} now",
		"told you all {topic} was worth it",
		"queue with me tonight, you have to see {topic} in action",
	},
	domain.ArchetypeVeteran: {
		"been using {topic} since the first release, smoothest it's ever been",
		"config takes two minutes if you follow the pinned guide",
		"the {topic} settings from last patch still work fine",
		"trust me, keep {topic} on the default profile first",
	},
	domain.ArchetypeSkeptic: {
		"still not convinced {topic} is safe long term",
		"someone show me proof {topic} survives the next update",
		"fine, {topic} works, I'll give you that",
	},
	domain.ArchetypeNewcomer: {
		"how do I even turn {topic} on?",
		"first day with {topic} and I'm already hooked",
		"is {topic} included in the basic plan?",
	},
	domain.ArchetypeNeutral: {
		"anyone tried {topic} on the new map?",
		"{topic} has been solid for me all week",
	},
}

// Compose builds a script by drawing lines from the archetype pools.
// It is a simple data-driven picker: speakers rotate with a random
// skew, roughly a third of later lines reply to an earlier one, and
// post-delays land between 1 and 4 seconds.
func Compose(topic string, personas []domain.Persona, lines int, rnd *rand.Rand) *domain.Script {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(personas) == 0 {
		personas = []domain.Persona{{ID: "guest", DisplayName: "Guest", Archetype: domain.ArchetypeNeutral}}
	}
	if lines <= 0 {
		lines = 8
	}

	sc := &domain.Script{
		ID:       fmt.Sprintf("local-%08x", rnd.Uint32()),
		Name:     "Local: " + topic,
		Topic:    topic,
		Personas: personas,
	}

	prev := -1
	for i := 0; i < lines; i++ {
		// Avoid the same speaker twice in a row when possible.
		pi := rnd.Intn(len(personas))
		if pi == prev && len(personas) > 1 {
			pi = (pi + 1) % len(personas)
		}
		prev = pi
		p := personas[pi]

		pool := archetypeLines[p.Archetype]
		if len(pool) == 0 {
			pool = archetypeLines[domain.ArchetypeNeutral]
		}
		text := strings.ReplaceAll(pool[rnd.Intn(len(pool))], "{topic}", topic)

		msg := domain.ScriptedMessage{
			ID:        fmt.Sprintf("m%d", i+1),
			SpeakerID: p.ID,
			Text:      text,
			PostDelay: time.Duration(1+rnd.Intn(3))*time.Second + time.Duration(rnd.Intn(1000))*time.Millisecond,
		}
		if i >= 2 && rnd.Float64() < 0.3 {
			msg.ReplyToID = sc.Messages[rnd.Intn(i)].ID
		}
		sc.Messages = append(sc.Messages, msg)
	}

	return sc
}
