// Package ambient — lines.go centralises every synthetic phrase the
// generator can inject. Edit this file to change the room's background
// chatter. Keep lines short; they sit between real script messages.
package ambient

import (
	"fmt"
	"math/rand"
)

// systemNotices are the fixed system-notice pool. Drawn uniformly.
var systemNotices = []string{
	"A new member joined the room.",
	"Server maintenance completed. All regions stable.",
	"Reminder: keep your access key private.",
	"3 members are viewing this room right now.",
	"Daily key rotation finished.",
	"A member upgraded to Gold.",
}

// reviewLines are the promotional "gold review" templates. Each takes a
// rating formatted to one decimal.
var reviewLines = []string{
	"Gold review: %.1f/5.0 — \"works exactly as promised\"",
	"Gold review: %.1f/5.0 — \"undetected for three months and counting\"",
	"Gold review: %.1f/5.0 — \"support answered in minutes\"",
	"Gold review: %.1f/5.0 — \"best purchase I've made this year\"",
}

// pickNotice returns a random system notice.
func pickNotice(rnd *rand.Rand) string {
	return systemNotices[rnd.Intn(len(systemNotices))]
}

// pickReview returns a random gold review with a rating in [4.5, 5.0].
func pickReview(rnd *rand.Rand) string {
	rating := 4.5 + rnd.Float64()*0.5
	return fmt.Sprintf(reviewLines[rnd.Intn(len(reviewLines))], rating)
}
