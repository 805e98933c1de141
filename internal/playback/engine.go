// Package playback implements the scripted conversation playback engine:
// the state machine that turns an ordered list of authored messages into
// a time-paced, interruptible live chat animation.
package playback

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"stagechat/internal/ambient"
	"stagechat/internal/domain"
	"stagechat/internal/typing"
)

// Option configures the engine.
type Option func(*Engine)

// WithEstimator replaces the default typing-time estimator.
func WithEstimator(est *typing.Estimator) Option {
	return func(e *Engine) {
		e.est = est
	}
}

// WithAmbientOptions configures the ambient event generator owned by the
// engine.
func WithAmbientOptions(opts ...ambient.Option) Option {
	return func(e *Engine) {
		e.ambientOpts = opts
	}
}

// WithOnMessageSent sets a hook fired for every user-originated send, so
// a host application can persist or forward it.
func WithOnMessageSent(fn func(domain.LiveMessage)) Option {
	return func(e *Engine) {
		e.onSent = fn
	}
}

// Engine replays a script with human-like pacing while accepting live
// interjection at any time. It owns the playback state and the visible
// message list exclusively; collaborators interact only through the
// control surface and read-only snapshots.
//
// Internally every wait is a single cancellable timer guarded by an
// epoch counter: pause and reset bump the epoch, and a timer callback
// whose captured epoch no longer matches is stale and does nothing.
type Engine struct {
	log         *zap.SugaredLogger
	script      *domain.Script
	roster      map[string]domain.Persona
	est         *typing.Estimator
	gen         *ambient.Generator
	ambientOpts []ambient.Option
	onSent      func(domain.LiveMessage)

	ctx    context.Context
	cancel context.CancelFunc
	events chan Event

	mu          sync.Mutex
	sessionID   string
	status      domain.PlaybackStatus
	cursor      int
	visible     []domain.LiveMessage
	typingSet   map[string]struct{}
	replyTarget string
	epoch       uint64
	timer       *time.Timer
	// stepRevealed is true once the message at the cursor is visible but
	// its post-delay hasn't elapsed. It decides which phase a resume
	// restarts, so a pause mid-wait never re-reveals the message.
	stepRevealed bool
}

// New creates a playback engine for the given script. The script and its
// persona roster are read-only input; the engine never mutates them.
func New(script *domain.Script, log *zap.SugaredLogger, opts ...Option) *Engine {
	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		log:       log,
		script:    script,
		roster:    script.Roster(),
		est:       typing.New(),
		ctx:       ctx,
		cancel:    cancel,
		events:    make(chan Event, 64),
		sessionID: uuid.NewString(),
		status:    domain.StatusIdle,
		typingSet: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.gen = ambient.New(e.inject, log, e.ambientOpts...)
	return e
}

// SessionID identifies this playback session, e.g. for transcript keys.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Play starts or resumes playback. A no-op when already playing or when
// the script is exhausted. Resuming restarts the current message's
// typing phase from zero; partial progress is not preserved across
// pause/resume.
func (e *Engine) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status == domain.StatusPlaying {
		return
	}
	if e.cursor >= len(e.script.Messages) {
		// Exhausted (or empty) script: nothing left to reveal.
		return
	}

	e.status = domain.StatusPlaying
	e.epoch++
	e.gen.Start(e.ctx)
	e.log.Infof("playback started: session=%s cursor=%d/%d", e.sessionID[:8], e.cursor, len(e.script.Messages))
	e.emit(Event{Kind: EventStateChanged})

	if e.stepRevealed {
		// Paused mid-wait: the message is already visible, so restart
		// the post-delay phase from zero instead of typing it again.
		msg := e.script.Messages[e.cursor]
		epoch := e.epoch
		e.timer = time.AfterFunc(msg.PostDelay, func() { e.advance(epoch) })
		return
	}
	e.beginStepLocked()
}

// Pause halts playback immediately. The in-flight typing or post-delay
// wait is abandoned, the typing indicator clears, and the ambient
// generator stops. Messages already visible stay visible.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != domain.StatusPlaying {
		return
	}

	e.status = domain.StatusPaused
	e.invalidateTimersLocked()
	e.clearTypingLocked()
	e.gen.Stop()
	e.log.Infof("playback paused: session=%s cursor=%d", e.sessionID[:8], e.cursor)
	e.emit(Event{Kind: EventStateChanged})
}

// Reset returns the session to its initial state from any state: empty
// visible list, empty typing set, cursor zero, not playing. Calling it
// twice in a row is the same as calling it once.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.invalidateTimersLocked()
	e.clearTypingLocked()
	e.gen.Stop()
	e.status = domain.StatusIdle
	e.cursor = 0
	e.visible = nil
	e.replyTarget = ""
	e.stepRevealed = false
	e.log.Infof("playback reset: session=%s", e.sessionID[:8])
	e.emit(Event{Kind: EventStateChanged})
}

// Close shuts the engine down. No timer scheduled before Close ever
// fires afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	e.invalidateTimersLocked()
	e.mu.Unlock()
	e.gen.Stop()
	e.cancel()
}

// Events returns the engine's notification channel. Events are wake-up
// signals; consumers should re-read Snapshot rather than rely on every
// event arriving.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// PersonaFor resolves a speaker ID against the roster, degrading to the
// fallback persona for unknown speakers.
func (e *Engine) PersonaFor(id string) domain.Persona {
	if p, ok := e.roster[id]; ok {
		return p
	}
	return domain.FallbackPersona
}

// ── Scheduler internals ──────────────────────────────────────────

// invalidateTimersLocked bumps the epoch and stops the pending timer, so
// no previously scheduled callback can act.
func (e *Engine) invalidateTimersLocked() {
	e.epoch++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// clearTypingLocked empties the typing set and notifies if it changed.
func (e *Engine) clearTypingLocked() {
	if len(e.typingSet) == 0 {
		return
	}
	e.typingSet = make(map[string]struct{})
	e.emit(Event{Kind: EventTypingChanged})
}

// beginStepLocked starts the typing phase for the message at the cursor.
// Caller holds e.mu and has verified cursor < len(messages).
func (e *Engine) beginStepLocked() {
	msg := e.script.Messages[e.cursor]
	e.stepRevealed = false
	speaker := e.PersonaFor(msg.SpeakerID)
	if speaker.ID == domain.FallbackPersona.ID && msg.SpeakerID != domain.FallbackPersona.ID {
		e.log.Warnf("unknown speaker %q in message %s, using fallback persona", msg.SpeakerID, msg.ID)
	}

	e.typingSet[speaker.ID] = struct{}{}
	e.emit(Event{Kind: EventTypingChanged})

	delay := e.est.Estimate(msg.Text)
	epoch := e.epoch
	e.log.Debugf("typing: speaker=%s delay=%s cursor=%d", speaker.ID, delay, e.cursor)
	e.timer = time.AfterFunc(delay, func() { e.reveal(epoch) })
}

// reveal finishes the typing phase: the message becomes visible, stamped
// with the current wall-clock time, and the post-delay wait begins.
func (e *Engine) reveal(epoch uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if epoch != e.epoch {
		return // stale timer from before a pause or reset
	}

	msg := e.script.Messages[e.cursor]
	speaker := e.PersonaFor(msg.SpeakerID)
	delete(e.typingSet, speaker.ID)

	live := domain.LiveMessage{
		ID:        msg.ID,
		SpeakerID: speaker.ID,
		Text:      msg.Text,
		Origin:    domain.OriginScripted,
		Timestamp: time.Now(),
		ReplyTo:   e.resolveReplyLocked(msg.ReplyToID),
	}
	e.visible = append(e.visible, live)
	e.stepRevealed = true
	e.emit(Event{Kind: EventTypingChanged})
	e.emit(Event{Kind: EventMessageAdded, Message: &live})

	e.timer = time.AfterFunc(msg.PostDelay, func() { e.advance(epoch) })
}

// advance moves the cursor past the revealed message and either begins
// the next step or finishes the session.
func (e *Engine) advance(epoch uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if epoch != e.epoch {
		return
	}

	e.cursor++
	e.stepRevealed = false
	if e.cursor >= len(e.script.Messages) {
		e.finishLocked()
		return
	}
	e.beginStepLocked()
}

// finishLocked transitions to the terminal state. The cursor never
// advances again without a reset.
func (e *Engine) finishLocked() {
	e.status = domain.StatusFinished
	e.timer = nil
	e.gen.Stop()
	e.log.Infof("playback finished: session=%s messages=%d", e.sessionID[:8], len(e.visible))
	e.emit(Event{Kind: EventStateChanged})
}

// resolveReplyLocked denormalizes a reply reference against the already
// visible list. Unresolved references are omitted, never an error.
func (e *Engine) resolveReplyLocked(id string) *domain.ReplySnapshot {
	if id == "" {
		return nil
	}
	for i := range e.visible {
		if e.visible[i].ID == id {
			return &domain.ReplySnapshot{
				ID:        e.visible[i].ID,
				SpeakerID: e.visible[i].SpeakerID,
				Text:      e.visible[i].Text,
			}
		}
	}
	e.log.Debugf("reply target %q not visible yet, dropping decoration", id)
	return nil
}

// inject is the ambient generator's sink. Ambient messages bypass the
// typing phase and the cursor entirely.
func (e *Engine) inject(origin domain.Origin, text string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != domain.StatusPlaying {
		// A tick can race a pause; drop it rather than surface an
		// ambient message while paused.
		return
	}

	live := domain.LiveMessage{
		ID:        uuid.NewString(),
		SpeakerID: domain.SpeakerSystem,
		Text:      text,
		Origin:    origin,
		Timestamp: time.Now(),
	}
	e.visible = append(e.visible, live)
	e.emit(Event{Kind: EventMessageAdded, Message: &live})
}

// Send appends a user-authored message to the visible list. Works in any
// playback state and never touches the cursor. Empty or whitespace-only
// text is a silent no-op. Returns the created message, or nil when the
// send was ignored.
func (e *Engine) Send(text string) *domain.LiveMessage {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	e.mu.Lock()
	live := domain.LiveMessage{
		ID:        uuid.NewString(),
		SpeakerID: domain.SpeakerUser,
		Text:      text,
		Origin:    domain.OriginUser,
		Timestamp: time.Now(),
		ReplyTo:   e.resolveReplyLocked(e.replyTarget),
	}
	e.replyTarget = ""
	e.visible = append(e.visible, live)
	e.emit(Event{Kind: EventMessageAdded, Message: &live})
	onSent := e.onSent
	e.mu.Unlock()

	if onSent != nil {
		onSent(live)
	}
	return &live
}

// SetReply marks a previously visible message as the reply target for
// the next Send. Returns false if the message isn't visible. Passing an
// empty ID clears the selection, which is always legal.
func (e *Engine) SetReply(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if id == "" {
		e.replyTarget = ""
		return true
	}
	for i := range e.visible {
		if e.visible[i].ID == id {
			e.replyTarget = id
			return true
		}
	}
	return false
}

// ClearReply drops the current reply selection.
func (e *Engine) ClearReply() {
	e.SetReply("")
}

// emit delivers an event without ever blocking the scheduler. The
// channel is a wake-up mechanism; dropped events are fine because
// consumers re-read the snapshot.
func (e *Engine) emit(ev Event) {
	select {
	case e.events <- ev:
	default:
	}
}
