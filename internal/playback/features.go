package playback

import (
	"fmt"

	"stagechat/internal/domain"
)

// Feature names an action the preview intercepts instead of performing.
// The set is fixed: these gates exist to surface an upsell, not to be
// extended at runtime.
type Feature string

const (
	FeatureAttachments   Feature = "Attachments"
	FeaturePrivateCalls  Feature = "Private calls"
	FeatureGroupAccess   Feature = "Group access"
	FeatureVoiceMessages Feature = "Voice messages"
)

// Features returns the fixed gated-feature set in display order.
func Features() []Feature {
	return []Feature{
		FeatureAttachments,
		FeaturePrivateCalls,
		FeatureGroupAccess,
		FeatureVoiceMessages,
	}
}

// Restriction is the signal produced when a gated feature is invoked.
// It identifies the feature by name; the underlying action never ran.
type Restriction struct {
	Feature Feature
	Notice  string
}

// RequestFeature intercepts a gated action and yields exactly one
// restriction signal carrying the feature name. This is a deliberate
// stub boundary, not an error: it means "requires entitlement", and it
// works in any playback state.
func (e *Engine) RequestFeature(f Feature) (Restriction, error) {
	known := false
	for _, g := range Features() {
		if g == f {
			known = true
			break
		}
	}
	if !known {
		return Restriction{}, fmt.Errorf("%w: %q", domain.ErrFeatureUnknown, f)
	}

	r := Restriction{
		Feature: f,
		Notice:  fmt.Sprintf("%s are available on the Gold plan. Upgrade to unlock.", f),
	}
	e.log.Debugf("restricted feature invoked: %s", f)
	e.emit(Event{Kind: EventRestricted, Restriction: &r})
	return r, nil
}
