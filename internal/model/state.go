package model

// Phase is the interaction state of the sync controller.
//
//	idle -> loading -> success | error -> (next action) -> ...
//
// There is no terminal phase; the controller is always re-enterable.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// PhaseOf derives the displayed phase from the loading flag and the most
// recent status message.
func PhaseOf(loading bool, msg *StatusMessage) Phase {
	if loading {
		return PhaseLoading
	}
	if msg == nil {
		return PhaseIdle
	}
	if msg.IsError() {
		return PhaseError
	}
	return PhaseSuccess
}

// State is a point-in-time copy of the controller state, safe to render.
// The credential value itself is never exposed, only its presence.
type State struct {
	HasCredential bool           `json:"has_credential"`
	FileName      string         `json:"file_name,omitempty"`
	Count         int            `json:"count"`
	CountKnown    bool           `json:"count_known"`
	Loading       bool           `json:"loading"`
	Phase         Phase          `json:"phase"`
	Message       *StatusMessage `json:"message,omitempty"`
}

// CanSync mirrors the rule for enabling the sync action: a credential and a
// non-empty collection are present and no sync is in flight.
func (s State) CanSync() bool {
	return !s.Loading && s.HasCredential && s.CountKnown && s.Count > 0
}
