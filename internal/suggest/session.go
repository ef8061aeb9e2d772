package suggest

import (
	"github.com/google/uuid"
)

// ModelLabel identifies the canned rule set in session info.
const ModelLabel = "canned-rules"

// SessionInfo is the public view of a Session.
type SessionInfo struct {
	SessionID string `json:"sessionId"`
	Model     string `json:"model"`
	Active    bool   `json:"active"`
}

// Session is a local stand-in for an assistant session. It only carries an
// identifier; nothing is contacted.
type Session struct {
	id       string
	model    string
	provider Provider
}

// NewSession opens a session with the given id, or a generated
// "session_<uuid>" id when id is empty.
func NewSession(id string) *Session {
	if id == "" {
		id = "session_" + uuid.NewString()
	}
	return &Session{id: id, model: ModelLabel, provider: Rules{}}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Provider returns the suggestion provider bound to the session.
func (s *Session) Provider() Provider { return s.provider }

// Active reports whether the session has an identifier and is not closed.
func (s *Session) Active() bool { return s.id != "" }

// Close ends the session.
func (s *Session) Close() { s.id = "" }

// Info returns the session details.
func (s *Session) Info() SessionInfo {
	return SessionInfo{SessionID: s.id, Model: s.model, Active: s.Active()}
}
