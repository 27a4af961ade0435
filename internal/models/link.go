package models

import (
	"bytes"
	"encoding/json"
)

// SessionLink records which session a set belongs to. Sets created during
// an active session are Unassigned; the link is resolved exactly once, at
// finish time. It marshals as the session id string, or null when
// unassigned.
type SessionLink struct {
	id       string
	assigned bool
}

// Unassigned returns a link to no session.
func Unassigned() SessionLink { return SessionLink{} }

// AssignedTo returns a link to the session with the given id.
func AssignedTo(sessionID string) SessionLink {
	return SessionLink{id: sessionID, assigned: true}
}

// SessionID returns the linked session id and whether one is assigned.
func (l SessionLink) SessionID() (string, bool) { return l.id, l.assigned }

// Assigned reports whether the link points at a session.
func (l SessionLink) Assigned() bool { return l.assigned }

var jsonNull = []byte("null")

// MarshalJSON emits the session id, or null when unassigned.
func (l SessionLink) MarshalJSON() ([]byte, error) {
	if !l.assigned {
		return jsonNull, nil
	}
	return json.Marshal(l.id)
}

// UnmarshalJSON accepts a session id string or null.
func (l *SessionLink) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*l = Unassigned()
		return nil
	}
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*l = AssignedTo(id)
	return nil
}
