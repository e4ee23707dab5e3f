package model

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the persisted login identity: the flag and the phone number
// survive restarts, nothing else does.
type Session struct {
	LoggedIn  bool
	Phone     string
	UpdatedAt time.Time
}

type SessionRepository interface {
	Save(session *Session) error
	Load() (*Session, error)
	Clear() error
}
