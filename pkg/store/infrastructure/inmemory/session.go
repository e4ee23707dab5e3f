package inmemory

import (
	"sync"

	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
)

// SessionRepository keeps the session in process memory. It satisfies the
// interface but nothing survives a restart; the mysql implementation is
// the durable one.
type SessionRepository struct {
	mu      sync.Mutex
	session *model.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

func (r *SessionRepository) Save(session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	saved := *session
	r.session = &saved
	return nil
}

func (r *SessionRepository) Load() (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return nil, model.ErrSessionNotFound
	}
	saved := *r.session
	return &saved, nil
}

func (r *SessionRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = nil
	return nil
}
