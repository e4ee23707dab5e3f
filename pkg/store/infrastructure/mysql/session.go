package mysql

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
)

// SessionRepository persists the single login session. The table holds at
// most one row; Save upserts it, Clear deletes it.
type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type sessionRow struct {
	LoggedIn  bool      `db:"logged_in"`
	Phone     string    `db:"phone"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *SessionRepository) Save(session *model.Session) error {
	const query = `
		INSERT INTO sessions (id, logged_in, phone, updated_at)
		VALUES (1, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			logged_in = VALUES(logged_in),
			phone = VALUES(phone),
			updated_at = VALUES(updated_at)`

	_, err := r.db.Exec(query, session.LoggedIn, session.Phone, session.UpdatedAt)
	return errors.Wrap(err, "save session")
}

func (r *SessionRepository) Load() (*model.Session, error) {
	const query = `SELECT logged_in, phone, updated_at FROM sessions WHERE id = 1`

	var row sessionRow
	if err := r.db.Get(&row, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrSessionNotFound
		}
		return nil, errors.Wrap(err, "load session")
	}
	return &model.Session{
		LoggedIn:  row.LoggedIn,
		Phone:     row.Phone,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *SessionRepository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE id = 1`)
	return errors.Wrap(err, "clear session")
}
