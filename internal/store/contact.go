package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

var contactMigrations = []string{
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);`,
}

type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

func (s *Store) SaveContactMessage(ctx context.Context, msg ContactMessage) (int64, error) {
	var id int64

	err := s.Tx(ctx, func(conn *sqlite.Conn) error {
		err := sqlitex.Execute(conn, `INSERT INTO contact_messages (name, email, message, created_at) VALUES (?, ?, ?, ?)`, &sqlitex.ExecOptions{
			Args: []any{msg.Name, normalizeEmail(msg.Email), msg.Message, time.Now().UTC().Unix()},
		})
		if err != nil {
			return errors.WithStack(err)
		}

		id = conn.LastInsertRowID()

		return nil
	})
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return id, nil
}

func (s *Store) CountContactMessages(ctx context.Context) (int64, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM contact_messages")
}

// ListContactMessages returns the most recent contact messages.
func (s *Store) ListContactMessages(ctx context.Context, limit int) ([]*ContactMessage, error) {
	messages := make([]*ContactMessage, 0, limit)

	err := s.Do(ctx, func(conn *sqlite.Conn) error {
		return errors.WithStack(sqlitex.Execute(conn, `SELECT id, name, email, message, created_at FROM contact_messages ORDER BY created_at DESC, id DESC LIMIT ?`, &sqlitex.ExecOptions{
			Args: []any{limit},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				messages = append(messages, &ContactMessage{
					ID:        stmt.ColumnInt64(0),
					Name:      stmt.ColumnText(1),
					Email:     stmt.ColumnText(2),
					Message:   stmt.ColumnText(3),
					CreatedAt: time.Unix(stmt.ColumnInt64(4), 0),
				})
				return nil
			},
		}))
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return messages, nil
}
