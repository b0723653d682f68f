package assistant

import (
	"context"
	"database/sql"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) SaveMessage(ctx context.Context, sessionID, role, content string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO conversations (session_id, role, content)
		VALUES ($1, $2, $3)
	`, sessionID, role, content)
	return err
}
