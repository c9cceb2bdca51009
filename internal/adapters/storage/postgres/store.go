package postgres

import (
	"context"
	"database/sql"
	"time"

	"petty-marketplace/internal/ports/statestore"
)

const stateKey = "petty_state"

// Store persiste el blob en una tabla de una sola fila (key -> blob).
// No hay esquema relacional: el estado viaja entero.
type Store struct {
	db  *sql.DB
	key string
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, key: stateKey}
}

// Init crea la tabla si no existe. Se llama una vez al armar el router.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS app_state (
			key        TEXT PRIMARY KEY,
			blob       BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT blob FROM app_state WHERE key = $1
	`, s.key)

	var blob []byte
	if err := row.Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return nil, statestore.ErrNotFound
		}
		return nil, err
	}
	return blob, nil
}

func (s *Store) Save(ctx context.Context, blob []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, blob, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET blob = EXCLUDED.blob, updated_at = EXCLUDED.updated_at
	`,
		s.key,
		blob,
		time.Now().UTC(),
	)
	return err
}
