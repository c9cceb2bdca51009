package file

import (
	"context"
	"os"
	"path/filepath"

	"petty-marketplace/internal/ports/statestore"

	"github.com/google/uuid"
)

// Store persiste el blob como un único archivo JSON en disco.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, statestore.ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

// Save escribe a un temporal y renombra, para no dejar un blob a medias
// si el proceso muere durante el write.
func (s *Store) Save(ctx context.Context, blob []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return err
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
