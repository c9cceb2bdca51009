package statestore

import (
	"context"
	"errors"
)

// ErrNotFound indica que todavía no hay blob persistido (primer arranque).
var ErrNotFound = errors.New("state not found")

// Store persiste el árbol de estado serializado bajo una clave fija.
// Cada adapter decide dónde vive esa clave (archivo, redis, postgres).
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
}
