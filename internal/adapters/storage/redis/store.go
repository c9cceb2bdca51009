package redis

import (
	"context"
	"time"

	"petty-marketplace/internal/ports/statestore"

	"github.com/redis/go-redis/v9"
)

// stateKey es la clave fija bajo la que vive el blob.
const stateKey = "petty_state"

// Open crea un cliente y valida conexión con ping (igual que postgres.Open).
func Open(addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// Store persiste el blob en una única clave de Redis, sin TTL:
// el estado es durable, no un cache.
type Store struct {
	client *redis.Client
	key    string
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client, key: stateKey}
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, statestore.ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (s *Store) Save(ctx context.Context, blob []byte) error {
	return s.client.Set(ctx, s.key, blob, 0).Err()
}
