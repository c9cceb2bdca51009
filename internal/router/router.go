package router

import (
	"context"
	"net/http"
	"os"
	"time"

	fileadapter "petty-marketplace/internal/adapters/storage/file"
	"petty-marketplace/internal/adapters/storage/memory"
	pg "petty-marketplace/internal/adapters/storage/postgres"
	redisadapter "petty-marketplace/internal/adapters/storage/redis"
	"petty-marketplace/internal/domain/marketplace"
	"petty-marketplace/internal/middleware"
	"petty-marketplace/internal/platform/logger"
	"petty-marketplace/internal/ports/statestore"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Opcional: storage explícito (tests). Si no viene, se resuelve por env.
	Store statestore.Store

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	store := opts.Store
	if store == nil {
		store = storeFromEnv(log)
	}

	svc := marketplace.NewService(store, log)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.SessionContext(func() middleware.Session {
		sess := svc.Session()
		return middleware.Session{Role: string(sess.Role), UserID: sess.UserID}
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	marketplace.RegisterRoutes(r, svc)

	return r
}

// storeFromEnv resuelve el storage por env, en orden de preferencia:
// DB_DSN (postgres) > REDIS_ADDR > STATE_PATH (archivo) > memoria.
// Si un backend falla al abrir, cae al siguiente.
func storeFromEnv(log logger.Logger) statestore.Store {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		db, err := pg.Open(dsn)
		if err != nil {
			log.Warn("postgres open failed", map[string]any{"error": err.Error()})
		} else {
			st := pg.NewStore(db)

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			if initErr := st.Init(ctx); initErr != nil {
				_ = db.Close()
				log.Warn("postgres init failed", map[string]any{"error": initErr.Error()})
			} else {
				log.Info("using postgres state store", nil)
				return st
			}
		}
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client, err := redisadapter.Open(addr)
		if err == nil {
			log.Info("using redis state store", map[string]any{"addr": addr})
			return redisadapter.NewStore(client)
		}
		log.Warn("redis open failed", map[string]any{"addr": addr, "error": err.Error()})
	}

	if path := os.Getenv("STATE_PATH"); path != "" {
		log.Info("using file state store", map[string]any{"path": path})
		return fileadapter.NewStore(path)
	}

	log.Info("using in-memory state store", nil)
	return memory.NewStore()
}
