package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const sessionKey ctxKey = "session"

// Session es la vista de la sesión que viaja en el contexto del request.
// Es un tipo propio del middleware para no acoplar esta capa al dominio.
type Session struct {
	Role   string
	UserID string
}

// SessionContext toma un snapshot de la sesión vigente del contenedor al
// entrar cada request. Si no hay sesión, el request sigue igual; los
// handlers deciden si la exigen.
func SessionContext(current func() Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if current == nil {
				next.ServeHTTP(w, r)
				return
			}

			sess := current()
			if strings.TrimSpace(sess.UserID) == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) (Session, bool) {
	v := ctx.Value(sessionKey)
	if v == nil {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}
