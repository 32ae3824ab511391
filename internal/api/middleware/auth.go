package middleware

import (
	"context"
	"net/http"

	"github.com/mariusjb/holidaze-gateway/internal/api/handlers"
	"github.com/mariusjb/holidaze-gateway/internal/session"
)

// SessionHeader заголовок с идентификатором сессии
const SessionHeader = "X-Session-ID"

// SessionCookie имя cookie с идентификатором сессии
const SessionCookie = "holidaze_session"

type contextKey string

const sessionKey contextKey = "session"

// SessionStore интерфейс таблицы сессий
type SessionStore interface {
	Current(id string) (session.Session, bool)
}

// Auth проверяет сессию запроса и кладет ее в контекст.
// Идентификатор берется из заголовка X-Session-ID, затем из cookie.
// Запрос без валидной сессии отклоняется с 401.
func Auth(sessions SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)
			if id == "" {
				if c, err := r.Cookie(SessionCookie); err == nil {
					id = c.Value
				}
			}
			if id == "" {
				handlers.RespondUnauthorized(w, "session is required")
				return
			}

			sess, ok := sessions.Current(id)
			if !ok {
				handlers.RespondUnauthorized(w, "session expired or unknown")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext возвращает сессию, положенную Auth middleware
func SessionFromContext(ctx context.Context) (session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(session.Session)
	return s, ok
}
