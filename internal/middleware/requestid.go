package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey int

const requestIDKey ctxKey = iota

// RequestID — сквозной идентификатор запроса: пришедший X-Request-ID
// уважается, иначе генерируется новый. Id кладётся в контекст и
// дублируется в заголовок ответа, чтобы клиент мог сослаться на него.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get("X-Request-ID")
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", rid)
			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), requestIDKey, rid)))
		})
	}
}

// GetRequestID — id из контекста; пустая строка вне цепочки middleware.
func GetRequestID(r *http.Request) string {
	rid, _ := r.Context().Value(requestIDKey).(string)
	return rid
}
