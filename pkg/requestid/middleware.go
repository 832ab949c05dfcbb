package requestid

import (
	"net/http"

	"github.com/google/uuid"
)

// Header is the response header the middleware sets so clients can report
// the ID back to support.
const Header = "X-Request-Id"

// Middleware attaches a fresh UUID to each request. An ID supplied by the
// client in the X-Request-Id header is honored only when it parses as a
// UUID; anything else is replaced.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(Header)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(Header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}
