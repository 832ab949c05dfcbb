package contact

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/summitair/website/pkg/ratelimiter"
)

// Router mounts the contact endpoints. submitLimit, when non-nil, guards the
// submission endpoint only; draft autosaves are not throttled.
func Router(svc *Service, submitLimit *ratelimiter.Bucket, log *slog.Logger) chi.Router {
	if log == nil {
		log = slog.Default()
	}
	h := &handler{svc: svc, log: log}

	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		if submitLimit != nil {
			r.Use(ratelimiter.Middleware(submitLimit, ratelimiter.ByClientIP, log))
		}
		r.Post("/", h.submit)
	})

	r.Get("/rules", h.fieldRules)
	r.Put("/draft", h.saveDraft)
	r.Get("/draft", h.getDraft)

	return r
}
