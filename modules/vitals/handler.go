package vitals

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maxBeaconBytes bounds beacon bodies; a real beacon is under 300 bytes.
const maxBeaconBytes = 4 << 10

type handler struct {
	recorder Recorder
	log      *slog.Logger
}

// collect ingests one beacon. The response is always 202 or 204: the page
// sends these via sendBeacon and never reads the body, and a validation or
// storage problem on our side is not the visitor's concern.
func (h *handler) collect(w http.ResponseWriter, r *http.Request) {
	var b Beacon
	r.Body = http.MaxBytesReader(nil, r.Body, maxBeaconBytes)
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		h.log.WarnContext(r.Context(), "dropping malformed beacon", slog.Any("error", err))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := b.Validate(); err != nil {
		h.log.WarnContext(r.Context(), "dropping invalid beacon",
			slog.String("metric", b.Metric), slog.Any("error", err))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.log.InfoContext(r.Context(), "web vital",
		slog.String("metric", b.Metric),
		slog.Float64("value", b.Value),
		slog.String("rating", b.Rating),
		slog.String("page", b.Page),
		slog.String("navigation_id", b.NavigationID),
	)

	if h.recorder != nil {
		if err := h.recorder.Record(r.Context(), b); err != nil {
			h.log.ErrorContext(r.Context(), "failed to count beacon", slog.Any("error", err))
		}
	}

	w.WriteHeader(http.StatusAccepted)
}

// Router mounts the beacon endpoint.
func Router(recorder Recorder, log *slog.Logger) chi.Router {
	if log == nil {
		log = slog.Default()
	}
	h := &handler{recorder: recorder, log: log}

	r := chi.NewRouter()
	r.Post("/", h.collect)
	return r
}
