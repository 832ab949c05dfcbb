package contact

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/summitair/website/pkg/contactform"
)

const draftCookieName = "sa_draft"

// maxBodyBytes bounds request bodies well above the largest legal form.
const maxBodyBytes = 64 << 10

type handler struct {
	svc *Service
	log *slog.Logger
}

// parseRecord accepts either a JSON object of string fields or a classic
// urlencoded form post, so the page works with and without scripting.
func (h *handler) parseRecord(r *http.Request) (map[string]string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		record := make(map[string]string)
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			return nil, err
		}
		return record, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	record := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		record[key] = r.PostForm.Get(key)
	}
	return record, nil
}

func (h *handler) submit(w http.ResponseWriter, r *http.Request) {
	record, err := h.parseRecord(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}

	draftID := draftIDFromCookie(r)

	result, err := h.svc.Submit(r.Context(), record, draftID)
	if err != nil {
		h.log.ErrorContext(r.Context(), "submit failed", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "something went wrong, please try again"})
		return
	}

	if !result.Accepted {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"errors":        result.Errors,
			"first_invalid": result.FirstInvalid,
			"sanitized":     result.Sanitized,
		})
		return
	}

	clearDraftCookie(w)
	writeJSON(w, http.StatusAccepted, map[string]string{"lead_id": result.LeadID})
}

func (h *handler) saveDraft(w http.ResponseWriter, r *http.Request) {
	record, err := h.parseRecord(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}

	draftID := draftIDFromCookie(r)
	if draftID == "" {
		draftID = uuid.NewString()
	}

	if err := h.svc.SaveDraft(r.Context(), draftID, record); err != nil {
		h.log.ErrorContext(r.Context(), "draft save failed", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not save draft"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     draftCookieName,
		Value:    draftID,
		Path:     "/",
		MaxAge:   int(h.svc.cfg.DraftTTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) getDraft(w http.ResponseWriter, r *http.Request) {
	draftID := draftIDFromCookie(r)
	if draftID == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	fields, err := h.svc.GetDraft(r.Context(), draftID)
	if errors.Is(err, ErrDraftNotFound) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "draft load failed", slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "could not load draft"})
		return
	}

	writeJSON(w, http.StatusOK, fields)
}

// fieldRules exposes the form's field metadata so the page can mirror
// required flags and length limits client-side.
func (h *handler) fieldRules(w http.ResponseWriter, r *http.Request) {
	type fieldInfo struct {
		Field    string `json:"field"`
		Label    string `json:"label"`
		Required bool   `json:"required"`
		MinLen   int    `json:"min_len,omitempty"`
		MaxLen   int    `json:"max_len,omitempty"`
	}

	fields := contactform.Fields()
	out := make([]fieldInfo, 0, len(fields))
	for _, f := range fields {
		rule, _ := contactform.RuleFor(f)
		out = append(out, fieldInfo{
			Field:    rule.Field,
			Label:    rule.Label,
			Required: rule.Required,
			MinLen:   rule.MinLen,
			MaxLen:   rule.MaxLen,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func draftIDFromCookie(r *http.Request) string {
	c, err := r.Cookie(draftCookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}

func clearDraftCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     draftCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
