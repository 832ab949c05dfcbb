package contact

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/summitair/website/pkg/catalog"
	"github.com/summitair/website/pkg/contactform"
	"github.com/summitair/website/pkg/email"
)

// SubmitResult is returned by Submit. When Accepted is false, Errors maps
// field names to messages, FirstInvalid names the field the form should
// focus, and Sanitized holds the cleaned-up values so the page can echo
// them back into the inputs.
type SubmitResult struct {
	Accepted     bool
	LeadID       string
	Errors       map[string]string
	FirstInvalid string
	Sanitized    map[string]string
}

// Service runs submissions through the form rules, stores accepted leads and
// notifies the office inbox.
type Service struct {
	cfg    Config
	store  Store
	sender email.EmailSender
	log    *slog.Logger
	now    func() time.Time
}

// NewService wires the submission flow. sender may be nil in environments
// without outbound mail; accepted leads are then stored only.
func NewService(cfg Config, store Store, sender email.EmailSender, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		cfg:    cfg,
		store:  store,
		sender: sender,
		log:    log,
		now:    time.Now,
	}
}

// Submit evaluates record against the form rules. Invalid submissions return
// the per-field errors without touching storage. Valid ones are persisted,
// the office is notified, and any draft under draftID is cleaned up.
func (s *Service) Submit(ctx context.Context, record map[string]string, draftID string) (SubmitResult, error) {
	result := contactform.EvaluateForm(record)
	if !result.Valid {
		return SubmitResult{
			Errors:       result.Errors,
			FirstInvalid: result.FirstInvalid(),
			Sanitized:    result.SanitizedData,
		}, nil
	}

	lead := Lead{
		ID:          uuid.NewString(),
		Name:        result.SanitizedData[contactform.FieldName],
		Email:       result.SanitizedData[contactform.FieldEmail],
		Phone:       result.SanitizedData[contactform.FieldPhone],
		Service:     result.SanitizedData[contactform.FieldService],
		Message:     result.SanitizedData[contactform.FieldMessage],
		SubmittedAt: s.now().UTC(),
	}

	if err := s.store.SaveLead(ctx, lead, s.cfg.LeadTTL); err != nil {
		return SubmitResult{}, err
	}

	s.notifyOffice(ctx, lead)

	if draftID != "" {
		if err := s.store.DeleteDraft(ctx, draftID); err != nil {
			// Draft cleanup is best-effort; the TTL will reap it anyway.
			s.log.WarnContext(ctx, "failed to delete draft after submit",
				slog.String("draft_id", draftID), slog.Any("error", err))
		}
	}

	s.log.InfoContext(ctx, "lead accepted",
		slog.String("lead_id", lead.ID),
		slog.String("service", lead.Service),
	)

	return SubmitResult{Accepted: true, LeadID: lead.ID}, nil
}

// SaveDraft stores the raw field values under id. Drafts are not validated;
// they exist so a visitor can resume typing later.
func (s *Service) SaveDraft(ctx context.Context, id string, record map[string]string) error {
	fields := make(map[string]string, len(record))
	for _, field := range contactform.Fields() {
		if v, ok := record[field]; ok {
			fields[field] = v
		}
	}
	return s.store.SaveDraft(ctx, id, fields, s.cfg.DraftTTL)
}

// GetDraft returns the stored draft for id, or ErrDraftNotFound.
func (s *Service) GetDraft(ctx context.Context, id string) (map[string]string, error) {
	return s.store.GetDraft(ctx, id)
}

// notifyOffice emails the lead to the office inbox. Delivery failures are
// logged but never fail the submission; the lead is already stored.
func (s *Service) notifyOffice(ctx context.Context, lead Lead) {
	if s.sender == nil || s.cfg.OfficeEmail == "" {
		return
	}

	serviceName := lead.Service
	if svc, ok := catalog.ByID(lead.Service); ok {
		serviceName = svc.Name
	}

	body := fmt.Sprintf(
		`<h2>New contact request</h2>
<p><strong>Name:</strong> %s<br>
<strong>Email:</strong> %s<br>
<strong>Phone:</strong> %s<br>
<strong>Service:</strong> %s</p>
<p>%s</p>
<p><small>Lead ID: %s</small></p>`,
		html.EscapeString(lead.Name),
		html.EscapeString(lead.Email),
		html.EscapeString(lead.Phone),
		html.EscapeString(serviceName),
		html.EscapeString(lead.Message),
		lead.ID,
	)

	err := s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   s.cfg.OfficeEmail,
		Subject:  fmt.Sprintf("New contact request: %s", serviceName),
		BodyHTML: body,
		Tag:      "contact-lead",
	})
	if err != nil {
		s.log.ErrorContext(ctx, "failed to notify office",
			slog.String("lead_id", lead.ID), slog.Any("error", err))
	}
}
