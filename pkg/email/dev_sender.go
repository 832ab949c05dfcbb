package email

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// DevSender writes messages to a local directory instead of delivering
// them, so outbound mail can be inspected during development without a
// provider account. Each message becomes an .html body plus a .json
// envelope side by side.
type DevSender struct {
	dir string
}

// NewDevSender returns a sender writing into dir, which is created on first
// send if missing.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

type devEnvelope struct {
	SentAt  string `json:"sent_at"`
	SendTo  string `json:"send_to"`
	Subject string `json:"subject"`
	Tag     string `json:"tag,omitempty"`
}

func (s *DevSender) SendEmail(_ context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return errors.Join(ErrInvalidParams, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	now := time.Now()
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), filenameSlug(params.Tag, params.Subject))

	if err := os.WriteFile(filepath.Join(s.dir, base+".html"), []byte(params.BodyHTML), 0o644); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	envelope, err := json.MarshalIndent(devEnvelope{
		SentAt:  now.Format(time.RFC3339),
		SendTo:  params.SendTo,
		Subject: params.Subject,
		Tag:     params.Tag,
	}, "", "  ")
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, base+".json"), envelope, 0o644); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}

// filenameSlug derives a filesystem-safe name from the tag, falling back to
// the subject and finally to "email".
func filenameSlug(tag, subject string) string {
	s := tag
	if s == "" {
		s = subject
	}
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")

	const maxLen = 100
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
