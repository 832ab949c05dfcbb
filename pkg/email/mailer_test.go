package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/summitair/website/pkg/email"
)

func TestSendEmailParams_Validate(t *testing.T) {
	valid := email.SendEmailParams{
		SendTo:   "owner@summitair.example",
		Subject:  "New contact request",
		BodyHTML: "<p>hi</p>",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*email.SendEmailParams)
	}{
		{"missing recipient", func(p *email.SendEmailParams) { p.SendTo = "" }},
		{"malformed recipient", func(p *email.SendEmailParams) { p.SendTo = "not-an-address" }},
		{"missing subject", func(p *email.SendEmailParams) { p.Subject = "" }},
		{"missing body", func(p *email.SendEmailParams) { p.BodyHTML = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestNewPostmarkSender_RequiresToken(t *testing.T) {
	_, err := email.NewPostmarkSender(email.Config{})
	require.ErrorIs(t, err, email.ErrMissingToken)
}

func TestDevSender(t *testing.T) {
	dir := t.TempDir()
	sender := email.NewDevSender(dir)

	err := sender.SendEmail(context.Background(), email.SendEmailParams{
		SendTo:   "owner@summitair.example",
		Subject:  "New contact request",
		BodyHTML: "<p>hi</p>",
		Tag:      "contact-lead",
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2, "expected an .html body and a .json envelope")

	var htmlFile, jsonFile string
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".html":
			htmlFile = e.Name()
		case ".json":
			jsonFile = e.Name()
		}
	}
	require.NotEmpty(t, htmlFile)
	require.NotEmpty(t, jsonFile)
	assert.Contains(t, htmlFile, "contact-lead")

	body, err := os.ReadFile(filepath.Join(dir, htmlFile))
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(body))

	envelope, err := os.ReadFile(filepath.Join(dir, jsonFile))
	require.NoError(t, err)

	var meta map[string]string
	require.NoError(t, json.Unmarshal(envelope, &meta))
	assert.Equal(t, "owner@summitair.example", meta["send_to"])
	assert.Equal(t, "New contact request", meta["subject"])
}

func TestDevSender_RejectsInvalidParams(t *testing.T) {
	sender := email.NewDevSender(t.TempDir())
	err := sender.SendEmail(context.Background(), email.SendEmailParams{})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}
