package contact

import "time"

type Config struct {
	OfficeEmail   string        `env:"CONTACT_OFFICE_EMAIL" envDefault:"office@summitair.example"`
	LeadTTL       time.Duration `env:"CONTACT_LEAD_TTL" envDefault:"720h"`
	DraftTTL      time.Duration `env:"CONTACT_DRAFT_TTL" envDefault:"24h"`
	SubmitPerHour int64         `env:"CONTACT_SUBMIT_PER_HOUR" envDefault:"5"`
}
