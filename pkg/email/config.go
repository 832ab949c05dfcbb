package email

type Config struct {
	PostmarkServerToken string `env:"POSTMARK_SERVER_TOKEN"`
	SenderAddress       string `env:"EMAIL_SENDER_ADDRESS" envDefault:"no-reply@summitair.example"`
	SenderName          string `env:"EMAIL_SENDER_NAME" envDefault:"Summit Air Heating & Cooling"`
	DevOutputDir        string `env:"EMAIL_DEV_OUTPUT_DIR" envDefault:"./tmp/emails"`
}
