package config

import "time"

type Twilio struct {
	AccountSID string        `env:"TWILIO_ACCOUNT_SID,required,notEmpty"`
	AuthToken  string        `env:"TWILIO_AUTH_TOKEN,required,notEmpty"        json:"-"`
	ServiceSID string        `env:"TWILIO_VERIFY_SERVICE_SID,required,notEmpty"`
	BaseURL    string        `env:"TWILIO_VERIFY_BASE_URL"                     envDefault:"https://verify.twilio.com"`
	Timeout    time.Duration `env:"TWILIO_TIMEOUT"                             envDefault:"10s"`
}
