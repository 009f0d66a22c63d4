// config/config.go
package config

import (
	"os"

	"go.uber.org/zap"
)

// Mode says whether a provider talks to its real upstream or is simulated.
// It is resolved once at startup from credential presence and never
// re-read per request.
type Mode string

const (
	ModeMock Mode = "mock"
	ModeReal Mode = "real"
)

type Config struct {
	Server     ServerConfig
	OpenAI     OpenAIConfig
	Mpesa      MpesaConfig
	PayPal     PayPalConfig
	PaymentLog PaymentLogConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type OpenAIConfig struct {
	APIKey string
}

type MpesaConfig struct {
	Environment    string
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	CallbackURL    string
}

// PayPalConfig is read but unused by logic; the card/wallet provider has
// no real mode in this system. Reserved for a future integration.
type PayPalConfig struct {
	ClientID  string
	Secret    string
	WebhookID string
}

type PaymentLogConfig struct {
	Path string
}

// Load reads the environment once and logs one status line per provider.
// Absent credentials are a valid configuration, not an error.
func Load(logger *zap.Logger) *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Env:  getEnv("ENVIRONMENT", "development"),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
		},
		Mpesa: MpesaConfig{
			Environment:    getEnv("MPESA_ENVIRONMENT", "sandbox"),
			ConsumerKey:    getEnv("MPESA_CONSUMER_KEY", ""),
			ConsumerSecret: getEnv("MPESA_CONSUMER_SECRET", ""),
			ShortCode:      getEnv("MPESA_SHORTCODE", ""),
			Passkey:        getEnv("MPESA_PASSKEY", ""),
			CallbackURL:    getEnv("MPESA_CALLBACK_URL", "https://yourdomain.com/mpesa-callback"),
		},
		PayPal: PayPalConfig{
			ClientID:  getEnv("PAYPAL_CLIENT_ID", ""),
			Secret:    getEnv("PAYPAL_SECRET", ""),
			WebhookID: getEnv("PAYPAL_WEBHOOK_ID", ""),
		},
		PaymentLog: PaymentLogConfig{
			Path: getEnv("PAYMENT_LOG_PATH", "paypal_payments.log"),
		},
	}

	cfg.logProviderModes(logger)

	return cfg
}

// AIMode is Real iff an API key is present.
func (c *Config) AIMode() Mode {
	if c.OpenAI.APIKey != "" {
		return ModeReal
	}
	return ModeMock
}

// MpesaMode is Real iff all four credentials are present.
func (c *Config) MpesaMode() Mode {
	m := c.Mpesa
	if m.ConsumerKey != "" && m.ConsumerSecret != "" && m.ShortCode != "" && m.Passkey != "" {
		return ModeReal
	}
	return ModeMock
}

func (c *Config) logProviderModes(logger *zap.Logger) {
	if c.AIMode() == ModeReal {
		logger.Info("using real OpenAI")
	} else {
		logger.Info("using mock AI mode (no API key)")
	}

	if c.MpesaMode() == ModeReal {
		logger.Info("using real M-Pesa sandbox",
			zap.String("environment", c.Mpesa.Environment))
	} else {
		logger.Info("using mock M-Pesa mode (no credentials)")
	}

	// The card/wallet provider is always simulated; credential presence
	// is still reported for parity with the other providers.
	if c.PayPal.ClientID != "" && c.PayPal.Secret != "" {
		logger.Info("using real PayPal credentials")
	} else {
		logger.Info("using mock PayPal mode (no credentials)")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
