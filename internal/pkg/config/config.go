package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, provider
//   credentials, etc.), security settings
// - default: Values common across all environments (channel, pass format,
//   timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Mail    MailConfig
	SMS     SMSConfig
	Gate    GateConfig
	Storage StorageConfig
	Webhook WebhookConfig
	CORS    CORSConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Absolute base URL used when building the hosted QR-view link in SMS.
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MailConfig struct {
	Host     string `envconfig:"SMTP_HOST" required:"true"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME" required:"true"`
	Password string `envconfig:"SMTP_PASSWORD" required:"true"`
	From     string `envconfig:"MAIL_FROM" required:"true"`
	Subject  string `envconfig:"MAIL_SUBJECT" default:"Your parking reservation is confirmed"`
}

type SMSConfig struct {
	AccountSID string `envconfig:"TWILIO_ACCOUNT_SID" default:""`
	AuthToken  string `envconfig:"TWILIO_AUTH_TOKEN" default:""`
	From       string `envconfig:"TWILIO_FROM" default:""`
}

type GateConfig struct {
	Host      string `envconfig:"GATE_FTP_HOST" default:""`
	Port      int    `envconfig:"GATE_FTP_PORT" default:"21"`
	User      string `envconfig:"GATE_FTP_USER" default:""`
	Password  string `envconfig:"GATE_FTP_PASSWORD" default:""`
	RemoteDir string `envconfig:"GATE_FTP_REMOTE_DIR" default:"/reservations"`
}

type StorageConfig struct {
	Endpoint  string `envconfig:"STORAGE_ENDPOINT" default:""`
	AccessKey string `envconfig:"STORAGE_ACCESS_KEY" default:""`
	SecretKey string `envconfig:"STORAGE_SECRET_KEY" default:""`
	UseTLS    bool   `envconfig:"STORAGE_USE_TLS" default:"true"`
	Bucket    string `envconfig:"STORAGE_BUCKET" default:"parkgate-assets"`
	LogoKey   string `envconfig:"STORAGE_LOGO_KEY" default:"branding/logo.png"`
}

type WebhookConfig struct {
	// Shopify webhook signing secret. Verification ships disabled; see
	// middleware.SignatureVerification.
	Secret          string `envconfig:"WEBHOOK_SECRET" default:""`
	VerifySignature bool   `envconfig:"WEBHOOK_VERIFY_SIGNATURE" default:"false"`

	NotifyChannel      string `envconfig:"NOTIFY_CHANNEL" default:"email"`
	UploadToGateServer bool   `envconfig:"UPLOAD_TO_GATE_SERVER" default:"false"`
	GateUploadFatal    bool   `envconfig:"GATE_UPLOAD_FATAL" default:"false"`

	// Gate pass numbers are PassPrefix + order number, zero-padded to PassLength.
	PassPrefix string `envconfig:"PASS_PREFIX" default:"77"`
	PassLength int    `envconfig:"PASS_LENGTH" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool     `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c *GateConfig) DialAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c *GateConfig) Configured() bool {
	return c.Host != ""
}

func (c *StorageConfig) Configured() bool {
	return c.Endpoint != ""
}

func (c *SMSConfig) Configured() bool {
	return c.AccountSID != ""
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:          "8889", // Test port
			PublicBaseURL: "http://localhost:8889",
		},
		Redis: RedisConfig{
			Addr: "localhost:16379", // Test Redis port
		},
		Mail: MailConfig{
			Host:     "localhost",
			Port:     1025,
			Username: "test",
			Password: "test",
			From:     "noreply@parkgate.test",
			Subject:  "Your parking reservation is confirmed",
		},
		Webhook: WebhookConfig{
			NotifyChannel: "email",
			PassPrefix:    "77",
			PassLength:    10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
