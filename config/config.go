package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer          HttpServerConfig          `envconfig:"HTTP_SERVER"`
	Database            DatabaseConfig            `envconfig:"DATABASE"`
	Redis               RedisConfig               `envconfig:"REDIS"`
	MessageStream       MessageStreamConfig       `envconfig:"MESSAGE_STREAM"`
	HttpClient          HttpClientConfig          `envconfig:"HTTP_CLIENT"`
	UserService         UserServiceConfig         `envconfig:"USER_SERVICE"`
	NotificationService NotificationServiceConfig `envconfig:"NOTIFICATION_SERVICE"`
	Gateway             GatewayConfig             `envconfig:"GATEWAY"`
	Booking             BookingConfig             `envconfig:"BOOKING"`
}

type HttpServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5432"`
	Username string `envconfig:"USERNAME" default:"postgres"`
	Password string `envconfig:"PASSWORD" default:"postgres"`
	Name     string `envconfig:"NAME" default:"autocare"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD" default:""`
	DB       int    `envconfig:"DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5672"`
	Username string `envconfig:"USERNAME" default:"guest"`
	Password string `envconfig:"PASSWORD" default:"guest"`
}

type HttpClientConfig struct {
	Type           string `envconfig:"TYPE" default:"consecutive"`
	Timeout        int    `envconfig:"TIMEOUT" default:"30"`
	Threshold      int64  `envconfig:"THRESHOLD" default:"5"`
	WindowDuration int    `envconfig:"WINDOW_DURATION" default:"60"`
}

type UserServiceConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"8081"`
}

type NotificationServiceConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"8082"`
}

// GatewayConfig holds the mobile-money push-payment gateway settings.
// CallbackURL must be a publicly reachable HTTPS endpoint in production;
// it is validated before any push request is sent.
type GatewayConfig struct {
	BaseURL        string `envconfig:"BASE_URL" default:"https://sandbox.safaricom.co.ke"`
	ConsumerKey    string `envconfig:"CONSUMER_KEY"`
	ConsumerSecret string `envconfig:"CONSUMER_SECRET"`
	Shortcode      string `envconfig:"SHORTCODE"`
	Passkey        string `envconfig:"PASSKEY"`
	CallbackURL    string `envconfig:"CALLBACK_URL"`
}

type BookingConfig struct {
	NumberPrefix            string `envconfig:"NUMBER_PREFIX" default:"ACS"`
	Timezone                string `envconfig:"TIMEZONE" default:"UTC"`
	WindowDays              int    `envconfig:"WINDOW_DAYS" default:"90"`
	CancellationWindowHours int    `envconfig:"CANCELLATION_WINDOW_HOURS" default:"24"`
	ReconcileDelayMinutes   int    `envconfig:"RECONCILE_DELAY_MINUTES" default:"3"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return &cfg
}
