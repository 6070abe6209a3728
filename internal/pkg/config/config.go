package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, fees, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Kafka   KafkaConfig
	Auction AuctionConfig
	Coupon  CouponConfig
	Order   OrderConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"marketplace-events"`
	Enabled bool     `envconfig:"KAFKA_ENABLED" default:"true"`
}

type AuctionConfig struct {
	SweepInterval time.Duration `envconfig:"AUCTION_SWEEP_INTERVAL" default:"5s"`
}

type CouponConfig struct {
	// Template handed out on a buyer's first completed purchase. When the
	// template is missing or exhausted the issuer falls back to a random
	// available one.
	FirstPurchaseCouponID string `envconfig:"COUPON_FIRST_PURCHASE_ID" default:""`
	DefaultValidityDays   int    `envconfig:"COUPON_DEFAULT_VALIDITY_DAYS" default:"30"`
}

type OrderConfig struct {
	DefaultShippingFee float64 `envconfig:"ORDER_DEFAULT_SHIPPING_FEE" default:"100"`
	// Unit-price ceiling for the item given away by a buy-one-get-one coupon.
	BogoPriceCeiling float64 `envconfig:"ORDER_BOGO_PRICE_CEILING" default:"500"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
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
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Kafka: KafkaConfig{
			Enabled: false,
		},
		Auction: AuctionConfig{
			SweepInterval: 5 * time.Second,
		},
		Coupon: CouponConfig{
			DefaultValidityDays: 30,
		},
		Order: OrderConfig{
			DefaultShippingFee: 100,
			BogoPriceCeiling:   500,
		},
	}
}
