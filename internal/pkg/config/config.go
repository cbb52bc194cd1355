package config

import (
	"fmt"
	"time"
	_ "time/tzdata" // BOOKING_TIMEZONE must resolve in scratch images

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - default: local-development values shared by all four services
// - no default: secrets; the service that needs one fails at startup without it
//   (see bootstrap.NewJWTService)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Auth       AuthConfig
	Redis      RedisConfig
	AMQP       AMQPConfig
	Downstream DownstreamConfig
	RateLimit  RateLimitConfig
	Cache      CacheConfig
	Booking    BookingConfig
}

// Service identifies which binary is loading the configuration.
type Service struct {
	Name        string
	DefaultPort string
}

var (
	WeatherService = Service{Name: "Weather Service", DefaultPort: "5000"}
	AuthService    = Service{Name: "Auth Service", DefaultPort: "5001"}
	RoomService    = Service{Name: "Room Service", DefaultPort: "5002"}
	BookingService = Service{Name: "Booking Service", DefaultPort: "5004"}
)

type ServerConfig struct {
	Port            string        `envconfig:"PORT"`
	Name            string        `ignored:"true"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASS" default:"postgres"`
	DBName   string `envconfig:"DB_NAME" default:"postgres"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET"`
	Duration string `envconfig:"JWT_DURATION" default:"1h"`
}

const (
	PasswordModeBcrypt = "bcrypt"
	PasswordModePlain  = "plain"
)

type AuthConfig struct {
	// bcrypt or plain
	PasswordMode string `envconfig:"AUTH_PASSWORD_MODE" default:"bcrypt"`
	IssueToken   bool   `envconfig:"AUTH_ISSUE_TOKEN" default:"true"`
}

type RedisConfig struct {
	Addr      string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password  string        `envconfig:"REDIS_PASSWORD"`
	DB        int           `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string        `envconfig:"REDIS_KEY_PREFIX" default:"weather"`
	Timeout   time.Duration `envconfig:"REDIS_TIMEOUT" default:"2s"`
}

type AMQPConfig struct {
	// empty URL disables event publishing
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"bookings"`
}

type DownstreamConfig struct {
	RoomServiceURL    string        `envconfig:"ROOM_SERVICE_URL" default:"http://localhost:5002"`
	WeatherServiceURL string        `envconfig:"WEATHER_SERVICE_URL" default:"http://localhost:5000"`
	Timeout           time.Duration `envconfig:"DOWNSTREAM_TIMEOUT" default:"5s"`
}

type RateLimitConfig struct {
	LoginPerSecond float64 `envconfig:"RATE_LIMIT_LOGIN_RPS" default:"5"`
	LoginBurst     int     `envconfig:"RATE_LIMIT_LOGIN_BURST" default:"10"`
	// per-IP buckets unused for this long are dropped
	IdleTTL time.Duration `envconfig:"RATE_LIMIT_IDLE_TTL" default:"10m"`
}

type CacheConfig struct {
	RoomsTTL        time.Duration `envconfig:"CACHE_ROOMS_TTL" default:"5m"`
	CleanupInterval time.Duration `envconfig:"CACHE_CLEANUP_INTERVAL" default:"10m"`
}

type BookingConfig struct {
	// calendar used to decide what "today" is for past-date checks
	TimeZone string `envconfig:"BOOKING_TIMEZONE" default:"UTC"`

	// when set, booking routes need a bearer token whose user matches the request
	RequireToken bool `envconfig:"BOOKINGS_REQUIRE_TOKEN" default:"false"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC only for configs built without LoadConfig, which
// rejects unknown zones.
func (c *BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig(svc Service) (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := time.LoadLocation(cfg.Booking.TimeZone); err != nil {
		return Config{}, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", cfg.Booking.TimeZone, err)
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = svc.DefaultPort
	}
	cfg.Server.Name = svc.Name
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889",
			Name:            "Test Service",
			ShutdownTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Auth: AuthConfig{
			PasswordMode: PasswordModeBcrypt,
			IssueToken:   true,
		},
		Redis: RedisConfig{
			Addr:      "localhost:16379",
			KeyPrefix: "weather-test",
			Timeout:   time.Second,
		},
		AMQP: AMQPConfig{
			Exchange: "bookings-test",
		},
		Downstream: DownstreamConfig{
			RoomServiceURL:    "http://localhost:5002",
			WeatherServiceURL: "http://localhost:5000",
			Timeout:           time.Second,
		},
		RateLimit: RateLimitConfig{
			LoginPerSecond: 100,
			LoginBurst:     100,
			IdleTTL:        time.Minute,
		},
		Cache: CacheConfig{
			RoomsTTL:        time.Minute,
			CleanupInterval: time.Minute,
		},
		Booking: BookingConfig{
			TimeZone: "UTC",
		},
	}
}
