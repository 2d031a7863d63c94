package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// AppConfig holds environment driven configuration values.
// Sensitive data should never have defaults inside code and must be provided via env files or the environment.
type AppConfig struct {
	Env     string
	AppPort string
	// Gin framework configuration
	GinMode string
	// Security
	BcryptCost int
	JWTSecret  string
	JWTExpires time.Duration
	// Database
	DBDialect   string
	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	// Redis for caching and revoked tokens
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	CacheTTL      time.Duration
	// RabbitMQ for domain events
	RabbitMQURL      string
	RabbitMQExchange string
	// HTTP
	AllowedOrigins     []string
	RateLimitPerMinute int
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
	EnvTest        = "test"

	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
	DialectSQLite   = "sqlite"
)

// Load builds the configuration once during boot.
// Precedence: defaults -> config/config.yaml -> environment (a .env file is loaded into the environment first).
func Load() (AppConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	applyDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return AppConfig{}, fmt.Errorf("read config file: %w", err)
		}
	}
	v.AutomaticEnv()

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvDevelopment)
	v.SetDefault("port", "3610")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("salt_round", bcrypt.DefaultCost)
	v.SetDefault("jwt_expires", "10m")
	v.SetDefault("db_dialect", DialectPostgres)
	v.SetDefault("db_host", "127.0.0.1")
	v.SetDefault("db_port", "")
	v.SetDefault("db_user", "")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "")
	v.SetDefault("database_uri", "")
	v.SetDefault("redis_host", "")
	v.SetDefault("redis_port", 6379)
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_password", "")
	v.SetDefault("cache_ttl", "1m")
	v.SetDefault("rabbitmq_url", "")
	v.SetDefault("rabbitmq_exchange", "inkpost.events")
	v.SetDefault("allowed_origins", "*")
	v.SetDefault("rate_limit_per_minute", 60)
	v.SetDefault("log_level", "debug")
	v.SetDefault("log_path", "")
	v.SetDefault("log_max_size_mb", 100)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("log_max_age_days", 7)
	v.SetDefault("log_compress", false)
	v.SetDefault("jwt_secret", "")
}

func fromViper(v *viper.Viper) AppConfig {
	return AppConfig{
		Env:                strings.ToLower(strings.TrimSpace(v.GetString("app_env"))),
		AppPort:            v.GetString("port"),
		GinMode:            v.GetString("gin_mode"),
		BcryptCost:         v.GetInt("salt_round"),
		JWTSecret:          v.GetString("jwt_secret"),
		JWTExpires:         v.GetDuration("jwt_expires"),
		DBDialect:          strings.ToLower(strings.TrimSpace(v.GetString("db_dialect"))),
		DatabaseURI:        v.GetString("database_uri"),
		DBHost:             v.GetString("db_host"),
		DBPort:             v.GetString("db_port"),
		DBUser:             v.GetString("db_user"),
		DBPassword:         v.GetString("db_password"),
		DBName:             v.GetString("db_name"),
		RedisHost:          v.GetString("redis_host"),
		RedisPort:          v.GetInt("redis_port"),
		RedisDB:            v.GetInt("redis_db"),
		RedisPassword:      v.GetString("redis_password"),
		CacheTTL:           v.GetDuration("cache_ttl"),
		RabbitMQURL:        v.GetString("rabbitmq_url"),
		RabbitMQExchange:   v.GetString("rabbitmq_exchange"),
		AllowedOrigins:     splitList(v.GetString("allowed_origins")),
		RateLimitPerMinute: v.GetInt("rate_limit_per_minute"),
		LogLevel:           strings.ToLower(v.GetString("log_level")),
		LogPath:            v.GetString("log_path"),
		LogMaxSizeMB:       v.GetInt("log_max_size_mb"),
		LogMaxBackups:      v.GetInt("log_max_backups"),
		LogMaxAgeDays:      v.GetInt("log_max_age_days"),
		LogCompress:        v.GetBool("log_compress"),
	}
}

// Validate rejects configurations the server cannot start with.
func (c AppConfig) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.JWTExpires <= 0 {
		return fmt.Errorf("JWT_EXPIRES must be positive, got %s", c.JWTExpires)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("SALT_ROUND must be within %d..%d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	switch c.Env {
	case EnvProduction, EnvDevelopment, EnvTest:
	default:
		return fmt.Errorf("unknown APP_ENV %q", c.Env)
	}
	switch c.DBDialect {
	case DialectPostgres, DialectMySQL, DialectSQLite:
	default:
		return fmt.Errorf("unsupported DB_DIALECT %q", c.DBDialect)
	}
	return nil
}

// splitList turns "a, b,c" into []string{"a","b","c"}.
func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
