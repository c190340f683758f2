package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string        `env:"SERVER_PORT, default=8080"`
	Env             string        `env:"ENV, default=development"`
	SwaggerHost     string        `env:"SWAGGER_HOST"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Log      LogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Users    UsersConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL, default=info"`
	Pretty bool   `env:"LOG_PRETTY, default=false"`
}

type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER, default=mysql"`
	DSN             string        `env:"DB_DSN, default=user:password@tcp(localhost:3306)/users?charset=utf8mb4&parseTime=True&loc=Local"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS, default=25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS, default=10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=5m"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR, default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB, default=0"`
	TTL      time.Duration `env:"CACHE_TTL, default=5m"`
}

type UsersConfig struct {
	DefaultRoleName string `env:"DEFAULT_ROLE_NAME, default=customer"`
	BcryptCost      int    `env:"PASSWORD_BCRYPT_COST, default=10"`
}

// Load reads a .env file when present, then builds Config from the environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
