package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"tokoaing.db"`

	Admin     Admin     `envPrefix:"ADMIN_"`
	Retention Retention `envPrefix:"RETENTION_"`
}

type Admin struct {
	// bcrypt hash of the admin panel password; never the plaintext
	PasswordHash string        `env:"PASSWORD_HASH,required"`
	JWTSecret    string        `env:"JWT_SECRET,required"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"2h"`
}

type Retention struct {
	// read private messages older than this are purged by the daily job
	ReadMessageMaxAge time.Duration `env:"READ_MESSAGE_MAX_AGE" envDefault:"720h"`
	PurgeSchedule     string        `env:"PURGE_SCHEDULE" envDefault:"0 3 * * *"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
