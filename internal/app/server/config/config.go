package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	// Fallback secrets for local runs; real deployments set
	// ACCESS_SECRET / REFRESH_SECRET in the environment.
	devAccessSecret  = "DevAccessSecret"
	devRefreshSecret = "DevRefreshSecret"
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
	Token  Token
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type Token struct {
	AccessSecret  string        `env:"ACCESS_SECRET"`
	RefreshSecret string        `env:"REFRESH_SECRET"`
	AccessTTL     time.Duration `env:"ACCESS_TTL"`
	RefreshTTL    time.Duration `env:"REFRESH_TTL"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", ":8080")
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("migrations_path", "migrations")
	viper.SetDefault("access_ttl", 15*time.Minute)
	viper.SetDefault("refresh_ttl", 30*24*time.Hour)

	config := Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{RunAddress: viper.GetString("run_address")},
		Logger: Logger{LogLevel: viper.GetString("log_level")},
		Token: Token{
			AccessSecret:  viper.GetString("access_secret"),
			RefreshSecret: viper.GetString("refresh_secret"),
			AccessTTL:     viper.GetDuration("access_ttl"),
			RefreshTTL:    viper.GetDuration("refresh_ttl"),
		},
	}
	if config.Token.AccessSecret == "" {
		config.Token.AccessSecret = devAccessSecret
	}
	if config.Token.RefreshSecret == "" {
		config.Token.RefreshSecret = devRefreshSecret
	}

	return &config
}
