package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress     = ":8080"
	defaultTrading212Base = "https://live.trading212.com"
)

type Config struct {
	Env        string
	DB         db
	Server     server
	Logger     logger
	Credential credential
	Trading212 trading212
}

type db struct {
	DatabaseURI string
	Migrations  string
}

type server struct {
	RunAddress string
}

type logger struct {
	LogLevel string
}

// credential holds the server-side base material for per-user key
// derivation. An empty Secret is a fatal condition for every
// connect/use flow; the check lives at the service layer because the
// rest of the application must keep working without it.
type credential struct {
	Secret string
}

type trading212 struct {
	BaseURL string
}

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	config := Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server:     server{RunAddress: viper.GetString("run_address")},
		Logger:     logger{LogLevel: viper.GetString("log_level")},
		Credential: credential{Secret: viper.GetString("credential_secret")},
		Trading212: trading212{BaseURL: viper.GetString("trading212_base_url")},
	}

	if config.Env == "" {
		config.Env = EnvLocal
	}
	if config.DB.Migrations == "" {
		config.DB.Migrations = "migrations"
	}
	if config.Server.RunAddress == "" {
		config.Server.RunAddress = defaultRunAddress
	}
	if config.Trading212.BaseURL == "" {
		config.Trading212.BaseURL = defaultTrading212Base
	}

	return &config
}
