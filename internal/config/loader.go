package config

import (
	"github.com/Field-devs/CentralDeAuto-sub000/internal/db"
	"github.com/spf13/viper"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// CEPConfig holds the postal-code lookup service settings.
type CEPConfig struct {
	BaseURL string
}

// Config is the full application configuration.
type Config struct {
	Database db.Config
	Server   ServerConfig
	CEP      CEPConfig
}

// Default returns the configuration used when no file or env overrides are
// present.
func Default() Config {
	return Config{
		Database: db.DefaultConfig(),
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		CEP: CEPConfig{
			BaseURL: "https://viacep.com.br/ws",
		},
	}
}

// Load reads config.yaml from the given path, with environment overrides
// mapped under the APP prefix (APP_DATABASE_HOST and friends).
func Load(configPath string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()
	v.SetEnvPrefix("APP")

	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.dbname")
	v.BindEnv("database.sslmode")
	v.BindEnv("server.addr")
	v.BindEnv("cep.base_url")

	// A missing config file is fine: defaults plus env overrides apply.
	_ = v.ReadInConfig()

	if v.IsSet("database.host") {
		cfg.Database.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.Database.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.Database.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.Database.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.Database.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.Database.SSLMode = v.GetString("database.sslmode")
	}
	if v.IsSet("server.addr") {
		cfg.Server.Addr = v.GetString("server.addr")
	}
	if v.IsSet("server.allowed_origins") {
		cfg.Server.AllowedOrigins = v.GetStringSlice("server.allowed_origins")
	}
	if v.IsSet("cep.base_url") {
		cfg.CEP.BaseURL = v.GetString("cep.base_url")
	}

	return cfg, nil
}
