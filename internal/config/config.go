package config

import "github.com/joeshaw/envdecode"

// Config is decoded from BULLETIN_* environment variables. main loads
// an optional .env file first, so a checked-in dotenv works for local
// runs.
type Config struct {
	Addr     string `env:"BULLETIN_ADDR,default=:8080"`
	DBDriver string `env:"BULLETIN_DB_DRIVER,default=sqlite3"`
	DBSource string `env:"BULLETIN_DB_SOURCE,default=bulletin.db"`
	LogLevel string `env:"BULLETIN_LOG_LEVEL,default=info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
