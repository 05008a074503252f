package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Mongo struct {
		URI                  string `yaml:"uri"`
		Database             string `yaml:"database"`
		IngredientCollection string `yaml:"ingredient_collection"`
	} `yaml:"mongo"`

	JWT struct {
		Secret     string `yaml:"secret"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"jwt"`
}

var AppConfig *Config

// LoadConfig resolves configuration from, in order of precedence:
// environment variables (a .env file is loaded first if present), an
// optional yaml file at CONFIG_PATH, and local-development defaults.
func LoadConfig() {
	// Missing .env is fine; environment may be set by the shell.
	_ = godotenv.Load()

	cfg := defaults()

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	}

	applyEnv(cfg)

	AppConfig = cfg
}

func defaults() *Config {
	var cfg Config
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8000
	cfg.Server.Env = "development"
	cfg.Mongo.URI = "mongodb://localhost:27017"
	cfg.Mongo.Database = "ayurcare"
	cfg.Mongo.IngredientCollection = "ingredients"
	cfg.JWT.Secret = "local-development-secret"
	cfg.JWT.TTLMinutes = 30
	return &cfg
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("MONGO_DB"); v != "" {
		cfg.Mongo.Database = v
	}
	if v := os.Getenv("INGREDIENT_COLLECTION"); v != "" {
		cfg.Mongo.IngredientCollection = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("JWT_TTL_MINUTES"); v != "" {
		if ttl, err := strconv.Atoi(v); err == nil {
			cfg.JWT.TTLMinutes = ttl
		}
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
