package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       int            `json:"port"`
	Env        string         `json:"env"`
	Pepper     string         `json:"pepper"`
	SessionKey string         `json:"session_key"`
	Database   PostgresConfig `json:"database"`
}

func (c Config) IsProd() bool {
	return c.Env == "prod"
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (pc PostgresConfig) ConnectionInfo() string {
	if pc.Password == "" {
		return fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=disable", pc.Host, pc.Port, pc.User, pc.Name)
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", pc.Host, pc.Port, pc.User, pc.Password, pc.Name)
}

// DSN returns the connection string for the database. The DATABASE_URL
// environment variable takes precedence over the assembled config values,
// so tests and deployments can point at a distinct store.
func (c Config) DSN() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return c.Database.ConnectionInfo()
}

func DefaultConfig() Config {
	return Config{
		Port:       3000,
		Env:        "dev",
		Pepper:     "secret-random-string",
		SessionKey: "secret-session-key",
		Database:   DefaultPostgresConfig(),
	}
}

func DefaultPostgresConfig() PostgresConfig {
	return PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "",
		Name:     "warbler",
	}
}

// LoadConfig loads configuration from a .config.json file if present,
// otherwise it returns the default dev setup. In production the file is
// required. A .env file, if present, is loaded first so that environment
// overrides like DATABASE_URL are in place before anything connects.
func LoadConfig(isProd bool) Config {
	godotenv.Load()

	f, err := os.Open(".config.json")
	if err != nil {
		if isProd {
			panic("No .config.json file provided, it is required in production.")
		}
		fmt.Println("Using the default dev config.")
		return DefaultConfig()
	}
	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		panic(err)
	}
	fmt.Println("Successfully loaded .config.json")
	return c
}
