// Package config loads the dashboard's runtime configuration from the
// environment (optionally seeded by a .env file), following the same
// env-var names the original dashboard daemon used.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the HTTP collaborator needs to reach the
// daemon's JSON-RPC interface and to serve its own endpoints.
type Config struct {
	RPCHost        string
	RPCPort        int
	RPCUser        string
	RPCPassword    string
	RPCCookiePath  string
	DashboardPort  int
	WalletName     string
	HRP            string
	DerivationPath string
}

// Load reads a .env file if present (missing files are not an error —
// the environment may already be populated by the process supervisor)
// and builds a Config from environment variables, falling back to the
// same defaults the original dashboard used.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	cookieDefault, err := os.UserHomeDir()
	if err != nil {
		cookieDefault = "."
	}
	cookieDefault += "/.croncoin/regtest/.cookie"

	return &Config{
		RPCHost:        getEnv("RPC_HOST", "127.0.0.1"),
		RPCPort:        getEnvInt("RPC_PORT", 19443),
		RPCUser:        getEnv("RPC_USER", ""),
		RPCPassword:    getEnv("RPC_PASSWORD", ""),
		RPCCookiePath:  getEnv("RPC_COOKIE", cookieDefault),
		DashboardPort:  getEnvInt("DASHBOARD_PORT", 5000),
		WalletName:     getEnv("WALLET_NAME", "default"),
		HRP:            getEnv("WALLET_HRP", "crnrt"),
		DerivationPath: getEnv("WALLET_DEFAULT_PATH", "m/84h/1h/0h/0/0"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
