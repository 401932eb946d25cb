package config

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/core-coin/go-core/v2/common"
	"github.com/joho/godotenv"
)

type Config struct {
	Development bool
	// API configuration
	APIPort        int
	AllowedOrigins []string
	// Postgres configuration
	PostgresUser     string
	PostgresPassword string
	PostgresHost     string
	PostgresPort     int
	PostgresDB       string
	// Blockchain configuration
	RPCURL    string
	NetworkID *big.Int
	// FaucetKey signs drips; its address is the faucet's holding address.
	FaucetKey string
	// DeployKey signs token deployments. Kept separate so deploys never
	// contend with drips for a nonce.
	DeployKey string

	// Asset host configuration
	AssetUploadURL string
	AssetCDNURL    string
	AssetAPIKey    string

	// Orderbook configuration (recognized-wallet lookups)
	OrderbookURL string

	// Operator alert configuration
	TelegramBotToken string
	TelegramChatID   string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Development:      getEnvAsBool("DEVELOPMENT", false),
		APIPort:          getEnvAsInt("API_PORT", 6970),
		AllowedOrigins:   getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnvAsInt("POSTGRES_PORT", 5432),
		PostgresDB:       getEnv("POSTGRES_DB", "fontis"),
		RPCURL:           getEnv("RPC_URL", "http://localhost:8545"),
		NetworkID:        getEnvAsBigInt("NETWORK_ID", big.NewInt(1)),
		FaucetKey:        getEnv("FAUCET_KEY", ""),
		DeployKey:        getEnv("DEPLOY_KEY", ""),
		AssetUploadURL:   getEnv("ASSET_UPLOAD_URL", ""),
		AssetCDNURL:      getEnv("ASSET_CDN_URL", ""),
		AssetAPIKey:      getEnv("ASSET_API_KEY", ""),
		OrderbookURL:     getEnv("ORDERBOOK_URL", ""),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
	}

	// Set default network ID before validation (required for address handling)
	common.DefaultNetworkID = common.NetworkID(cfg.NetworkID.Int64())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are properly set
func (c *Config) Validate() error {
	if c.RPCURL == "" {
		return fmt.Errorf("RPC_URL is required")
	}

	if c.FaucetKey == "" {
		return fmt.Errorf("FAUCET_KEY is required")
	}

	if c.DeployKey == "" {
		return fmt.Errorf("DEPLOY_KEY is required")
	}

	if c.PostgresDB == "" {
		return fmt.Errorf("POSTGRES_DB is required")
	}

	if c.PostgresHost == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}

	if c.AssetUploadURL == "" || c.AssetCDNURL == "" {
		return fmt.Errorf("ASSET_UPLOAD_URL and ASSET_CDN_URL are required")
	}

	return nil
}

// Helper functions to read environment variables
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBigInt(name string, defaultValue *big.Int) *big.Int {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, ok := new(big.Int).SetString(valueStr, 10); ok {
			return value
		}
	}
	return defaultValue
}

func getEnvAsSlice(name string, defaultValue []string) []string {
	if valueStr, exists := os.LookupEnv(name); exists && valueStr != "" {
		parts := strings.Split(valueStr, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}
