package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries the tool's settings: where the flat files live, the phone
// validation bounds, and the defaults seeded on first run.
type Config struct {
	ProductsFile  string
	AgentsFile    string
	AddressesFile string

	DefaultAgents       []string
	DefaultDeliveryFees []int64

	PhoneMinDigits    int
	PhoneMaxDigits    int
	MaxAddressHistory int
}

// GetConfigs builds the configuration from defaults and environment
// overrides. A .env file is loaded when present; running without one is
// normal for a desktop-style tool, so its absence is not an error.
func GetConfigs() Config {
	_ = godotenv.Load(".env")

	config := Config{
		ProductsFile:  envOr("PRODUCTS_FILE", "products.csv"),
		AgentsFile:    envOr("AGENTS_FILE", "agents.txt"),
		AddressesFile: envOr("ADDRESSES_FILE", "addresses.txt"),

		DefaultAgents:       []string{"Jean", "Hery", "Mamy", "Rado", "External Courier"},
		DefaultDeliveryFees: []int64{3000, 4000},

		PhoneMinDigits:    envOrInt("PHONE_MIN_DIGITS", 8),
		PhoneMaxDigits:    envOrInt("PHONE_MAX_DIGITS", 15),
		MaxAddressHistory: envOrInt("MAX_ADDRESS_HISTORY", 200),
	}

	if agents := os.Getenv("DEFAULT_AGENTS"); agents != "" {
		config.DefaultAgents = config.DefaultAgents[:0]
		for _, name := range strings.Split(agents, ",") {
			if name = strings.TrimSpace(name); name != "" {
				config.DefaultAgents = append(config.DefaultAgents, name)
			}
		}
	}

	return config
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envOrInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
