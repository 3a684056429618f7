package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Addr          string
	SessionSecret string

	DBUrl  string
	DBNs   string
	DBDb   string
	DBUser string
	DBPass string

	// Directory holding translation catalogs (<lang>.json files).
	TranslationsDir string

	// Server feature flags passed through to the home snapshot. They are
	// collected here once so the snapshot builder never reads ambient
	// process state.
	TestSuite          bool
	CorporateEnabled   bool
	PromoteSponsoring  bool
	TwoFactorEnabled   bool
	WarnNoEmail        bool
	SearchPillsEnabled bool
	LoginPageURL       string
	AppsPageURL        string
}

// New loads configuration from environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:            getenvDefault("LISTEN_ADDR", ":8080"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		DBUrl:           os.Getenv("SURREAL_URL"),
		DBUser:          os.Getenv("SURREAL_USER"),
		DBPass:          os.Getenv("SURREAL_PASS"),
		DBNs:            os.Getenv("SURREAL_NS"),
		DBDb:            os.Getenv("SURREAL_DB"),
		TranslationsDir: getenvDefault("TRANSLATIONS_DIR", "locale"),

		TestSuite:          getenvBool("TEST_SUITE", false),
		CorporateEnabled:   getenvBool("CORPORATE_ENABLED", false),
		PromoteSponsoring:  getenvBool("PROMOTE_SPONSORING", true),
		TwoFactorEnabled:   getenvBool("TWO_FACTOR_ENABLED", false),
		WarnNoEmail:        getenvBool("WARN_NO_EMAIL", false),
		SearchPillsEnabled: getenvBool("SEARCH_PILLS_ENABLED", false),
		LoginPageURL:       getenvDefault("LOGIN_PAGE_URL", "/login/"),
		AppsPageURL:        getenvDefault("APPS_PAGE_URL", "/apps/"),
	}

	if cfg.DBUrl == "" || cfg.DBNs == "" || cfg.DBDb == "" {
		log.Fatal("Required environment variables SURREAL_URL, SURREAL_NS, or SURREAL_DB are not set.")
	}

	return cfg
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid boolean for %s: %q, using default %v", key, v, fallback)
		return fallback
	}
	return b
}
