package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// SnapshotPath is an optional JSON snapshot document restored at boot.
	// Empty means start from the seeded defaults.
	SnapshotPath string

	// RateLimit is an ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// Seed committee logins.
	AdminUsername  string
	AdminPassword  string
	ViewerUsername string
	ViewerPassword string

	// VoteAdvisoryOnly keeps the historical behavior where a "Committee Vote"
	// approval requirement is accepted without verification.
	VoteAdvisoryOnly bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "committee-finance")
	viper.SetDefault("SNAPSHOT_PATH", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "password")
	viper.SetDefault("VIEWER_USERNAME", "viewer")
	viper.SetDefault("VIEWER_PASSWORD", "viewer")
	viper.SetDefault("VOTE_REQUIREMENTS_ADVISORY_ONLY", true)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.SnapshotPath = viper.GetString("SNAPSHOT_PATH")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPassword = viper.GetString("ADMIN_PASSWORD")
	cfg.ViewerUsername = viper.GetString("VIEWER_USERNAME")
	cfg.ViewerPassword = viper.GetString("VIEWER_PASSWORD")
	if cfg.AdminPassword == "password" {
		log.Println("Warning: ADMIN_PASSWORD not set. Using default insecure password.")
	}

	cfg.VoteAdvisoryOnly = viper.GetBool("VOTE_REQUIREMENTS_ADVISORY_ONLY")

	return cfg, nil
}
