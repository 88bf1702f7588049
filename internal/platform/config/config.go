package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DataPath    string // Path of the sqlite ledger file
	BackupDir   string // Directory ExportToFile writes into
	ChartPath   string // Where the category chart PNG is written
	LogLevel    string // debug, info, warn, error
	RecentLimit int    // How many transactions the dashboard shows
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Every key has a sensible local default, so a bare environment
// just works.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	defaultDir := filepath.Join(home, ".fintrack")

	viper.SetDefault("FINTRACK_DATA_PATH", filepath.Join(defaultDir, "fintrack.db"))
	viper.SetDefault("FINTRACK_BACKUP_DIR", filepath.Join(defaultDir, "backups"))
	viper.SetDefault("FINTRACK_CHART_PATH", filepath.Join(defaultDir, "category_breakdown.png"))
	viper.SetDefault("FINTRACK_LOG_LEVEL", "info")
	viper.SetDefault("FINTRACK_RECENT_LIMIT", 5)

	viper.AutomaticEnv()

	return &Config{
		DataPath:    viper.GetString("FINTRACK_DATA_PATH"),
		BackupDir:   viper.GetString("FINTRACK_BACKUP_DIR"),
		ChartPath:   viper.GetString("FINTRACK_CHART_PATH"),
		LogLevel:    viper.GetString("FINTRACK_LOG_LEVEL"),
		RecentLimit: viper.GetInt("FINTRACK_RECENT_LIMIT"),
	}, nil
}
