package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
		Logging
	}

	Database struct {
		DataDir      string
		FileName     string
		ResetOnStart bool // Drop and reseed the books table on every start
	}
	Logging struct {
		Level    string
		SQLDebug bool // Log every SQL statement gorm executes
	}
)

// Path returns the location of the SQLite file.
func (d Database) Path() string {
	return filepath.Join(d.DataDir, d.FileName)
}

// NewConfig reads configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set in
// the environment win.
func NewConfig() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("bookstore_data_dir", DefaultDataDir)
	v.SetDefault("bookstore_database_file", DefaultDatabaseFile)
	v.SetDefault("bookstore_reset_on_start", true)
	v.SetDefault("bookstore_log_level", "warn")
	v.SetDefault("bookstore_sql_debug", false)

	return &Config{
		Database: Database{
			DataDir:      v.GetString("BOOKSTORE_DATA_DIR"),
			FileName:     v.GetString("BOOKSTORE_DATABASE_FILE"),
			ResetOnStart: v.GetBool("BOOKSTORE_RESET_ON_START"),
		},
		Logging: Logging{
			Level:    v.GetString("BOOKSTORE_LOG_LEVEL"),
			SQLDebug: v.GetBool("BOOKSTORE_SQL_DEBUG"),
		},
	}
}
