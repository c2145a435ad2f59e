// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig is everything the client needs to run.
//
// Values merge with precedence env > config file > defaults. Environment
// variables carry the CAREERMATE_ prefix (CAREERMATE_BASE_URL and so
// on); a .env file in the working directory is loaded first when
// present.
type AppConfig struct {
	BaseURL        string        // backend origin
	RequestTimeout time.Duration // outer HTTP timeout
	DataDir        string        // local state: session, groups, caches
	LogLevel       string        // zap level name
}

// LoadConfig reads .env, an optional config.yaml, and the environment.
func LoadConfig() (AppConfig, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CAREERMATE")
	v.AutomaticEnv()

	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("request_timeout_seconds", 60)
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("log_level", "info")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return AppConfig{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := AppConfig{
		BaseURL:        v.GetString("base_url"),
		RequestTimeout: time.Duration(v.GetInt("request_timeout_seconds")) * time.Second,
		DataDir:        v.GetString("data_dir"),
		LogLevel:       v.GetString("log_level"),
	}
	if cfg.BaseURL == "" {
		return AppConfig{}, fmt.Errorf("base_url must not be empty")
	}
	if cfg.RequestTimeout <= 0 {
		return AppConfig{}, fmt.Errorf("request_timeout_seconds must be positive")
	}
	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".careermate"
	}
	return filepath.Join(home, ".careermate")
}
