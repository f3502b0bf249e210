// Package config provides Viper-based hierarchical configuration management
// for the statement extraction pipeline.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Statement struct {
		// BankName is stamped into metadata; the line grammar is specific
		// to this statement layout family.
		BankName      string `mapstructure:"bank_name" yaml:"bank_name"`
		AccountHolder string `mapstructure:"account_holder" yaml:"account_holder"`
		Currency      string `mapstructure:"currency" yaml:"currency"`

		// NoiseLiterals are known OCR artifacts: a transaction-detail line
		// containing any of them is discarded before parsing.
		NoiseLiterals []string `mapstructure:"noise_literals" yaml:"noise_literals"`

		// HighValueThreshold flags a transaction; NoteAmountThreshold only
		// adds a note. The two rules are intentionally distinct severities.
		HighValueThreshold  float64 `mapstructure:"high_value_threshold" yaml:"high_value_threshold"`
		NoteAmountThreshold float64 `mapstructure:"note_amount_threshold" yaml:"note_amount_threshold"`

		// AverageWindowDays is the assumed statement period length used for
		// average daily spending, regardless of the actual period.
		AverageWindowDays  int     `mapstructure:"average_window_days" yaml:"average_window_days"`
		ReconcileTolerance float64 `mapstructure:"reconcile_tolerance" yaml:"reconcile_tolerance"`
	} `mapstructure:"statement" yaml:"statement"`

	Output struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"output" yaml:"output"`

	Server struct {
		Listen      string `mapstructure:"listen" yaml:"listen"`
		MaxUploadMB int    `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
	} `mapstructure:"server" yaml:"server"`

	OCR struct {
		PdftoppmPath  string `mapstructure:"pdftoppm_path" yaml:"pdftoppm_path"`
		TesseractPath string `mapstructure:"tesseract_path" yaml:"tesseract_path"`
		DPI           int    `mapstructure:"dpi" yaml:"dpi"`
	} `mapstructure:"ocr" yaml:"ocr"`

	AI struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Model   string `mapstructure:"model" yaml:"model"`
		APIKey  string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Categories struct {
		// File is an optional YAML file of category keyword rules that
		// replaces the built-in categorization table.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"categories" yaml:"categories"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then BANKAPI_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bankapi")
	v.AddConfigPath(".bankapi")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BANKAPI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// API key always comes from the unprefixed environment variable
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("statement.bank_name", "chasebank")
	v.SetDefault("statement.account_holder", "Anan Almasri")
	v.SetDefault("statement.currency", "USD")
	v.SetDefault("statement.noise_literals", []string{"$5,993.00"})
	v.SetDefault("statement.high_value_threshold", 4000.0)
	v.SetDefault("statement.note_amount_threshold", 1000.0)
	v.SetDefault("statement.average_window_days", 30)
	v.SetDefault("statement.reconcile_tolerance", 0.01)

	v.SetDefault("output.directory", "output")

	v.SetDefault("server.listen", ":8080")
	v.SetDefault("server.max_upload_mb", 32)

	v.SetDefault("ocr.pdftoppm_path", "pdftoppm")
	v.SetDefault("ocr.tesseract_path", "tesseract")
	v.SetDefault("ocr.dpi", 300)

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-1.0-pro")

	v.SetDefault("categories.file", "")
}

// validateConfig checks configuration invariants.
func validateConfig(c *Config) error {
	if c.Statement.AverageWindowDays <= 0 {
		return fmt.Errorf("statement.average_window_days must be positive, got %d", c.Statement.AverageWindowDays)
	}
	if c.Statement.ReconcileTolerance <= 0 {
		return fmt.Errorf("statement.reconcile_tolerance must be positive, got %f", c.Statement.ReconcileTolerance)
	}
	if c.Statement.HighValueThreshold < 0 || c.Statement.NoteAmountThreshold < 0 {
		return fmt.Errorf("statement thresholds must not be negative")
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server.max_upload_mb must be positive, got %d", c.Server.MaxUploadMB)
	}
	return nil
}
