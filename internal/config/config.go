// Package config loads application configuration from flags, environment
// variables, .env files, and an optional config file, in that order of
// precedence.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/scholarlink/scholarlink/pkg/constants"
)

// Config holds the application configuration.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool

	// Config file actually used, if any
	ConfigFile string

	// Endpoint overrides; empty means the embedded default
	WikidataEndpoint string
	DBpediaEndpoint  string

	// Export artifact path
	ExportPath string

	// Evaluation
	GeminiModel string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from all sources in order of precedence:
// command-line flags (bound by cobra), environment variables, .env files,
// config file (~/.scholarlink.yaml), defaults.
func Load() (*Config, error) {
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".scholarlink")
		}
	}

	// Config file is optional.
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),

		ConfigFile: viper.ConfigFileUsed(),

		WikidataEndpoint: viper.GetString("wikidata_endpoint"),
		DBpediaEndpoint:  viper.GetString("dbpedia_endpoint"),

		ExportPath:  viper.GetString("export_path"),
		GeminiModel: viper.GetString("gemini_model"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
	}

	if config.ExportPath == "" {
		config.ExportPath = constants.DefaultExportFile
	}

	return config, nil
}

// loadEnvFiles loads .env files from the working directory without
// overriding variables already set in the environment.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
