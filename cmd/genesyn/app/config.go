package app

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Input and output paths
	FileA    string
	FileB    string
	Output   string
	GeneInfo string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (handled by cobra, applied via UpdateFromFlags)
//  2. Environment variables (GENESYN_ prefix)
//  3. .env files
//  4. Config file (~/.genesyn.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files before viper env binding
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix("GENESYN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Search for config in standard locations
	configFile := v.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath("$HOME")
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".genesyn")
	}

	// Config file is optional
	_ = v.ReadInConfig()

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		FileA:    v.GetString("file_a"),
		FileB:    v.GetString("file_b"),
		Output:   v.GetString("output"),
		GeneInfo: v.GetString("gene_info"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags. Called
// after cobra parses flags so flag values take precedence over config file
// and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}
	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}
