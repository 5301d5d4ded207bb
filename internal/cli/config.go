package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	maxWalkDepth = 25
)

// Config represents the sysmllink configuration from sysmllink.yaml.
type Config struct {
	// Metamodel configuration
	Metamodel MetamodelConfig `mapstructure:"metamodel"`

	// Per-command configuration
	Resolve ResolveConfig `mapstructure:"resolve"`
	Output  OutputConfig  `mapstructure:"output"`
}

// MetamodelConfig holds the four generator input artifact paths (spec
// §4.1) plus the cross-validation strictness flag. An empty path means
// "use the built-in default artifacts" (metamodel.DefaultArtifacts()):
// the four paths are independent, so a config can override just one.
type MetamodelConfig struct {
	Vocabulary      string `mapstructure:"vocabulary"`
	Shapes          string `mapstructure:"shapes"`
	ClassMetamodel  string `mapstructure:"class_metamodel"`
	CrossReferences string `mapstructure:"cross_references"`
	Strict          bool   `mapstructure:"strict"`
}

// ResolveConfig holds settings shared by the resolve and validate commands.
type ResolveConfig struct {
	Graph string `mapstructure:"graph"`
}

// OutputConfig holds output formatting settings.
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	// 1. Set defaults first (lowest precedence)
	setDefaults(v)

	// 2. Set up environment variable binding
	v.SetEnvPrefix("SYSMLLINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 3. Find and load config file
	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	// 4. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	if explicitConfigPath == "" && configPath == "" {
		log.Printf("[sysmllink] WARNING: no sysmllink.yaml found, using built-in defaults")
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	// Metamodel artifact defaults: empty means "use built-in defaults".
	v.SetDefault("metamodel.vocabulary", "")
	v.SetDefault("metamodel.shapes", "")
	v.SetDefault("metamodel.class_metamodel", "")
	v.SetDefault("metamodel.cross_references", "")
	v.SetDefault("metamodel.strict", false)

	// Resolve/validate defaults
	v.SetDefault("resolve.graph", "")

	// Output defaults
	v.SetDefault("output.dir", "")
	v.SetDefault("output.format", "text")
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for sysmllink.yaml or sysmllink.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	// Auto-discovery: walk up to .git or maxWalkDepth
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		// Try sysmllink.yaml then sysmllink.yml
		for _, name := range []string{"sysmllink.yaml", "sysmllink.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// Check for repo boundary (.git file or directory)
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break // Stop at repo root
		}

		// Move up
		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached filesystem root
		}
		dir = parent
	}

	return "", nil // No config found, use defaults
}

// HasCustomArtifacts reports whether any of the four artifact paths were
// configured, as opposed to relying on metamodel.DefaultArtifacts().
func (c *Config) HasCustomArtifacts() bool {
	m := c.Metamodel
	return m.Vocabulary != "" || m.Shapes != "" || m.ClassMetamodel != "" || m.CrossReferences != ""
}
