package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const configFileBase = "rotation_config"

// Defaults used for any setting the config file leaves out
const (
	DefaultGameMinutes         = 32
	DefaultBlockMinutes        = 1
	DefaultMaxPoints           = 8.0
	DefaultVenue               = "neutral"
	DefaultFatigueAlpha        = 0.02
	DefaultMaxMinutesPerPlayer = 32
	DefaultEquityLambda        = 0.5
	DefaultOveruseLambda       = 1.0
)

// GameConfig describes the match being planned
type GameConfig struct {
	Minutes      float64 `yaml:"minutes" validate:"gt=0"`
	BlockMinutes float64 `yaml:"blockMinutes" validate:"gt=0"`
	MaxPoints    float64 `yaml:"maxPoints" validate:"gt=0"`
	Venue        string  `yaml:"venue" validate:"oneof=home away neutral"`
	Opponent     string  `yaml:"opponent,omitempty"`
}

// RotationConfig holds the tunable rotation parameters
type RotationConfig struct {
	FatigueAlpha float64 `yaml:"fatigueAlpha" validate:"gte=0"`

	// FatigueFloor overrides the lowest fatigue factor when set
	FatigueFloor *float64 `yaml:"fatigueFloor,omitempty" validate:"omitempty,gte=0,lte=1"`

	MinMinutesPerPlayer float64 `yaml:"minMinutesPerPlayer" validate:"gte=0"`
	MaxMinutesPerPlayer float64 `yaml:"maxMinutesPerPlayer" validate:"gt=0,gtefield=MinMinutesPerPlayer"`
	EquityLambda        float64 `yaml:"equityLambda" validate:"gte=0"`
	OveruseLambda       float64 `yaml:"overuseLambda" validate:"gte=0"`
}

// Fixture is a recurring match against an opponent
type Fixture struct {
	Opponent string `yaml:"opponent" validate:"required"`
	Venue    string `yaml:"venue,omitempty" validate:"omitempty,oneof=home away neutral"`
	RRule    string `yaml:"rrule" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	RatingsFile     string         `yaml:"ratingsFile" validate:"required"`
	ModelFile       string         `yaml:"modelFile" validate:"required"`
	DatabaseURL     string         `yaml:"databaseURL,omitempty"`
	PlanSheetID     string         `yaml:"planSheetID,omitempty" validate:"required_with=CredentialsFile"`
	CredentialsFile string         `yaml:"credentialsFile,omitempty" validate:"required_with=PlanSheetID"`
	MetricsFile     string         `yaml:"metricsFile,omitempty"`
	Game            GameConfig     `yaml:"game"`
	Rotation        RotationConfig `yaml:"rotation"`
	Injured         []string       `yaml:"injured,omitempty"`
	Fixtures        []Fixture      `yaml:"fixtures,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from rotation_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration with an environment suffix
// For example, env="test" will look for "rotation_config.test.yaml"
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys missing from the file keep their default values
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns a config populated with the default game and rotation settings
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Minutes:      DefaultGameMinutes,
			BlockMinutes: DefaultBlockMinutes,
			MaxPoints:    DefaultMaxPoints,
			Venue:        DefaultVenue,
		},
		Rotation: RotationConfig{
			FatigueAlpha:        DefaultFatigueAlpha,
			MaxMinutesPerPlayer: DefaultMaxMinutesPerPlayer,
			EquityLambda:        DefaultEquityLambda,
			OveruseLambda:       DefaultOveruseLambda,
		},
	}
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate rrule syntax for each fixture
	for i, fixture := range cfg.Fixtures {
		if _, err := rrule.StrToRRule(fixture.RRule); err != nil {
			return fmt.Errorf("invalid rrule in fixtures[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for the config file in current directory and home directory
func findConfigFile(env string) (string, error) {
	configFileName := configFileBase + ".yaml"
	if env != "" {
		configFileName = configFileBase + "." + env + ".yaml"
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", configFileName)
}
