// Package app assembles the complaint bot: configuration, bootstrap, and
// Telegram wiring on top of the reusable core.
package app

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	corecmd "github.com/avolkhin/complaintbot/core/cmd"
	coreconfig "github.com/avolkhin/complaintbot/core/config"
)

// ComplaintConfig holds the enumerated options offered during submission.
type ComplaintConfig struct {
	Batches  []string `yaml:"batches" envconfig:"COMPLAINT_BATCHES"`
	Subjects []string `yaml:"subjects" envconfig:"COMPLAINT_SUBJECTS"`
}

// Config extends the core configuration with complaint specific settings.
type Config struct {
	Core      coreconfig.Config `yaml:",inline"`
	Complaint ComplaintConfig   `yaml:"complaint"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Core
}

// LoadConfig reads the YAML file, applies environment overrides, and fills
// defaults for the complaint catalog.
func LoadConfig(path string) (corecmd.ConfigCarrier, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return nil, err
	}

	if len(cfg.Complaint.Batches) == 0 {
		cfg.Complaint.Batches = defaultBatches()
	}
	if len(cfg.Complaint.Subjects) == 0 {
		cfg.Complaint.Subjects = defaultSubjects()
	}

	return &cfg, nil
}

func defaultBatches() []string {
	return []string{
		"Master quest 2.0 2025",
		"master quest 2026",
		"Ace ipm crash course",
	}
}

func defaultSubjects() []string {
	return []string{"Quant", "DILR", "VARC", "Current Affairs"}
}
