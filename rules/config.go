package rules

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaslint/internal/severity"
	"github.com/erraggy/oaslint/oaserrors"
)

// Config selects and orders rules. It is read from YAML or JSON:
//
//	rules:
//	  - TypeMismatch
//	  - name: ValidateAnyOfDiscriminator
//	    severity: warning
type Config struct {
	Rules []RuleConfig `yaml:"rules" json:"rules"`
}

// RuleConfig is one entry of Config.Rules. A nil Severity keeps the rule's
// default.
type RuleConfig struct {
	Name     string    `yaml:"name" json:"name"`
	Severity *Severity `yaml:"severity,omitempty" json:"severity,omitempty"`
}

// UnmarshalYAML accepts either a bare rule name or a {name, severity} mapping.
func (rc *RuleConfig) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		rc.Name = node.Value
	case yaml.MappingNode:
		var raw struct {
			Name     string `yaml:"name"`
			Severity string `yaml:"severity"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		rc.Name = raw.Name
		if raw.Severity != "" {
			sev, err := severity.Parse(raw.Severity)
			if err != nil {
				return fmt.Errorf("line %d: rule %q: %w", node.Line, raw.Name, err)
			}
			rc.Severity = &sev
		}
	default:
		return fmt.Errorf("line %d: rule entry must be a name or a mapping", node.Line)
	}
	if rc.Name == "" {
		return fmt.Errorf("line %d: rule name cannot be empty", node.Line)
	}
	return nil
}

// ParseConfig decodes a rules configuration document.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &oaserrors.ConfigError{Option: "config", Message: "invalid rules configuration", Cause: err}
	}
	return &cfg, nil
}

// LoadConfig reads and decodes a rules configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ConfigError{Option: "config", Value: path, Message: "cannot read rules configuration", Cause: err}
	}
	return ParseConfig(data)
}

// Names returns the configured rule names in order.
func (c *Config) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.Rules))
	for i, r := range c.Rules {
		names[i] = r.Name
	}
	return names
}
