package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"ovhwatch/internal/matcher"
	"ovhwatch/internal/ovh"

	"github.com/go-playground/validator/v10"
	jsonparser "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration is everything the monitor needs, injected into the service
type Configuration struct {
	APIURL            string        `koanf:"api_url" json:"api_url" validate:"required,url"`
	OrderURL          string        `koanf:"order_url" json:"order_url" validate:"required,url"`
	Regions           []string      `koanf:"regions" json:"regions" validate:"required,min=1,dive,required"`
	TargetMemory      string        `koanf:"target_memory" json:"target_memory" validate:"required"`
	TargetStorage     string        `koanf:"target_storage" json:"target_storage" validate:"required"`
	TargetLabel       string        `koanf:"target_label" json:"target_label"`
	QmsgURL           string        `koanf:"qmsg_url" json:"qmsg_url" validate:"required,url"`
	QmsgKey           string        `koanf:"qmsg_key" json:"qmsg_key"`
	DesktopNotify     bool          `koanf:"desktop_notify" json:"desktop_notify"`
	DesktopSound      bool          `koanf:"desktop_sound" json:"desktop_sound"`
	IdleInterval      time.Duration `koanf:"idle_interval" json:"idle_interval" validate:"required,min=1s"`
	CooldownInterval  time.Duration `koanf:"cooldown_interval" json:"cooldown_interval" validate:"required,min=1s"`
	HTTPTimeout       time.Duration `koanf:"http_timeout" json:"http_timeout" validate:"required,min=1s"`
	NotifyTimeout     time.Duration `koanf:"notify_timeout" json:"notify_timeout" validate:"required,min=1s"`
	RequestsPerMinute int           `koanf:"requests_per_minute" json:"requests_per_minute" validate:"min=1,max=600"`
	UserAgent         string        `koanf:"user_agent" json:"user_agent" validate:"required"`
	LogLevel          string        `koanf:"log_level" json:"log_level" validate:"oneof=trace debug info warn warning error"`
}

// Load loads configuration from defaults, an optional JSON file and the environment
// Priority: Environment variables > Config file > Defaults
func Load(path string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), jsonparser.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	regions, err := normalizeRegions(cfg.Regions)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	cfg.Regions = regions
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Fingerprint returns the hardware configuration to watch for
func (c *Configuration) Fingerprint() matcher.Fingerprint {
	label := c.TargetLabel
	if label == "" {
		label = c.TargetMemory + " + " + c.TargetStorage
	}
	return matcher.Fingerprint{
		Memory:  c.TargetMemory,
		Storage: c.TargetStorage,
		Label:   label,
	}
}

// Redacted renders the configuration as indented JSON with the relay key masked
func (c *Configuration) Redacted() (string, error) {
	masked := *c
	if masked.QmsgKey != "" {
		masked.QmsgKey = maskKey(masked.QmsgKey)
	}
	out, err := json.MarshalIndent(masked, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render config: %w", err)
	}
	return string(out), nil
}

// envTransform converts environment variable names to config keys
// Example: OVHWATCH_QMSG_KEY -> qmsg_key, OVHWATCH_REGIONS=a,b -> regions [a b]
func envTransform(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if key == "regions" {
		var regions []string
		for _, r := range strings.Split(value, ",") {
			if strings.TrimSpace(r) != "" {
				regions = append(regions, r)
			}
		}
		return key, regions
	}
	return key, value
}

// normalizeRegions normalizes plan codes, dropping duplicates but keeping order
func normalizeRegions(regions []string) ([]string, error) {
	seen := make(map[string]bool, len(regions))
	out := make([]string, 0, len(regions))
	for _, r := range regions {
		code, err := ovh.NormalizePlanCode(r)
		if err != nil {
			return nil, err
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	return out, nil
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:2] + strings.Repeat("*", len(key)-4) + key[len(key)-2:]
}
