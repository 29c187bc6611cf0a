package config

import "time"

// Constants for service configuration. They are the defaults of Configuration.
const (
	DefaultAPIURL           = "https://eco.us.ovhcloud.com/engine/api/v1/dedicated/server/datacenter/availabilities/"
	DefaultOrderURL         = "https://eco.ovhcloud.com/"
	DefaultQmsgURL          = "https://qmsg.zendee.cn/send/"
	DefaultTargetMemory     = "ram-64g-ecc-2133"
	DefaultTargetStorage    = "softraid-2x450nvme"
	DefaultTargetLabel      = "64G + NVMe"
	DefaultIdleInterval     = 30 * time.Second
	DefaultCooldownInterval = 300 * time.Second // after a hit, leave time to order
	HTTPTimeout             = 15 * time.Second
	NotifyTimeout           = 5 * time.Second
	RequestsPerMinute       = 30 // stay well under OVH's 429 threshold
	DefaultUserAgent        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0.0.0 Safari/537.36"
	DefaultLogLevel         = "info"

	EnvPrefix = "OVHWATCH_"
)

// DefaultRegions are the North America and Europe plan codes of the 24sk202 server
var DefaultRegions = []string{"24sk202-ca", "24sk202-us", "24sk202-eu"}

// GetDefaults returns the default value of every configuration key
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"api_url":             DefaultAPIURL,
		"order_url":           DefaultOrderURL,
		"regions":             append([]string(nil), DefaultRegions...),
		"target_memory":       DefaultTargetMemory,
		"target_storage":      DefaultTargetStorage,
		"target_label":        DefaultTargetLabel,
		"qmsg_url":            DefaultQmsgURL,
		"qmsg_key":            "",
		"desktop_notify":      false,
		"desktop_sound":       false,
		"idle_interval":       DefaultIdleInterval,
		"cooldown_interval":   DefaultCooldownInterval,
		"http_timeout":        HTTPTimeout,
		"notify_timeout":      NotifyTimeout,
		"requests_per_minute": RequestsPerMinute,
		"user_agent":          DefaultUserAgent,
		"log_level":           DefaultLogLevel,
	}
}
