package ovh

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizePlanCode trims and lower-cases a plan code such as "24sk202-CA".
// Codes are pasted into a query string, so separators are rejected.
func NormalizePlanCode(code string) (string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "", fmt.Errorf("plan code cannot be empty")
	}

	if strings.ContainsAny(code, " \t\r\n&?=/#,") {
		return "", fmt.Errorf("invalid plan code %q", code)
	}

	return code, nil
}

// AvailabilityURL builds the availability query for a plan code
func AvailabilityURL(base, planCode string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return "", fmt.Errorf("invalid API URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid API URL %q: scheme and host are required", base)
	}

	q := u.Query()
	q.Set("excludeDatacenters", "false")
	q.Set("planCode", planCode)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
