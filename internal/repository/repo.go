package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"ovhwatch/internal/availability"
	"ovhwatch/internal/ovh"

	log "github.com/sirupsen/logrus"
)

// AvailabilityRepository defines the interface for fetching availability records
type AvailabilityRepository interface {
	FetchAvailabilities(ctx context.Context, planCode string) ([]availability.Record, error)
}

// StatusError is returned when the availability API answers with a non-200 status
type StatusError struct {
	PlanCode   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("availability API returned status code %d for %s", e.StatusCode, e.PlanCode)
}

// Repository implements OVH availability API communication
type Repository struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewRepository creates a new availability API client
func NewRepository(client *http.Client, baseURL, userAgent string) *Repository {
	return &Repository{
		client:    client,
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

// FetchAvailabilities fetches every hardware variant listed for a plan code.
// Array elements that do not decode as a record are skipped.
func (r *Repository) FetchAvailabilities(ctx context.Context, planCode string) ([]availability.Record, error) {
	url, err := ovh.AvailabilityURL(r.baseURL, planCode)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if r.userAgent != "" {
		req.Header.Set("User-Agent", r.userAgent)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching availabilities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{PlanCode: planCode, StatusCode: resp.StatusCode}
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}

	records := make([]availability.Record, 0, len(raw))
	for i, elem := range raw {
		var record availability.Record
		if err := json.Unmarshal(elem, &record); err != nil {
			log.WithFields(log.Fields{
				"plan_code": planCode,
				"index":     i,
			}).Debugf("Skipping malformed availability record: %v", err)
			continue
		}
		records = append(records, record)
	}

	return records, nil
}
