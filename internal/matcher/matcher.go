package matcher

import (
	"ovhwatch/internal/availability"
)

// Fingerprint identifies the hardware configuration being watched
type Fingerprint struct {
	Memory  string
	Storage string
	// Label is the human readable name used in notifications, e.g. "64G + NVMe".
	Label string
}

// Matches reports whether a record is exactly the watched configuration
func (f Fingerprint) Matches(r availability.Record) bool {
	return r.Memory == f.Memory && r.Storage == f.Storage
}

// Hit is a purchasable datacenter found for a plan code
type Hit struct {
	PlanCode     string
	Datacenter   string
	Availability string
	Memory       string
	Storage      string
}

// Find returns the first purchasable datacenter of the first record matching
// the fingerprint. Remaining datacenters and records are not examined.
func Find(planCode string, records []availability.Record, fp Fingerprint) (Hit, bool) {
	for _, record := range records {
		if !fp.Matches(record) {
			continue
		}

		for _, dc := range record.Datacenters {
			if dc.Purchasable() {
				return Hit{
					PlanCode:     planCode,
					Datacenter:   dc.Datacenter,
					Availability: dc.Availability,
					Memory:       record.Memory,
					Storage:      record.Storage,
				}, true
			}
		}
	}

	return Hit{}, false
}
