package availability

// Unavailable is the only availability value OVH uses to say a datacenter
// cannot deliver the configuration.
const Unavailable = "unavailable"

// Datacenter represents one entry of the datacenters list in OVH's API
type Datacenter struct {
	Datacenter   string `json:"datacenter"`
	Availability string `json:"availability"`
}

// Purchasable reports whether the datacenter can currently deliver.
// Lead times such as "1H-high", "24H" or "72H" all count, and so does a
// missing status.
func (d Datacenter) Purchasable() bool {
	return d.Availability != Unavailable
}

// Record represents one hardware variant returned for a plan code
type Record struct {
	FQN         string       `json:"fqn"`
	PlanCode    string       `json:"planCode"`
	Server      string       `json:"server"`
	Memory      string       `json:"memory"`
	Storage     string       `json:"storage"`
	Datacenters []Datacenter `json:"datacenters"`
}
