package company

// Profile describes the bidding company's available resources. It is
// owned by the company and mutated only between evaluation runs; the
// engine reads it as-is.
type Profile struct {
	Workers         int       `mapstructure:"workers"`
	Engineers       int       `mapstructure:"engineers"`
	Vehicles        int       `mapstructure:"vehicles"`
	CurrentProjects []Project `mapstructure:"current-projects"`
}

type Project struct {
	Name         string `mapstructure:"name"`
	DurationDays int    `mapstructure:"duration-days"`
}

// Available returns the count for a named resource type, zero for
// anything the profile does not track.
func (p *Profile) Available(resource string) int {
	if p == nil {
		return 0
	}
	switch resource {
	case ResourceWorkers:
		return p.Workers
	case ResourceEngineers:
		return p.Engineers
	case ResourceVehicles:
		return p.Vehicles
	default:
		return 0
	}
}

const (
	ResourceWorkers   = "workers"
	ResourceEngineers = "engineers"
	ResourceVehicles  = "vehicles"
)

// ResourceTypes lists the resource kinds tracked by the profile, in
// reporting order.
var ResourceTypes = []string{ResourceWorkers, ResourceEngineers, ResourceVehicles}
