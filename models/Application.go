package models

const (
	// DefaultDurationDays is assumed when a request omits the treatment duration.
	DefaultDurationDays = 7
	// DefaultAirChangeRate is the assumed room air renewal rate (ACH).
	DefaultAirChangeRate = 0.5
	// DefaultEvaporationRate is the assumed evaporated share of the applied oil.
	DefaultEvaporationRate = 0.1
)

// Application describes how the product will be used: route, amount, duration
// and the route-specific exposure parameters.
type Application struct {
	Route        AdministrationRoute `json:"route"`
	DailyAmount  float64             `json:"daily_amount"`
	DurationDays int                 `json:"duration_days"`

	// Topical parameters.
	ApplicationAreaCM2 float64 `json:"application_area,omitempty"`
	Occlusion          bool    `json:"occlusion"`
	DamagedSkin        bool    `json:"damaged_skin"`
	OcclusionFactor    float64 `json:"occlusion_factor"`

	// Inhalation parameters.
	RoomVolumeM3        float64 `json:"room_volume_m3,omitempty"`
	ExposureDurationMin float64 `json:"exposure_duration_min,omitempty"`
	AirChangeRate       float64 `json:"air_change_rate"`
	EvaporationRate     float64 `json:"evaporation_rate"`
}

// Normalize fills the defaults for fields the wire contract allows callers to
// omit. Zero is not a meaningful value for any of the three, so it doubles as
// the "not provided" sentinel.
func (a *Application) Normalize() {
	if a.DurationDays <= 0 {
		a.DurationDays = DefaultDurationDays
	}
	if a.AirChangeRate <= 0 {
		a.AirChangeRate = DefaultAirChangeRate
	}
	if a.EvaporationRate <= 0 {
		a.EvaporationRate = DefaultEvaporationRate
	}
}
