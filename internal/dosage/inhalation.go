package dosage

import (
	"math"

	"aromadose/models"
)

// inhalationAirConcentration computes the time-averaged air concentration
// (mg/m³) of evaporated oil in a ventilated room during the exposure window.
// The average follows the closed-form first-order decay solution; with no air
// exchange it degrades to the instantaneous well-mixed concentration. Returns
// zero when room volume, exposure duration or drop weight is unset, and is
// never negative.
func inhalationAirConcentration(application models.Application, oil models.EssentialOil) float64 {
	dropWeight := oil.DropWeightMG
	if application.RoomVolumeM3 <= 0 || application.ExposureDurationMin <= 0 || dropWeight <= 0 {
		return 0.0
	}

	dropsPerSession := application.DailyAmount
	massEvaporatedMG := dropsPerSession * dropWeight * application.EvaporationRate

	tHours := application.ExposureDurationMin / 60.0
	ach := application.AirChangeRate

	var avg float64
	if ach > 0 && tHours > 0 {
		avg = (massEvaporatedMG / application.RoomVolumeM3) * (1 - math.Exp(-ach*tHours)) / (ach * tHours)
	} else {
		avg = massEvaporatedMG / application.RoomVolumeM3
	}

	return math.Max(0.0, avg)
}
