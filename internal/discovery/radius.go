package discovery

import "math"

const (
	minDriveRadiusKm = 60
	minFlyRadiusKm   = 300

	// Rough average speeds used to turn a time budget into a distance.
	driveKmPerMinute = 0.9
	flyKmPerHour     = 800

	// Places up to this factor beyond the radius are still accepted.
	distanceSlack = 1.2
)

// Radius converts a travel budget into a search radius in kilometers.
// Negative or non-finite budgets count as zero, so the floor applies.
func Radius(mode TravelMode, driveMinutes, flyHours float64) float64 {
	if mode == TravelModeFly {
		return math.Max(minFlyRadiusKm, math.Round(budget(flyHours)*flyKmPerHour))
	}
	return math.Max(minDriveRadiusKm, math.Round(budget(driveMinutes)*driveKmPerMinute))
}

// budget maps NaN, infinities and negative values to zero.
func budget(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// MaxDistance is the largest distance from the origin a result may have.
func MaxDistance(radiusKm float64) float64 {
	return radiusKm * distanceSlack
}
