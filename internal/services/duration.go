package services

import (
	"course-route-service/internal/domain"
)

// Average effective urban speeds per transport mode, in km/h. The exact
// constants are an implementation choice; the load-bearing invariant is the
// strict ordering driving > transit > walking, which keeps
// duration(walking) > duration(transit) > duration(driving) for any fixed
// route.
const (
	walkingSpeedKmh = 4.5
	transitSpeedKmh = 20.0 // effective speed including stops and transfers
	drivingSpeedKmh = 30.0 // urban traffic average
)

// speedMps returns the average speed for mode in meters per second.
func speedMps(mode domain.TransportMode) float64 {
	switch mode {
	case domain.TransportDriving:
		return drivingSpeedKmh / 3.6
	case domain.TransportTransit:
		return transitSpeedKmh / 3.6
	default:
		// Modes are validated before estimation; walking is the slowest lane.
		return walkingSpeedKmh / 3.6
	}
}

// TravelMinutes converts a single leg distance in meters into travel time
// in minutes at the mode's average speed.
func TravelMinutes(meters float64, mode domain.TransportMode) float64 {
	return meters / speedMps(mode) / 60
}

// DwellMinutes sums the expected stay duration of every place. All places
// on a course are always visited, so the sum does not depend on visiting
// order and can be computed once per request.
func DwellMinutes(places []domain.Place) float64 {
	total := 0.0
	for _, p := range places {
		total += p.AvgStayMinutes
	}
	return total
}

// EstimateDuration returns the total course duration in minutes for the
// given consecutive leg distances: travel time per leg at the mode's
// average speed, plus every place's dwell time.
func EstimateDuration(legDistances []float64, places []domain.Place, mode domain.TransportMode) float64 {
	total := DwellMinutes(places)
	for _, meters := range legDistances {
		total += TravelMinutes(meters, mode)
	}
	return total
}
