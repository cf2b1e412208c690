package domain

// Represents a single point of interest to visit on a course.
// A Place carries everything the optimizer needs: coordinates for distance
// computation, a category tag for variety scoring, and an expected dwell
// time. Name is a display label and never participates in scoring.
type Place struct {
	ID             string
	Name           string
	Latitude       float64
	Longitude      float64
	Category       string
	AvgStayMinutes float64
}
