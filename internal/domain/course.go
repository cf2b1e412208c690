package domain

// Represents the outcome of a course optimization.
// A CourseRoute holds the input places permuted into the chosen visiting
// sequence, along with the aggregate metrics of that sequence. It is
// immutable planning data and contains no side effects; every optimization
// call produces a fresh value.
type CourseRoute struct {
	// OptimizedOrder is a new ordered view over the caller's Place values.
	OptimizedOrder []Place

	// OptimizationScore is the weighted objective of the winning order.
	// Scores are comparable only across results computed with the same
	// weight configuration.
	OptimizationScore float64

	TotalDistanceMeters  float64
	TotalDurationMinutes float64
}
