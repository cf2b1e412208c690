package services_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"course-route-service/internal/domain"
	"course-route-service/internal/geo"
	"course-route-service/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seoulPlaces returns the first n of seven places scattered around central
// Seoul with mixed categories. Seven entries let boundary tests exceed the
// place-count maximum.
func seoulPlaces(n int) []domain.Place {
	pool := []domain.Place{
		{ID: "p1", Name: "Gyeongbokgung Palace", Latitude: 37.5796, Longitude: 126.9770, Category: "attraction", AvgStayMinutes: 90},
		{ID: "p2", Name: "Gwangjang Market", Latitude: 37.5701, Longitude: 126.9996, Category: "restaurant", AvgStayMinutes: 60},
		{ID: "p3", Name: "Onion Anguk", Latitude: 37.5787, Longitude: 126.9855, Category: "cafe", AvgStayMinutes: 45},
		{ID: "p4", Name: "Namsan Park", Latitude: 37.5509, Longitude: 126.9905, Category: "park", AvgStayMinutes: 50},
		{ID: "p5", Name: "Myeongdong", Latitude: 37.5636, Longitude: 126.9827, Category: "shopping", AvgStayMinutes: 40},
		{ID: "p6", Name: "National Museum of Korea", Latitude: 37.5240, Longitude: 126.9804, Category: "museum", AvgStayMinutes: 80},
		{ID: "p7", Name: "Fritz Coffee Dohwa", Latitude: 37.5450, Longitude: 126.9474, Category: "cafe", AvgStayMinutes: 35},
	}
	return pool[:n]
}

func orderIDs(places []domain.Place) []string {
	ids := make([]string, len(places))
	for i, p := range places {
		ids[i] = p.ID
	}
	return ids
}

func TestOptimizeCourse_ReturnsPermutationOfInput(t *testing.T) {
	for n := services.MinCoursePlaces; n <= services.MaxCoursePlaces; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			places := seoulPlaces(n)

			route, err := services.OptimizeCourse(context.Background(), services.OptimizeCourseRequest{
				Places:  places,
				Mode:    domain.TransportWalking,
				Weights: domain.DefaultWeights(),
			})
			require.NoError(t, err)

			require.Len(t, route.OptimizedOrder, n)
			assert.ElementsMatch(t, places, route.OptimizedOrder)
			assert.Greater(t, route.OptimizationScore, 0.0)
			assert.LessOrEqual(t, route.OptimizationScore, 1.0+1e-9)
			assert.Greater(t, route.TotalDistanceMeters, 0.0)
			assert.Greater(t, route.TotalDurationMinutes, 0.0)
		})
	}
}

func TestOptimizeCourse_DeterministicAcrossRuns(t *testing.T) {
	// Six places exercise the concurrent evaluation path; the result must
	// still be identical on every run.
	req := services.OptimizeCourseRequest{
		Places:  seoulPlaces(6),
		Mode:    domain.TransportTransit,
		Weights: domain.WeightConfig{Distance: 1, Time: 1, Variety: 1},
	}

	first, err := services.OptimizeCourse(context.Background(), req)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := services.OptimizeCourse(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, first, next)
	}
}

func TestOptimizeCourse_DistanceWeightAloneFindsShortestOrder(t *testing.T) {
	places := seoulPlaces(5)

	route, err := services.OptimizeCourse(context.Background(), services.OptimizeCourseRequest{
		Places:  places,
		Mode:    domain.TransportDriving,
		Weights: domain.WeightConfig{Distance: 1},
	})
	require.NoError(t, err)

	require.InDelta(t, shortestTraversal(places), route.TotalDistanceMeters, 1e-6)
}

// shortestTraversal brute-forces the minimum total leg distance over every
// visiting order, independently of the optimizer's own enumeration.
func shortestTraversal(places []domain.Place) float64 {
	n := len(places)
	used := make([]bool, n)
	best := math.Inf(1)

	var walk func(last, depth int, sum float64)
	walk = func(last, depth int, sum float64) {
		if depth == n {
			best = math.Min(best, sum)
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			leg := 0.0
			if depth > 0 {
				leg = geo.Distance(
					places[last].Latitude, places[last].Longitude,
					places[i].Latitude, places[i].Longitude,
				)
			}
			used[i] = true
			walk(i, depth+1, sum+leg)
			used[i] = false
		}
	}
	walk(-1, 0, 0)

	return best
}

func TestOptimizeCourse_ReportedMetricsMatchReturnedOrder(t *testing.T) {
	places := seoulPlaces(5)

	route, err := services.OptimizeCourse(context.Background(), services.OptimizeCourseRequest{
		Places:  places,
		Mode:    domain.TransportTransit,
		Weights: domain.DefaultWeights(),
	})
	require.NoError(t, err)

	legs := make([]float64, 0, len(route.OptimizedOrder)-1)
	for i := 0; i < len(route.OptimizedOrder)-1; i++ {
		a, b := route.OptimizedOrder[i], route.OptimizedOrder[i+1]
		legs = append(legs, geo.Distance(a.Latitude, a.Longitude, b.Latitude, b.Longitude))
	}

	distance := 0.0
	for _, leg := range legs {
		distance += leg
	}
	require.InDelta(t, distance, route.TotalDistanceMeters, 1e-6)

	duration := services.EstimateDuration(legs, places, domain.TransportTransit)
	require.InDelta(t, duration, route.TotalDurationMinutes, 1e-6)
}

func TestOptimizeCourse_DurationTracksTransportMode(t *testing.T) {
	places := seoulPlaces(4)

	optimize := func(mode domain.TransportMode) *domain.CourseRoute {
		t.Helper()
		route, err := services.OptimizeCourse(context.Background(), services.OptimizeCourseRequest{
			Places:  places,
			Mode:    mode,
			Weights: domain.DefaultWeights(),
		})
		require.NoError(t, err)
		return route
	}

	walking := optimize(domain.TransportWalking)
	driving := optimize(domain.TransportDriving)

	assert.Greater(t, walking.TotalDurationMinutes, driving.TotalDurationMinutes)
}

func TestOptimizeCourse_Validation(t *testing.T) {
	base := func() services.OptimizeCourseRequest {
		return services.OptimizeCourseRequest{
			Places:  seoulPlaces(4),
			Mode:    domain.TransportWalking,
			Weights: domain.DefaultWeights(),
		}
	}

	cases := []struct {
		name    string
		mutate  func(*services.OptimizeCourseRequest)
		wantErr error
	}{
		{
			name:    "two places",
			mutate:  func(r *services.OptimizeCourseRequest) { r.Places = seoulPlaces(2) },
			wantErr: domain.ErrTooFewPlaces,
		},
		{
			name:    "seven places",
			mutate:  func(r *services.OptimizeCourseRequest) { r.Places = seoulPlaces(7) },
			wantErr: domain.ErrTooManyPlaces,
		},
		{
			name:    "unknown transport mode",
			mutate:  func(r *services.OptimizeCourseRequest) { r.Mode = "bicycle" },
			wantErr: domain.ErrInvalidTransportMode,
		},
		{
			name:    "all-zero weights",
			mutate:  func(r *services.OptimizeCourseRequest) { r.Weights = domain.WeightConfig{} },
			wantErr: domain.ErrInvalidWeightConfig,
		},
		{
			name:    "negative weight",
			mutate:  func(r *services.OptimizeCourseRequest) { r.Weights.Distance = -0.5 },
			wantErr: domain.ErrInvalidWeightConfig,
		},
		{
			name:    "duplicate place id",
			mutate:  func(r *services.OptimizeCourseRequest) { r.Places[2].ID = r.Places[0].ID },
			wantErr: domain.ErrDuplicatePlaceID,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := base()
			tc.mutate(&req)

			route, err := services.OptimizeCourse(context.Background(), req)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, route)
		})
	}
}

func TestOptimizeCourse_VarietyWeightSeparatesSameCategoryPlaces(t *testing.T) {
	// Four places on a straight south-to-north line, roughly 300 m apart,
	// with the two cafes in the middle. The shortest traversal sweeps the
	// line and visits the cafes back to back; a strong variety weight must
	// pull them apart even though that costs distance.
	places := []domain.Place{
		{ID: "p1", Name: "Brunch House", Latitude: 37.5013068, Longitude: 127.0396597, Category: "restaurant", AvgStayMinutes: 30},
		{ID: "p2", Name: "First Cafe", Latitude: 37.5040068, Longitude: 127.0396597, Category: "cafe", AvgStayMinutes: 30},
		{ID: "p3", Name: "Second Cafe", Latitude: 37.5067068, Longitude: 127.0396597, Category: "cafe", AvgStayMinutes: 30},
		{ID: "p4", Name: "City Gallery", Latitude: 37.5094068, Longitude: 127.0396597, Category: "attraction", AvgStayMinutes: 30},
	}

	cafesAdjacent := func(route *domain.CourseRoute) bool {
		for i := 0; i < len(route.OptimizedOrder)-1; i++ {
			if route.OptimizedOrder[i].Category == "cafe" && route.OptimizedOrder[i+1].Category == "cafe" {
				return true
			}
		}
		return false
	}

	short, err := services.OptimizeCourse(context.Background(), services.OptimizeCourseRequest{
		Places:  places,
		Mode:    domain.TransportWalking,
		Weights: domain.WeightConfig{Distance: 1},
	})
	require.NoError(t, err)
	assert.True(t, cafesAdjacent(short),
		"distance-only objective should sweep the line, got %v", orderIDs(short.OptimizedOrder))

	varied, err := services.OptimizeCourse(context.Background(), services.OptimizeCourseRequest{
		Places:  places,
		Mode:    domain.TransportWalking,
		Weights: domain.WeightConfig{Distance: 0.3, Time: 0.2, Variety: 0.5},
	})
	require.NoError(t, err)
	assert.False(t, cafesAdjacent(varied),
		"variety-weighted objective should separate the cafes, got %v", orderIDs(varied.OptimizedOrder))
	assert.Greater(t, varied.TotalDistanceMeters, short.TotalDistanceMeters)
}
