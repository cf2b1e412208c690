package services

import (
	"context"
	"fmt"
	"runtime"

	"course-route-service/internal/domain"
	"course-route-service/internal/geo"
	"course-route-service/internal/platform/obs"

	"golang.org/x/sync/errgroup"
)

// Bounds on the number of places in one optimization request. The search
// enumerates all N! visiting orders, and 6! = 720 is the largest candidate
// set kept tractable for synchronous request/response use. The upper bound
// is a deliberate design choice, not an incidental limitation; revisit the
// search strategy (Held-Karp, local search) before ever raising it.
const (
	MinCoursePlaces = 3
	MaxCoursePlaces = 6
)

// parallelMinOrders is the candidate-set size from which per-order metrics
// are computed on worker goroutines (the six-place case). Smaller sets are
// cheaper to evaluate sequentially than to fan out.
const parallelMinOrders = 720

// OptimizeCourseRequest carries one self-contained optimization call.
// Places must already be resolved to coordinates, category and dwell time
// by the caller; the optimizer never fetches or stores anything.
type OptimizeCourseRequest struct {
	Places  []domain.Place
	Mode    domain.TransportMode
	Weights domain.WeightConfig
}

// orderMetrics holds the raw objective terms of one candidate order.
type orderMetrics struct {
	distanceMeters  float64
	durationMinutes float64
	diversity       float64
}

// OptimizeCourse evaluates every visiting order for the requested places
// and returns the order with the best weighted score.
//
// Each candidate is scored on three terms: total leg distance, total
// duration (travel plus dwell) and category variety between consecutive
// places. Distance and duration are normalized against the min/max over
// the candidate set, so only the weight proportions decide the trade-off.
// Ties break on lower total distance, then on the lexicographically
// smaller place-id sequence, which guarantees a single reproducible winner
// for identical inputs.
//
// The computation is pure and CPU-bound; it is safe to call concurrently
// from multiple goroutines.
func OptimizeCourse(ctx context.Context, req OptimizeCourseRequest) (_ *domain.CourseRoute, err error) {
	defer obs.Time(ctx, "optimizer.OptimizeCourse")(&err)

	if err = validateCourseRequest(req); err != nil {
		return nil, err
	}

	weights := req.Weights.Normalize()
	legs := legMatrix(req.Places)
	dwell := DwellMinutes(req.Places)

	orders := permutations(len(req.Places))
	metrics := evaluateOrders(req.Places, orders, legs, dwell, req.Mode)

	minDist, maxDist := metrics[0].distanceMeters, metrics[0].distanceMeters
	minDur, maxDur := metrics[0].durationMinutes, metrics[0].durationMinutes
	for _, m := range metrics[1:] {
		minDist = min(minDist, m.distanceMeters)
		maxDist = max(maxDist, m.distanceMeters)
		minDur = min(minDur, m.durationMinutes)
		maxDur = max(maxDur, m.durationMinutes)
	}

	scores := make([]float64, len(orders))
	for i, m := range metrics {
		distanceScore := normalizedScore(m.distanceMeters, minDist, maxDist)
		durationScore := normalizedScore(m.durationMinutes, minDur, maxDur)
		scores[i] = weights.Distance*distanceScore +
			weights.Time*durationScore +
			weights.Variety*m.diversity
	}

	best := 0
	for i := 1; i < len(orders); i++ {
		if scores[i] > scores[best] {
			best = i
			continue
		}
		if scores[i] < scores[best] {
			continue
		}
		// Tie-breaker ensures deterministic selection when scores are equal.
		if metrics[i].distanceMeters < metrics[best].distanceMeters {
			best = i
			continue
		}
		if metrics[i].distanceMeters > metrics[best].distanceMeters {
			continue
		}
		if lessIDSequence(req.Places, orders[i], orders[best]) {
			best = i
		}
	}

	ordered := make([]domain.Place, 0, len(req.Places))
	for _, idx := range orders[best] {
		ordered = append(ordered, req.Places[idx])
	}

	return &domain.CourseRoute{
		OptimizedOrder:       ordered,
		OptimizationScore:    scores[best],
		TotalDistanceMeters:  metrics[best].distanceMeters,
		TotalDurationMinutes: metrics[best].durationMinutes,
	}, nil
}

// validateCourseRequest fails fast before any search work begins. Exactly
// one validation error kind is reported per rejected request.
func validateCourseRequest(req OptimizeCourseRequest) error {
	if len(req.Places) < MinCoursePlaces {
		return fmt.Errorf("optimize course: got %d places, need at least %d: %w",
			len(req.Places), MinCoursePlaces, domain.ErrTooFewPlaces)
	}
	if len(req.Places) > MaxCoursePlaces {
		return fmt.Errorf("optimize course: got %d places, need at most %d: %w",
			len(req.Places), MaxCoursePlaces, domain.ErrTooManyPlaces)
	}
	if !req.Mode.Valid() {
		return fmt.Errorf("optimize course: transport mode %q: %w", req.Mode, domain.ErrInvalidTransportMode)
	}
	if err := req.Weights.Validate(); err != nil {
		return fmt.Errorf("optimize course: %w", err)
	}

	seen := make(map[string]struct{}, len(req.Places))
	for _, p := range req.Places {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("optimize course: place id %q: %w", p.ID, domain.ErrDuplicatePlaceID)
		}
		seen[p.ID] = struct{}{}
	}

	return nil
}

// legMatrix precomputes pairwise leg distances so every candidate order
// reuses the same N^2 geodesic computations instead of N!*(N-1).
func legMatrix(places []domain.Place) [][]float64 {
	n := len(places)
	legs := make([][]float64, n)
	for i := range legs {
		legs[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := geo.Distance(
				places[i].Latitude, places[i].Longitude,
				places[j].Latitude, places[j].Longitude,
			)
			legs[i][j] = d
			legs[j][i] = d
		}
	}
	return legs
}

// evaluateOrders computes the raw metrics of every candidate order.
//
// Metric computation is per-order and order-independent, so large
// candidate sets are split into chunks filled by worker goroutines; the
// result is bit-identical to the sequential path either way.
func evaluateOrders(
	places []domain.Place,
	orders [][]int,
	legs [][]float64,
	dwellMinutes float64,
	mode domain.TransportMode,
) []orderMetrics {
	metrics := make([]orderMetrics, len(orders))

	if len(orders) < parallelMinOrders {
		for i, order := range orders {
			metrics[i] = evaluateOrder(places, order, legs, dwellMinutes, mode)
		}
		return metrics
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(orders) {
		workers = len(orders)
	}
	chunkSize := (len(orders) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < len(orders); start += chunkSize {
		start := start
		end := min(start+chunkSize, len(orders))
		g.Go(func() error {
			for i := start; i < end; i++ {
				metrics[i] = evaluateOrder(places, orders[i], legs, dwellMinutes, mode)
			}
			return nil
		})
	}
	// Workers are pure computations and never return an error.
	_ = g.Wait()

	return metrics
}

// evaluateOrder sums leg distance and travel time along one candidate
// order and scores its category variety.
func evaluateOrder(
	places []domain.Place,
	order []int,
	legs [][]float64,
	dwellMinutes float64,
	mode domain.TransportMode,
) orderMetrics {
	m := orderMetrics{durationMinutes: dwellMinutes}
	for i := 0; i < len(order)-1; i++ {
		leg := legs[order[i]][order[i+1]]
		m.distanceMeters += leg
		m.durationMinutes += TravelMinutes(leg, mode)
	}
	m.diversity = diversityScore(places, order)
	return m
}

// diversityScore measures how often consecutive places differ in category:
// the count of differing adjacent pairs over N-1, in [0, 1]. An order where
// no two consecutive places share a category scores 1.0.
func diversityScore(places []domain.Place, order []int) float64 {
	changes := 0
	for i := 0; i < len(order)-1; i++ {
		if places[order[i]].Category != places[order[i+1]].Category {
			changes++
		}
	}
	return float64(changes) / float64(len(order)-1)
}

// normalizedScore maps a raw metric onto [0, 1] against the candidate
// set's range, with the minimum mapping to 1.0 (lower is better). A
// degenerate range, where every candidate carries the same value, scores
// 1.0.
func normalizedScore(v, minV, maxV float64) float64 {
	if maxV <= minV {
		return 1.0
	}
	return 1 - (v-minV)/(maxV-minV)
}

// lessIDSequence reports whether order a visits a lexicographically
// smaller sequence of place ids than order b.
func lessIDSequence(places []domain.Place, a, b []int) bool {
	for i := range a {
		idA, idB := places[a[i]].ID, places[b[i]].ID
		if idA != idB {
			return idA < idB
		}
	}
	return false
}
