package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"course-route-service/internal/api/dto"
	"course-route-service/internal/domain"
	"course-route-service/internal/services"
)

// coursetool runs one optimization from a request file without starting the
// HTTP server. It reads the same JSON shape as POST /optimize and prints
// the optimized course, which makes it handy for trying out weight
// configurations.
func main() {
	input := flag.String("input", "", "path to an optimize request JSON file (default stdin)")
	flag.Parse()

	req, err := readRequest(*input)
	if err != nil {
		log.Fatal(err)
	}

	places := make([]domain.Place, 0, len(req.Places))
	for _, p := range req.Places {
		if p.ID == "" {
			log.Fatal("every place needs an id")
		}
		if !domain.ValidLatitude(p.Latitude) || !domain.ValidLongitude(p.Longitude) {
			log.Fatalf("place %q: coordinates out of range", p.ID)
		}
		if p.AvgStayDuration < 0 {
			log.Fatalf("place %q: avg_stay_duration must be non-negative", p.ID)
		}

		places = append(places, domain.Place{
			ID:             p.ID,
			Name:           p.Name,
			Latitude:       p.Latitude,
			Longitude:      p.Longitude,
			Category:       p.Category,
			AvgStayMinutes: p.AvgStayDuration,
		})
	}

	weights := domain.DefaultWeights()
	if req.Weights != nil {
		weights = domain.WeightConfig{
			Distance: req.Weights.DistanceWeight,
			Time:     req.Weights.TimeWeight,
			Variety:  req.Weights.VarietyWeight,
		}
	}

	route, err := services.OptimizeCourse(context.Background(), services.OptimizeCourseRequest{
		Places:  places,
		Mode:    domain.TransportMode(req.TransportMode),
		Weights: weights,
	})
	if err != nil {
		log.Fatal(err)
	}

	printCourse(route)
}

func readRequest(path string) (dto.OptimizeRequest, error) {
	var req dto.OptimizeRequest

	r := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return req, fmt.Errorf("read request: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("read request: decode json: %w", err)
	}

	return req, nil
}

func printCourse(route *domain.CourseRoute) {
	for i, p := range route.OptimizedOrder {
		fmt.Printf("%d. %s (%s) stay %.0f min\n", i+1, p.Name, p.Category, p.AvgStayMinutes)
	}
	fmt.Printf("score:    %.4f\n", route.OptimizationScore)
	fmt.Printf("distance: %.0f m\n", route.TotalDistanceMeters)
	fmt.Printf("duration: %.0f min\n", route.TotalDurationMinutes)
}
