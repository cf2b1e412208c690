package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"course-route-service/internal/api/dto"
	"course-route-service/internal/domain"
	"course-route-service/internal/services"
)

// Optimize computes the best visiting order for a set of resolved places.
// The handler owns request-shape concerns (JSON strictness, coordinate
// ranges); the optimizer service owns the course-level validation rules.
func Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	places := make([]domain.Place, 0, len(req.Places))
	for _, p := range req.Places {
		if p.ID == "" {
			writeError(w, r, http.StatusBadRequest, "place id is required")
			return
		}
		if !domain.ValidLatitude(p.Latitude) {
			writeError(w, r, http.StatusBadRequest,
				fmt.Sprintf("place %q: latitude must be between -90 and 90", p.ID))
			return
		}
		if !domain.ValidLongitude(p.Longitude) {
			writeError(w, r, http.StatusBadRequest,
				fmt.Sprintf("place %q: longitude must be between -180 and 180", p.ID))
			return
		}
		if p.AvgStayDuration < 0 {
			writeError(w, r, http.StatusBadRequest,
				fmt.Sprintf("place %q: avg_stay_duration must be non-negative", p.ID))
			return
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

	svcReq := services.OptimizeCourseRequest{
		Places:  places,
		Mode:    domain.TransportMode(req.TransportMode),
		Weights: weights,
	}

	route, err := services.OptimizeCourse(r.Context(), svcReq)
	if err != nil {
		if isCourseValidationError(err) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("optimize course failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	order := make([]dto.PlaceResponse, 0, len(route.OptimizedOrder))
	for _, p := range route.OptimizedOrder {
		order = append(order, dto.PlaceResponse{
			ID:              p.ID,
			Name:            p.Name,
			Latitude:        p.Latitude,
			Longitude:       p.Longitude,
			Category:        p.Category,
			AvgStayDuration: p.AvgStayMinutes,
		})
	}

	res := dto.OptimizeResponse{
		OptimizedOrder:    order,
		OptimizationScore: route.OptimizationScore,
		TotalDistance:     route.TotalDistanceMeters,
		TotalDuration:     route.TotalDurationMinutes,
	}

	writeJSON(w, r, http.StatusOK, res)
}

// isCourseValidationError distinguishes caller mistakes, reported as 400,
// from unexpected internal failures.
func isCourseValidationError(err error) bool {
	return errors.Is(err, domain.ErrTooFewPlaces) ||
		errors.Is(err, domain.ErrTooManyPlaces) ||
		errors.Is(err, domain.ErrInvalidTransportMode) ||
		errors.Is(err, domain.ErrInvalidWeightConfig) ||
		errors.Is(err, domain.ErrDuplicatePlaceID)
}
