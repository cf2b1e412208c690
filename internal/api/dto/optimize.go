package dto

type PlaceRequest struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Category        string  `json:"category"`
	AvgStayDuration float64 `json:"avg_stay_duration"`
}

type WeightConfigRequest struct {
	DistanceWeight float64 `json:"distance_weight"`
	TimeWeight     float64 `json:"time_weight"`
	VarietyWeight  float64 `json:"variety_weight"`
}

type OptimizeRequest struct {
	Places        []PlaceRequest       `json:"places"`
	TransportMode string               `json:"transport_mode"`
	Weights       *WeightConfigRequest `json:"weights"`
}

type PlaceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Category        string  `json:"category"`
	AvgStayDuration float64 `json:"avg_stay_duration"`
}

type OptimizeResponse struct {
	OptimizedOrder    []PlaceResponse `json:"optimized_order"`
	OptimizationScore float64         `json:"optimization_score"`
	TotalDistance     float64         `json:"total_distance"`
	TotalDuration     float64         `json:"total_duration"`
}
