package domain

// WeightConfig expresses the relative importance of the three objective
// terms. Only proportions matter: the optimizer normalizes the weights by
// their sum, so {2, 2, 1} and {0.4, 0.4, 0.2} drive identical outcomes.
type WeightConfig struct {
	Distance float64
	Time     float64
	Variety  float64
}

// DefaultWeights favor short courses first, quick courses second and
// category variety third.
func DefaultWeights() WeightConfig {
	return WeightConfig{Distance: 0.5, Time: 0.3, Variety: 0.2}
}

// Validate returns ErrInvalidWeightConfig unless every weight is
// non-negative and at least one is positive.
func (w WeightConfig) Validate() error {
	if w.Distance < 0 || w.Time < 0 || w.Variety < 0 {
		return ErrInvalidWeightConfig
	}
	if w.Distance+w.Time+w.Variety <= 0 {
		return ErrInvalidWeightConfig
	}
	return nil
}

// Normalize returns the proportional form of the configuration, scaled so
// the three weights sum to one. Validate must have accepted w first.
func (w WeightConfig) Normalize() WeightConfig {
	sum := w.Distance + w.Time + w.Variety
	return WeightConfig{
		Distance: w.Distance / sum,
		Time:     w.Time / sum,
		Variety:  w.Variety / sum,
	}
}
