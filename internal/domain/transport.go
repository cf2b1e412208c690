package domain

// TransportMode selects the average travel speed used for duration
// estimation. It never affects distance computation.
type TransportMode string

const (
	TransportWalking TransportMode = "walking"
	TransportTransit TransportMode = "transit"
	TransportDriving TransportMode = "driving"
)

// Valid reports whether m is one of the recognized transport modes.
func (m TransportMode) Valid() bool {
	switch m {
	case TransportWalking, TransportTransit, TransportDriving:
		return true
	}
	return false
}
