package geo

import "time"

// Heading is an immutable snapshot of a compass reading.
type Heading struct {
	// MagneticHeading is degrees relative to magnetic north (0–360).
	MagneticHeading float64 `json:"magnetic_heading_deg"`
	// TrueHeading is degrees relative to geographic north, or negative
	// when true-north correction is unavailable.
	TrueHeading float64 `json:"true_heading_deg"`
	// HeadingAccuracy is the maximum deviation in degrees; negative means
	// the reading is invalid.
	HeadingAccuracy float64 `json:"heading_accuracy_deg"`

	// Raw geomagnetic field components in microteslas.
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	Timestamp time.Time `json:"timestamp"`
}
