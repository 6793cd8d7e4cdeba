// Package geo defines the value mirrors exchanged between the location
// bridge and its consumers: immutable, structurally comparable snapshots of
// platform location data, decoupled from any live platform handle so that
// test-authored values compare equal to values observed from a real backend.
package geo

import "time"

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is an immutable snapshot of a single position fix.
// All fields are comparable; equality is structural (==).
type Location struct {
	Coordinate          Coordinate `json:"coordinate"`
	Altitude            float64    `json:"altitude_m"`
	EllipsoidalAltitude float64    `json:"ellipsoidal_altitude_m"`
	// HorizontalAccuracy is the radius of uncertainty in metres.
	// Negative means the coordinate is invalid.
	HorizontalAccuracy float64   `json:"horizontal_accuracy_m"`
	VerticalAccuracy   float64   `json:"vertical_accuracy_m"`
	Course             float64   `json:"course_deg"`
	CourseAccuracy     float64   `json:"course_accuracy_deg"`
	Speed              float64   `json:"speed_mps"`
	SpeedAccuracy      float64   `json:"speed_accuracy_mps"`
	Timestamp          time.Time `json:"timestamp"`
}
