package geo

import (
	"time"

	"github.com/google/uuid"
)

// Proximity classifies the relative distance to a ranged beacon.
type Proximity int

const (
	ProximityUnknown Proximity = iota
	ProximityImmediate
	ProximityNear
	ProximityFar
)

// String returns the lowercase name of the proximity class.
func (p Proximity) String() string {
	switch p {
	case ProximityImmediate:
		return "immediate"
	case ProximityNear:
		return "near"
	case ProximityFar:
		return "far"
	default:
		return "unknown"
	}
}

// Beacon is an immutable snapshot of a single beacon ranging measurement.
type Beacon struct {
	UUID      uuid.UUID `json:"uuid"`
	Major     uint16    `json:"major"`
	Minor     uint16    `json:"minor"`
	Proximity Proximity `json:"proximity"`
	// Accuracy is the estimated distance in metres; negative means the
	// estimate is unreliable.
	Accuracy  float64   `json:"accuracy_m"`
	RSSI      int       `json:"rssi"`
	Timestamp time.Time `json:"timestamp"`
}

// BeaconConstraint identifies a set of beacons to range. Major and Minor are
// nil when the constraint matches any value for that field.
//
// Handle carries the live platform constraint object, if any, and is
// excluded from equality, the same pattern as Region.Handle.
type BeaconConstraint struct {
	UUID  uuid.UUID `json:"uuid"`
	Major *uint16   `json:"major,omitempty"`
	Minor *uint16   `json:"minor,omitempty"`

	Handle any `json:"-"`
}

// Equal reports whether two constraints identify the same beacon set,
// ignoring the live handle.
func (c BeaconConstraint) Equal(other BeaconConstraint) bool {
	return c.UUID == other.UUID &&
		eqUint16Ptr(c.Major, other.Major) &&
		eqUint16Ptr(c.Minor, other.Minor)
}

func eqUint16Ptr(a, b *uint16) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
