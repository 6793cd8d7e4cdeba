package geo

// RegionState reports whether the device is inside or outside a monitored
// region, as determined by the platform.
type RegionState int

const (
	RegionStateUnknown RegionState = iota
	RegionStateInside
	RegionStateOutside
)

// String returns the lowercase name of the state.
func (s RegionState) String() string {
	switch s {
	case RegionStateInside:
		return "inside"
	case RegionStateOutside:
		return "outside"
	default:
		return "unknown"
	}
}

// Region mirrors a monitored geographic region.
//
// Handle optionally carries the live platform object the region was derived
// from, so the live capability table can hand it back to the backend.
// Handle is never part of value semantics: two regions with equal identifier
// and notification flags are equal regardless of what either handle holds.
type Region struct {
	Identifier    string `json:"identifier"`
	NotifyOnEntry bool   `json:"notify_on_entry"`
	NotifyOnExit  bool   `json:"notify_on_exit"`

	Handle any `json:"-"`
}

// Equal reports whether two regions have the same observable fields.
// The live handle is excluded deliberately.
func (r Region) Equal(other Region) bool {
	return r.Identifier == other.Identifier &&
		r.NotifyOnEntry == other.NotifyOnEntry &&
		r.NotifyOnExit == other.NotifyOnExit
}
