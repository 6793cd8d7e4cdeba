package geo

// Event is the closed union of notifications produced by the location
// bridge. Exactly one variant exists per platform delegate callback, each
// carrying the callback's full payload as value mirrors. Platform errors
// always arrive inside a variant, never as a failure of the bridge itself.
//
// The union is sealed: Kind is implemented only by the types in this
// package, so a type switch over the variants below is exhaustive.
type Event interface {
	// Kind returns a stable snake_case discriminator, used for logging
	// and metrics labels.
	Kind() string
}

// AuthorizationChanged reports a change in authorization status.
type AuthorizationChanged struct {
	Status AuthorizationStatus
}

// LocationsUpdated carries one or more fresh position fixes, most recent
// last.
type LocationsUpdated struct {
	Locations []Location
}

// LocationUpdated is the legacy two-argument form of a position update.
// Some platform versions deliver both this and LocationsUpdated for the
// same physical fix; the bridge republishes both without merging.
type LocationUpdated struct {
	New Location
	Old Location
}

// RegionEntered reports entry into a monitored region.
type RegionEntered struct {
	Region Region
}

// RegionExited reports exit from a monitored region.
type RegionExited struct {
	Region Region
}

// RegionStateDetermined reports the answer to a region state request.
type RegionStateDetermined struct {
	State  RegionState
	Region Region
}

// MonitoringStarted confirms that monitoring began for a region.
type MonitoringStarted struct {
	Region Region
}

// MonitoringFailed reports that monitoring could not start or continue.
// Region is nil when the failure is not tied to a specific region.
type MonitoringFailed struct {
	Region *Region
	Err    error
}

// HeadingUpdated carries a fresh compass reading.
type HeadingUpdated struct {
	Heading Heading
}

// HeadingUpdatesPaused signals that the platform paused heading delivery.
type HeadingUpdatesPaused struct{}

// HeadingUpdatesResumed signals that the platform resumed heading delivery.
type HeadingUpdatesResumed struct{}

// DeferredUpdatesFinished reports completion of deferred location delivery.
// Err is nil on clean completion.
type DeferredUpdatesFinished struct {
	Err error
}

// BeaconsRanged carries one round of ranging measurements for a constraint.
type BeaconsRanged struct {
	Constraint BeaconConstraint
	Beacons    []Beacon
}

// BeaconRangingFailed reports a ranging failure for a constraint.
type BeaconRangingFailed struct {
	Constraint BeaconConstraint
	Err        error
}

// VisitDetected reports a detected place visit.
type VisitDetected struct {
	Visit Visit
}

// Failed carries a platform error not attributable to a more specific
// variant.
type Failed struct {
	Err error
}

func (AuthorizationChanged) Kind() string    { return "authorization_changed" }
func (LocationsUpdated) Kind() string        { return "locations_updated" }
func (LocationUpdated) Kind() string         { return "location_updated" }
func (RegionEntered) Kind() string           { return "region_entered" }
func (RegionExited) Kind() string            { return "region_exited" }
func (RegionStateDetermined) Kind() string   { return "region_state_determined" }
func (MonitoringStarted) Kind() string       { return "monitoring_started" }
func (MonitoringFailed) Kind() string        { return "monitoring_failed" }
func (HeadingUpdated) Kind() string          { return "heading_updated" }
func (HeadingUpdatesPaused) Kind() string    { return "heading_updates_paused" }
func (HeadingUpdatesResumed) Kind() string   { return "heading_updates_resumed" }
func (DeferredUpdatesFinished) Kind() string { return "deferred_updates_finished" }
func (BeaconsRanged) Kind() string           { return "beacons_ranged" }
func (BeaconRangingFailed) Kind() string     { return "beacon_ranging_failed" }
func (VisitDetected) Kind() string           { return "visit_detected" }
func (Failed) Kind() string                  { return "failed" }
