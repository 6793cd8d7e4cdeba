package bridge

import "github.com/fieldsense/geobridge/pkg/geo"

// Delegate receives the platform's location callbacks. The event adapter is
// the canonical implementation: each callback is translated into exactly one
// geo.Event and republished to subscribers.
//
// Backends must invoke all callbacks from a single goroutine; the delegate
// does not serialise concurrent callbacks against each other.
type Delegate interface {
	DidChangeAuthorization(status geo.AuthorizationStatus)
	DidUpdateLocations(locations []geo.Location)
	// DidUpdateLocation is the legacy two-argument update form. Platform
	// versions that fire both forms for one fix get both republished.
	DidUpdateLocation(newLocation, oldLocation geo.Location)
	DidEnterRegion(region geo.Region)
	DidExitRegion(region geo.Region)
	DidDetermineState(state geo.RegionState, region geo.Region)
	DidStartMonitoring(region geo.Region)
	MonitoringDidFail(region *geo.Region, err error)
	DidUpdateHeading(heading geo.Heading)
	HeadingUpdatesDidPause()
	HeadingUpdatesDidResume()
	DidFinishDeferredUpdates(err error)
	DidRangeBeacons(constraint geo.BeaconConstraint, beacons []geo.Beacon)
	RangingDidFail(constraint geo.BeaconConstraint, err error)
	DidVisit(visit geo.Visit)
	DidFail(err error)
}

// Backend is the explicitly owned handle to a platform location manager.
// The live capability table is a pass-through over this interface; tests
// supply recording fakes.
//
// Backends are not required to be safe for concurrent use. The live client
// funnels every call through a single run loop, so implementations may
// assume single-goroutine access after SetDelegate.
type Backend interface {
	// SetDelegate registers the callback sink. Called once, before any
	// other method.
	SetDelegate(d Delegate)

	AuthorizationStatus() geo.AuthorizationStatus
	AccuracyAuthorization() geo.AccuracyAuthorization
	LocationServicesEnabled() bool
	// Location returns the most recent fix, if one exists.
	Location() (geo.Location, bool)
	MonitoredRegions() []geo.Region

	RequestWhenInUseAuthorization()
	RequestAlwaysAuthorization()
	// RequestTemporaryFullAccuracyAuthorization completes asynchronously
	// via the completion callback; a nil error means full accuracy was
	// granted for the session.
	RequestTemporaryFullAccuracyAuthorization(purposeKey string, completion func(error))

	RequestLocation()
	StartUpdatingLocation()
	StopUpdatingLocation()
	StartUpdatingHeading()
	StopUpdatingHeading()
	DismissHeadingCalibration()
	StartMonitoringSignificantChanges()
	StopMonitoringSignificantChanges()
	StartMonitoringVisits()
	StopMonitoringVisits()
	StartMonitoring(region geo.Region)
	StopMonitoring(region geo.Region)
	StartRangingBeacons(constraint geo.BeaconConstraint)
	StopRangingBeacons(constraint geo.BeaconConstraint)

	// Apply forwards the populated options of props to the platform
	// object. Nil options must be left untouched.
	Apply(props Properties)
}
