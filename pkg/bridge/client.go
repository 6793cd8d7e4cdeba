// Package bridge adapts a callback-driven platform location backend into a
// subscribable event stream plus a table of effect functions, so that
// application code can depend on location services through plain values and
// swap in deterministic substitutes under test.
//
// A Client is selected at composition time: Live forwards to a real Backend,
// NewMock simulates one, and package bridgetest provides failing and
// unimplemented substitutes for tests.
package bridge

import (
	"context"

	"github.com/fieldsense/geobridge/pkg/geo"
)

// Client is the capability table: one independently replaceable function per
// location-services command or query. Tests override exactly the subset a
// feature exercises and leave the rest to a bridgetest substitute.
//
// Only RequestTemporaryFullAccuracyAuthorization can fail. Every other
// function either succeeds or is a no-op on platforms lacking the
// capability; platform errors surface as events, never as faults.
type Client struct {
	// Queries.
	AuthorizationStatus        func() geo.AuthorizationStatus
	AccuracyAuthorization      func() geo.AccuracyAuthorization
	LocationServicesEnabled    func() bool
	HeadingAvailable           func() bool
	SignificantChangeAvailable func() bool
	RegionMonitoringAvailable  func() bool
	RangingAvailable           func() bool
	Location                   func() (geo.Location, bool)
	MonitoredRegions           func() []geo.Region

	// Commands.
	RequestWhenInUseAuthorization             func()
	RequestAlwaysAuthorization                func()
	RequestTemporaryFullAccuracyAuthorization func(ctx context.Context, purposeKey string) error
	RequestLocation                           func()
	StartUpdatingLocation                     func()
	StopUpdatingLocation                      func()
	StartUpdatingHeading                      func()
	StopUpdatingHeading                       func()
	DismissHeadingCalibration                 func()
	StartMonitoringSignificantChanges         func()
	StopMonitoringSignificantChanges          func()
	StartMonitoringVisits                     func()
	StopMonitoringVisits                      func()
	StartMonitoring                           func(region geo.Region)
	StopMonitoring                            func(region geo.Region)
	StartRangingBeacons                       func(constraint geo.BeaconConstraint)
	StopRangingBeacons                        func(constraint geo.BeaconConstraint)
	Set                                       func(props Properties)

	// Events returns a fresh subscription to the client's event stream.
	// The channel closes when ctx is cancelled.
	Events func(ctx context.Context) <-chan geo.Event
}
