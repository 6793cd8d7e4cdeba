package bridge

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fieldsense/geobridge/pkg/geo"
)

// MockOptions seeds the deterministic state of a mock client.
type MockOptions struct {
	// Authorization is reported by AuthorizationStatus and published when
	// an authorization request is issued.
	Authorization geo.AuthorizationStatus
	// AccuracyAuthorization is reported as-is.
	AccuracyAuthorization geo.AccuracyAuthorization
	// Location is the canned fix returned by Location and delivered by
	// RequestLocation.
	Location geo.Location
	// Logger defaults to a disabled logger.
	Logger *zerolog.Logger
	// BufferSize is the per-subscriber event buffer (default 64).
	BufferSize int
}

// MockClient is a scripted capability table for tests, previews, and demos.
// Commands behave deterministically: RequestLocation delivers exactly one
// locations-updated event carrying the canned location, authorization
// requests publish one authorization-changed event, and every start/stop
// command is a recorded no-op.
//
// Scenarios push further events through the Adapter's Delegate surface, as
// if the platform had called back.
type MockClient struct {
	Client Client
	// Adapter is the mock's event adapter; drive it directly to simulate
	// delegate callbacks arriving over time.
	Adapter *EventAdapter
}

// NewMock builds a mock client around opts.
func NewMock(opts MockOptions) *MockClient {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	adapter := NewEventAdapter(opts.BufferSize, log)

	noop := func() {}
	mc := &MockClient{Adapter: adapter}
	mc.Client = Client{
		AuthorizationStatus:        func() geo.AuthorizationStatus { return opts.Authorization },
		AccuracyAuthorization:      func() geo.AccuracyAuthorization { return opts.AccuracyAuthorization },
		LocationServicesEnabled:    func() bool { return true },
		HeadingAvailable:           func() bool { return true },
		SignificantChangeAvailable: func() bool { return true },
		RegionMonitoringAvailable:  func() bool { return true },
		RangingAvailable:           func() bool { return true },
		Location:                   func() (geo.Location, bool) { return opts.Location, true },
		MonitoredRegions:           func() []geo.Region { return nil },

		RequestWhenInUseAuthorization: func() { adapter.DidChangeAuthorization(opts.Authorization) },
		RequestAlwaysAuthorization:    func() { adapter.DidChangeAuthorization(opts.Authorization) },
		RequestTemporaryFullAccuracyAuthorization: func(context.Context, string) error {
			return nil
		},
		RequestLocation: func() {
			adapter.DidUpdateLocations([]geo.Location{opts.Location})
		},
		StartUpdatingLocation:             noop,
		StopUpdatingLocation:              noop,
		StartUpdatingHeading:              noop,
		StopUpdatingHeading:               noop,
		DismissHeadingCalibration:         noop,
		StartMonitoringSignificantChanges: noop,
		StopMonitoringSignificantChanges:  noop,
		StartMonitoringVisits:             noop,
		StopMonitoringVisits:              noop,
		StartMonitoring:                   func(geo.Region) {},
		StopMonitoring:                    func(geo.Region) {},
		StartRangingBeacons:               func(geo.BeaconConstraint) {},
		StopRangingBeacons:                func(geo.BeaconConstraint) {},
		Set:                               func(Properties) {},

		Events: adapter.Subscribe,
	}
	return mc
}
