package bridgetest

import (
	"context"

	"github.com/fieldsense/geobridge/pkg/bridge"
	"github.com/fieldsense/geobridge/pkg/geo"
)

// Unimplemented returns a capability table whose every function is a silent
// no-op returning zero values. Events returns a nil channel, which blocks
// forever: an unimplemented client emits nothing.
//
// Use it as the base for partial doubles when silent defaults are wanted;
// prefer Failing when an unexpected call should fail the test.
func Unimplemented() bridge.Client {
	noop := func() {}
	return bridge.Client{
		AuthorizationStatus:        func() geo.AuthorizationStatus { return geo.AuthorizationNotDetermined },
		AccuracyAuthorization:      func() geo.AccuracyAuthorization { return geo.AccuracyAuthorizationFull },
		LocationServicesEnabled:    func() bool { return false },
		HeadingAvailable:           func() bool { return false },
		SignificantChangeAvailable: func() bool { return false },
		RegionMonitoringAvailable:  func() bool { return false },
		RangingAvailable:           func() bool { return false },
		Location:                   func() (geo.Location, bool) { return geo.Location{}, false },
		MonitoredRegions:           func() []geo.Region { return nil },

		RequestWhenInUseAuthorization:             noop,
		RequestAlwaysAuthorization:                noop,
		RequestTemporaryFullAccuracyAuthorization: func(context.Context, string) error { return nil },
		RequestLocation:                           noop,
		StartUpdatingLocation:                     noop,
		StopUpdatingLocation:                      noop,
		StartUpdatingHeading:                      noop,
		StopUpdatingHeading:                       noop,
		DismissHeadingCalibration:                 noop,
		StartMonitoringSignificantChanges:         noop,
		StopMonitoringSignificantChanges:          noop,
		StartMonitoringVisits:                     noop,
		StopMonitoringVisits:                      noop,
		StartMonitoring:                           func(geo.Region) {},
		StopMonitoring:                            func(geo.Region) {},
		StartRangingBeacons:                       func(geo.BeaconConstraint) {},
		StopRangingBeacons:                        func(geo.BeaconConstraint) {},
		Set:                                       func(bridge.Properties) {},

		Events: func(context.Context) <-chan geo.Event { return nil },
	}
}
