// Package bridgetest provides test doubles for the bridge capability table:
// a failing substitute that flags any capability a test did not explicitly
// override, and a silent unimplemented stub to build partial doubles on.
package bridgetest

import (
	"context"
	"testing"

	"github.com/fieldsense/geobridge/pkg/bridge"
	"github.com/fieldsense/geobridge/pkg/geo"
)

// Failing returns a capability table whose every function reports a test
// failure naming the capability, then returns a harmless zero value so the
// code under test keeps running. Tests override exactly the fields the
// feature under test is expected to touch; any other call fails the test.
func Failing(tb testing.TB) bridge.Client {
	unexpected := func(name string) {
		tb.Helper()
		tb.Errorf("unexpected call to %s", name)
	}

	return bridge.Client{
		AuthorizationStatus: func() geo.AuthorizationStatus {
			unexpected("AuthorizationStatus")
			return geo.AuthorizationNotDetermined
		},
		AccuracyAuthorization: func() geo.AccuracyAuthorization {
			unexpected("AccuracyAuthorization")
			return geo.AccuracyAuthorizationFull
		},
		LocationServicesEnabled: func() bool {
			unexpected("LocationServicesEnabled")
			return false
		},
		HeadingAvailable: func() bool {
			unexpected("HeadingAvailable")
			return false
		},
		SignificantChangeAvailable: func() bool {
			unexpected("SignificantChangeAvailable")
			return false
		},
		RegionMonitoringAvailable: func() bool {
			unexpected("RegionMonitoringAvailable")
			return false
		},
		RangingAvailable: func() bool {
			unexpected("RangingAvailable")
			return false
		},
		Location: func() (geo.Location, bool) {
			unexpected("Location")
			return geo.Location{}, false
		},
		MonitoredRegions: func() []geo.Region {
			unexpected("MonitoredRegions")
			return nil
		},

		RequestWhenInUseAuthorization: func() { unexpected("RequestWhenInUseAuthorization") },
		RequestAlwaysAuthorization:    func() { unexpected("RequestAlwaysAuthorization") },
		RequestTemporaryFullAccuracyAuthorization: func(context.Context, string) error {
			unexpected("RequestTemporaryFullAccuracyAuthorization")
			return nil
		},
		RequestLocation:                   func() { unexpected("RequestLocation") },
		StartUpdatingLocation:             func() { unexpected("StartUpdatingLocation") },
		StopUpdatingLocation:              func() { unexpected("StopUpdatingLocation") },
		StartUpdatingHeading:              func() { unexpected("StartUpdatingHeading") },
		StopUpdatingHeading:               func() { unexpected("StopUpdatingHeading") },
		DismissHeadingCalibration:         func() { unexpected("DismissHeadingCalibration") },
		StartMonitoringSignificantChanges: func() { unexpected("StartMonitoringSignificantChanges") },
		StopMonitoringSignificantChanges:  func() { unexpected("StopMonitoringSignificantChanges") },
		StartMonitoringVisits:             func() { unexpected("StartMonitoringVisits") },
		StopMonitoringVisits:              func() { unexpected("StopMonitoringVisits") },
		StartMonitoring:                   func(geo.Region) { unexpected("StartMonitoring") },
		StopMonitoring:                    func(geo.Region) { unexpected("StopMonitoring") },
		StartRangingBeacons:               func(geo.BeaconConstraint) { unexpected("StartRangingBeacons") },
		StopRangingBeacons:                func(geo.BeaconConstraint) { unexpected("StopRangingBeacons") },
		Set:                               func(bridge.Properties) { unexpected("Set") },

		Events: func(context.Context) <-chan geo.Event {
			unexpected("Events")
			ch := make(chan geo.Event)
			close(ch)
			return ch
		},
	}
}
