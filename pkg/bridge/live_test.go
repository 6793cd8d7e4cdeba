package bridge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fieldsense/geobridge/pkg/geo"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

// fakeBackend records every call so tests can assert pass-through behaviour.
// The delegate it receives doubles as the injection point for simulated
// platform callbacks.
type fakeBackend struct {
	mu       sync.Mutex
	delegate Delegate
	calls    []string
	applied  []Properties

	status          geo.AuthorizationStatus
	accuracy        geo.AccuracyAuthorization
	enabled         bool
	location        geo.Location
	hasLocation     bool
	regions         []geo.Region
	fullAccuracyErr error
}

func (b *fakeBackend) record(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, name)
}

func (b *fakeBackend) recorded() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.calls))
	copy(out, b.calls)
	return out
}

func (b *fakeBackend) SetDelegate(d Delegate) { b.delegate = d }

func (b *fakeBackend) AuthorizationStatus() geo.AuthorizationStatus {
	b.record("AuthorizationStatus")
	return b.status
}

func (b *fakeBackend) AccuracyAuthorization() geo.AccuracyAuthorization {
	b.record("AccuracyAuthorization")
	return b.accuracy
}

func (b *fakeBackend) LocationServicesEnabled() bool {
	b.record("LocationServicesEnabled")
	return b.enabled
}

func (b *fakeBackend) Location() (geo.Location, bool) {
	b.record("Location")
	return b.location, b.hasLocation
}

func (b *fakeBackend) MonitoredRegions() []geo.Region {
	b.record("MonitoredRegions")
	return b.regions
}

func (b *fakeBackend) RequestWhenInUseAuthorization() { b.record("RequestWhenInUseAuthorization") }
func (b *fakeBackend) RequestAlwaysAuthorization()    { b.record("RequestAlwaysAuthorization") }

func (b *fakeBackend) RequestTemporaryFullAccuracyAuthorization(purposeKey string, completion func(error)) {
	b.record("RequestTemporaryFullAccuracyAuthorization:" + purposeKey)
	completion(b.fullAccuracyErr)
}

func (b *fakeBackend) RequestLocation()                   { b.record("RequestLocation") }
func (b *fakeBackend) StartUpdatingLocation()             { b.record("StartUpdatingLocation") }
func (b *fakeBackend) StopUpdatingLocation()              { b.record("StopUpdatingLocation") }
func (b *fakeBackend) StartUpdatingHeading()              { b.record("StartUpdatingHeading") }
func (b *fakeBackend) StopUpdatingHeading()               { b.record("StopUpdatingHeading") }
func (b *fakeBackend) DismissHeadingCalibration()         { b.record("DismissHeadingCalibration") }
func (b *fakeBackend) StartMonitoringSignificantChanges() { b.record("StartMonitoringSignificantChanges") }
func (b *fakeBackend) StopMonitoringSignificantChanges()  { b.record("StopMonitoringSignificantChanges") }
func (b *fakeBackend) StartMonitoringVisits()             { b.record("StartMonitoringVisits") }
func (b *fakeBackend) StopMonitoringVisits()              { b.record("StopMonitoringVisits") }

func (b *fakeBackend) StartMonitoring(region geo.Region) {
	b.record("StartMonitoring:" + region.Identifier)
}

func (b *fakeBackend) StopMonitoring(region geo.Region) {
	b.record("StopMonitoring:" + region.Identifier)
}

func (b *fakeBackend) StartRangingBeacons(constraint geo.BeaconConstraint) {
	b.record("StartRangingBeacons:" + constraint.UUID.String())
}

func (b *fakeBackend) StopRangingBeacons(constraint geo.BeaconConstraint) {
	b.record("StopRangingBeacons:" + constraint.UUID.String())
}

func (b *fakeBackend) Apply(props Properties) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, "Apply")
	b.applied = append(b.applied, props)
}

// drain waits until the run loop has executed everything queued so far.
func drain(t *testing.T, client Client) {
	t.Helper()
	done := make(chan struct{})
	// A query rendezvouses with the loop, so returning means the queue ran.
	go func() {
		client.AuthorizationStatus()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run loop stalled")
	}
}

func allCaps() *Capabilities {
	caps := CapabilitiesFor("darwin")
	return &caps
}

func newLive(t *testing.T, backend *fakeBackend, caps *Capabilities) Client {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	client, err := Live(ctx, LiveOptions{Backend: backend, Capabilities: caps})
	if err != nil {
		t.Fatalf("Live: %v", err)
	}
	return client
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestLive_QueriesPassThrough(t *testing.T) {
	fix := geo.Location{
		Coordinate: geo.Coordinate{Latitude: 19.4326, Longitude: -99.1332},
		Timestamp:  time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	backend := &fakeBackend{
		status:      geo.AuthorizationWhenInUse,
		accuracy:    geo.AccuracyAuthorizationReduced,
		enabled:     true,
		location:    fix,
		hasLocation: true,
		regions:     []geo.Region{{Identifier: "depot", NotifyOnEntry: true}},
	}
	client := newLive(t, backend, allCaps())

	if got := client.AuthorizationStatus(); got != geo.AuthorizationWhenInUse {
		t.Errorf("AuthorizationStatus = %v", got)
	}
	if got := client.AccuracyAuthorization(); got != geo.AccuracyAuthorizationReduced {
		t.Errorf("AccuracyAuthorization = %v", got)
	}
	if !client.LocationServicesEnabled() {
		t.Error("LocationServicesEnabled = false")
	}
	loc, ok := client.Location()
	if !ok || loc != fix {
		t.Errorf("Location = %+v, %v", loc, ok)
	}
	regions := client.MonitoredRegions()
	if len(regions) != 1 || !regions[0].Equal(backend.regions[0]) {
		t.Errorf("MonitoredRegions = %+v", regions)
	}
}

func TestLive_CommandsReachBackendInOrder(t *testing.T) {
	backend := &fakeBackend{}
	client := newLive(t, backend, allCaps())

	client.RequestLocation()
	client.StartUpdatingLocation()
	client.StartMonitoring(geo.Region{Identifier: "depot"})
	client.StopUpdatingLocation()
	drain(t, client)

	want := []string{
		"RequestLocation",
		"StartUpdatingLocation",
		"StartMonitoring:depot",
		"StopUpdatingLocation",
		"AuthorizationStatus", // from drain
	}
	got := backend.recorded()
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("calls = %v, want %v", got, want)
		}
	}
}

func TestLive_DelegateEventsReachSubscribers(t *testing.T) {
	backend := &fakeBackend{}
	client := newLive(t, backend, allCaps())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := client.Events(ctx)

	fix := geo.Location{Coordinate: geo.Coordinate{Latitude: 40.6501, Longitude: -73.94958}}
	backend.delegate.DidUpdateLocations([]geo.Location{fix})

	ev := recvEvent(t, events)
	upd, ok := ev.(geo.LocationsUpdated)
	if !ok || len(upd.Locations) != 1 || upd.Locations[0] != fix {
		t.Fatalf("got %+v, want single-fix LocationsUpdated", ev)
	}
}

func TestLive_LegacyAndModernUpdatesAreBothDelivered(t *testing.T) {
	backend := &fakeBackend{}
	client := newLive(t, backend, allCaps())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := client.Events(ctx)

	// Some platform versions fire both forms for one physical fix; the
	// bridge republishes both without merging.
	fix := geo.Location{Coordinate: geo.Coordinate{Latitude: 40.6501, Longitude: -73.94958}}
	backend.delegate.DidUpdateLocations([]geo.Location{fix})
	backend.delegate.DidUpdateLocation(fix, geo.Location{})

	if ev := recvEvent(t, events); ev.Kind() != "locations_updated" {
		t.Errorf("first event = %q", ev.Kind())
	}
	if ev := recvEvent(t, events); ev.Kind() != "location_updated" {
		t.Errorf("second event = %q", ev.Kind())
	}
}

func TestLive_UnsupportedCapabilityIsSilentNoop(t *testing.T) {
	backend := &fakeBackend{}
	caps := CapabilitiesFor("darwin")
	caps.Heading = false
	caps.BeaconRanging = false
	client := newLive(t, backend, &caps)

	if client.HeadingAvailable() {
		t.Error("HeadingAvailable should reflect the capability matrix")
	}
	if client.RangingAvailable() {
		t.Error("RangingAvailable should reflect the capability matrix")
	}

	client.StartUpdatingHeading()
	client.StopUpdatingHeading()
	client.StartRangingBeacons(geo.BeaconConstraint{})
	drain(t, client)

	for _, call := range backend.recorded() {
		if call != "AuthorizationStatus" {
			t.Errorf("unexpected backend call %q for unsupported capability", call)
		}
	}
}

func TestLive_SetAppliesOnlyPopulatedOptions(t *testing.T) {
	backend := &fakeBackend{}
	client := newLive(t, backend, allCaps())

	client.Set(Properties{DesiredAccuracy: f64(AccuracyNearestTenMeters)})
	drain(t, client)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	if len(backend.applied) != 1 {
		t.Fatalf("expected one Apply, got %d", len(backend.applied))
	}
	got := backend.applied[0]
	if got.DesiredAccuracy == nil || *got.DesiredAccuracy != AccuracyNearestTenMeters {
		t.Errorf("DesiredAccuracy = %v", got.DesiredAccuracy)
	}
	if got.ActivityType != nil || got.DistanceFilter != nil || got.HeadingFilter != nil ||
		got.HeadingOrientation != nil || got.AllowsBackgroundUpdates != nil ||
		got.PausesAutomatically != nil || got.ShowsBackgroundIndicator != nil {
		t.Errorf("options other than DesiredAccuracy must stay untouched: %+v", got)
	}
}

func TestLive_SetStripsUnsupportedOptions(t *testing.T) {
	backend := &fakeBackend{}
	caps := CapabilitiesFor("darwin")
	caps.Heading = false
	client := newLive(t, backend, &caps)

	client.Set(Properties{
		DesiredAccuracy: f64(AccuracyHundredMeters),
		HeadingFilter:   f64(5),
	})
	drain(t, client)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	if len(backend.applied) != 1 {
		t.Fatalf("expected one Apply, got %d", len(backend.applied))
	}
	got := backend.applied[0]
	if got.HeadingFilter != nil {
		t.Error("heading filter should be stripped when heading is unsupported")
	}
	if got.DesiredAccuracy == nil {
		t.Error("supported options must still be applied")
	}
}

func TestLive_SetSkipsInvalidProperties(t *testing.T) {
	backend := &fakeBackend{}
	client := newLive(t, backend, allCaps())

	client.Set(Properties{HeadingFilter: f64(720)})
	drain(t, client)

	backend.mu.Lock()
	defer backend.mu.Unlock()
	if len(backend.applied) != 0 {
		t.Errorf("invalid properties must not reach the backend: %+v", backend.applied)
	}
}

func TestLive_RequestFullAccuracySucceeds(t *testing.T) {
	backend := &fakeBackend{}
	client := newLive(t, backend, allCaps())

	if err := client.RequestTemporaryFullAccuracyAuthorization(context.Background(), "navigation"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, call := range backend.recorded() {
		if call == "RequestTemporaryFullAccuracyAuthorization:navigation" {
			found = true
		}
	}
	if !found {
		t.Error("purpose key did not reach the backend")
	}
}

func TestLive_RequestFullAccuracyWrapsPlatformError(t *testing.T) {
	platformErr := errors.New("purpose key missing from bundle")
	backend := &fakeBackend{fullAccuracyErr: platformErr}
	client := newLive(t, backend, allCaps())

	err := client.RequestTemporaryFullAccuracyAuthorization(context.Background(), "navigation")
	if !errors.Is(err, platformErr) {
		t.Fatalf("expected wrapped platform error, got: %v", err)
	}
}

func TestLive_RequestFullAccuracyUnsupportedIsNoop(t *testing.T) {
	backend := &fakeBackend{}
	caps := CapabilitiesFor("darwin")
	caps.AccuracyAuthorization = false
	client := newLive(t, backend, &caps)

	if err := client.RequestTemporaryFullAccuracyAuthorization(context.Background(), "navigation"); err != nil {
		t.Fatalf("unsupported capability must be a silent no-op, got: %v", err)
	}
	drain(t, client)
	for _, call := range backend.recorded() {
		if call != "AuthorizationStatus" {
			t.Errorf("unexpected backend call %q", call)
		}
	}
}

func TestLive_ShutdownClosesSubscriptions(t *testing.T) {
	backend := &fakeBackend{}
	ctx, cancel := context.WithCancel(context.Background())
	client, err := Live(ctx, LiveOptions{Backend: backend, Capabilities: allCaps()})
	if err != nil {
		t.Fatalf("Live: %v", err)
	}

	events := client.Events(context.Background())
	cancel()

	select {
	case _, ok := <-events:
		if ok {
			t.Error("expected closed channel after shutdown")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("subscription not closed on shutdown")
	}

	// Commands after shutdown are discarded, not deadlocked.
	client.RequestLocation()
	if got := client.AuthorizationStatus(); got != geo.AuthorizationNotDetermined {
		t.Errorf("queries after shutdown should return the zero value, got %v", got)
	}
}

func TestLive_RequiresBackend(t *testing.T) {
	if _, err := Live(context.Background(), LiveOptions{}); err == nil {
		t.Fatal("expected error for missing backend")
	}
}
