package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fieldsense/geobridge/pkg/geo"
)

// LiveOptions configures the live capability table.
type LiveOptions struct {
	// Backend is the platform location manager handle. Required.
	Backend Backend
	// Capabilities fixes the capability matrix. When nil it is resolved
	// from the platform profile and GEOBRIDGE_CAP_* overrides.
	Capabilities *Capabilities
	// Logger receives adapter and command logs. Defaults to a disabled
	// logger.
	Logger *zerolog.Logger
	// BufferSize is the per-subscriber event buffer (default 64).
	BufferSize int
}

// Live builds the pass-through capability table over opts.Backend.
//
// Every backend call is funnelled through a single run-loop goroutine, since
// platform location managers are not safe to drive from arbitrary
// goroutines. The loop runs until ctx is cancelled; afterwards commands are
// discarded and queries return zero values.
func Live(ctx context.Context, opts LiveOptions) (Client, error) {
	if opts.Backend == nil {
		return Client{}, errors.New("bridge: backend is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	var caps Capabilities
	if opts.Capabilities != nil {
		caps = *opts.Capabilities
	} else {
		resolved, err := ResolveCapabilities(ctx)
		if err != nil {
			return Client{}, err
		}
		caps = resolved
	}

	m := &liveManager{
		backend: opts.Backend,
		caps:    caps,
		adapter: NewEventAdapter(opts.BufferSize, log),
		log:     log,
		calls:   make(chan func()),
		done:    ctx.Done(),
	}
	opts.Backend.SetDelegate(m.adapter)
	go m.run(ctx)

	return m.client(), nil
}

// liveManager owns the backend handle and the run loop that serialises all
// access to it.
type liveManager struct {
	backend Backend
	caps    Capabilities
	adapter *EventAdapter
	log     zerolog.Logger
	calls   chan func()
	done    <-chan struct{}
}

func (m *liveManager) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			m.adapter.Close()
			return
		case f := <-m.calls:
			f()
		}
	}
}

// do schedules f on the run loop. After shutdown the call is discarded.
func (m *liveManager) do(f func()) {
	select {
	case m.calls <- f:
	case <-m.done:
	}
}

// query runs f on the run loop and waits for its result. After shutdown the
// zero value is returned.
func query[T any](m *liveManager, f func() T) T {
	out := make(chan T, 1)
	m.do(func() { out <- f() })
	select {
	case v := <-out:
		return v
	case <-m.done:
		var zero T
		return zero
	}
}

// gated wraps a no-argument backend command, turning it into a logged no-op
// when the capability is absent from the matrix.
func (m *liveManager) gated(supported bool, op string, f func()) func() {
	return func() {
		if !supported {
			m.log.Debug().Str("op", op).Msg("capability unavailable, ignoring")
			return
		}
		m.do(f)
	}
}

func (m *liveManager) client() Client {
	b := m.backend
	return Client{
		AuthorizationStatus: func() geo.AuthorizationStatus {
			return query(m, b.AuthorizationStatus)
		},
		AccuracyAuthorization: func() geo.AccuracyAuthorization {
			if !m.caps.AccuracyAuthorization {
				return geo.AccuracyAuthorizationFull
			}
			return query(m, b.AccuracyAuthorization)
		},
		LocationServicesEnabled: func() bool {
			if !m.caps.LocationServices {
				return false
			}
			return query(m, b.LocationServicesEnabled)
		},
		HeadingAvailable:           func() bool { return m.caps.Heading },
		SignificantChangeAvailable: func() bool { return m.caps.SignificantChange },
		RegionMonitoringAvailable:  func() bool { return m.caps.RegionMonitoring },
		RangingAvailable:           func() bool { return m.caps.BeaconRanging },
		Location: func() (geo.Location, bool) {
			fix := query(m, func() lastFix {
				loc, ok := b.Location()
				return lastFix{loc, ok}
			})
			return fix.loc, fix.ok
		},
		MonitoredRegions: func() []geo.Region {
			if !m.caps.RegionMonitoring {
				return nil
			}
			return query(m, b.MonitoredRegions)
		},

		RequestWhenInUseAuthorization:             func() { m.do(b.RequestWhenInUseAuthorization) },
		RequestAlwaysAuthorization:                func() { m.do(b.RequestAlwaysAuthorization) },
		RequestTemporaryFullAccuracyAuthorization: m.requestFullAccuracy,
		RequestLocation:                           func() { m.do(b.RequestLocation) },
		StartUpdatingLocation:                     func() { m.do(b.StartUpdatingLocation) },
		StopUpdatingLocation:                      func() { m.do(b.StopUpdatingLocation) },
		StartUpdatingHeading:                      m.gated(m.caps.Heading, "start_updating_heading", b.StartUpdatingHeading),
		StopUpdatingHeading:                       m.gated(m.caps.Heading, "stop_updating_heading", b.StopUpdatingHeading),
		DismissHeadingCalibration:                 m.gated(m.caps.Heading, "dismiss_heading_calibration", b.DismissHeadingCalibration),
		StartMonitoringSignificantChanges:         m.gated(m.caps.SignificantChange, "start_monitoring_significant_changes", b.StartMonitoringSignificantChanges),
		StopMonitoringSignificantChanges:          m.gated(m.caps.SignificantChange, "stop_monitoring_significant_changes", b.StopMonitoringSignificantChanges),
		StartMonitoringVisits:                     m.gated(m.caps.Visits, "start_monitoring_visits", b.StartMonitoringVisits),
		StopMonitoringVisits:                      m.gated(m.caps.Visits, "stop_monitoring_visits", b.StopMonitoringVisits),
		StartMonitoring: func(region geo.Region) {
			if !m.caps.RegionMonitoring {
				m.log.Debug().Str("op", "start_monitoring").Msg("capability unavailable, ignoring")
				return
			}
			m.do(func() { b.StartMonitoring(region) })
		},
		StopMonitoring: func(region geo.Region) {
			if !m.caps.RegionMonitoring {
				return
			}
			m.do(func() { b.StopMonitoring(region) })
		},
		StartRangingBeacons: func(constraint geo.BeaconConstraint) {
			if !m.caps.BeaconRanging {
				m.log.Debug().Str("op", "start_ranging_beacons").Msg("capability unavailable, ignoring")
				return
			}
			m.do(func() { b.StartRangingBeacons(constraint) })
		},
		StopRangingBeacons: func(constraint geo.BeaconConstraint) {
			if !m.caps.BeaconRanging {
				return
			}
			m.do(func() { b.StopRangingBeacons(constraint) })
		},
		Set: m.set,

		Events: m.adapter.Subscribe,
	}
}

type lastFix struct {
	loc geo.Location
	ok  bool
}

// requestFullAccuracy is the only failable capability: it forwards the
// purpose key to the backend and waits for the asynchronous completion.
// The platform request itself cannot be cancelled; cancelling ctx only stops
// the wait.
func (m *liveManager) requestFullAccuracy(ctx context.Context, purposeKey string) error {
	if !m.caps.AccuracyAuthorization {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	errc := make(chan error, 1)
	m.do(func() {
		m.backend.RequestTemporaryFullAccuracyAuthorization(purposeKey, func(err error) {
			errc <- err
		})
	})

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("request temporary full accuracy: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-m.done:
		return nil
	}
}

// set validates the options, strips the ones this platform cannot honour,
// and forwards the rest. Invalid values are skipped rather than surfaced:
// set-properties is defined never to fail.
func (m *liveManager) set(props Properties) {
	if err := props.Validate(); err != nil {
		m.log.Warn().Err(err).Msg("ignoring invalid properties")
		return
	}

	if !m.caps.Heading {
		props.HeadingFilter = nil
		props.HeadingOrientation = nil
	}
	if !m.caps.BackgroundIndicator {
		props.ShowsBackgroundIndicator = nil
	}

	m.do(func() { m.backend.Apply(props) })
}
