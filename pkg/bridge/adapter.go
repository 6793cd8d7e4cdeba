package bridge

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fieldsense/geobridge/internal/metrics"
	"github.com/fieldsense/geobridge/pkg/geo"
)

const defaultBuffer = 64

// EventAdapter bridges push-style platform delegate callbacks into a
// multi-consumer, cancelable event stream. It is the single Delegate
// registered with the backend: every callback is translated into exactly one
// geo.Event and fanned out to all currently registered subscribers, in
// registration order.
//
// Subscribers are isolated from each other. Each owns a buffered channel;
// when a subscriber stops reading and its buffer fills, further events are
// dropped for that subscriber only, so a stalled consumer never delays
// delivery to the rest.
type EventAdapter struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]chan geo.Event
	order  []uuid.UUID
	closed bool

	buffer int
	log    zerolog.Logger
}

var _ Delegate = (*EventAdapter)(nil)

// NewEventAdapter creates an adapter whose subscriber channels buffer up to
// bufferSize events. If bufferSize <= 0, a default of 64 is used.
func NewEventAdapter(bufferSize int, log zerolog.Logger) *EventAdapter {
	if bufferSize <= 0 {
		bufferSize = defaultBuffer
	}
	return &EventAdapter{
		subs:   make(map[uuid.UUID]chan geo.Event),
		buffer: bufferSize,
		log:    log,
	}
}

// Subscribe registers a new consumer and returns its event channel. The
// channel carries every event published after this call; there is no replay
// of history. When ctx is cancelled the subscription is torn down and the
// channel closed. Subscribing on a closed adapter returns an already-closed
// channel.
func (a *EventAdapter) Subscribe(ctx context.Context) <-chan geo.Event {
	if ctx == nil {
		ctx = context.Background()
	}

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		ch := make(chan geo.Event)
		close(ch)
		return ch
	}
	id := uuid.New()
	ch := make(chan geo.Event, a.buffer)
	a.subs[id] = ch
	a.order = append(a.order, id)
	metrics.Subscribers.Inc()
	a.mu.Unlock()

	go func() {
		<-ctx.Done()
		a.unsubscribe(id)
	}()

	return ch
}

// unsubscribe releases the registry slot exactly once; concurrent calls and
// calls racing a publish are safe because the channel is only closed while
// holding the registry lock.
func (a *EventAdapter) unsubscribe(id uuid.UUID) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ch, ok := a.subs[id]
	if !ok {
		return
	}
	delete(a.subs, id)
	for i, other := range a.order {
		if other == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	close(ch)
	metrics.Subscribers.Dec()
}

// Close tears down every subscription. Delegate callbacks arriving after
// Close are discarded.
func (a *EventAdapter) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}
	a.closed = true
	for _, ch := range a.subs {
		close(ch)
	}
	metrics.Subscribers.Sub(float64(len(a.subs)))
	a.subs = make(map[uuid.UUID]chan geo.Event)
	a.order = nil
}

func (a *EventAdapter) publish(event geo.Event) {
	kind := event.Kind()

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	delivered, dropped := 0, 0
	for _, id := range a.order {
		select {
		case a.subs[id] <- event:
			delivered++
		default:
			dropped++
		}
	}
	a.mu.Unlock()

	metrics.EventsPublishedTotal.WithLabelValues(kind).Inc()
	metrics.EventsDeliveredTotal.WithLabelValues(kind).Add(float64(delivered))
	if dropped > 0 {
		metrics.EventsDroppedTotal.WithLabelValues(kind).Add(float64(dropped))
		a.log.Warn().Str("kind", kind).Int("dropped", dropped).Msg("subscriber buffer full, event dropped")
	}
	a.log.Debug().Str("kind", kind).Int("delivered", delivered).Msg("event published")
}

// ── Delegate implementation ──────────────────────────────────────────────────

func (a *EventAdapter) DidChangeAuthorization(status geo.AuthorizationStatus) {
	a.publish(geo.AuthorizationChanged{Status: status})
}

func (a *EventAdapter) DidUpdateLocations(locations []geo.Location) {
	a.publish(geo.LocationsUpdated{Locations: locations})
}

func (a *EventAdapter) DidUpdateLocation(newLocation, oldLocation geo.Location) {
	a.publish(geo.LocationUpdated{New: newLocation, Old: oldLocation})
}

func (a *EventAdapter) DidEnterRegion(region geo.Region) {
	a.publish(geo.RegionEntered{Region: region})
}

func (a *EventAdapter) DidExitRegion(region geo.Region) {
	a.publish(geo.RegionExited{Region: region})
}

func (a *EventAdapter) DidDetermineState(state geo.RegionState, region geo.Region) {
	a.publish(geo.RegionStateDetermined{State: state, Region: region})
}

func (a *EventAdapter) DidStartMonitoring(region geo.Region) {
	a.publish(geo.MonitoringStarted{Region: region})
}

func (a *EventAdapter) MonitoringDidFail(region *geo.Region, err error) {
	a.publish(geo.MonitoringFailed{Region: region, Err: err})
}

func (a *EventAdapter) DidUpdateHeading(heading geo.Heading) {
	a.publish(geo.HeadingUpdated{Heading: heading})
}

func (a *EventAdapter) HeadingUpdatesDidPause() {
	a.publish(geo.HeadingUpdatesPaused{})
}

func (a *EventAdapter) HeadingUpdatesDidResume() {
	a.publish(geo.HeadingUpdatesResumed{})
}

func (a *EventAdapter) DidFinishDeferredUpdates(err error) {
	a.publish(geo.DeferredUpdatesFinished{Err: err})
}

func (a *EventAdapter) DidRangeBeacons(constraint geo.BeaconConstraint, beacons []geo.Beacon) {
	a.publish(geo.BeaconsRanged{Constraint: constraint, Beacons: beacons})
}

func (a *EventAdapter) RangingDidFail(constraint geo.BeaconConstraint, err error) {
	a.publish(geo.BeaconRangingFailed{Constraint: constraint, Err: err})
}

func (a *EventAdapter) DidVisit(visit geo.Visit) {
	a.publish(geo.VisitDetected{Visit: visit})
}

func (a *EventAdapter) DidFail(err error) {
	a.publish(geo.Failed{Err: err})
}
