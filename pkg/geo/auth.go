package geo

// AuthorizationStatus mirrors the platform's location authorization state.
type AuthorizationStatus int

const (
	AuthorizationNotDetermined AuthorizationStatus = iota
	AuthorizationRestricted
	AuthorizationDenied
	AuthorizationAlways
	AuthorizationWhenInUse
)

// String returns a stable snake_case name for logging and metrics labels.
func (s AuthorizationStatus) String() string {
	switch s {
	case AuthorizationRestricted:
		return "restricted"
	case AuthorizationDenied:
		return "denied"
	case AuthorizationAlways:
		return "authorized_always"
	case AuthorizationWhenInUse:
		return "authorized_when_in_use"
	default:
		return "not_determined"
	}
}

// AccuracyAuthorization reports whether the app may receive full-accuracy
// fixes or only coarse ones.
type AccuracyAuthorization int

const (
	AccuracyAuthorizationFull AccuracyAuthorization = iota
	AccuracyAuthorizationReduced
)

// String returns a stable name for logging.
func (a AccuracyAuthorization) String() string {
	if a == AccuracyAuthorizationReduced {
		return "reduced"
	}
	return "full"
}
