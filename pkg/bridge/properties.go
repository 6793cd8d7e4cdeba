package bridge

// ActivityType hints the platform about the kind of movement being tracked,
// which influences pause behaviour and power use.
type ActivityType int

const (
	ActivityOther ActivityType = iota
	ActivityAutomotiveNavigation
	ActivityFitness
	ActivityOtherNavigation
	ActivityAirborne
)

// Orientation fixes the device orientation used as the heading reference.
type Orientation int

const (
	OrientationPortrait Orientation = iota
	OrientationPortraitUpsideDown
	OrientationLandscapeLeft
	OrientationLandscapeRight
	OrientationFaceUp
	OrientationFaceDown
)

// Desired-accuracy sentinels, in metres. Negative values request the best
// fix the hardware can produce.
const (
	AccuracyBestForNavigation float64 = -2
	AccuracyBest              float64 = -1
	AccuracyNearestTenMeters  float64 = 10
	AccuracyHundredMeters     float64 = 100
	AccuracyKilometer         float64 = 1000
	AccuracyThreeKilometers   float64 = 3000
)

// Filter sentinels: report every update, regardless of distance or heading
// change.
const (
	DistanceFilterNone float64 = -1
	HeadingFilterNone  float64 = -1
)

// Properties is the configuration value accepted by the set-properties
// operation. Every option is optional; only non-nil options are applied, so
// setting a single field leaves all other platform settings untouched.
// Options unsupported on the current platform are silently skipped to keep
// cross-platform call sites uniform.
type Properties struct {
	ActivityType             *ActivityType `validate:"omitempty,min=0,max=4"`
	AllowsBackgroundUpdates  *bool
	DesiredAccuracy          *float64      `validate:"omitempty,gte=-2"`
	DistanceFilter           *float64      `validate:"omitempty,gte=-1"`
	HeadingFilter            *float64      `validate:"omitempty,gte=-1,lte=360"`
	HeadingOrientation       *Orientation  `validate:"omitempty,min=0,max=5"`
	PausesAutomatically      *bool
	ShowsBackgroundIndicator *bool
}
