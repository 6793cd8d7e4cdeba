package bridge

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sethvargo/go-envconfig"
)

// Capabilities is the explicit capability matrix for the current platform:
// one flag per optional location-services feature. The live client answers
// availability queries from this matrix and turns commands for absent
// capabilities into no-ops, instead of scattering platform conditionals
// through each function body.
//
// Every flag can be forced at startup through its GEOBRIDGE_CAP_* variable,
// which is how tests and CI exercise foreign platform profiles.
type Capabilities struct {
	LocationServices      bool `env:"GEOBRIDGE_CAP_LOCATION_SERVICES, overwrite"`
	Heading               bool `env:"GEOBRIDGE_CAP_HEADING, overwrite"`
	SignificantChange     bool `env:"GEOBRIDGE_CAP_SIGNIFICANT_CHANGE, overwrite"`
	RegionMonitoring      bool `env:"GEOBRIDGE_CAP_REGION_MONITORING, overwrite"`
	BeaconRanging         bool `env:"GEOBRIDGE_CAP_BEACON_RANGING, overwrite"`
	Visits                bool `env:"GEOBRIDGE_CAP_VISITS, overwrite"`
	DeferredUpdates       bool `env:"GEOBRIDGE_CAP_DEFERRED_UPDATES, overwrite"`
	AccuracyAuthorization bool `env:"GEOBRIDGE_CAP_ACCURACY_AUTHORIZATION, overwrite"`
	BackgroundIndicator   bool `env:"GEOBRIDGE_CAP_BACKGROUND_INDICATOR, overwrite"`
}

// capabilityProfiles enumerates the per-OS defaults. Unlisted platforms fall
// back to the "default" profile: plain positioning only.
var capabilityProfiles = map[string]Capabilities{
	"darwin": {
		LocationServices:      true,
		Heading:               true,
		SignificantChange:     true,
		RegionMonitoring:      true,
		BeaconRanging:         true,
		Visits:                true,
		DeferredUpdates:       true,
		AccuracyAuthorization: true,
		BackgroundIndicator:   true,
	},
	"linux": {
		LocationServices: true,
		RegionMonitoring: true,
	},
	"windows": {
		LocationServices: true,
		Heading:          true,
	},
	"default": {
		LocationServices: true,
	},
}

// CapabilitiesFor returns the default capability profile for the given GOOS
// value.
func CapabilitiesFor(goos string) Capabilities {
	if profile, ok := capabilityProfiles[goos]; ok {
		return profile
	}
	return capabilityProfiles["default"]
}

// DefaultCapabilities returns the profile for the platform the binary is
// running on.
func DefaultCapabilities() Capabilities {
	return CapabilitiesFor(runtime.GOOS)
}

// ResolveCapabilities resolves the capability matrix once at startup: the
// per-OS profile overlaid with any GEOBRIDGE_CAP_* environment overrides.
func ResolveCapabilities(ctx context.Context) (Capabilities, error) {
	caps := DefaultCapabilities()
	if err := envconfig.Process(ctx, &caps); err != nil {
		return Capabilities{}, fmt.Errorf("resolve capabilities: %w", err)
	}
	return caps, nil
}
