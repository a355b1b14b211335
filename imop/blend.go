// Package imop implements the blend modes and the compositing pipeline used
// for mixing a layer of pixels with its backdrop.
//
// The blend modes cover the Porter-Duff source-over operation and the usual
// Photoshop style separable and luminance based modes. Each mode is available
// in two precision tiers: Fast approximates every division by 255 with a
// shift, Perfect divides exactly. Both tiers agree within two steps per channel.
//
// Modes are identified by a stable integer id. The ids are append only and
// must never be renumbered, since they may be persisted by callers.
package imop

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/esimov/pixcomp/pixel"
)

// Func blends the source pixel over the destination pixel and returns the result.
type Func func(src, dst pixel.Color32) pixel.Color32

// Mode is the stable identifier of a blend mode.
type Mode int

// The supported blend modes. New modes must be appended right before numModes.
const (
	Overwrite Mode = iota
	SourceOver
	Darken
	Multiply
	ColorBurn
	LinearBurn
	DarkerColor
	Lighten
	Screen
	ColorDodge
	LinearDodge
	LighterColor
	Overlay
	SoftLight
	HardLight
	VividLight
	LinearLight
	PinLight
	HardMix
	Difference
	Exclusion
	Subtract
	Divide

	numModes
)

var modeNames = [numModes]string{
	Overwrite:    "overwrite",
	SourceOver:   "source-over",
	Darken:       "darken",
	Multiply:     "multiply",
	ColorBurn:    "color-burn",
	LinearBurn:   "linear-burn",
	DarkerColor:  "darker-color",
	Lighten:      "lighten",
	Screen:       "screen",
	ColorDodge:   "color-dodge",
	LinearDodge:  "linear-dodge",
	LighterColor: "lighter-color",
	Overlay:      "overlay",
	SoftLight:    "soft-light",
	HardLight:    "hard-light",
	VividLight:   "vivid-light",
	LinearLight:  "linear-light",
	PinLight:     "pin-light",
	HardMix:      "hard-mix",
	Difference:   "difference",
	Exclusion:    "exclusion",
	Subtract:     "subtract",
	Divide:       "divide",
}

func (m Mode) String() string {
	if m < 0 || m >= numModes {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is a registered mode.
func (m Mode) Valid() bool {
	return m >= 0 && m < numModes
}

// ParseMode returns the mode registered under name. Matching ignores case,
// and underscores may be used in place of dashes.
func ParseMode(name string) (Mode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for m, n := range modeNames {
		if n == key {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("blend mode %q not supported", name)
}

// Modes returns every registered mode in id order.
func Modes() []Mode {
	modes := make([]Mode, numModes)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// Tier selects the rounding precision of a blend function.
type Tier int

const (
	// Fast uses shift based division; results may drift by up to two steps.
	Fast Tier = iota
	// Perfect uses exact integer division by 255.
	Perfect

	numTiers
)

func (t Tier) String() string {
	switch t {
	case Fast:
		return "fast"
	case Perfect:
		return "perfect"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// ParseTier parses "fast" or "perfect".
func ParseTier(name string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fast", "":
		return Fast, nil
	case "perfect", "exact":
		return Perfect, nil
	}
	return 0, fmt.Errorf("precision tier %q not supported", name)
}

// Lookup returns the blend function registered for the mode and tier.
func Lookup(m Mode, t Tier) (Func, bool) {
	if !m.Valid() || t < 0 || t >= numTiers {
		return nil, false
	}
	return registry[m][t], true
}

// MustLookup is like Lookup but panics on an unknown mode or tier.
func MustLookup(m Mode, t Tier) Func {
	fn, ok := Lookup(m, t)
	if !ok {
		panic(fmt.Sprintf("imop: no blend function for %v/%v", m, t))
	}
	return fn
}

type entry struct {
	mode Mode
	tier Tier
}

var index = func() map[uintptr]entry {
	idx := make(map[uintptr]entry, int(numModes)*int(numTiers))
	for m := range registry {
		for t, fn := range registry[m] {
			idx[reflect.ValueOf(fn).Pointer()] = entry{Mode(m), Tier(t)}
		}
	}
	return idx
}()

// Identify returns the mode and tier under which fn is registered.
// Functions created outside of the registry are not identified.
func Identify(fn Func) (Mode, Tier, bool) {
	if fn == nil {
		return 0, 0, false
	}
	e, ok := index[reflect.ValueOf(fn).Pointer()]
	return e.mode, e.tier, ok
}
