// Package platform resolves the target platform tag and renders the result
// line for it.
//
// The tag is resolved once at startup - from an explicit configuration
// override or from the runtime target - and consumed as ordinary data from
// then on. Platform only ever changes the label substring of the output;
// numeric fields render identically everywhere and the formatter never
// alters computed values.
package platform

import (
	"fmt"
	"runtime"

	"boundcalc/internal/vec"
)

// Tag identifies the target execution platform. Used only for output
// labeling, never for behavioral branching.
type Tag string

const (
	TagWindows Tag = "windows"
	TagPosix   Tag = "posix"
	TagOther   Tag = "other"
)

// UnknownPlatformError reports a platform override outside the known set.
type UnknownPlatformError struct {
	Value string
}

// Error implements the error interface.
func (e *UnknownPlatformError) Error() string {
	return fmt.Sprintf("unknown platform %q (want auto, windows, posix, or other)", e.Value)
}

// Resolve determines the platform tag from an override string.
//
// "auto" (or empty) resolves from the build target: windows stays windows,
// the unixes collapse to posix, anything else is other. An explicit
// override must name a known tag.
func Resolve(override string) (Tag, error) {
	switch override {
	case "", "auto":
		return fromGOOS(runtime.GOOS), nil
	case string(TagWindows):
		return TagWindows, nil
	case string(TagPosix):
		return TagPosix, nil
	case string(TagOther):
		return TagOther, nil
	default:
		return "", &UnknownPlatformError{Value: override}
	}
}

func fromGOOS(goos string) Tag {
	switch goos {
	case "windows":
		return TagWindows
	case "linux", "darwin", "freebsd", "netbsd", "openbsd", "dragonfly", "solaris", "aix":
		return TagPosix
	default:
		return TagOther
	}
}

// Label returns the short label substring rendered into the result line.
func (t Tag) Label() string {
	switch t {
	case TagWindows:
		return "win"
	case TagPosix:
		return "posix"
	default:
		return "other"
	}
}

// Formatter renders the single output line of a run.
//
// App and Version are fixed product labels from configuration; Tag is the
// resolved platform. Presentation-only: callers pass computed values through
// unchanged.
type Formatter struct {
	App     string
	Version string
	Tag     Tag
}

// FormatResult renders the result line.
//
// The line carries the product label pair, the platform label, the computed
// result, and the display vector sum with zero-decimal components. The
// numeric layout is identical for every platform.
func (f Formatter) FormatResult(result int, sum vec.Vec3) string {
	return fmt.Sprintf("%s %s (%s) r=%d sum=(%.0f,%.0f,%.0f)",
		f.App, f.Version, f.Tag.Label(), result, sum.X, sum.Y, sum.Z)
}
