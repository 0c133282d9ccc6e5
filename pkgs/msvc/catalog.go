// Package msvc detects installed Visual Studio toolchains and picks the
// CMake generator to configure with.
package msvc

import "strings"

// Version is a supported Visual Studio release.
type Version struct {
	Year      string // product line, e.g. "2022"
	Number    string // major installation version, e.g. "17"
	Generator string // CMake generator name
}

// versions is ordered newest first. Detection results follow this order.
var versions = []Version{
	{Year: "2026", Number: "18", Generator: "Visual Studio 18 2026"},
	{Year: "2022", Number: "17", Generator: "Visual Studio 17 2022"},
	{Year: "2019", Number: "16", Generator: "Visual Studio 16 2019"},
}

// DefaultYear is used when no version is requested and none is detected.
const DefaultYear = "2022"

// Versions returns the supported releases, newest first.
func Versions() []Version {
	return append([]Version(nil), versions...)
}

// Years returns the supported product line years, newest first.
func Years() []string {
	years := make([]string, len(versions))
	for i, v := range versions {
		years[i] = v.Year
	}
	return years
}

// Lookup returns the release for a product line year. Surrounding
// whitespace is ignored.
func Lookup(year string) (Version, bool) {
	year = strings.TrimSpace(year)
	for _, v := range versions {
		if v.Year == year {
			return v, true
		}
	}
	return Version{}, false
}

// LookupNumber returns the release for a major installation version.
func LookupNumber(number string) (Version, bool) {
	for _, v := range versions {
		if v.Number == number {
			return v, true
		}
	}
	return Version{}, false
}

// IsSupported reports whether year names a supported release.
func IsSupported(year string) bool {
	_, ok := Lookup(year)
	return ok
}

func catalogRank(year string) int {
	for i, v := range versions {
		if v.Year == year {
			return i
		}
	}
	return len(versions)
}
