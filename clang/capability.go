package clang

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// APILevel identifies a libclang release tier. Registry entries carry the
// level that introduced them; the function table is filtered against one
// configured level before binding, so entries above it are never looked
// up. The zero value is the oldest supported release.
type APILevel int

const (
	Level3_5 APILevel = iota
	Level3_6
	Level3_7
	Level3_8
	Level3_9
	Level4_0
	Level5_0
	Level6_0
	Level7_0
	Level8_0
	Level9_0
	Level10_0
	Level11_0
	Level12_0
	Level13_0
	Level14_0
	Level15_0
	Level16_0
	Level17_0
	Level18_0
	Level19_0
	Level20_0

	// LevelLatest is the newest level this package knows about. It is the
	// default: symbols missing from older installations degrade to absent
	// entries rather than bind failures, so trying everything is safe.
	LevelLatest = Level20_0
)

var apiLevelNames = [...]string{
	"3.5", "3.6", "3.7", "3.8", "3.9",
	"4.0", "5.0", "6.0", "7.0", "8.0", "9.0", "10.0", "11.0", "12.0",
	"13.0", "14.0", "15.0", "16.0", "17.0", "18.0", "19.0", "20.0",
}

// String renders the level as the release that introduced it ("16.0").
func (l APILevel) String() string {
	if l < 0 || int(l) >= len(apiLevelNames) {
		return fmt.Sprintf("APILevel(%d)", int(l))
	}
	return apiLevelNames[l]
}

// APILevelFromVersion maps a clang release version to the highest API
// level it provides.
func APILevelFromVersion(v *semver.Version) APILevel {
	for l := LevelLatest; l > Level3_5; l-- {
		if !v.LessThan(semver.MustParse(apiLevelNames[l])) {
			return l
		}
	}
	return Level3_5
}

// ParseAPILevel parses a release version string ("16", "16.0", "16.0.6")
// into the API level that release provides.
func ParseAPILevel(s string) (APILevel, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return Level3_5, fmt.Errorf("invalid API level %q: %w", s, err)
	}
	return APILevelFromVersion(v), nil
}
