package clang

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Directory glob patterns searched as a last resort, per platform family.
// Patterns expand segment by segment; wildcards never cross separators.
var (
	backupDirsLinux = []string{
		"/usr/lib*",
		"/usr/lib*/*",
		"/usr/lib*/*/*",
		"/usr/local/lib*",
		"/usr/local/lib*/*",
		"/usr/local/lib*/*/*",
		"/usr/local/llvm*/lib",
	}

	backupDirsDarwin = []string{
		"/usr/local/opt/llvm*/lib/llvm*/lib",
		"/usr/local/opt/llvm*/lib",
		"/opt/homebrew/opt/llvm*/lib",
		"/Applications/Xcode.app/Contents/Developer/Toolchains/XcodeDefault.xctoolchain/usr/lib",
		"/Library/Developer/CommandLineTools/usr/lib",
		"/usr/local/lib",
	}

	backupDirsWindows = []string{
		`C:\LLVM\lib`,
		`C:\Program Files*\LLVM\lib`,
		`C:\MSYS*\MinGW*\lib`,
		`C:\Program Files*\Microsoft Visual Studio\*\*\VC\Tools\Llvm\lib`,
		`C:\Program Files*\Microsoft Visual Studio\*\*\VC\Tools\Llvm\x64\lib`,
		`C:\Users\*\scoop\apps\llvm\current\lib`,
	}
)

// libraryFilenames returns the filename patterns matched within each
// searched directory: the exact default name, version-wildcarded forms,
// and on Windows the alternate historical name.
func libraryFilenames(goos string) []string {
	switch goos {
	case "darwin", "ios":
		return []string{"libclang.dylib", "libclang-*.dylib"}
	case "windows":
		return []string{"libclang.dll", "libclang-*.dll", "clang.dll"}
	default:
		return []string{"libclang.so", "libclang.so.*", "libclang-*.so", "libclang-*.so.*"}
	}
}

// backupDirGlobs returns the platform's last-resort directory patterns.
func backupDirGlobs(goos string) []string {
	switch goos {
	case "darwin", "ios":
		return backupDirsDarwin
	case "windows":
		return backupDirsWindows
	case "linux", "android", "freebsd", "netbsd", "openbsd", "dragonfly", "solaris", "illumos":
		return backupDirsLinux
	default:
		return nil
	}
}

// SearchDirectories returns the expanded platform backup directories that
// library discovery probes after the overrides, the caller hint and
// llvm-config. Only directories that exist are returned.
func SearchDirectories() []string {
	goos := runtime.GOOS
	foldCase := goos == "darwin" || goos == "ios"

	var dirs []string
	for _, pattern := range backupDirGlobs(goos) {
		dirs = append(dirs, expandDirGlob(pattern, foldCase)...)
	}
	return dirs
}

// Locate runs the library search with the given options and returns the
// chosen file path together with the version tuple carried by its name.
// It is the search half of LoadLibrary, usable on its own to report what
// would be loaded without loading it.
func Locate(opts ...LoadOption) (string, Version, error) {
	cfg, err := resolveLoadConfig(opts...)
	if err != nil {
		return "", nil, err
	}

	c, err := discover(cfg)
	if err != nil {
		return "", nil, err
	}
	return c.path, c.version, nil
}

// candidate is a file the search considers loading, together with the
// version tuple parsed from its name.
type candidate struct {
	path    string
	version Version
}

// discover runs the library search: the explicit directory override, the
// caller's hint, llvm-config's installation prefix, then the platform
// backup directories. The first source that yields a validated candidate
// ends the search; later sources are never touched, so llvm-config is
// only spawned when the override and the hint both come up empty.
func discover(cfg *loadConfig) (candidate, error) {
	var rejections []Rejection
	reject := func(path string, reason error) {
		cfg.logger.WithField("candidate", path).Debugf("rejected: %v", reason)
		rejections = append(rejections, Rejection{Path: path, Reason: reason.Error()})
	}

	if cfg.dir != "" {
		// An explicit override is authoritative: no fall-through.
		if c, ok := searchOverride(cfg, reject); ok {
			cfg.logger.WithField("path", c.path).Debug("using libclang override")
			return c, nil
		}
		return candidate{}, &DiscoveryError{Rejections: rejections}
	}

	tried := make(map[string]bool)
	tryDir := func(dir string) (candidate, bool) {
		if dir == "" || tried[dir] {
			return candidate{}, false
		}
		tried[dir] = true
		cfg.logger.WithField("dir", dir).Debug("searching for libclang")
		c, ok := bestInDirectory(cfg, dir, reject)
		if ok {
			cfg.logger.WithFields(logrus.Fields{
				"path":    c.path,
				"version": c.version.String(),
			}).Debug("selected libclang candidate")
		}
		return c, ok
	}

	for _, dir := range probeDirectories(cfg.goos, cfg.hintDir) {
		if c, ok := tryDir(dir); ok {
			return c, nil
		}
	}

	if prefix, err := llvmConfigOutput(cfg.llvmConfig, "--prefix"); err != nil {
		cfg.logger.WithError(err).Debug("llvm-config unavailable, continuing with platform directories")
	} else {
		for _, base := range []string{filepath.Join(prefix, "bin"), filepath.Join(prefix, "lib")} {
			for _, dir := range probeDirectories(cfg.goos, base) {
				if c, ok := tryDir(dir); ok {
					return c, nil
				}
			}
		}
	}

	foldCase := cfg.goos == "darwin" || cfg.goos == "ios"
	for _, pattern := range cfg.dirGlobs {
		for _, expanded := range expandDirGlob(pattern, foldCase) {
			for _, dir := range probeDirectories(cfg.goos, expanded) {
				if c, ok := tryDir(dir); ok {
					return c, nil
				}
			}
		}
	}

	return candidate{}, &DiscoveryError{Rejections: rejections}
}

// probeDirectories lists the directories probed for one search root: the
// root itself and, on Windows, the sibling "bin" of a "lib" directory,
// since the loadable DLL and the import library usually live apart.
func probeDirectories(goos, dir string) []string {
	if dir == "" {
		return nil
	}
	dirs := []string{dir}
	if goos == "windows" && strings.EqualFold(filepath.Base(dir), "lib") {
		dirs = append(dirs, filepath.Join(filepath.Dir(dir), "bin"))
	}
	return dirs
}

// searchOverride resolves an explicit directory (or file) override.
func searchOverride(cfg *loadConfig, reject func(string, error)) (candidate, bool) {
	info, err := os.Stat(cfg.dir)
	if err != nil {
		reject(cfg.dir, fmt.Errorf("cannot read override path: %w", err))
		return candidate{}, false
	}

	if !info.IsDir() {
		// The override may name the library file itself.
		abs, err := validateCandidate(cfg.goos, cfg.dir)
		if err != nil {
			reject(cfg.dir, err)
			return candidate{}, false
		}
		version, _ := matchLibraryName(cfg.filenames, filepath.Base(abs))
		return candidate{path: abs, version: version}, true
	}

	for _, dir := range probeDirectories(cfg.goos, cfg.dir) {
		if c, ok := bestInDirectory(cfg, dir, reject); ok {
			return c, true
		}
	}
	return candidate{}, false
}

// bestInDirectory ranks the filename matches in dir ascending by version
// tuple (ties keep enumeration order) and returns the highest-versioned
// candidate that validates. Rejected candidates are recorded and skipped.
func bestInDirectory(cfg *loadConfig, dir string, reject func(string, error)) (candidate, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return candidate{}, false
	}

	var matches []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		version, ok := matchLibraryName(cfg.filenames, entry.Name())
		if !ok {
			continue
		}
		matches = append(matches, candidate{
			path:    filepath.Join(dir, entry.Name()),
			version: version,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].version.Compare(matches[j].version) < 0
	})
	for i := len(matches) - 1; i >= 0; i-- {
		abs, err := validateCandidate(cfg.goos, matches[i].path)
		if err != nil {
			reject(matches[i].path, err)
			continue
		}
		matches[i].path = abs
		return matches[i], true
	}

	return candidate{}, false
}

// matchLibraryName reports whether name matches one of the filename
// patterns and, for wildcarded patterns, the version tuple carried by the
// wildcard-matched region of the name.
func matchLibraryName(patterns []string, name string) (Version, bool) {
	for _, pattern := range patterns {
		if ok, err := path.Match(pattern, name); err != nil || !ok {
			continue
		}
		return wildcardVersion(pattern, name), true
	}
	return nil, false
}

// wildcardVersion parses the region of name covered by the wildcards of
// pattern as a version tuple: "libclang.so.*" matching "libclang.so.16.0"
// yields 16.0. Exact patterns yield an empty tuple.
func wildcardVersion(pattern, name string) Version {
	first := strings.IndexByte(pattern, '*')
	if first < 0 {
		return nil
	}

	prefix := pattern[:first]
	suffix := pattern[strings.LastIndexByte(pattern, '*')+1:]
	if len(name) < len(prefix)+len(suffix) {
		return nil
	}
	return ParseVersion(name[len(prefix) : len(name)-len(suffix)])
}
