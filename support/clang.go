package support

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"

	"github.com/amikos-tech/pure-clang/clang"
)

// EnvClangPath names the exact clang executable to use, bypassing the
// search.
const EnvClangPath = "CLANG_PATH"

// Clang is a usable clang driver executable together with what one
// --version run revealed about it.
type Clang struct {
	// Path is the absolute path of the executable.
	Path string
	// Version is the version from the --version banner.
	Version *semver.Version
	// Target is the default target triple from the --version banner,
	// empty when the banner did not carry one.
	Target string
}

// FindError reports that no usable clang executable was found.
// Rejections lists every candidate the search probed.
type FindError struct {
	Rejections []clang.Rejection
}

func (e *FindError) Error() string {
	var b strings.Builder
	b.WriteString("could not find a usable clang executable")
	if len(e.Rejections) > 0 {
		b.WriteString(" (")
		for i, r := range e.Rejections {
			if i > 0 {
				b.WriteString("; ")
			}
			fmt.Fprintf(&b, "%s: %s", r.Path, r.Reason)
		}
		b.WriteString(")")
	}
	fmt.Fprintf(&b, "; set %s to its location", EnvClangPath)
	return b.String()
}

// Find locates a clang driver executable and probes it: CLANG_PATH, the
// hint directory, llvm-config's --bindir, each PATH directory, then the
// same platform backup directories the library search uses. An explicit
// CLANG_PATH that is unusable is an error; nothing else is searched.
// args are passed to every probe run, so callers can pin flags the
// executable needs to start at all.
func Find(hintDir string, args ...string) (*Clang, error) {
	if override := strings.TrimSpace(os.Getenv(EnvClangPath)); override != "" {
		c, err := probeExecutable(override, args)
		if err != nil {
			return nil, errors.Wrapf(err, "%s points at an unusable clang executable", EnvClangPath)
		}
		return c, nil
	}

	var dirs []string
	if hintDir != "" {
		dirs = append(dirs, hintDir)
	}
	if bindir, err := clang.LLVMConfig("--bindir"); err == nil {
		dirs = append(dirs, bindir)
	}
	dirs = append(dirs, filepath.SplitList(os.Getenv("PATH"))...)
	dirs = append(dirs, clang.SearchDirectories()...)

	var rejections []clang.Rejection
	tried := make(map[string]bool)
	for _, dir := range dirs {
		if dir == "" || tried[dir] {
			continue
		}
		tried[dir] = true
		for _, path := range candidatesIn(dir) {
			c, err := probeExecutable(path, args)
			if err != nil {
				rejections = append(rejections, clang.Rejection{Path: path, Reason: err.Error()})
				continue
			}
			return c, nil
		}
	}
	return nil, &FindError{Rejections: rejections}
}

// clangNamePattern matches driver executable names: "clang", versioned
// forms such as "clang-17" or "clang-17.0.1", and the Windows extension
// variants. Tool siblings (clang-format, clang-tidy, clang++) do not
// match.
var clangNamePattern = regexp.MustCompile(`^clang(?:-(\d+(?:\.\d+)*))?(?:\.(?:exe|cmd|bat))?$`)

// matchClangName reports whether name is a clang driver executable and
// returns the version tuple embedded in it, if any.
func matchClangName(name string) (clang.Version, bool) {
	m := clangNamePattern.FindStringSubmatch(name)
	if m == nil {
		return nil, false
	}
	if m[1] == "" {
		return nil, true
	}
	return clang.ParseVersion(m[1]), true
}

// candidatesIn returns the executable clang candidates in dir, highest
// embedded version first so "clang-17.0.1" is probed before "clang".
func candidatesIn(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	type candidate struct {
		path    string
		version clang.Version
	}
	var matches []candidate
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		version, ok := matchClangName(entry.Name())
		if !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isExecutable(path) {
			continue
		}
		matches = append(matches, candidate{path: path, version: version})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].version.Compare(matches[j].version) > 0
	})

	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = m.path
	}
	return paths
}

// probeExecutable validates path and runs it to fill in version and
// target.
func probeExecutable(path string, args []string) (*Clang, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read clang executable")
	}
	if info.IsDir() {
		return nil, errors.Errorf("%s is a directory, not an executable", abs)
	}
	if !isExecutable(abs) {
		return nil, errors.Errorf("%s is not executable", abs)
	}

	c := &Clang{Path: abs}
	if err := c.probe(args); err != nil {
		return nil, err
	}
	return c, nil
}
