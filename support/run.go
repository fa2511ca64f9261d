package support

import (
	"bytes"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// runClang runs the executable with args on an empty stdin and returns
// its stdout and stderr.
func runClang(path string, args ...string) (string, string, error) {
	cmd := exec.Command(path, args...)
	cmd.Stdin = strings.NewReader("")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", "", errors.Wrapf(err, "failed to run %s %s", path, strings.Join(args, " "))
	}
	return stdout.String(), stderr.String(), nil
}

// versionPattern matches the version inside a --version banner. Vendors
// prefix the banner freely ("Apple clang version ...", "Ubuntu clang
// version 14.0.0-1ubuntu1.1"), so only the marker words are anchored.
var versionPattern = regexp.MustCompile(`clang version (\d+(?:\.\d+)*)`)

func parseVersionOutput(out string) (*semver.Version, error) {
	m := versionPattern.FindStringSubmatch(out)
	if m == nil {
		line, _, _ := strings.Cut(out, "\n")
		return nil, errors.Errorf("no clang version in %q", strings.TrimSpace(line))
	}
	v, err := semver.NewVersion(m[1])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse clang version %q", m[1])
	}
	return v, nil
}

// parseTarget extracts the default target triple from a --version banner.
func parseTarget(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if t, ok := strings.CutPrefix(strings.TrimSpace(line), "Target:"); ok {
			return strings.TrimSpace(t)
		}
	}
	return ""
}

// probe fills Version and Target by running the executable once with
// --version appended to the caller's arguments.
func (c *Clang) probe(args []string) error {
	stdout, _, err := runClang(c.Path, append(append([]string(nil), args...), "--version")...)
	if err != nil {
		return err
	}

	version, err := parseVersionOutput(stdout)
	if err != nil {
		return err
	}
	c.Version = version
	c.Target = parseTarget(stdout)
	return nil
}

// SearchPaths returns the header search directories the driver uses for
// the given language ("c", "c++"), in search order. Extra arguments pass
// through to the driver, so callers can pin --target or -std.
func (c *Clang) SearchPaths(language string, extra ...string) ([]string, error) {
	args := append(append([]string(nil), extra...), "-E", "-x", language, "-", "-v")
	_, stderr, err := runClang(c.Path, args...)
	if err != nil {
		return nil, err
	}

	paths, ok := parseSearchPaths(stderr)
	if !ok {
		return nil, errors.Errorf("%s did not report a header search list", c.Path)
	}
	return paths, nil
}

// parseSearchPaths collects the directory block a -v run prints between
// "#include <...> search starts here:" and "End of search list.".
// Framework directory annotations are stripped.
func parseSearchPaths(out string) ([]string, bool) {
	var paths []string
	collecting := false
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.HasSuffix(strings.TrimSpace(line), "search starts here:"):
			collecting = true
		case strings.HasPrefix(line, "End of search list"):
			return paths, collecting
		case collecting:
			dir := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), "(framework directory)"))
			if dir != "" {
				paths = append(paths, dir)
			}
		}
	}
	return nil, false
}
