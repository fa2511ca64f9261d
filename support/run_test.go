package support

import (
	"reflect"
	"testing"
)

func TestParseVersionOutput(t *testing.T) {
	tests := []struct {
		name   string
		banner string
		want   string
	}{
		{
			name:   "plain",
			banner: "clang version 17.0.6 (Fedora 17.0.6-2.fc39)\nTarget: x86_64-redhat-linux-gnu\nThread model: posix\n",
			want:   "17.0.6",
		},
		{
			name:   "apple",
			banner: "Apple clang version 15.0.0 (clang-1500.1.0.2.5)\nTarget: arm64-apple-darwin23.2.0\n",
			want:   "15.0.0",
		},
		{
			name:   "ubuntu package suffix",
			banner: "Ubuntu clang version 14.0.0-1ubuntu1.1\nTarget: x86_64-pc-linux-gnu\n",
			want:   "14.0.0",
		},
		{
			name:   "freebsd",
			banner: "FreeBSD clang version 16.0.6 (https://github.com/llvm/llvm-project.git llvmorg-16.0.6-0-g7cbf1a259152)\n",
			want:   "16.0.6",
		},
		{
			name:   "major only",
			banner: "clang version 21\n",
			want:   "21.0.0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := parseVersionOutput(tc.banner)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := v.String(); got != tc.want {
				t.Fatalf("unexpected version: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseVersionOutputNoMatch(t *testing.T) {
	if _, err := parseVersionOutput("gcc (GCC) 13.2.1\n"); err == nil {
		t.Fatal("expected an error for a non-clang banner")
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		name   string
		banner string
		want   string
	}{
		{
			name:   "present",
			banner: "clang version 17.0.6\nTarget: x86_64-redhat-linux-gnu\nThread model: posix\n",
			want:   "x86_64-redhat-linux-gnu",
		},
		{
			name:   "extra whitespace",
			banner: "clang version 15\n  Target:   arm64-apple-darwin23.2.0  \n",
			want:   "arm64-apple-darwin23.2.0",
		},
		{
			name:   "missing",
			banner: "clang version 17.0.6\n",
			want:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseTarget(tc.banner); got != tc.want {
				t.Fatalf("unexpected target: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseSearchPaths(t *testing.T) {
	stderr := `clang -cc1 version 17.0.6 based upon LLVM 17.0.6 default target x86_64-redhat-linux-gnu
ignoring nonexistent directory "/usr/local/include/x86_64-linux-gnu"
#include "..." search starts here:
#include <...> search starts here:
 /usr/lib/clang/17/include
 /usr/local/include
 /usr/include
 /System/Library/Frameworks (framework directory)
End of search list.
trailing noise
`

	paths, ok := parseSearchPaths(stderr)
	if !ok {
		t.Fatal("search list block not recognized")
	}
	want := []string{
		"/usr/lib/clang/17/include",
		"/usr/local/include",
		"/usr/include",
		"/System/Library/Frameworks",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("unexpected paths: got %v, want %v", paths, want)
	}
}

func TestParseSearchPathsTruncated(t *testing.T) {
	stderr := "#include <...> search starts here:\n /usr/include\n"

	if _, ok := parseSearchPaths(stderr); ok {
		t.Fatal("a block without an end marker was accepted")
	}
}

func TestParseSearchPathsAbsent(t *testing.T) {
	if _, ok := parseSearchPaths("error: unable to run the driver\n"); ok {
		t.Fatal("unrelated output was accepted")
	}
}
