package clang

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestNoCgoImportInClangPackage enforces the project's no-CGO contract for clang/.
func TestNoCgoImportInClangPackage(t *testing.T) {
	clangDir, err := resolveClangPackageDir()
	if err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(clangDir)
	if err != nil {
		t.Fatalf("failed to read clang package directory: %v", err)
	}

	fset := token.NewFileSet()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".go") {
			continue
		}

		fullPath := filepath.Join(clangDir, name)
		file, err := parser.ParseFile(fset, fullPath, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("failed to parse %s: %v", name, err)
		}

		for _, imp := range file.Imports {
			if imp.Path != nil && imp.Path.Value == "\"C\"" {
				t.Fatalf("CGO import detected in %s: import \"C\" is forbidden", name)
			}
		}
	}
}

func resolveClangPackageDir() (string, error) {
	candidates := make([]string, 0, 4)

	if wd, err := os.Getwd(); err == nil && wd != "" {
		candidates = append(candidates, wd, filepath.Join(wd, "clang"))
	}

	if _, thisFile, _, ok := runtime.Caller(0); ok {
		callerDir := filepath.Dir(thisFile)
		candidates = append(candidates, callerDir)
	}

	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		if isClangPackageDir(dir) {
			return dir, nil
		}
	}

	return "", fmt.Errorf("failed to locate clang package directory; checked: %v", candidates)
}

func isClangPackageDir(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}

	fset := token.NewFileSet()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".go") {
			continue
		}
		file, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.PackageClauseOnly)
		if err != nil {
			continue
		}
		return file.Name != nil && file.Name.Name == "clang"
	}

	return false
}
