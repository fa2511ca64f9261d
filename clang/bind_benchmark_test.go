package clang

import "testing"

func BenchmarkBindFunctionTable(b *testing.B) {
	img := fakeImageExportingAll()
	logger := discardLogger()
	want := len((&FunctionTable{}).registry())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		img.lookups = img.lookups[:0]
		tbl := bind(img, LevelLatest, logger)
		if got := len(tbl.entries); got != want {
			b.Fatalf("unexpected entry count: got %d, want %d", got, want)
		}
	}
}

func BenchmarkMatchLibraryName(b *testing.B) {
	patterns := libraryFilenames("linux")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := matchLibraryName(patterns, "libclang-16.so.16.0.6"); !ok {
			b.Fatal("expected a match")
		}
	}
}
