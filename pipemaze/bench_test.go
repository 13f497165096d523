package pipemaze_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2023/pipemaze"
)

// ringMaze returns an n×n maze whose border is one loop entered at the
// top-left corner.
func ringMaze(n int) []string {
	lines := make([]string, n)
	lines[0] = "S" + strings.Repeat("-", n-2) + "7"
	for y := 1; y < n-1; y++ {
		lines[y] = "|" + strings.Repeat(".", n-2) + "|"
	}
	lines[n-1] = "L" + strings.Repeat("-", n-2) + "J"
	return lines
}

// BenchmarkTrace measures the walk around a 1000×1000 border loop.
// Complexity: O(L)
func BenchmarkTrace(b *testing.B) {
	m, err := pipemaze.ParseMaze(ringMaze(1000))
	if err != nil {
		b.Fatalf("setup ParseMaze failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pipemaze.Trace(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkArea compares the shoelace estimator with the scanline count.
func BenchmarkArea(b *testing.B) {
	m, err := pipemaze.ParseMaze(ringMaze(1000))
	if err != nil {
		b.Fatalf("setup ParseMaze failed: %v", err)
	}
	loop, err := pipemaze.Trace(m)
	if err != nil {
		b.Fatalf("setup Trace failed: %v", err)
	}

	b.Run("Shoelace", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = loop.Area()
		}
	})
	b.Run("Scanline", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = loop.ScanInterior(m)
		}
	})
}
