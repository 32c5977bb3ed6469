package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_ZeroWorkers(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 0, MinChunkSize: 1}

	var counter int64
	For(10, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 10 {
		t.Errorf("Expected 10, got %d", counter)
	}
}

func TestMap(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}

	out := Map(257, func(i int) int { return i * i }, cfg)

	if len(out) != 257 {
		t.Fatalf("Expected 257 results, got %d", len(out))
	}
	for i, v := range out {
		if v != i*i {
			t.Errorf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		n    int
		cfg  Config
		want []span
	}{
		{"empty", 0, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}, nil},
		{"disabled", 10, Config{Enabled: false, NumWorkers: 4, MinChunkSize: 1}, []span{{0, 10}}},
		{"one worker", 10, Config{Enabled: true, NumWorkers: 1, MinChunkSize: 1}, []span{{0, 10}}},
		{"below min chunk", 15, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16}, []span{{0, 15}}},
		{"even", 8, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}, []span{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"remainder first", 10, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}, []span{{0, 3}, {3, 6}, {6, 8}, {8, 10}}},
		{"min chunk caps workers", 40, Config{Enabled: true, NumWorkers: 8, MinChunkSize: 16}, []span{{0, 20}, {20, 40}}},
		{"more workers than items", 3, Config{Enabled: true, NumWorkers: 8, MinChunkSize: 1}, []span{{0, 1}, {1, 2}, {2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := split(tt.n, tt.cfg)
			if len(got) != len(tt.want) {
				t.Fatalf("split(%d) = %v, want %v", tt.n, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMap_UnevenCost(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 1}

	// Items near the end cost far more than the rest.
	out := Map(100, func(i int) int {
		sum := 0
		for k := 0; k < i*i; k++ {
			sum++
		}
		return sum
	}, cfg)

	for i, v := range out {
		if v != i*i {
			t.Errorf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(j int) {
				atomic.AddInt64(&sum, int64(j))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		seq := Config{Enabled: false}
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(j int) {
				atomic.AddInt64(&sum, int64(j))
			}, seq)
		}
	})
}
