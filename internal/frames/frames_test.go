package frames

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"confgrid/internal/checker"
	"confgrid/internal/geom"
)

func TestOffsets(t *testing.T) {
	got := Offsets(40, DefaultSpan)
	if len(got) != 40 {
		t.Fatalf("len(Offsets(40)) = %d, want 40", len(got))
	}
	for i, v := range got {
		want := float64(i) / 40 * math.Pi / 3
		if math.Abs(v-want) > 1e-15 {
			t.Errorf("Offsets[%d] = %v, want %v", i, v, want)
		}
	}
	if Offsets(0, DefaultSpan) != nil {
		t.Error("Offsets(0) returned offsets")
	}
}

func TestMapPreservesOrder(t *testing.T) {
	offsets := Offsets(12, 1)
	// later frames finish first
	results, err := Map(context.Background(), offsets, 4, func(_ context.Context, i int, off float64) (int, error) {
		time.Sleep(time.Duration(len(offsets)-i) * time.Millisecond)
		return i * 10, nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	for i, r := range results {
		if r.Index != i || r.Value != i*10 || r.Offset != offsets[i] || r.Err != nil {
			t.Errorf("results[%d] = %+v", i, r)
		}
	}
	if got := Values(results); len(got) != len(offsets) {
		t.Errorf("len(Values) = %d, want %d", len(got), len(offsets))
	}
}

func TestMapReportsFailingFrames(t *testing.T) {
	offsets := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	boom := errors.New("boom")
	results, err := Map(context.Background(), offsets, 0, func(_ context.Context, i int, _ float64) (string, error) {
		if i%2 == 1 {
			return "", boom
		}
		return "ok", nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Map() error = %v, want boom", err)
	}
	var fe *FrameError
	if !errors.As(err, &fe) {
		t.Fatalf("Map() error %v is not a *FrameError", err)
	}
	for i, r := range results {
		failed := i%2 == 1
		if (r.Err != nil) != failed {
			t.Errorf("results[%d].Err = %v, want failure %v", i, r.Err, failed)
		}
		if !failed && r.Value != "ok" {
			t.Errorf("results[%d].Value = %q, want %q", i, r.Value, "ok")
		}
		if failed {
			if !errors.As(r.Err, &fe) || fe.Index != i || fe.Offset != offsets[i] {
				t.Errorf("results[%d].Err = %v, want FrameError for index %d", i, r.Err, i)
			}
		}
	}
	if got := Values(results); len(got) != 3 {
		t.Errorf("len(Values) = %d, want 3", len(got))
	}
}

func TestMapDomainErrorPropagates(t *testing.T) {
	_, err := Map(context.Background(), []float64{0.2}, 1, func(_ context.Context, _ int, off float64) (checker.Board, error) {
		return checker.MakeCheckerboard([]checker.Interval{{Low: off, High: 4}}, checker.RatioGrid(),
			checker.EllipticFocus1, checker.EllipticFocus2, checker.DefaultPalette())
	})
	if !errors.Is(err, geom.ErrDomain) {
		t.Errorf("Map() error = %v, want ErrDomain", err)
	}
}

func TestMapCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	results, err := Map(ctx, Offsets(3, 1), 1, func(context.Context, int, float64) (int, error) {
		calls++
		return 0, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Map() error = %v, want context.Canceled", err)
	}
	if calls != 0 {
		t.Errorf("fn called %d times after cancel", calls)
	}
	for i, r := range results {
		if r.Err == nil {
			t.Errorf("results[%d] succeeded after cancel", i)
		}
	}
}

func TestMapBoards(t *testing.T) {
	cfg := checker.DefaultConfig()
	results, err := Map(context.Background(), Offsets(8, DefaultSpan), 3, func(_ context.Context, _ int, off float64) (checker.Board, error) {
		return checker.Frame(off, cfg)
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	for i, r := range results {
		if len(r.Value.Regions) != 120 {
			t.Errorf("frame %d has %d regions, want 120", i, len(r.Value.Regions))
		}
	}
}

func TestLoadOffsetsCSV(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		body    string
		want    []float64
		wantErr bool
	}{
		{"radians", "frame,Offset\n0,0.5\n1, 1.25\n2,oops\n", []float64{0.5, 1.25}, false},
		{"degrees", "deg\n90\n180\n", []float64{math.Pi / 2, math.Pi}, false},
		{"theta first wins", "theta,angle\n0.1,0.2\n", []float64{0.1}, false},
		{"short rows skipped", "id,offset\n1\n2,0.3\n", []float64{0.3}, false},
		{"no column", "x,y\n1,2\n", nil, true},
		{"no rows", "offset\n", nil, true},
		{"empty", "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".csv")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := LoadOffsetsCSV(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadOffsetsCSV() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("LoadOffsetsCSV() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("offset %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
	if _, err := LoadOffsetsCSV(filepath.Join(dir, "missing.csv")); err == nil {
		t.Error("LoadOffsetsCSV(missing) error = nil")
	}
}
