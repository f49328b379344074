package trig

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clktmr/agbgfx/fixed"
)

func TestLUTGolden(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "lut.golden"))
	if err != nil {
		t.Fatal("missing testdata:", err)
	}
	defer f.Close()

	n := 0
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		var i int
		var sin, cotan int16
		if _, err := fmt.Sscan(line, &i, &sin, &cotan); err != nil {
			t.Fatalf("line %q: %v", line, err)
		}
		if SinLUT[i] != sin {
			t.Fatalf("sin[%d]: expected %v, got %v", i, sin, SinLUT[i])
		}
		if CotanLUT[i] != cotan {
			t.Fatalf("cotan[%d]: expected %v, got %v", i, cotan, CotanLUT[i])
		}
		n++
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	if n != len(SinLUT) {
		t.Fatalf("expected %v entries, got %v", len(SinLUT), n)
	}
}

func TestSinCos(t *testing.T) {
	tests := map[string]struct {
		angle    fixed.UInt0_16
		sin, cos fixed.Int16_16
	}{
		"zero":         {0, 0, 1 << 16},
		"quarter":      {0x4000, 1 << 16, 0},
		"half":         {0x8000, 0, -1 << 16},
		"threeQuarter": {0xc000, -1 << 16, 0},
		"roundsUp":     {0x40, 201 << 2, 16383 << 2},
		"roundsDown":   {0x3f, 0, 1 << 16},
		"wraps":        {0xffc0, 0, 1 << 16},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Sin(tc.angle); got != tc.sin {
				t.Fatalf("sin: expected %v, got %v", tc.sin, got)
			}
			if got := Cos(tc.angle); got != tc.cos {
				t.Fatalf("cos: expected %v, got %v", tc.cos, got)
			}
		})
	}
}

func TestSinTolerance(t *testing.T) {
	for a := 0; a < 1<<16; a += 97 {
		rad := 2 * math.Pi * float64(a) / (1 << 16)
		// half a bucket of 1/512 turn plus table rounding
		const tol = 0.007
		if d := math.Abs(float64(Sin(fixed.UInt0_16(a)).Float()) - math.Sin(rad)); d > tol {
			t.Fatalf("sin(%#x): error %v", a, d)
		}
		if d := math.Abs(float64(Cos(fixed.UInt0_16(a)).Float()) - math.Cos(rad)); d > tol {
			t.Fatalf("cos(%#x): error %v", a, d)
		}
	}
}

func TestCotan(t *testing.T) {
	if got, expected := Cotan(0x4000), fixed.Int16_16(0); got != expected {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for a := 0x2100; a < 0x5f00; a += 31 {
		rad := 2 * math.Pi * float64(a) / (1 << 16)
		if d := math.Abs(float64(Cotan(fixed.UInt0_16(a)).Float()) - 1/math.Tan(rad)); d > 0.01 {
			t.Fatalf("cotan(%#x): error %v", a, d)
		}
	}
}

func TestReciprocal(t *testing.T) {
	tests := map[string]struct {
		n        int
		expected fixed.Int16_16
	}{
		"saturated": {0, ReciprocalSaturation},
		"one":       {1, 1 << 16},
		"two":       {2, 1 << 15},
		"three":     {3, 21845},
		"negative":  {-2, -(1 << 15)},
		"max":       {MaxReciprocal, (1 << 16) / MaxReciprocal},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Reciprocal(tc.n); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestArcTan(t *testing.T) {
	tests := map[string]struct {
		tan, expected int32
	}{
		"zero":     {0, 0},
		"one":      {1 << 14, 0x2000},
		"minusOne": {-1 << 14, -0x2000},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ArcTan(tc.tan); got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestAtan2(t *testing.T) {
	tests := map[string]struct {
		x, y     float32
		expected float64 // turns
	}{
		"posX":     {1, 0, 0},
		"posY":     {0, 1, 0.25},
		"negX":     {-1, 0, 0.5},
		"negY":     {0, -1, -0.25},
		"diagonal": {1, 1, 0.125},
		"second":   {-1, 1, 0.375},
		"third":    {-1, -1, 0.625},
		"steep":    {1, -2, -0.17620819},
		"steepNeg": {-1, 2, 0.32379181},
		"shallow":  {300, -77, -0.03998661},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := float64(Atan2(fixed.Int24_8F(tc.x), fixed.Int24_8F(tc.y)).Float())
			if math.Abs(got-tc.expected) > 1e-4 {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
	if got := Atan2(0, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestPointToDist(t *testing.T) {
	tests := map[string]struct {
		x, y int
	}{
		"axis":     {0, 2},
		"unit":     {1, 0},
		"triangle": {3, 4},
		"diagonal": {5, 5},
		"negative": {-7, 24},
		"shallow":  {10, -1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := float64(PointToDist(fixed.Int16_16U(tc.x), fixed.Int16_16U(tc.y)).Float())
			expected := math.Hypot(float64(tc.x), float64(tc.y))
			if math.Abs(got-expected) > expected/100 {
				t.Fatalf("expected %v, got %v", expected, got)
			}
		})
	}
	if got := PointToDist(0, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
