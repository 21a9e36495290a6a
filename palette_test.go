package hues

import "testing"

func TestAnsiRGB(t *testing.T) {
	tests := []struct {
		name  string
		index Bit8
		want  RGB
	}{
		{name: "System black", index: 0, want: RGB{}},
		{name: "System maroon", index: 1, want: RGB{R: 128}},
		{name: "System white", index: 15, want: RGB{R: 255, G: 255, B: 255}},
		{name: "Cube origin", index: 16, want: RGB{}},
		{name: "Cube red", index: 196, want: RGB{R: 255}},
		{name: "Cube mix", index: 202, want: RGB{R: 255, G: 95}},
		{name: "Cube white", index: 231, want: RGB{R: 255, G: 255, B: 255}},
		{name: "Gray first", index: 232, want: RGB{R: 8, G: 8, B: 8}},
		{name: "Gray mid", index: 249, want: RGB{R: 178, G: 178, B: 178}},
		{name: "Gray last", index: 255, want: RGB{R: 238, G: 238, B: 238}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansiRGB(tt.index); got != tt.want {
				t.Errorf("Index %d: expected %v, got %v", tt.index, tt.want, got)
			}
		})
	}
}

func TestCubeIndex(t *testing.T) {
	if got := CubeIndex(5, 0, 0); got != 196 {
		t.Errorf("Expected (5,0,0) -> 196, got %d", got)
	}
	if got := CubeIndex(0, 0, 0); got != 16 {
		t.Errorf("Expected (0,0,0) -> 16, got %d", got)
	}
	if got := CubeIndex(9, 9, 9); got != 231 {
		t.Errorf("Expected clamped coordinates -> 231, got %d", got)
	}

	// Decomposition agrees with composition over the whole cube
	for r := uint8(0); r < 6; r++ {
		for g := uint8(0); g < 6; g++ {
			for b := uint8(0); b < 6; b++ {
				idx := CubeIndex(r, g, b)
				want := RGB{
					R: Bit8(cubeValues[r]),
					G: Bit8(cubeValues[g]),
					B: Bit8(cubeValues[b]),
				}
				if got := ansiRGB(idx); got != want {
					t.Fatalf("Cube (%d,%d,%d): expected %v, got %v", r, g, b, want, got)
				}
			}
		}
	}
}

func TestGrayIndex(t *testing.T) {
	if got := GrayIndex(0); got != 232 {
		t.Errorf("Expected step 0 -> 232, got %d", got)
	}
	if got := GrayIndex(23); got != 255 {
		t.Errorf("Expected step 23 -> 255, got %d", got)
	}
	if got := GrayIndex(99); got != 255 {
		t.Errorf("Expected clamped step -> 255, got %d", got)
	}
}

func TestPaletteHSVSnap(t *testing.T) {
	tests := []struct {
		name  string
		index Bit8
		wantH int
		wantV int
	}{
		{name: "Pure red", index: 196, wantH: 360, wantV: 255},
		{name: "Orange", index: 202, wantH: 30, wantV: 255},
		{name: "Pure green", index: 46, wantH: 120, wantV: 255},
		{name: "Pure blue", index: 21, wantH: 240, wantV: 255},
		{name: "Cube gray", index: 231, wantH: 0, wantV: 255},
		{name: "Ramp gray", index: 244, wantH: 0, wantV: 128},
		// Exact half-sector angles resolve by round-half-to-even
		{name: "Half sector up", index: 69, wantH: 240, wantV: 255},
		{name: "Half sector down", index: 81, wantH: 180, wantV: 255},
		{name: "Half sector to red", index: 209, wantH: 360, wantV: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, v := paletteHSV(tt.index)
			if h != tt.wantH || v != tt.wantV {
				t.Errorf("Index %d: expected H=%d V=%d, got H=%d V=%d",
					tt.index, tt.wantH, tt.wantV, h, v)
			}
		})
	}
}

func TestPaletteHSVSaturation(t *testing.T) {
	// Full saturation on the cube faces, zero on the diagonal
	if _, s, _ := paletteHSV(196); s != 1 {
		t.Errorf("Expected S=1 for 196, got %v", s)
	}
	if _, s, _ := paletteHSV(231); s != 0 {
		t.Errorf("Expected S=0 for 231, got %v", s)
	}
}
