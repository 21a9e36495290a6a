package hues

import (
	"sync"
	"testing"
)

// Default palette indices documented for each hue.
var defaultANSI = map[string]Bit8{
	"Red":       196,
	"Orange":    202,
	"Yellow":    190,
	"Lime":      82,
	"Green":     46,
	"Turquoise": 47,
	"Teal":      45,
	"Cyan":      27,
	"Blue":      21,
	"Purple":    57,
	"Magenta":   165,
	"Rose":      197,
	"Grey":      249,
}

func TestHueDefaults(t *testing.T) {
	for _, h := range Hues() {
		want, ok := defaultANSI[h.Name()]
		if !ok {
			t.Fatalf("Unregistered hue %q", h.Name())
		}
		if got := h.Default().ANSI(); got != want {
			t.Errorf("%s: expected default %d, got %d", h.Name(), want, got)
		}
	}
}

func TestHuesOrder(t *testing.T) {
	want := []string{
		"Red", "Orange", "Yellow", "Lime", "Green", "Turquoise",
		"Teal", "Cyan", "Blue", "Purple", "Magenta", "Rose", "Grey",
	}
	hs := Hues()
	if len(hs) != len(want) {
		t.Fatalf("Expected %d hues, got %d", len(want), len(hs))
	}
	for i, h := range hs {
		if h.Name() != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], h.Name())
		}
	}
}

func TestHueDegrees(t *testing.T) {
	if Red.Degree() != 360 {
		t.Errorf("Expected Red at 360°, got %v", Red.Degree())
	}
	if Orange.Degree() != 30 {
		t.Errorf("Expected Orange at 30°, got %v", Orange.Degree())
	}
	if Rose.Degree() != 330 {
		t.Errorf("Expected Rose at 330°, got %v", Rose.Degree())
	}
	if !Grey.Achromatic() || Grey.Degree() != 0 {
		t.Errorf("Expected Grey achromatic at 0°, got %v", Grey.Degree())
	}
	if Red.Achromatic() {
		t.Error("Red must not be achromatic")
	}
}

func TestLookup(t *testing.T) {
	h, ok := Lookup("Turquoise")
	if !ok || h != Turquoise {
		t.Errorf("Expected Turquoise singleton, got %v (ok=%v)", h, ok)
	}
	if _, ok := Lookup("Chartreuse"); ok {
		t.Error("Expected lookup miss for unregistered name")
	}
}

func TestWhiteAndBlack(t *testing.T) {
	if got := White().ANSI(); got != 231 {
		t.Errorf("Expected White at 231, got %d", got)
	}
	if got := Black().ANSI(); got != 16 {
		t.Errorf("Expected Black at 16, got %d", got)
	}

	// Aliases hand out fresh instances, never shared registry state
	w := White()
	w.SetBackground(true)
	if White().Background() {
		t.Error("Mutating a White() instance must not leak into the registry")
	}
}

// Documented (hue, level, saturation) resolutions from the reference
// palette sampling.
func TestHueResolution(t *testing.T) {
	tests := []struct {
		hue        *Hue
		level, sat int
		want       Bit8
	}{
		{hue: Red, level: 2, sat: 7, want: 95},
		{hue: Orange, level: 1, sat: 7, want: 94},
		{hue: Yellow, level: 3, sat: 5, want: 144},
		{hue: Lime, level: 5, sat: 6, want: 155},
		{hue: Green, level: 3, sat: 5, want: 108},
		{hue: Turquoise, level: 1, sat: 9, want: 29},
		{hue: Teal, level: 1, sat: 9, want: 23},
		{hue: Cyan, level: 5, sat: 6, want: 75},
		{hue: Blue, level: 5, sat: 6, want: 99},
		{hue: Purple, level: 5, sat: 6, want: 135},
		{hue: Magenta, level: 5, sat: 6, want: 171},
		{hue: Rose, level: 5, sat: 6, want: 205},
		{hue: Grey, level: 3, sat: 6, want: 244},
	}

	for _, tt := range tests {
		t.Run(tt.hue.Name(), func(t *testing.T) {
			c, err := tt.hue.Color(tt.level, tt.sat)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if c.ANSI() != tt.want {
				t.Errorf("%s(%d,%d): expected %d, got %d",
					tt.hue.Name(), tt.level, tt.sat, tt.want, c.ANSI())
			}
		})
	}
}

func TestResolutionDomain(t *testing.T) {
	// Grey owns the ramp plus the cube diagonal
	greyCells := map[Bit8]bool{16: true, 59: true, 102: true, 145: true, 188: true, 231: true}

	for _, h := range Hues() {
		for level := levelMin; level <= levelMax; level++ {
			for sat := satMin; sat <= satMax; sat++ {
				c, err := h.Color(level, sat)
				if err != nil {
					t.Fatalf("%s(%d,%d): unexpected error %v", h.Name(), level, sat, err)
				}
				idx := c.ANSI()
				if h.Achromatic() {
					if !greyCells[idx] && (idx < 232 || idx > 252) {
						t.Fatalf("Grey(%d,%d) resolved outside the grayscale family: %d",
							level, sat, idx)
					}
				} else if idx < 16 || idx > 231 {
					t.Fatalf("%s(%d,%d) resolved outside the cube: %d",
						h.Name(), level, sat, idx)
				}
				if got := c.HueName(); got != h.Name() {
					t.Fatalf("%s(%d,%d) reports hue %q", h.Name(), level, sat, got)
				}
			}
		}
	}
}

func TestConcurrentReads(t *testing.T) {
	// The registry is immutable after init; hammer it from several
	// goroutines to keep the race detector honest
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, h := range Hues() {
				for level := levelMin; level <= levelMax; level++ {
					for sat := satMin; sat <= satMax; sat++ {
						c, err := h.Color(level, sat)
						if err != nil || c.HueName() != h.Name() {
							t.Errorf("%s(%d,%d): %v", h.Name(), level, sat, err)
							return
						}
					}
				}
			}
		}()
	}
	wg.Wait()
}
