package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/hues"
)

// ==========================================
// TUNING VARIABLES
// ==========================================

var (
	stepInterval = 250 * time.Millisecond
	sampleRate   = beep.SampleRate(44100)
	baseFreq     = 220.0 // Red; one octave across the wheel
)

func main() {
	gridOnly := flag.Bool("grid", false, "print every hue's swatch grid and exit")
	sound := flag.Bool("sound", false, "play a sine tone tracking the current hue")
	interval := flag.Duration("interval", stepInterval, "marquee step interval")
	flag.Parse()

	if *gridOnly {
		for _, h := range hues.Hues() {
			fmt.Println(h.Grid())
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	var osc *oscillator
	if *sound {
		if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
			screen.Fini()
			log.Fatalf("speaker init: %v", err)
		}
		osc = newOscillator(sampleRate)
		speaker.Play(osc)
	}

	k := &kaleidoscope{
		screen:  screen,
		current: randomColor(),
		osc:     osc,
	}

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			k.step()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				k.draw()
			case *tcell.EventKey:
				if !k.handleKey(ev) {
					return
				}
			}
		}
	}
}

// randomColor picks a chromatic cube cell so the marquee starts somewhere
// interesting. Every index in [17,230] has a wheel position.
func randomColor() *hues.Color {
	c, err := hues.New(17 + rand.Intn(214))
	if err != nil {
		return hues.Red.Default()
	}
	return c
}

type kaleidoscope struct {
	screen  tcell.Screen
	current *hues.Color
	trail   []hues.Bit8
	osc     *oscillator
}

// step advances the marquee one sector around the wheel.
func (k *kaleidoscope) step() {
	if err := k.current.RotateForward(1); err != nil {
		k.current = randomColor()
	}
	k.trail = append(k.trail, k.current.ANSI())
	w, _ := k.screen.Size()
	if w > 0 && len(k.trail) > w {
		k.trail = k.trail[len(k.trail)-w:]
	}
	if k.osc != nil {
		k.osc.setFreq(toneFor(k.current))
	}
	k.draw()
}

// shuffle jumps to a different level/saturation of the current hue,
// like the reference demo does on interrupt.
func (k *kaleidoscope) shuffle() {
	h, ok := hues.Lookup(k.current.HueName())
	if !ok {
		return
	}
	c, err := h.Color(1+rand.Intn(5), 1+rand.Intn(9))
	if err != nil {
		return
	}
	k.current = c
	k.draw()
}

func (k *kaleidoscope) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
		return false
	case ev.Rune() == ' ':
		k.shuffle()
	case ev.Key() == tcell.KeyRight:
		k.step()
	case ev.Key() == tcell.KeyLeft:
		if err := k.current.RotateBackward(2); err == nil {
			k.step()
		}
	}
	return true
}

func (k *kaleidoscope) draw() {
	s := k.screen
	s.Clear()
	w, h := s.Size()

	// Status line
	hsv := k.current.HSV()
	status := fmt.Sprintf(" %s  ansi %3d  %s ",
		k.current.HueName(), uint8(k.current.ANSI()), hsv)
	style := tcell.StyleDefault.Foreground(paletteColor(k.current.ANSI()))
	drawText(s, 1, 0, style.Bold(true), status)

	// Wheel strip: every registered hue's default
	x := 1
	for _, hue := range hues.Hues() {
		c := hue.Default()
		st := tcell.StyleDefault.Background(paletteColor(c.ANSI()))
		name := c.HueName()
		if name == k.current.HueName() {
			st = st.Bold(true)
		}
		for i := 0; i < 4 && x < w; i++ {
			s.SetContent(x, 2, ' ', nil, st)
			x++
		}
		x++
	}

	// Current hue's level/saturation grid
	if hue, ok := hues.Lookup(k.current.HueName()); ok {
		drawGrid(s, 1, 4, hue, k.current.ANSI())
	}

	// Marquee trail along the bottom
	y := h - 2
	for i, idx := range k.trail {
		if i >= w {
			break
		}
		st := tcell.StyleDefault.Background(paletteColor(idx))
		s.SetContent(i, y, ' ', nil, st)
	}

	drawText(s, 1, h-1, tcell.StyleDefault.Dim(true),
		"space: shuffle  arrows: rotate  q: quit")
	s.Show()
}

// drawGrid renders a hue's swatch table, brightest level first, most
// vivid saturation first.
func drawGrid(s tcell.Screen, x0, y0 int, hue *hues.Hue, mark hues.Bit8) {
	for level := 5; level >= 1; level-- {
		y := y0 + (5 - level)
		x := x0
		for sat := 9; sat >= 1; sat-- {
			c, err := hue.Color(level, sat)
			if err != nil {
				continue
			}
			st := tcell.StyleDefault.
				Background(paletteColor(c.ANSI())).
				Foreground(tcell.ColorBlack)
			label := fmt.Sprintf("%3d ", uint8(c.ANSI()))
			if c.ANSI() == mark {
				st = st.Bold(true).Underline(true)
			}
			for _, r := range label {
				s.SetContent(x, y, r, nil, st)
				x++
			}
		}
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func paletteColor(idx hues.Bit8) tcell.Color {
	return tcell.PaletteColor(int(idx))
}

// toneFor maps a color's wheel angle to a frequency: one octave from Red
// around the wheel, a low drone for achromatics.
func toneFor(c *hues.Color) float64 {
	deg := float64(c.HSV().H)
	if deg == 0 {
		return baseFreq / 2
	}
	return baseFreq * math.Pow(2, (360-deg)/360)
}

// ==========================================
// AUDIO
// ==========================================

// oscillator is a perpetual sine streamer whose frequency can be retuned
// from the UI goroutine.
type oscillator struct {
	rate     beep.SampleRate
	phase    float64
	freqBits atomic.Uint64
}

func newOscillator(rate beep.SampleRate) *oscillator {
	o := &oscillator{rate: rate}
	o.setFreq(baseFreq)
	return o
}

func (o *oscillator) setFreq(f float64) {
	o.freqBits.Store(math.Float64bits(f))
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	freq := math.Float64frombits(o.freqBits.Load())
	for i := range samples {
		v := 0.15 * math.Sin(2*math.Pi*o.phase)
		samples[i][0] = v
		samples[i][1] = v
		o.phase += freq / float64(o.rate)
		if o.phase >= 1 {
			o.phase--
		}
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }
