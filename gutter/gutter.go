package gutter

import (
	"fmt"
	"strings"
)

const (
	// DefaultStep is the vertical distance between samples, in surface units.
	DefaultStep = 10
	// DefaultWidth is the label width including its trailing newline.
	DefaultWidth = 6
)

// Surface is the rendered viewport the gutter samples.
type Surface interface {
	// Height returns the viewport height in surface units.
	Height() int
	// LineAt returns the 1-based logical line rendered at vertical offset y.
	// Offsets below the last rendered row report the last line.
	LineAt(y int) int
}

// Display receives a new gutter block whenever it differs from the last one.
type Display interface {
	Replace(s Snapshot)
}

// Options configures sampling and label formatting.
// Zero values select DefaultStep and DefaultWidth.
type Options struct {
	Step  int
	Width int
}

func (o Options) normalized() Options {
	if o.Step <= 0 {
		o.Step = DefaultStep
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	return o
}

// Label is one line number and the sample offset it was first seen at.
type Label struct {
	Line int
	Y    int
}

// Snapshot is a computed gutter block.
type Snapshot struct {
	Labels []Label
	// Text is the concatenation of every formatted label, top to bottom.
	Text string
}

// Equal compares two snapshots by their rendered block and label offsets.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Text != o.Text || len(s.Labels) != len(o.Labels) {
		return false
	}
	for i := range s.Labels {
		if s.Labels[i] != o.Labels[i] {
			return false
		}
	}
	return true
}

// Lines returns the line numbers in the snapshot.
func (s Snapshot) Lines() []int {
	out := make([]int, len(s.Labels))
	for i, l := range s.Labels {
		out[i] = l.Line
	}
	return out
}

// FormatLabel left-pads line to width characters, the last of which is a
// newline. Numbers that do not fit are kept whole.
func FormatLabel(line, width int) string {
	return fmt.Sprintf("%*d\n", max(width-1, 0), line)
}

// Sample walks s from 0 to its height in opt.Step increments and emits a label
// each time the sampled logical line differs from the previous sample.
func Sample(s Surface, opt Options) Snapshot {
	opt = opt.normalized()
	if s == nil {
		return Snapshot{}
	}
	h := s.Height()
	if h <= 0 {
		return Snapshot{}
	}

	var (
		labels []Label
		sb     strings.Builder
		last   int
	)
	for y := 0; y < h; y += opt.Step {
		line := s.LineAt(y)
		if line == last {
			continue
		}
		last = line
		labels = append(labels, Label{Line: line, Y: y})
		sb.WriteString(FormatLabel(line, opt.Width))
	}
	return Snapshot{Labels: labels, Text: sb.String()}
}

// Gutter caches the last block written to its Display.
type Gutter struct {
	opt     Options
	display Display

	cache    Snapshot
	hasCache bool
	redraws  int
}

// New returns a Gutter writing to d. d may be nil.
func New(opt Options, d Display) *Gutter {
	return &Gutter{opt: opt.normalized(), display: d}
}

// Options returns the effective sampling options.
func (g *Gutter) Options() Options { return g.opt }

// Refresh samples s and replaces the displayed block when it changed.
// It reports whether a redraw happened.
func (g *Gutter) Refresh(s Surface) bool {
	next := Sample(s, g.opt)
	if g.hasCache && next.Equal(g.cache) {
		return false
	}
	g.cache = next
	g.hasCache = true
	g.redraws++
	if g.display != nil {
		g.display.Replace(next)
	}
	return true
}

// Reset forgets the cached block so the next Refresh always redraws.
func (g *Gutter) Reset() {
	g.cache = Snapshot{}
	g.hasCache = false
}

// Snapshot returns the cached block.
func (g *Gutter) Snapshot() Snapshot { return g.cache }

// Text returns the cached block text.
func (g *Gutter) Text() string { return g.cache.Text }

// Redraws returns how many times the Display has been replaced.
func (g *Gutter) Redraws() int { return g.redraws }
