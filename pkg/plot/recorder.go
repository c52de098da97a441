package plot

import "fmt"

// Op is one drawing call captured by a Recorder.
type Op struct {
	Kind string // "line", "dot", "translate", "rotate", "scale", "push", "pop"
	Args []float64
}

func (o Op) String() string { return fmt.Sprintf("%s%v", o.Kind, o.Args) }

// Recorder is a Canvas that records every call. It backs tests and the
// dry-run mode of the CLI, where only mark counts are reported.
type Recorder struct {
	Ops   []Op
	depth int
}

func (r *Recorder) add(kind string, args ...float64) {
	r.Ops = append(r.Ops, Op{Kind: kind, Args: args})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) { r.add("line", x1, y1, x2, y2) }
func (r *Recorder) Dot(x, y, radius float64)    { r.add("dot", x, y, radius) }
func (r *Recorder) Translate(dx, dy float64)    { r.add("translate", dx, dy) }
func (r *Recorder) Rotate(deg float64)          { r.add("rotate", deg) }
func (r *Recorder) Scale(sx, sy float64)        { r.add("scale", sx, sy) }

func (r *Recorder) Push() {
	r.depth++
	r.add("push")
}

func (r *Recorder) Pop() {
	r.depth--
	r.add("pop")
}

// Depth returns the number of unmatched Push calls.
func (r *Recorder) Depth() int { return r.depth }

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

var _ Canvas = (*Recorder)(nil)
