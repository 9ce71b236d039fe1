package fontkit

import (
	"fmt"
	"sync"
)

// PathOp is the type of a path event.
type PathOp uint8

const (
	// PathMoveTo starts a new contour at To.
	PathMoveTo PathOp = iota
	// PathLineTo draws a line to To.
	PathLineTo
	// PathQuadTo draws a quadratic Bezier curve through Ctrl0 to To.
	PathQuadTo
	// PathCubicTo draws a cubic Bezier curve through Ctrl0 and Ctrl1 to To.
	PathCubicTo
	// PathClose closes the current contour.
	PathClose
)

// String returns a string representation of the operation.
func (op PathOp) String() string {
	switch op {
	case PathMoveTo:
		return "MoveTo"
	case PathLineTo:
		return "LineTo"
	case PathQuadTo:
		return "QuadTo"
	case PathCubicTo:
		return "CubicTo"
	case PathClose:
		return "Close"
	default:
		return unknownStr
	}
}

// PathEvent is one step of a glyph outline in y-up design units.
// Only the points used by Op are meaningful:
//   - MoveTo, LineTo: To
//   - QuadTo: Ctrl0, To
//   - CubicTo: Ctrl0, Ctrl1, To
//   - Close: none
type PathEvent struct {
	Op    PathOp
	Ctrl0 Point
	Ctrl1 Point
	To    Point
}

// MoveTo returns a PathMoveTo event.
func MoveTo(p Point) PathEvent { return PathEvent{Op: PathMoveTo, To: p} }

// LineTo returns a PathLineTo event.
func LineTo(p Point) PathEvent { return PathEvent{Op: PathLineTo, To: p} }

// QuadTo returns a PathQuadTo event.
func QuadTo(c, p Point) PathEvent { return PathEvent{Op: PathQuadTo, Ctrl0: c, To: p} }

// CubicTo returns a PathCubicTo event.
func CubicTo(c0, c1, p Point) PathEvent {
	return PathEvent{Op: PathCubicTo, Ctrl0: c0, Ctrl1: c1, To: p}
}

// Close returns a PathClose event.
func Close() PathEvent { return PathEvent{Op: PathClose} }

// Cubic returns the event with a quadratic curve elevated to the equivalent
// cubic curve, given the current point from. Other events are returned
// unchanged.
func (e PathEvent) Cubic(from Point) PathEvent {
	if e.Op != PathQuadTo {
		return e
	}
	c0 := Point{from.X + 2.0/3.0*(e.Ctrl0.X-from.X), from.Y + 2.0/3.0*(e.Ctrl0.Y-from.Y)}
	c1 := Point{e.To.X + 2.0/3.0*(e.Ctrl0.X-e.To.X), e.To.Y + 2.0/3.0*(e.Ctrl0.Y-e.To.Y)}
	return CubicTo(c0, c1, e.To)
}

func (e PathEvent) String() string {
	switch e.Op {
	case PathMoveTo, PathLineTo:
		return fmt.Sprintf("%s(%g, %g)", e.Op, e.To.X, e.To.Y)
	case PathQuadTo:
		return fmt.Sprintf("%s(%g, %g, %g, %g)", e.Op, e.Ctrl0.X, e.Ctrl0.Y, e.To.X, e.To.Y)
	case PathCubicTo:
		return fmt.Sprintf("%s(%g, %g, %g, %g, %g, %g)", e.Op,
			e.Ctrl0.X, e.Ctrl0.Y, e.Ctrl1.X, e.Ctrl1.Y, e.To.X, e.To.Y)
	default:
		return e.Op.String()
	}
}

// PathConsumer receives outline events in order.
type PathConsumer interface {
	Consume(PathEvent)
}

// PathConsumerFunc adapts a function to PathConsumer.
type PathConsumerFunc func(PathEvent)

// Consume calls f(e).
func (f PathConsumerFunc) Consume(e PathEvent) { f(e) }

// PathEvents is a PathConsumer that records every event.
type PathEvents []PathEvent

// Consume appends e.
func (p *PathEvents) Consume(e PathEvent) { *p = append(*p, e) }

// OutlineAccumulator collects the callbacks of an outline engine and
// replays them into a PathConsumer once the engine is done.
//
// An accumulator is meant for a single outline request. Issuing a second
// request before Flush concatenates both outlines.
//
// OutlineAccumulator is safe for concurrent use.
type OutlineAccumulator struct {
	mu     sync.Mutex
	events []PathEvent
	flipY  bool
}

// NewOutlineAccumulator returns an accumulator for engines whose outline
// coordinates grow downward. Every y coordinate is negated so the collected
// path is in y-up design space.
func NewOutlineAccumulator() *OutlineAccumulator {
	return &OutlineAccumulator{flipY: true}
}

// NewOutlineAccumulatorYUp returns an accumulator for engines that already
// report y-up coordinates. Points are stored unchanged.
func NewOutlineAccumulatorYUp() *OutlineAccumulator {
	return &OutlineAccumulator{}
}

func (a *OutlineAccumulator) pt(x, y float32) Point {
	if a.flipY {
		return Point{x, -y}
	}
	return Point{x, y}
}

func (a *OutlineAccumulator) push(e PathEvent) {
	a.mu.Lock()
	a.events = append(a.events, e)
	a.mu.Unlock()
}

// MoveTo records the start of a contour.
func (a *OutlineAccumulator) MoveTo(x, y float32) {
	a.push(MoveTo(a.pt(x, y)))
}

// LineTo records a line segment.
func (a *OutlineAccumulator) LineTo(x, y float32) {
	a.push(LineTo(a.pt(x, y)))
}

// QuadTo records a quadratic Bezier segment.
func (a *OutlineAccumulator) QuadTo(cx, cy, x, y float32) {
	a.push(QuadTo(a.pt(cx, cy), a.pt(x, y)))
}

// CubicTo records a cubic Bezier segment.
func (a *OutlineAccumulator) CubicTo(c0x, c0y, c1x, c1y, x, y float32) {
	a.push(CubicTo(a.pt(c0x, c0y), a.pt(c1x, c1y), a.pt(x, y)))
}

// Close records the end of a contour.
func (a *OutlineAccumulator) Close() {
	a.push(Close())
}

// Len returns the number of events waiting to be flushed.
func (a *OutlineAccumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.events)
}

// Flush drains the recorded events and replays them into sink in the order
// they were recorded. The accumulator is empty afterwards.
func (a *OutlineAccumulator) Flush(sink PathConsumer) {
	a.mu.Lock()
	events := a.events
	a.events = nil
	a.mu.Unlock()

	for _, e := range events {
		sink.Consume(e)
	}
}
