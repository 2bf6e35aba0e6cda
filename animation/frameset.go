package animation

import (
	gomath "math"

	"github.com/automoto/tilestage/faults"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayMode selects how elapsed time maps onto frames.
type PlayMode int

const (
	Normal PlayMode = iota // play once, hold the last frame
	Reversed
	Loop
	LoopReversed
	LoopPingPong
)

func (m PlayMode) Looping() bool {
	return m == Loop || m == LoopReversed || m == LoopPingPong
}

func (m PlayMode) String() string {
	switch m {
	case Normal:
		return "normal"
	case Reversed:
		return "reversed"
	case Loop:
		return "loop"
	case LoopReversed:
		return "loop_reversed"
	case LoopPingPong:
		return "loop_pingpong"
	}
	return "unknown"
}

var (
	ErrEmptyFrameSet  = faults.Precondition("frame set has no frames")
	ErrNilFrame       = faults.Precondition("frame set contains a nil frame")
	ErrBadFrameTiming = faults.Precondition("frame duration must be positive")
)

// FrameSet is an ordered, non-empty sequence of frames with a fixed per-frame
// duration. It is never modified after construction, so one set can back
// any number of actors.
type FrameSet struct {
	frames        []*ebiten.Image
	frameDuration float64
	mode          PlayMode
}

// NewFrameSet copies frames into a new set.
func NewFrameSet(frameDuration float64, frames []*ebiten.Image, mode PlayMode) (*FrameSet, error) {
	if len(frames) == 0 {
		return nil, ErrEmptyFrameSet
	}
	if frameDuration <= 0 || gomath.IsNaN(frameDuration) || gomath.IsInf(frameDuration, 0) {
		return nil, ErrBadFrameTiming
	}
	for _, f := range frames {
		if f == nil {
			return nil, ErrNilFrame
		}
	}

	fs := &FrameSet{
		frames:        make([]*ebiten.Image, len(frames)),
		frameDuration: frameDuration,
		mode:          mode,
	}
	copy(fs.frames, frames)
	return fs, nil
}

func (f *FrameSet) Len() int { return len(f.frames) }
func (f *FrameSet) FrameDuration() float64 { return f.frameDuration }
func (f *FrameSet) Mode() PlayMode { return f.mode }
func (f *FrameSet) Frame(i int) *ebiten.Image { return f.frames[i] }

// Duration is the length of one pass through every frame.
func (f *FrameSet) Duration() float64 {
	return float64(len(f.frames)) * f.frameDuration
}

// KeyFrameIndex returns the frame shown after t seconds.
func (f *FrameSet) KeyFrameIndex(t float64) int {
	n := len(f.frames)
	if n == 1 || t <= 0 {
		if f.mode == Reversed || f.mode == LoopReversed {
			return n - 1
		}
		return 0
	}

	frame := int(gomath.Floor(t / f.frameDuration))
	switch f.mode {
	case Loop:
		return frame % n
	case LoopReversed:
		return n - frame%n - 1
	case LoopPingPong:
		frame %= 2*n - 2
		if frame >= n {
			frame = n - 2 - (frame - n)
		}
		return frame
	case Reversed:
		return max(n-frame-1, 0)
	default:
		return min(frame, n-1)
	}
}

// KeyFrame returns the image shown after t seconds.
func (f *FrameSet) KeyFrame(t float64) *ebiten.Image {
	return f.frames[f.KeyFrameIndex(t)]
}

// IsFinished reports whether a non-looping set has played past its last
// frame after t seconds. Looping sets never finish.
func (f *FrameSet) IsFinished(t float64) bool {
	if f.mode.Looping() {
		return false
	}
	return t > f.Duration()
}

// Size returns the dimensions of the first frame.
func (f *FrameSet) Size() (w, h int) {
	b := f.frames[0].Bounds()
	return b.Dx(), b.Dy()
}
