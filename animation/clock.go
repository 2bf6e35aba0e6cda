package animation

import (
	"github.com/automoto/tilestage/faults"
	"github.com/hajimehoshi/ebiten/v2"
)

var ErrNoAnimation = faults.Precondition("no animation set")

// Clock accumulates elapsed time for one actor and picks the frame to draw
// from the current frame set. Pausing the clock does not pause physics.
type Clock struct {
	frames  *FrameSet
	elapsed float64
	paused  bool
}

// SetAnimation replaces the frame set and returns the size of its first
// frame. Elapsed time carries over. A nil set clears the animation.
func (c *Clock) SetAnimation(fs *FrameSet) (w, h int) {
	c.frames = fs
	if fs == nil {
		return 0, 0
	}
	return fs.Size()
}

func (c *Clock) Animation() *FrameSet { return c.frames }
func (c *Clock) HasAnimation() bool { return c.frames != nil }

func (c *Clock) SetPaused(paused bool) { c.paused = paused }
func (c *Clock) Paused() bool { return c.paused }

func (c *Clock) Elapsed() float64 { return c.elapsed }

// Restart rewinds the clock to the first frame.
func (c *Clock) Restart() { c.elapsed = 0 }

// Act advances elapsed time by dt unless paused. Time never runs backwards.
func (c *Clock) Act(dt float64) {
	if c.paused || dt <= 0 {
		return
	}
	c.elapsed += dt
}

// IsFinished reports whether a non-looping animation has played through.
func (c *Clock) IsFinished() (bool, error) {
	if c.frames == nil {
		return false, ErrNoAnimation
	}
	return c.frames.IsFinished(c.elapsed), nil
}

// KeyFrameIndex returns the index of the frame to draw now.
func (c *Clock) KeyFrameIndex() (int, error) {
	if c.frames == nil {
		return 0, ErrNoAnimation
	}
	return c.frames.KeyFrameIndex(c.elapsed), nil
}

// KeyFrame returns the frame to draw now.
func (c *Clock) KeyFrame() (*ebiten.Image, error) {
	if c.frames == nil {
		return nil, ErrNoAnimation
	}
	return c.frames.KeyFrame(c.elapsed), nil
}
