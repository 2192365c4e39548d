package wireframe

import "fmt"

// Stack places blocks of the same height one under the other.
// Block i starts at Start + i*RowHeight; blocks never overlap
// as long as RowHeight >= BlockHeight, which Validate checks.
type Stack struct {
	Start       float64
	RowHeight   float64
	BlockHeight float64
}

// Y returns the top of block i.
func (s Stack) Y(i int) float64 { return s.Start + float64(i)*s.RowHeight }

// Block returns the box of block i, spanning [x0, x1] horizontally.
func (s Stack) Block(i int, x0, x1 float64) Box {
	y := s.Y(i)
	return Box{X0: x0, Y0: y, X1: x1, Y1: y + s.BlockHeight}
}

// End returns the bottom of the last of n blocks.
func (s Stack) End(n int) float64 {
	if n <= 0 {
		return s.Start
	}
	return s.Y(n-1) + s.BlockHeight
}

// Validate returns an error if consecutive blocks would overlap.
func (s Stack) Validate() error {
	if s.BlockHeight <= 0 {
		return fmt.Errorf("stack at %g: block height %g must be positive", s.Start, s.BlockHeight)
	}
	if s.RowHeight < s.BlockHeight {
		return fmt.Errorf("stack at %g: row height %g is smaller than block height %g",
			s.Start, s.RowHeight, s.BlockHeight)
	}
	return nil
}
