package types

import "fmt"

// Cell is a discrete grid coordinate. IdxX/IdxY are the identity, PosX/PosY
// are the continuous projection cached at construction.
type Cell struct {
	PosX, PosY float64
	IdxX, IdxY int
}

// Equal compares cells by index only.
func (c Cell) Equal(other Cell) bool {
	return c.IdxX == other.IdxX && c.IdxY == other.IdxY
}

// Set copies other into c, cached coordinates included.
func (c *Cell) Set(other Cell) {
	*c = other
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.IdxX, c.IdxY)
}

// ContainsCell reports whether cells holds a cell equal to c.
func ContainsCell(cells []Cell, c Cell) bool {
	for _, other := range cells {
		if other.Equal(c) {
			return true
		}
	}
	return false
}

// Axis is the single axis a snake is allowed to move along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Key is a directional steering request coming from the host.
type Key int

const (
	KeyUp Key = iota
	KeyRight
	KeyDown
	KeyLeft
)

// Axis returns the axis a key asks to move along.
func (k Key) Axis() Axis {
	if k == KeyUp || k == KeyDown {
		return Vertical
	}
	return Horizontal
}

// Sign is +1 for up/right and -1 for down/left. Grid y grows upwards.
func (k Key) Sign() float64 {
	if k == KeyUp || k == KeyRight {
		return 1
	}
	return -1
}

// Step returns the index delta of one cell in the key's direction.
func (k Key) Step() (dx, dy int) {
	switch k {
	case KeyUp:
		return 0, 1
	case KeyRight:
		return 1, 0
	case KeyDown:
		return 0, -1
	default:
		return -1, 0
	}
}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyRight:
		return "right"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Game constants
const (
	SpeedUpFactor    = 1.1 // Speed multiplier applied on every speed-up
	SpeedUpEveryFood = 3   // Speed-up every N score increments worth of apples
)
