package types

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/glog"
)

// ErrInvalidGrid is returned when a grid cannot be fitted into the given extent.
var ErrInvalidGrid = errors.New("invalid grid")

// Grid maps continuous positions to cells. The grid is centered on the
// origin and spans -MaxIdx..+MaxIdx on each axis; the outer ring is wall.
type Grid struct {
	CellSize     float64
	MaxIdxX      int
	MaxIdxY      int
	ScreenWidth  float64
	ScreenHeight float64
}

// NewGrid fits nCellsX × nCellsY square cells into a screenWidth × screenHeight
// extent. Even cell counts are bumped to the next odd value so the grid is
// symmetric about the origin.
func NewGrid(screenWidth, screenHeight float64, nCellsX, nCellsY int) (Grid, error) {
	if screenWidth <= 0 || screenHeight <= 0 {
		return Grid{}, fmt.Errorf("%w: screen %vx%v", ErrInvalidGrid, screenWidth, screenHeight)
	}
	if nCellsX < 1 || nCellsY < 1 {
		return Grid{}, fmt.Errorf("%w: %dx%d cells", ErrInvalidGrid, nCellsX, nCellsY)
	}

	nx := OddCells(nCellsX)
	ny := OddCells(nCellsY)
	if nx != nCellsX || ny != nCellsY {
		glog.V(1).Infof("Grid: cell counts %dx%d bumped to %dx%d", nCellsX, nCellsY, nx, ny)
	}

	resX := screenWidth / float64(nx)
	resY := screenHeight / float64(ny)

	g := Grid{
		CellSize:     math.Min(resX, resY),
		MaxIdxX:      (nx - 1) / 2,
		MaxIdxY:      (ny - 1) / 2,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
	glog.Infof("Grid: Width = %d ; Height = %d ; cell = %.2f", g.MaxIdxX*2+1, g.MaxIdxY*2+1, g.CellSize)
	return g, nil
}

// NewGridWithBounds builds a grid directly from its cell size and index bounds.
func NewGridWithBounds(cellSize float64, maxIdxX, maxIdxY int) (Grid, error) {
	if cellSize <= 0 || maxIdxX < 1 || maxIdxY < 1 {
		return Grid{}, fmt.Errorf("%w: cell %v bounds %dx%d", ErrInvalidGrid, cellSize, maxIdxX, maxIdxY)
	}
	return Grid{
		CellSize:     cellSize,
		MaxIdxX:      maxIdxX,
		MaxIdxY:      maxIdxY,
		ScreenWidth:  float64(2*maxIdxX+1) * cellSize,
		ScreenHeight: float64(2*maxIdxY+1) * cellSize,
	}, nil
}

// OddCells returns n, or n+1 when n is even.
func OddCells(n int) int {
	if n%2 == 0 {
		return n + 1
	}
	return n
}

// CellFromPosition rounds a continuous position to the nearest cell
// (half away from zero) and snaps the cached coordinates to the cell center.
func (g Grid) CellFromPosition(x, y float64) Cell {
	idxX := math.Round(x / g.CellSize)
	idxY := math.Round(y / g.CellSize)
	return Cell{
		PosX: idxX * g.CellSize,
		PosY: idxY * g.CellSize,
		IdxX: int(idxX),
		IdxY: int(idxY),
	}
}

// CellFromIndex builds the cell at the given indices.
func (g Grid) CellFromIndex(idxX, idxY int) Cell {
	return Cell{
		PosX: float64(idxX) * g.CellSize,
		PosY: float64(idxY) * g.CellSize,
		IdxX: idxX,
		IdxY: idxY,
	}
}

// Origin is the center cell.
func (g Grid) Origin() Cell {
	return g.CellFromPosition(0, 0)
}

// IsInsideBounds reports whether the indices lie strictly inside the wall ring.
func (g Grid) IsInsideBounds(idxX, idxY int) bool {
	return idxX > -g.MaxIdxX &&
		idxX < g.MaxIdxX &&
		idxY > -g.MaxIdxY &&
		idxY < g.MaxIdxY
}

// InteriorCells is the number of playable cells.
func (g Grid) InteriorCells() int {
	return (2*g.MaxIdxX - 1) * (2*g.MaxIdxY - 1)
}

// WallCells enumerates the perimeter ring, each corner once.
func (g Grid) WallCells() []Cell {
	wall := make([]Cell, 0, 2*(2*g.MaxIdxY+1)+2*(2*g.MaxIdxX-1))

	// left and right columns, corners included
	for _, idxX := range []int{-g.MaxIdxX, g.MaxIdxX} {
		for idxY := -g.MaxIdxY; idxY <= g.MaxIdxY; idxY++ {
			wall = append(wall, g.CellFromIndex(idxX, idxY))
		}
	}

	// bottom and top rows, corners excluded
	for _, idxY := range []int{-g.MaxIdxY, g.MaxIdxY} {
		for idxX := -g.MaxIdxX + 1; idxX < g.MaxIdxX; idxX++ {
			wall = append(wall, g.CellFromIndex(idxX, idxY))
		}
	}

	return wall
}
