package manager

import (
	"errors"

	"gridsnake/game/types"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

// ErrNoFreeCell is returned when every interior cell is occupied.
var ErrNoFreeCell = errors.New("no free cell for food")

// samplesPerCell bounds rejection sampling before falling back to enumeration.
const samplesPerCell = 4

type FoodManager struct {
	grid         types.Grid
	food         types.Cell
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Food returns the current food cell.
func (fm *FoodManager) Food() types.Cell {
	return fm.food
}

// SetFood places the food directly.
func (fm *FoodManager) SetFood(food types.Cell) {
	fm.food.Set(food)
}

// Relocate moves the food to a free interior cell chosen uniformly at random.
func (fm *FoodManager) Relocate(occupied []types.Cell) error {
	food, err := fm.GenerateFood(occupied)
	if err != nil {
		return err
	}
	fm.food.Set(food)
	return nil
}

// GenerateFood draws interior cells until one is not occupied. After a bounded
// number of rejections it enumerates the free cells instead.
func (fm *FoodManager) GenerateFood(occupied []types.Cell) (types.Cell, error) {
	maxSamples := samplesPerCell * fm.grid.InteriorCells()
	for i := 0; i < maxSamples; i++ {
		food := fm.grid.CellFromIndex(
			fm.rng.Intn(2*fm.grid.MaxIdxX-1)-fm.grid.MaxIdxX+1,
			fm.rng.Intn(2*fm.grid.MaxIdxY-1)-fm.grid.MaxIdxY+1,
		)

		if fm.collisionMgr.ValidateSpawnPosition(food, occupied) {
			return food, nil
		}
	}

	free := fm.freeCells(occupied)
	glog.V(1).Infof("Food: rejection sampling exhausted, %d free cells left", len(free))
	if len(free) == 0 {
		return types.Cell{}, ErrNoFreeCell
	}
	return free[fm.rng.Intn(len(free))], nil
}

func (fm *FoodManager) freeCells(occupied []types.Cell) []types.Cell {
	taken := make(map[[2]int]struct{}, len(occupied))
	for _, c := range occupied {
		taken[[2]int{c.IdxX, c.IdxY}] = struct{}{}
	}

	free := make([]types.Cell, 0)
	for idxX := -fm.grid.MaxIdxX + 1; idxX < fm.grid.MaxIdxX; idxX++ {
		for idxY := -fm.grid.MaxIdxY + 1; idxY < fm.grid.MaxIdxY; idxY++ {
			if _, ok := taken[[2]int{idxX, idxY}]; !ok {
				free = append(free, fm.grid.CellFromIndex(idxX, idxY))
			}
		}
	}
	return free
}
