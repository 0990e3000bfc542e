package game

import (
	"fmt"

	"gridsnake/game/types"
)

// EventType enumerates what can happen during one tick.
type EventType int

const (
	EventTurn EventType = iota
	EventMove
	EventWallHit
	EventSelfHit
	EventFoodEaten
	EventGrow
	EventSpeedUp
	EventGameOver
	EventTeleport
	EventRestart
)

var eventNames = map[EventType]string{
	EventTurn:      "turn",
	EventMove:      "move",
	EventWallHit:   "wall-hit",
	EventSelfHit:   "self-hit",
	EventFoodEaten: "food-eaten",
	EventGrow:      "grow",
	EventSpeedUp:   "speed-up",
	EventGameOver:  "game-over",
	EventTeleport:  "teleport",
	EventRestart:   "restart",
}

func (e EventType) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(e))
}

// Event is emitted in the order the tick stages ran.
type Event struct {
	Type  EventType
	Key   types.Key    // EventTurn
	Trace []types.Cell // EventMove
	Cell  types.Cell   // head cell for hits, eaten food cell for EventFoodEaten
	Count int          // segments added for EventGrow
	Speed float64      // new speed in cells/s for EventSpeedUp
}

// Result of one Update.
type Result struct {
	Events []Event
	Moved  bool
	Over   bool
}

// Has reports whether an event of type t happened.
func (r Result) Has(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}

func (r *Result) emit(e Event) {
	r.Events = append(r.Events, e)
}
