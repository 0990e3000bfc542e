package ai

import (
	"gridsnake/game"
	"gridsnake/game/types"
)

// Pilot steers a game with a QLearning agent. It decides once each time the
// head enters a new cell and, when learning, scores the decision on the next
// move.
type Pilot struct {
	agent *QLearning
	learn bool

	decided bool
	head    types.Cell
	state   State
	action  Action
	pending bool
}

func NewPilot(agent *QLearning, learn bool) *Pilot {
	return &Pilot{
		agent: agent,
		learn: learn,
	}
}

func (p *Pilot) Agent() *QLearning {
	return p.agent
}

// Keys returns the steering keys for this tick, or nil when the head has not
// changed cell since the last decision.
func (p *Pilot) Keys(snap game.Snapshot) []types.Key {
	if snap.State == game.Over {
		return nil
	}
	if p.decided && snap.Head.Equal(p.head) {
		return nil
	}

	p.state = Observe(snap)
	if p.learn {
		p.action = p.agent.GetAction(p.state)
	} else {
		p.action = p.agent.BestAction(p.state)
	}
	p.head = snap.Head
	p.decided = true
	p.pending = true
	return []types.Key{p.action.Key()}
}

// Learn feeds the result of the tick back to the agent.
func (p *Pilot) Learn(res game.Result, snap game.Snapshot) {
	if res.Has(game.EventRestart) || res.Has(game.EventTeleport) {
		p.decided = false
		p.pending = false
		return
	}
	if !p.learn || !p.pending || !(res.Moved || res.Over) {
		return
	}

	outcome := Outcome{
		Ate:  res.Has(game.EventFoodEaten),
		Died: res.Has(game.EventGameOver),
	}
	p.agent.Update(p.state, p.action, Observe(snap), outcome)
	p.pending = false
}

// Step runs one tick of g under the pilot's control.
func (p *Pilot) Step(g *game.Game, dt float64) game.Result {
	res := g.Update(dt, p.Keys(g.Snapshot()))
	p.Learn(res, g.Snapshot())
	return res
}
