package battleship

import (
	cerr "github.com/saeidalz13/battleship-board/internal/error"

	"github.com/google/uuid"
)

type Game struct {
	isFinished bool
	Uuid       string
	Board      *Board
	Shots      int
	Hits       int
}

func NewGame(specs []ShipSpec) (*Game, error) {
	board, err := NewBoard(specs)
	if err != nil {
		return nil, err
	}

	return &Game{
		Uuid:       uuid.NewString()[:6],
		Board:      board,
		isFinished: board.IsDefeated(),
	}, nil
}

// Fire shoots at the game board and counts the shot. Once every ship is
// sunk the game is finished and further shots are refused.
func (g *Game) Fire(coords Coordinates) (FireOutcome, error) {
	if g.isFinished {
		return "", cerr.ErrGameFinished(g.Uuid)
	}

	outcome := g.Board.Fire(coords)
	g.Shots++
	if outcome != FireOutcomeMiss {
		g.Hits++
	}

	if outcome == FireOutcomeSunk && g.Board.IsDefeated() {
		g.FinishGame()
	}
	return outcome, nil
}

func (g *Game) FinishGame() {
	g.isFinished = true
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}
