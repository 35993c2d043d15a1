package battleship

type FireOutcome string

const (
	FireOutcomeMiss FireOutcome = "Miss!"
	FireOutcomeHit  FireOutcome = "Hit!"
	FireOutcomeSunk FireOutcome = "Sunk!"
)

const MaxShipSize int = 4

type ShipSpec struct {
	Start     Coordinates
	End       Coordinates
	IsDrowned bool
}

func NewShipSpec(start, end Coordinates) ShipSpec {
	return ShipSpec{Start: start, End: end}
}

// Board maps every occupied coordinate to the id of the ship standing on it.
// The id is the ship's index in ships.
type Board struct {
	ships []*Ship
	field map[Coordinates]int

	// coordinates claimed by more than one ship while registering
	overlaps []Coordinates
}

// NewBoard builds and registers every ship, then validates the whole fleet.
// A nil board is returned with the first rule violation found.
func NewBoard(specs []ShipSpec) (*Board, error) {
	board := &Board{
		ships: make([]*Ship, 0, len(specs)),
		field: make(map[Coordinates]int, len(specs)*MaxShipSize),
	}

	for _, spec := range specs {
		board.register(NewShip(len(board.ships), spec.Start, spec.End, spec.IsDrowned))
	}

	if err := board.validate(); err != nil {
		return nil, err
	}
	return board, nil
}

// register keeps the later ship when two ships claim one coordinate.
func (b *Board) register(ship *Ship) {
	b.ships = append(b.ships, ship)
	for _, deck := range ship.Decks {
		coords := deck.Coordinates()
		if _, prs := b.field[coords]; prs {
			b.overlaps = append(b.overlaps, coords)
		}
		b.field[coords] = ship.Id
	}
}

// Fire never fails. Coordinates without a ship, including the ones outside
// the grid, are a miss.
func (b *Board) Fire(coords Coordinates) FireOutcome {
	ship, prs := b.ShipAt(coords)
	if !prs {
		return FireOutcomeMiss
	}

	ship.Fire(coords.Row, coords.Column)
	if ship.IsDrowned {
		return FireOutcomeSunk
	}
	return FireOutcomeHit
}

func (b *Board) ShipAt(coords Coordinates) (*Ship, bool) {
	id, prs := b.field[coords]
	if !prs {
		return nil, false
	}
	return b.ships[id], true
}

func (b *Board) Ships() []*Ship {
	ships := make([]*Ship, len(b.ships))
	copy(ships, b.ships)
	return ships
}

func (b *Board) AliveShips() int {
	alive := 0
	for _, ship := range b.ships {
		if !ship.IsDrowned {
			alive++
		}
	}
	return alive
}

func (b *Board) IsDefeated() bool {
	return b.AliveShips() == 0
}

// Render is the view of someone shooting at the board. Decks of a ship
// that has not been hit yet stay unknown.
func (b *Board) Render() Grid {
	return b.render(false)
}

// RenderRevealed is the owner's view, every alive deck is shown.
func (b *Board) RenderRevealed() Grid {
	return b.render(true)
}

func (b *Board) render(revealed bool) Grid {
	grid := NewGrid()
	for coords, id := range b.field {
		ship := b.ships[id]
		deck, prs := ship.GetDeck(coords.Row, coords.Column)
		if !prs {
			continue
		}

		switch {
		case deck.IsAlive && (revealed || ship.IsHit()):
			grid[coords.Row][coords.Column] = SymbolAliveDeck
		case deck.IsAlive:
			// unknown to the shooter
		case ship.IsDrowned:
			grid[coords.Row][coords.Column] = SymbolSunkDeck
		default:
			grid[coords.Row][coords.Column] = SymbolHitDeck
		}
	}
	return grid
}
