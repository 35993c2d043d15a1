package battleship

// Deck is one cell of a ship. IsAlive turns false once it has been hit.
type Deck struct {
	Row     int
	Column  int
	IsAlive bool
}

func NewDeck(row, column int) *Deck {
	return &Deck{Row: row, Column: column, IsAlive: true}
}

func (d *Deck) Coordinates() Coordinates {
	return NewCoordinates(d.Row, d.Column)
}

// Ship is a straight run of decks. Its Id is its index in the board's ship list.
type Ship struct {
	Id        int
	IsDrowned bool
	Decks     []*Deck
}

// NewShip lays the decks between start and end inclusive, in ascending order.
// Endpoints that share neither a row nor a column produce a ship without decks.
func NewShip(id int, start, end Coordinates, isDrowned bool) *Ship {
	ship := &Ship{
		Id:        id,
		IsDrowned: isDrowned,
	}

	switch {
	case start.Row == end.Row:
		from, to := minMax(start.Column, end.Column)
		ship.Decks = make([]*Deck, 0, to-from+1)
		for column := from; column <= to; column++ {
			ship.Decks = append(ship.Decks, NewDeck(start.Row, column))
		}

	case start.Column == end.Column:
		from, to := minMax(start.Row, end.Row)
		ship.Decks = make([]*Deck, 0, to-from+1)
		for row := from; row <= to; row++ {
			ship.Decks = append(ship.Decks, NewDeck(row, start.Column))
		}
	}

	return ship
}

func (sh *Ship) Size() int {
	return len(sh.Decks)
}

func (sh *Ship) GetDeck(row, column int) (*Deck, bool) {
	for _, deck := range sh.Decks {
		if deck.Row == row && deck.Column == column {
			return deck, true
		}
	}
	return nil, false
}

// Fire kills the deck at row and column and updates IsDrowned.
// The coordinate is expected to belong to the ship.
func (sh *Ship) Fire(row, column int) {
	if deck, prs := sh.GetDeck(row, column); prs {
		deck.IsAlive = false
	}

	for _, deck := range sh.Decks {
		if deck.IsAlive {
			return
		}
	}
	sh.IsDrowned = true
}

// IsHit reports whether at least one deck is dead.
func (sh *Ship) IsHit() bool {
	for _, deck := range sh.Decks {
		if !deck.IsAlive {
			return true
		}
	}
	return false
}

// Coordinates lists the cells of the ship, in deck order.
func (sh *Ship) Coordinates() []Coordinates {
	coords := make([]Coordinates, len(sh.Decks))
	for i, deck := range sh.Decks {
		coords[i] = deck.Coordinates()
	}
	return coords
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
