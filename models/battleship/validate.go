package battleship

import (
	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

// RequiredShips returns how many ships of the given size a fleet must have.
// One 4-deck ship, two 3-deck ships, three 2-deck ships and four 1-deck ships.
func RequiredShips(size int) int {
	return MaxShipSize + 1 - size
}

// validate runs after every ship is registered and stops at the first failure.
// Ships and decks are visited in construction order so the reported error
// does not depend on map iteration.
func (b *Board) validate() error {
	for _, ship := range b.ships {
		if ship.Size() == 0 {
			return cerr.ErrMalformedShip(ship.Id)
		}
		for _, deck := range ship.Decks {
			if !deck.Coordinates().IsInGrid() {
				return cerr.ErrXorYOutOfGridBound(deck.Row, deck.Column)
			}
		}
	}

	if len(b.overlaps) != 0 {
		return cerr.ErrShipsOverlap(b.overlaps[0].Row, b.overlaps[0].Column)
	}

	if err := b.validateComposition(); err != nil {
		return err
	}
	return b.validateSpacing()
}

func (b *Board) validateComposition() error {
	shipSizes := make(map[int]int, MaxShipSize)
	counted := make(map[int]bool, len(b.ships))
	for _, id := range b.field {
		if counted[id] {
			continue
		}
		counted[id] = true

		size := b.ships[id].Size()
		if size > MaxShipSize {
			return cerr.ErrShipTooLong(size)
		}
		shipSizes[size]++
	}

	for size := 1; size <= MaxShipSize; size++ {
		if shipSizes[size] != RequiredShips(size) {
			return cerr.ErrInvalidFleetComposition(size, RequiredShips(size), shipSizes[size])
		}
	}
	return nil
}

// validateSpacing rejects two different ships touching by a side or a corner.
func (b *Board) validateSpacing() error {
	for _, ship := range b.ships {
		for _, deck := range ship.Decks {
			for _, neighbor := range deck.Coordinates().neighbors() {
				id, prs := b.field[neighbor]
				if prs && id != ship.Id {
					return cerr.ErrShipsTooClose(deck.Row, deck.Column, neighbor.Row, neighbor.Column)
				}
			}
		}
	}
	return nil
}
