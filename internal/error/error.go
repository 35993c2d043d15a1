package error

import "fmt"

const (
	ConstErrCreateGameFailed = "create game operation failed"
	ConstErrFireFailed       = "fire operation failed"
	ConstErrRenderFailed     = "render operation failed"
	ConstErrQuitGameFailed   = "quit game operation failed"
	ConstErrInvalidSignal    = "invalid signal"
)

const (
	CodeInvalidFleetComposition uint8 = iota
	CodeShipsTooClose
	CodeShipsOverlap
	CodeMalformedShip
	CodeOutOfGridBound
)

var fleetErrDescs = map[uint8]string{
	CodeInvalidFleetComposition: "Invalid number of ships.",
	CodeShipsTooClose:           "Ships are too close.",
	CodeShipsOverlap:            "Ships overlap.",
	CodeMalformedShip:           "Ship endpoints are not on one row or column.",
	CodeOutOfGridBound:          "Ship is out of the grid.",
}

// FleetErr is returned when a board cannot be built from the given ships.
// Two FleetErr values match with errors.Is when their codes are equal.
type FleetErr struct {
	code uint8
	desc string
}

func NewFleetErr(code uint8) FleetErr {
	return FleetErr{code: code}
}

func (f FleetErr) AddDesc(desc string) FleetErr {
	f.desc = desc
	return f
}

func (f FleetErr) Error() string {
	if f.desc == "" {
		return fleetErrDescs[f.code]
	}
	return fmt.Sprintf("%s %s", fleetErrDescs[f.code], f.desc)
}

func (f FleetErr) Code() uint8 {
	return f.code
}

func (f FleetErr) Is(target error) bool {
	t, ok := target.(FleetErr)
	return ok && t.code == f.code
}

func ErrInvalidFleetComposition(shipSize, expected, got int) error {
	return NewFleetErr(CodeInvalidFleetComposition).
		AddDesc(fmt.Sprintf("size: %d\texpected: %d\tgot: %d", shipSize, expected, got))
}

func ErrShipTooLong(shipSize int) error {
	return NewFleetErr(CodeInvalidFleetComposition).
		AddDesc(fmt.Sprintf("ship size is out of range\tsize: %d", shipSize))
}

func ErrShipsTooClose(row, column, otherRow, otherColumn int) error {
	return NewFleetErr(CodeShipsTooClose).
		AddDesc(fmt.Sprintf("row: %d\tcolumn: %d\tneighbor row: %d\tneighbor column: %d", row, column, otherRow, otherColumn))
}

func ErrShipsOverlap(row, column int) error {
	return NewFleetErr(CodeShipsOverlap).
		AddDesc(fmt.Sprintf("row: %d\tcolumn: %d", row, column))
}

func ErrMalformedShip(shipId int) error {
	return NewFleetErr(CodeMalformedShip).
		AddDesc(fmt.Sprintf("ship: %d", shipId))
}

func ErrXorYOutOfGridBound(row, column int) error {
	return NewFleetErr(CodeOutOfGridBound).
		AddDesc(fmt.Sprintf("row: %d\tcolumn: %d", row, column))
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrGameFinished(gameUuid string) error {
	return fmt.Errorf("game is already finished, uuid: %s", gameUuid)
}

func ErrNilPayload() error {
	return fmt.Errorf("the payload is nil and is not of type map")
}

func ErrKeyNotExists(key string) error {
	return fmt.Errorf("the key does not exist:\t%s", key)
}

func ErrValueNotInt(value interface{}) error {
	return fmt.Errorf("the value is not of type int:\t%v", value)
}

func ErrCodeOutOfRange(code int) error {
	return fmt.Errorf("the code is out of range:\t%d", code)
}

func ErrInvalidPoint(point []int) error {
	return fmt.Errorf("a point must have exactly two values (row, column):\t%v", point)
}

func ErrEmptyFleet() error {
	return fmt.Errorf("no ships provided and no fleet layout loaded")
}
