package console

import mb "github.com/saeidalz13/battleship-board/models/battleship"

type RespCreateGame struct {
	GameUuid string `json:"game_uuid"`
	Ships    int    `json:"ships"`
}

type RespFire struct {
	Row        int    `json:"row"`
	Column     int    `json:"column"`
	Outcome    string `json:"outcome"`
	AliveShips int    `json:"alive_ships"`

	// set only when the shot sank a ship
	SunkShipCoords []mb.Coordinates `json:"sunk_ship_coords,omitempty"`
}

type RespRender struct {
	Grid [][]string `json:"grid"`
}

type RespEndGame struct {
	GameUuid string `json:"game_uuid"`
	Shots    int    `json:"shots"`
	Hits     int    `json:"hits"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
