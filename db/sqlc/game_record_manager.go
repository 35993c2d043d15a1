package sqlc

import (
	"context"
	"encoding/json"

	mb "github.com/saeidalz13/battleship-board/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

// GameRecordManager stores what happened in every game played on this host.
type GameRecordManager struct {
	queries     Querier
	serverIpNet pqtype.Inet
}

func NewGameRecordManager(queries Querier, serverIpNet pqtype.Inet) *GameRecordManager {
	return &GameRecordManager{queries: queries, serverIpNet: serverIpNet}
}

// GameRecord is a stored game with its fleet decoded and its shots in order.
type GameRecord struct {
	Game
	Specs     []mb.ShipSpec
	ShotsList []Shot
}

type fleetShip struct {
	Start   [2]int `json:"start"`
	End     [2]int `json:"end"`
	Drowned bool   `json:"drowned"`
}

// FleetJSON encodes ships as {"start": [row, column], "end": [row, column], "drowned": bool}.
func FleetJSON(specs []mb.ShipSpec) (pqtype.NullRawMessage, error) {
	fleet := make([]fleetShip, len(specs))
	for i, spec := range specs {
		fleet[i] = fleetShip{
			Start:   [2]int{spec.Start.Row, spec.Start.Column},
			End:     [2]int{spec.End.Row, spec.End.Column},
			Drowned: spec.IsDrowned,
		}
	}

	raw, err := json.Marshal(fleet)
	if err != nil {
		return pqtype.NullRawMessage{}, err
	}
	return pqtype.NullRawMessage{RawMessage: raw, Valid: true}, nil
}

func ParseFleetJSON(fleet pqtype.NullRawMessage) ([]mb.ShipSpec, error) {
	if !fleet.Valid {
		return nil, nil
	}

	var ships []fleetShip
	if err := json.Unmarshal(fleet.RawMessage, &ships); err != nil {
		return nil, err
	}

	specs := make([]mb.ShipSpec, len(ships))
	for i, ship := range ships {
		specs[i] = mb.NewShipSpec(
			mb.NewCoordinates(ship.Start[0], ship.Start[1]),
			mb.NewCoordinates(ship.End[0], ship.End[1]),
		)
		specs[i].IsDrowned = ship.Drowned
	}
	return specs, nil
}

func (g *GameRecordManager) RecordGameCreated(ctx context.Context, gameUuid string, specs []mb.ShipSpec) error {
	fleet, err := FleetJSON(specs)
	if err != nil {
		return err
	}

	if err := g.queries.CreateGame(ctx, CreateGameParams{GameUuid: gameUuid, Fleet: fleet}); err != nil {
		return err
	}
	return g.queries.IncrementGamesCreatedCount(ctx, g.serverIpNet)
}

func (g *GameRecordManager) RecordShot(ctx context.Context, gameUuid string, coords mb.Coordinates, outcome mb.FireOutcome) error {
	err := g.queries.RecordShot(ctx, RecordShotParams{
		GameUuid: gameUuid,
		RowIdx:   int32(coords.Row),
		ColIdx:   int32(coords.Column),
		Outcome:  string(outcome),
	})
	if err != nil {
		return err
	}
	return g.queries.IncrementGameShots(ctx, gameUuid)
}

func (g *GameRecordManager) RecordGameFinished(ctx context.Context, gameUuid string) error {
	return g.queries.FinishGame(ctx, gameUuid)
}

func (g *GameRecordManager) GetGame(ctx context.Context, gameUuid string) (GameRecord, error) {
	game, err := g.queries.GetGame(ctx, gameUuid)
	if err != nil {
		return GameRecord{}, err
	}

	specs, err := ParseFleetJSON(game.Fleet)
	if err != nil {
		return GameRecord{}, err
	}

	shots, err := g.queries.ListShots(ctx, gameUuid)
	if err != nil {
		return GameRecord{}, err
	}
	return GameRecord{Game: game, Specs: specs, ShotsList: shots}, nil
}

func (g *GameRecordManager) GetGamesCreatedCount(ctx context.Context) (int64, error) {
	analytics, err := g.queries.GetServerAnalytics(ctx, g.serverIpNet)
	if err != nil {
		return 0, err
	}
	return analytics.GamesCreated, nil
}

func (g *GameRecordManager) GetShotCount(ctx context.Context, gameUuid string) (int64, error) {
	return g.queries.GetShotCount(ctx, gameUuid)
}
