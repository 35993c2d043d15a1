package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/saeidalz13/battleship-board/db/sqlc"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
	mc "github.com/saeidalz13/battleship-board/models/console"
	"go.uber.org/zap"
)

// GameRecorder keeps a history of the games. *sqlc.GameRecordManager implements it.
type GameRecorder interface {
	RecordGameCreated(ctx context.Context, gameUuid string, specs []mb.ShipSpec) error
	RecordShot(ctx context.Context, gameUuid string, coords mb.Coordinates, outcome mb.FireOutcome) error
	RecordGameFinished(ctx context.Context, gameUuid string) error
}

var _ GameRecorder = (*sqlc.GameRecordManager)(nil)

type RequestProcessor struct {
	gameManager mb.GameManager
	recorder    GameRecorder
	fleet       []mb.ShipSpec
	logger      *zap.Logger
}

type Option func(*RequestProcessor) error

func NewRequestProcessor(gameManager mb.GameManager, logger *zap.Logger, optFuncs ...Option) (*RequestProcessor, error) {
	rp := &RequestProcessor{
		gameManager: gameManager,
		logger:      logger,
	}
	for _, opt := range optFuncs {
		if err := opt(rp); err != nil {
			return nil, err
		}
	}
	return rp, nil
}

// WithFleet sets the layout used by create game requests that carry no ships.
// The layout is validated right away.
func WithFleet(specs []mb.ShipSpec) Option {
	return func(rp *RequestProcessor) error {
		if _, err := mb.NewBoard(specs); err != nil {
			return err
		}
		rp.fleet = specs
		return nil
	}
}

func WithRecorder(recorder GameRecorder) Option {
	return func(rp *RequestProcessor) error {
		rp.recorder = recorder
		return nil
	}
}

// MaxRequestSize bounds a single request line.
const MaxRequestSize = 1 << 20

// Process answers every request line read from r until r is exhausted or
// ctx is done. Each response is written to w as one JSON line.
// Process returns as soon as ctx is done, even while a read is pending.
func (rp *RequestProcessor) Process(ctx context.Context, r io.Reader, w io.Writer) error {
	lines := make(chan []byte)
	scanErr := make(chan error, 1)
	go scanLines(ctx, r, lines, scanErr)

	encoder := json.NewEncoder(w)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			for _, resp := range rp.handleRequest(ctx, line) {
				if err := encoder.Encode(resp); err != nil {
					return err
				}
			}
		}
	}
}

// scanLines sends the non blank lines of r on lines, then closes it after
// putting the read error, if any, on scanErr.
func scanLines(ctx context.Context, r io.Reader, lines chan<- []byte, scanErr chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxRequestSize)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		select {
		case lines <- bytes.Clone(line):
		case <-ctx.Done():
			scanErr <- ctx.Err()
			return
		}
	}
	scanErr <- scanner.Err()
}

func (rp *RequestProcessor) handleRequest(ctx context.Context, line []byte) []interface{} {
	req, err := mc.ParseRequest(line)
	if err != nil {
		rp.logger.Warn("invalid request", zap.ByteString("line", line), zap.Error(err))
		resp := mc.NewMessage[mc.NoPayload](req.Code)
		resp.AddError(err.Error(), cerr.ConstErrInvalidSignal)
		return []interface{}{resp}
	}

	switch req.Code {
	case mc.CodeCreateGame:
		return []interface{}{rp.handleCreateGame(ctx, req)}

	case mc.CodeFire:
		return rp.handleFire(ctx, req)

	case mc.CodeRender:
		return []interface{}{rp.handleRender(req)}

	case mc.CodeQuitGame:
		return []interface{}{rp.handleQuitGame(req)}

	default:
		rp.logger.Warn("unknown code", zap.Uint8("code", req.Code))
		return []interface{}{mc.NewSignal(mc.CodeInvalidSignal)}
	}
}

func (rp *RequestProcessor) handleCreateGame(ctx context.Context, req mc.Request) mc.Message[mc.RespCreateGame] {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)

	specs := rp.fleet
	if req.Payload != nil {
		reqCreateGame, err := mc.DecodePayload[mc.ReqCreateGame](req.Payload)
		if err != nil {
			resp.AddError(err.Error(), cerr.ConstErrCreateGameFailed)
			return resp
		}

		if len(reqCreateGame.Ships) != 0 {
			if specs, err = reqCreateGame.ShipSpecs(); err != nil {
				resp.AddError(err.Error(), cerr.ConstErrCreateGameFailed)
				return resp
			}
		}
	}

	if len(specs) == 0 {
		resp.AddError(cerr.ErrEmptyFleet().Error(), cerr.ConstErrCreateGameFailed)
		return resp
	}

	game, err := rp.gameManager.CreateGame(specs)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrCreateGameFailed)
		return resp
	}

	rp.record(ctx, "game created", func(ctx context.Context) error {
		return rp.recorder.RecordGameCreated(ctx, game.Uuid, specs)
	})

	resp.AddPayload(mc.RespCreateGame{GameUuid: game.Uuid, Ships: len(specs)})
	return resp
}

// handleFire answers with the outcome, followed by an end game message
// when the shot sank the last ship.
func (rp *RequestProcessor) handleFire(ctx context.Context, req mc.Request) []interface{} {
	resp := mc.NewMessage[mc.RespFire](mc.CodeFire)

	reqFire, err := mc.DecodePayload[mc.ReqFire](req.Payload, "game_uuid", "row", "column")
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrFireFailed)
		return []interface{}{resp}
	}

	game, err := rp.gameManager.GetGame(reqFire.GameUuid)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrFireFailed)
		return []interface{}{resp}
	}

	coords := reqFire.Coordinates()
	outcome, err := game.Fire(coords)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrFireFailed)
		return []interface{}{resp}
	}

	rp.record(ctx, "shot", func(ctx context.Context) error {
		return rp.recorder.RecordShot(ctx, game.Uuid, coords, outcome)
	})

	respFire := mc.RespFire{
		Row:        coords.Row,
		Column:     coords.Column,
		Outcome:    string(outcome),
		AliveShips: game.Board.AliveShips(),
	}
	if outcome == mb.FireOutcomeSunk {
		if ship, prs := game.Board.ShipAt(coords); prs {
			respFire.SunkShipCoords = ship.Coordinates()
		}
	}
	resp.AddPayload(respFire)

	if !game.IsFinished() {
		return []interface{}{resp}
	}

	rp.logger.Info("game finished", zap.String("game_uuid", game.Uuid), zap.Int("shots", game.Shots))
	rp.record(ctx, "game finished", func(ctx context.Context) error {
		return rp.recorder.RecordGameFinished(ctx, game.Uuid)
	})

	endGame := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
	endGame.AddPayload(mc.RespEndGame{GameUuid: game.Uuid, Shots: game.Shots, Hits: game.Hits})
	return []interface{}{resp, endGame}
}

func (rp *RequestProcessor) handleRender(req mc.Request) mc.Message[mc.RespRender] {
	resp := mc.NewMessage[mc.RespRender](mc.CodeRender)

	reqRender, err := mc.DecodePayload[mc.ReqRender](req.Payload, "game_uuid")
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrRenderFailed)
		return resp
	}

	game, err := rp.gameManager.GetGame(reqRender.GameUuid)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrRenderFailed)
		return resp
	}

	grid := game.Board.Render()
	if reqRender.Revealed {
		grid = game.Board.RenderRevealed()
	}
	rp.logger.Debug("render", zap.String("game_uuid", game.Uuid), zap.String("grid", grid.String()))

	resp.AddPayload(mc.RespRender{Grid: grid.Rows()})
	return resp
}

func (rp *RequestProcessor) handleQuitGame(req mc.Request) mc.Message[mc.RespEndGame] {
	resp := mc.NewMessage[mc.RespEndGame](mc.CodeQuitGame)

	reqQuitGame, err := mc.DecodePayload[mc.ReqQuitGame](req.Payload, "game_uuid")
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrQuitGameFailed)
		return resp
	}

	game, err := rp.gameManager.GetGame(reqQuitGame.GameUuid)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrQuitGameFailed)
		return resp
	}
	rp.gameManager.DeleteGame(game.Uuid)

	resp.AddPayload(mc.RespEndGame{GameUuid: game.Uuid, Shots: game.Shots, Hits: game.Hits})
	return resp
}

// record runs fn against the recorder when one is set. Store failures are
// logged and never change the answer sent back.
func (rp *RequestProcessor) record(ctx context.Context, what string, fn func(ctx context.Context) error) {
	if rp.recorder == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		rp.logger.Error("failed to record "+what, zap.Error(err))
	}
}
