package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	mb "github.com/saeidalz13/battleship-board/models/battleship"
	mc "github.com/saeidalz13/battleship-board/models/console"
	"go.uber.org/zap"
)

// testFleet is a legal fleet, the 4-deck ship is on row 0 columns 0 to 3.
var testFleet = [][2][2]int{
	{{0, 0}, {0, 3}},
	{{0, 5}, {0, 7}},
	{{2, 0}, {4, 0}},
	{{2, 2}, {2, 3}},
	{{2, 5}, {2, 6}},
	{{9, 8}, {9, 9}},
	{{6, 6}, {6, 6}},
	{{6, 8}, {6, 8}},
	{{8, 0}, {8, 0}},
	{{9, 5}, {9, 5}},
}

func testSpecs() []mb.ShipSpec {
	specs := make([]mb.ShipSpec, len(testFleet))
	for i, ends := range testFleet {
		specs[i] = mb.NewShipSpec(
			mb.NewCoordinates(ends[0][0], ends[0][1]),
			mb.NewCoordinates(ends[1][0], ends[1][1]),
		)
	}
	return specs
}

type fakeRecorder struct {
	created  []string
	shots    []mb.FireOutcome
	finished []string
}

func (f *fakeRecorder) RecordGameCreated(ctx context.Context, gameUuid string, specs []mb.ShipSpec) error {
	f.created = append(f.created, gameUuid)
	return nil
}

func (f *fakeRecorder) RecordShot(ctx context.Context, gameUuid string, coords mb.Coordinates, outcome mb.FireOutcome) error {
	f.shots = append(f.shots, outcome)
	return nil
}

func (f *fakeRecorder) RecordGameFinished(ctx context.Context, gameUuid string) error {
	f.finished = append(f.finished, gameUuid)
	return nil
}

type respLine struct {
	Code    uint8           `json:"code"`
	Payload json.RawMessage `json:"payload"`
	Error   *mc.RespErr     `json:"error"`
}

func newTestProcessor(t *testing.T) (*RequestProcessor, *fakeRecorder) {
	t.Helper()
	recorder := &fakeRecorder{}
	rp, err := NewRequestProcessor(
		mb.NewBattleshipGameManager(zap.NewNop()),
		zap.NewNop(),
		WithFleet(testSpecs()),
		WithRecorder(recorder),
	)
	if err != nil {
		t.Fatal(err)
	}
	return rp, recorder
}

func process(t *testing.T, rp *RequestProcessor, lines ...string) []respLine {
	t.Helper()
	var out bytes.Buffer
	if err := rp.Process(context.Background(), strings.NewReader(strings.Join(lines, "\n")), &out); err != nil {
		t.Fatal(err)
	}

	var resps []respLine
	decoder := json.NewDecoder(&out)
	for decoder.More() {
		var resp respLine
		if err := decoder.Decode(&resp); err != nil {
			t.Fatal(err)
		}
		resps = append(resps, resp)
	}
	return resps
}

func createGame(t *testing.T, rp *RequestProcessor) string {
	t.Helper()
	resps := process(t, rp, `{"code": 0}`)
	if len(resps) != 1 {
		t.Fatalf("expected responses: %d\tgot: %d", 1, len(resps))
	}
	if resps[0].Error != nil {
		t.Fatalf("create game error: %s", resps[0].Error.ErrorDetails)
	}

	var payload mc.RespCreateGame
	if err := json.Unmarshal(resps[0].Payload, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Ships != len(testFleet) {
		t.Fatalf("expected ships: %d\tgot: %d", len(testFleet), payload.Ships)
	}
	return payload.GameUuid
}

func fireLine(gameUuid string, row, column int) string {
	return fmt.Sprintf(`{"code": %d, "payload": {"game_uuid": %q, "row": %d, "column": %d}}`, mc.CodeFire, gameUuid, row, column)
}

func TestProcessFire(t *testing.T) {
	rp, recorder := newTestProcessor(t)
	gameUuid := createGame(t, rp)

	tests := []struct {
		name            string
		row             int
		column          int
		expectedOutcome mb.FireOutcome
	}{
		{"first deck", 0, 0, mb.FireOutcomeHit},
		{"second deck", 0, 1, mb.FireOutcomeHit},
		{"third deck", 0, 2, mb.FireOutcomeHit},
		{"last deck", 0, 3, mb.FireOutcomeSunk},
		{"water", 5, 5, mb.FireOutcomeMiss},
		{"sunk ship again", 0, 1, mb.FireOutcomeSunk},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resps := process(t, rp, fireLine(gameUuid, test.row, test.column))
			if len(resps) != 1 {
				t.Fatalf("expected responses: %d\tgot: %d", 1, len(resps))
			}
			if resps[0].Code != mc.CodeFire {
				t.Fatalf("expected code: %d\tgot: %d", mc.CodeFire, resps[0].Code)
			}
			if resps[0].Error != nil {
				t.Fatalf("error: %s", resps[0].Error.ErrorDetails)
			}

			var payload mc.RespFire
			if err := json.Unmarshal(resps[0].Payload, &payload); err != nil {
				t.Fatal(err)
			}
			if payload.Outcome != string(test.expectedOutcome) {
				t.Fatalf("expected outcome: %s\tgot: %s", test.expectedOutcome, payload.Outcome)
			}
			if payload.AliveShips != len(testFleet)-1 && test.expectedOutcome != mb.FireOutcomeHit {
				t.Fatalf("expected alive ships: %d\tgot: %d", len(testFleet)-1, payload.AliveShips)
			}

			var expectedSunk []mb.Coordinates
			if test.expectedOutcome == mb.FireOutcomeSunk {
				expectedSunk = mb.NewShip(0, mb.NewCoordinates(0, 0), mb.NewCoordinates(0, 3), false).Coordinates()
			}
			if !reflect.DeepEqual(payload.SunkShipCoords, expectedSunk) {
				t.Fatalf("expected sunk ship coords: %v\tgot: %v", expectedSunk, payload.SunkShipCoords)
			}
		})
	}

	if len(recorder.created) != 1 || recorder.created[0] != gameUuid {
		t.Fatalf("expected created game recorded\tgot: %v", recorder.created)
	}
	if len(recorder.shots) != len(tests) {
		t.Fatalf("expected recorded shots: %d\tgot: %d", len(tests), len(recorder.shots))
	}
}

func TestProcessRender(t *testing.T) {
	rp, _ := newTestProcessor(t)
	gameUuid := createGame(t, rp)

	lines := []string{
		fireLine(gameUuid, 0, 0),
		fireLine(gameUuid, 0, 1),
		fireLine(gameUuid, 0, 2),
		fireLine(gameUuid, 0, 3),
		fmt.Sprintf(`{"code": %d, "payload": {"game_uuid": %q}}`, mc.CodeRender, gameUuid),
	}
	resps := process(t, rp, lines...)
	if len(resps) != len(lines) {
		t.Fatalf("expected responses: %d\tgot: %d", len(lines), len(resps))
	}

	render := resps[len(resps)-1]
	if render.Code != mc.CodeRender {
		t.Fatalf("expected code: %d\tgot: %d", mc.CodeRender, render.Code)
	}

	var payload mc.RespRender
	if err := json.Unmarshal(render.Payload, &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload.Grid) != mb.GridSize {
		t.Fatalf("expected rows: %d\tgot: %d", mb.GridSize, len(payload.Grid))
	}
	for row := range payload.Grid {
		for column, cell := range payload.Grid[row] {
			expected := mb.SymbolUnknown
			if row == 0 && column <= 3 {
				expected = mb.SymbolSunkDeck
			}
			if cell != expected {
				t.Fatalf("cell (%d, %d) expected: %s\tgot: %s", row, column, expected, cell)
			}
		}
	}

	resps = process(t, rp, fmt.Sprintf(`{"code": %d, "payload": {"game_uuid": %q, "revealed": true}}`, mc.CodeRender, gameUuid))
	if err := json.Unmarshal(resps[0].Payload, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Grid[9][5] != mb.SymbolAliveDeck {
		t.Fatalf("expected revealed deck at (9, 5)\tgot: %s", payload.Grid[9][5])
	}
}

func TestProcessEndGame(t *testing.T) {
	rp, recorder := newTestProcessor(t)
	gameUuid := createGame(t, rp)

	var lines []string
	for _, spec := range testSpecs() {
		for _, coords := range mb.NewShip(0, spec.Start, spec.End, false).Coordinates() {
			lines = append(lines, fireLine(gameUuid, coords.Row, coords.Column))
		}
	}

	resps := process(t, rp, lines...)
	if len(resps) != len(lines)+1 {
		t.Fatalf("expected responses: %d\tgot: %d", len(lines)+1, len(resps))
	}

	endGame := resps[len(resps)-1]
	if endGame.Code != mc.CodeEndGame {
		t.Fatalf("expected code: %d\tgot: %d", mc.CodeEndGame, endGame.Code)
	}

	var payload mc.RespEndGame
	if err := json.Unmarshal(endGame.Payload, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Shots != len(lines) || payload.Hits != len(lines) {
		t.Fatalf("expected shots and hits: %d\tgot: %d, %d", len(lines), payload.Shots, payload.Hits)
	}
	if len(recorder.finished) != 1 {
		t.Fatalf("expected finished game recorded\tgot: %v", recorder.finished)
	}

	resps = process(t, rp, fireLine(gameUuid, 5, 5))
	if resps[0].Error == nil {
		t.Fatal("expected error firing at a finished game")
	}

	resps = process(t, rp, fmt.Sprintf(`{"code": %d, "payload": {"game_uuid": %q}}`, mc.CodeQuitGame, gameUuid))
	if resps[0].Code != mc.CodeQuitGame || resps[0].Error != nil {
		t.Fatalf("expected quit game\tgot: %+v", resps[0])
	}

	resps = process(t, rp, fmt.Sprintf(`{"code": %d, "payload": {"game_uuid": %q}}`, mc.CodeRender, gameUuid))
	if resps[0].Error == nil {
		t.Fatal("expected error rendering a deleted game")
	}
}

func TestProcessCreateGameWithShips(t *testing.T) {
	rp, _ := newTestProcessor(t)

	fleet, err := json.Marshal(testFleet)
	if err != nil {
		t.Fatal(err)
	}

	resps := process(t, rp, fmt.Sprintf(`{"code": %d, "payload": {"ships": %s}}`, mc.CodeCreateGame, fleet))
	if resps[0].Error != nil {
		t.Fatalf("error: %s", resps[0].Error.ErrorDetails)
	}

	partial := [][2][2]int{{{0, 0}, {0, 3}}, {{6, 6}, {6, 6}}}
	fleet, err = json.Marshal(partial)
	if err != nil {
		t.Fatal(err)
	}

	resps = process(t, rp, fmt.Sprintf(`{"code": %d, "payload": {"ships": %s}}`, mc.CodeCreateGame, fleet))
	if resps[0].Error == nil {
		t.Fatal("expected error for an invalid fleet")
	}
	if !strings.HasPrefix(resps[0].Error.ErrorDetails, "Invalid number of ships.") {
		t.Fatalf("expected composition error\tgot: %s", resps[0].Error.ErrorDetails)
	}
}

func TestProcessInvalidRequests(t *testing.T) {
	rp, _ := newTestProcessor(t)

	tests := []struct {
		name         string
		line         string
		expectedCode uint8
		expectErr    bool
	}{
		{"not json", `fire 0 0`, mc.CodeInvalidSignal, true},
		{"code absent", `{"payload": {}}`, mc.CodeSignalAbsent, true},
		{"unknown code", `{"code": 200}`, mc.CodeInvalidSignal, false},
		{"code above uint8 range", `{"code": 256}`, mc.CodeInvalidSignal, true},
		{"code wrapping to render", `{"code": 258, "payload": {"game_uuid": "nope"}}`, mc.CodeInvalidSignal, true},
		{"fractional code", `{"code": 1.5}`, mc.CodeInvalidSignal, true},
		{"fire without payload", fmt.Sprintf(`{"code": %d}`, mc.CodeFire), mc.CodeFire, true},
		{"fire unknown game", fireLine("nope", 0, 0), mc.CodeFire, true},
		{"render unknown game", fmt.Sprintf(`{"code": %d, "payload": {"game_uuid": "nope"}}`, mc.CodeRender), mc.CodeRender, true},
		{"quit unknown game", fmt.Sprintf(`{"code": %d, "payload": {"game_uuid": "nope"}}`, mc.CodeQuitGame), mc.CodeQuitGame, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resps := process(t, rp, test.line)
			if len(resps) != 1 {
				t.Fatalf("expected responses: %d\tgot: %d", 1, len(resps))
			}
			if resps[0].Code != test.expectedCode {
				t.Fatalf("expected code: %d\tgot: %d", test.expectedCode, resps[0].Code)
			}
			if (resps[0].Error != nil) != test.expectErr {
				t.Fatalf("expected error: %t\tgot: %+v", test.expectErr, resps[0].Error)
			}
		})
	}
}

func TestProcessFireMalformedCoordinates(t *testing.T) {
	rp, recorder := newTestProcessor(t)
	gameUuid := createGame(t, rp)

	tests := []struct {
		name    string
		payload string
	}{
		{"row and column missing", fmt.Sprintf(`{"game_uuid": %q}`, gameUuid)},
		{"row missing", fmt.Sprintf(`{"game_uuid": %q, "column": 1}`, gameUuid)},
		{"fractional row and column", fmt.Sprintf(`{"game_uuid": %q, "row": 0.9, "column": 1.7}`, gameUuid)},
		{"game uuid missing", `{"row": 0, "column": 0}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resps := process(t, rp, fmt.Sprintf(`{"code": %d, "payload": %s}`, mc.CodeFire, test.payload))
			if len(resps) != 1 {
				t.Fatalf("expected responses: %d\tgot: %d", 1, len(resps))
			}
			if resps[0].Code != mc.CodeFire || resps[0].Error == nil {
				t.Fatalf("expected fire error\tgot: %+v", resps[0])
			}
		})
	}

	if len(recorder.shots) != 0 {
		t.Fatalf("expected recorded shots: %d\tgot: %d", 0, len(recorder.shots))
	}

	resps := process(t, rp, fmt.Sprintf(`{"code": %d, "payload": {"game_uuid": %q}}`, mc.CodeQuitGame, gameUuid))
	var payload mc.RespEndGame
	if err := json.Unmarshal(resps[0].Payload, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Shots != 0 {
		t.Fatalf("expected shots: %d\tgot: %d", 0, payload.Shots)
	}
}

func TestProcessStopsOnCancel(t *testing.T) {
	rp, _ := newTestProcessor(t)

	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- rp.Process(ctx, pr, io.Discard)
	}()

	if _, err := io.WriteString(pw, `{"code": 0}`+"\n"); err != nil {
		t.Fatal(err)
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected: %v\tgot: %v", context.Canceled, err)
		}
	case <-time.After(time.Second):
		t.Fatal("Process did not return after the context was canceled")
	}
}

func TestProcessLongLine(t *testing.T) {
	rp, _ := newTestProcessor(t)

	padding := strings.Repeat(" ", 100*1024)
	resps := process(t, rp, `{"code": 0,`+padding+`"payload": {}}`, `{"code": 0}`)
	if len(resps) != 2 {
		t.Fatalf("expected responses: %d\tgot: %d", 2, len(resps))
	}
	for _, resp := range resps {
		if resp.Code != mc.CodeCreateGame || resp.Error != nil {
			t.Fatalf("expected game created\tgot: %+v", resp)
		}
	}

	var out bytes.Buffer
	tooLong := `{"code": 0,` + strings.Repeat(" ", MaxRequestSize) + `}`
	if err := rp.Process(context.Background(), strings.NewReader(tooLong), &out); err == nil {
		t.Fatal("expected error for a line above the request size limit")
	}
}

func TestNewRequestProcessorInvalidFleet(t *testing.T) {
	specs := testSpecs()[:3]
	if _, err := NewRequestProcessor(mb.NewBattleshipGameManager(zap.NewNop()), zap.NewNop(), WithFleet(specs)); err == nil {
		t.Fatal("expected error for an invalid default fleet")
	}
}

func TestProcessWithoutFleet(t *testing.T) {
	rp, err := NewRequestProcessor(mb.NewBattleshipGameManager(zap.NewNop()), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	resps := process(t, rp, `{"code": 0}`)
	if resps[0].Error == nil {
		t.Fatal("expected error without ships and without a loaded fleet")
	}
}

func TestHostIpNet(t *testing.T) {
	ipNet, err := HostIpNet()
	if err != nil {
		t.Fatal(err)
	}
	if ipNet.IP.To4() == nil {
		t.Fatalf("expected an IPv4 address\tgot: %v", ipNet.IP)
	}
}
