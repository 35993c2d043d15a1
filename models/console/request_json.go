package console

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

// ReqCreateGame holds ships as [[startRow, startColumn], [endRow, endColumn]].
// An empty list asks for the layout loaded at startup.
type ReqCreateGame struct {
	Ships [][][]int `mapstructure:"ships"`
}

type ReqFire struct {
	GameUuid string `mapstructure:"game_uuid"`
	Row      int    `mapstructure:"row"`
	Column   int    `mapstructure:"column"`
}

func (r ReqFire) Coordinates() mb.Coordinates {
	return mb.NewCoordinates(r.Row, r.Column)
}

type ReqRender struct {
	GameUuid string `mapstructure:"game_uuid"`
	Revealed bool   `mapstructure:"revealed"`
}

type ReqQuitGame struct {
	GameUuid string `mapstructure:"game_uuid"`
}

// Request is one incoming line before its payload is decoded.
type Request struct {
	Code    uint8
	Payload map[string]interface{}
}

// ParseRequest reads the code of one line. On error the returned request
// carries CodeSignalAbsent or CodeInvalidSignal, the code to answer with.
func ParseRequest(line []byte) (Request, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(line, &raw); err != nil {
		return Request{Code: CodeInvalidSignal}, fmt.Errorf("invalid request json: %w", err)
	}

	rawCode, prs := raw["code"]
	if !prs {
		return Request{Code: CodeSignalAbsent}, cerr.ErrKeyNotExists("code")
	}

	var code int
	if err := decode(rawCode, &code); err != nil {
		return Request{Code: CodeInvalidSignal}, fmt.Errorf("invalid code: %w", err)
	}
	if code < 0 || code > math.MaxUint8 {
		return Request{Code: CodeInvalidSignal}, cerr.ErrCodeOutOfRange(code)
	}

	req := Request{Code: uint8(code)}
	if payload, ok := raw["payload"].(map[string]interface{}); ok {
		req.Payload = payload
	}
	return req, nil
}

// DecodePayload fails when one of the required keys is missing, so an
// absent row is never read as row 0.
func DecodePayload[T any](payload map[string]interface{}, required ...string) (T, error) {
	var v T
	if payload == nil {
		return v, cerr.ErrNilPayload()
	}
	for _, key := range required {
		if _, prs := payload[key]; !prs {
			return v, cerr.ErrKeyNotExists(key)
		}
	}

	if err := decode(payload, &v); err != nil {
		return v, fmt.Errorf("decode payload: %w", err)
	}
	return v, nil
}

func decode(input, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: integralFloatHook,
		Result:     output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// JSON numbers arrive as float64. Only whole ones may become integers.
func integralFloatHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Float64 {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f := data.(float64)
		if math.Trunc(f) != f {
			return nil, cerr.ErrValueNotInt(f)
		}
	}
	return data, nil
}

func (r ReqCreateGame) ShipSpecs() ([]mb.ShipSpec, error) {
	specs := make([]mb.ShipSpec, 0, len(r.Ships))
	for _, ends := range r.Ships {
		if len(ends) != 2 {
			return nil, fmt.Errorf("a ship needs a start and an end point: %v", ends)
		}
		start, err := mb.PointToCoordinates(ends[0])
		if err != nil {
			return nil, err
		}
		end, err := mb.PointToCoordinates(ends[1])
		if err != nil {
			return nil, err
		}
		specs = append(specs, mb.NewShipSpec(start, end))
	}
	return specs, nil
}
