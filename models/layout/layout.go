// Package layout reads fleet layouts from YAML files.
//
//	ships:
//	  - start: [0, 0]
//	    end: [0, 3]
//	  - start: [6, 6]
//	    end: [6, 6]
package layout

import (
	"fmt"
	"os"

	mb "github.com/saeidalz13/battleship-board/models/battleship"
	"gopkg.in/yaml.v2"
)

type RawYamlShip struct {
	Start   []int `yaml:"start"`
	End     []int `yaml:"end"`
	Drowned bool  `yaml:"drowned"`
}

type RawYamlLayout struct {
	Ships []RawYamlShip `yaml:"ships"`
}

func Load(path string) ([]mb.ShipSpec, error) {
	layoutFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout %s: %w", path, err)
	}
	return Parse(layoutFile)
}

func Parse(data []byte) ([]mb.ShipSpec, error) {
	var rawLayout RawYamlLayout
	if err := yaml.UnmarshalStrict(data, &rawLayout); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	specs := make([]mb.ShipSpec, 0, len(rawLayout.Ships))
	for _, raw := range rawLayout.Ships {
		spec, err := raw.ShipSpec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (r RawYamlShip) ShipSpec() (mb.ShipSpec, error) {
	start, err := mb.PointToCoordinates(r.Start)
	if err != nil {
		return mb.ShipSpec{}, err
	}
	end, err := mb.PointToCoordinates(r.End)
	if err != nil {
		return mb.ShipSpec{}, err
	}

	return mb.ShipSpec{Start: start, End: end, IsDrowned: r.Drowned}, nil
}
