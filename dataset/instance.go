// Package dataset - YAML instance files.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cflp"
)

// ErrDecode indicates a syntactically invalid instance file.
var ErrDecode = errors.New("dataset: cannot decode instance")

// ErrEncode indicates a failed instance serialization.
var ErrEncode = errors.New("dataset: cannot encode instance")

// Instance is the serialized form of a CFLP problem. Field semantics match
// cflp.NewProblem; MaxOpen is an optional recommended cap carried with the
// data (0 means "not specified").
type Instance struct {
	Name         string      `yaml:"name,omitempty"`
	FixedCost    []float64   `yaml:"fixed_cost"`
	VariableCost [][]float64 `yaml:"variable_cost"`
	Capacity     []int       `yaml:"capacity"`
	Demand       []int       `yaml:"demand"`
	MaxOpen      int         `yaml:"max_open,omitempty"`
}

// Problem validates the instance and returns the immutable core value.
// All shape and value checks are cflp.NewProblem's; this method adds none.
func (in *Instance) Problem() (*cflp.Problem, error) {
	return cflp.NewProblem(in.FixedCost, in.VariableCost, in.Capacity, in.Demand)
}

// Decode reads one YAML instance from r.
func Decode(r io.Reader) (*Instance, error) {
	var in Instance
	if err := yaml.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &in, nil
}

// Encode writes the instance to w as YAML.
func Encode(w io.Writer, in *Instance) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return enc.Close()
}

// Load reads an instance file from disk.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Save writes an instance file to disk, truncating any previous content.
func Save(path string, in *Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err = Encode(f, in); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
