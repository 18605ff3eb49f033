// SPDX-License-Identifier: MIT

package modelfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/dywu101/deeptb/builder"
	"github.com/dywu101/deeptb/hamiltonian"
	"github.com/dywu101/deeptb/orbital"
)

// Default k-path density, points per segment.
const DefaultDensity = 20

// Radial models of PairParams.
const (
	ModelConstant = "constant"
	ModelPowerLaw = "powerlaw"
)

// File is the decoded model file.
type File struct {
	Unit          string                `yaml:"unit"`
	Orbitals      map[string][]string   `yaml:"orbitals"`
	Crystal       Crystal               `yaml:"crystal"`
	Cutoff        float64               `yaml:"cutoff"`
	StrainCutoff  float64               `yaml:"strain_cutoff"`
	TimeReversal  *bool                 `yaml:"time_reversal"`
	Onsite        map[string][]float64  `yaml:"onsite"`
	OnsiteOverlap map[string][]float64  `yaml:"onsite_overlap"`
	SOC           map[string][]float64  `yaml:"soc"`
	Hoppings      map[string]PairParams `yaml:"hoppings"`
	Overlaps      map[string]PairParams `yaml:"overlaps"`
	Strain        map[string]PairParams `yaml:"strain"`
	KPath         *KPath                `yaml:"kpath"`
	KMesh         []int                 `yaml:"kmesh"`
}

// Crystal is either a preset (dimer, chain, square, honeycomb) with its
// species and characteristic length, or an explicit cell with sites.
type Crystal struct {
	Preset     string      `yaml:"preset"`
	Species    []string    `yaml:"species"`
	Length     float64     `yaml:"length"`
	Cell       [][]float64 `yaml:"cell"`
	Periodic   []bool      `yaml:"periodic"`
	Sites      []Site      `yaml:"sites"`
	Fractional bool        `yaml:"fractional"`
}

// Site is one explicit atomic site.
type Site struct {
	Symbol string    `yaml:"symbol"`
	Pos    []float64 `yaml:"pos"`
}

// PairParams are the SK parameters of one ordered type pair. Values maps
// "<shell>-<shell>" to the σ, π, δ integrals at distance R0 (model
// powerlaw) or at any distance (model constant, the default).
type PairParams struct {
	Model  string               `yaml:"model"`
	R0     float64              `yaml:"r0"`
	Eta    float64              `yaml:"eta"`
	Values map[string][]float64 `yaml:"values"`
}

// KPath is a labelled line path. Points overrides the preset's
// high-symmetry table.
type KPath struct {
	Labels  []string             `yaml:"labels"`
	Points  map[string][]float64 `yaml:"points"`
	Density int                  `yaml:"density"`
}

// Load reads and parses the model file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a model file, rejecting unknown keys, fills defaults and
// validates it.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Parse: empty document: %w", ErrInvalid)
		}
		return nil, fmt.Errorf("Parse: %v: %w", err, ErrInvalid)
	}
	if f.Cutoff == 0 {
		f.Cutoff = builder.DefaultCutoff
	}
	if f.KPath != nil && f.KPath.Density == 0 {
		f.KPath.Density = DefaultDensity
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	return &f, nil
}

func (f *File) validate() error {
	if _, err := f.EnergyUnit(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalid)
	}
	if len(f.Orbitals) == 0 {
		return fmt.Errorf("no orbitals: %w", ErrInvalid)
	}
	if f.Cutoff < 0 || f.StrainCutoff < 0 {
		return fmt.Errorf("negative cutoff: %w", ErrInvalid)
	}
	if len(f.Hoppings) == 0 {
		return fmt.Errorf("no hoppings: %w", ErrInvalid)
	}
	for _, tables := range []map[string]PairParams{f.Hoppings, f.Overlaps, f.Strain} {
		for key, p := range tables {
			switch p.Model {
			case "", ModelConstant:
			case ModelPowerLaw:
				if !(p.R0 > 0) {
					return fmt.Errorf("%s: powerlaw needs r0 > 0: %w", key, ErrInvalid)
				}
			default:
				return fmt.Errorf("%s: unknown model %q: %w", key, p.Model, ErrInvalid)
			}
		}
	}
	if f.KPath != nil && f.KMesh != nil {
		return fmt.Errorf("kpath and kmesh are exclusive: %w", ErrInvalid)
	}
	if f.KMesh != nil && len(f.KMesh) != 3 {
		return fmt.Errorf("kmesh needs 3 values: %w", ErrInvalid)
	}
	return nil
}

// EnergyUnit parses Unit; empty means Hartree.
func (f *File) EnergyUnit() (hamiltonian.Unit, error) {
	if f.Unit == "" {
		return hamiltonian.Hartree, nil
	}
	return hamiltonian.ParseUnit(f.Unit)
}

// Layouts builds the orbital layouts per atom type.
func (f *File) Layouts() (map[string]orbital.Layout, error) {
	out := make(map[string]orbital.Layout, len(f.Orbitals))
	for _, typ := range sortedKeys(f.Orbitals) {
		l, err := orbital.NewLayout(f.Orbitals[typ]...)
		if err != nil {
			return nil, fmt.Errorf("Layouts: %s: %w", typ, err)
		}
		out[typ] = l
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
