package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/netgrowth/fitting"
)

type params struct {
	N       int     `yaml:"n"`
	M       int     `yaml:"m,omitempty"`
	P       float64 `yaml:"p,omitempty"`
	Steps   int     `yaml:"steps,omitempty"`
	Pattern string  `yaml:"pattern,omitempty"`
	Seed    int64   `yaml:"seed"`
}

type fitReport struct {
	A      float64 `yaml:"a"`
	B      float64 `yaml:"b"`
	Gamma  float64 `yaml:"gamma"`
	SSE    float64 `yaml:"sse"`
	Points int     `yaml:"points"`
	Error  string  `yaml:"error,omitempty"`
}

// report is the YAML document printed by the run command.
type report struct {
	RunID             string         `yaml:"run_id"`
	Model             string         `yaml:"model"`
	Params            params         `yaml:"params"`
	Nodes             int            `yaml:"nodes"`
	Edges             int            `yaml:"edges"`
	Kinds             map[string]int `yaml:"kinds,omitempty"`
	SkippedDuplicates int            `yaml:"skipped_duplicates,omitempty"`
	Components        int            `yaml:"components"`
	LargestComponent  int            `yaml:"largest_component"`
	Distribution      fitReport      `yaml:"degree_distribution"`
	Correlation       fitReport      `yaml:"degree_correlation"`
	Plots             []string       `yaml:"plots,omitempty"`
}

func newFitReport(law fitting.PowerLaw, s fitting.Series, err error) fitReport {
	if err != nil {
		return fitReport{Points: s.Len(), Error: err.Error()}
	}

	return fitReport{A: law.A, B: law.B, Gamma: law.Gamma(), SSE: law.SSE, Points: s.Len()}
}

func (r *report) write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return enc.Close()
}
