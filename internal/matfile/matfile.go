// SPDX-License-Identifier: MIT
// Package matfile reads and writes matrices as small YAML documents:
//
//	rows:
//	  - [1, 2]
//	  - [3, 4]
//
// Rows are emitted in flow style so a document stays readable as a grid.
// Non-finite values use the YAML spellings .nan, .inf and -.inf.
package matfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/lvmatrix/matrix"
	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when a document has no rows key or no rows.
var ErrEmptyDocument = errors.New("matfile: document has no rows")

// Row is one matrix row. It marshals as a flow sequence.
type Row []float64

// Document is the on-disk shape of a matrix.
type Document struct {
	Rows []Row `yaml:"rows"`
}

// MarshalYAML renders r as [a, b, c].
func (r Row) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range r {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: formatFloat(v)})
	}

	return n, nil
}

func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Decode reads one document from r and builds a Dense from it.
// Unknown keys are rejected. Ragged rows surface as matrix.ErrDimensionMismatch.
func Decode(r io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("matfile: parse: %w", err)
	}
	if len(doc.Rows) == 0 {
		return nil, ErrEmptyDocument
	}

	rows := make([][]float64, len(doc.Rows))
	for i, row := range doc.Rows {
		rows[i] = row
	}
	m, err := matrix.NewDenseFrom(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("matfile: %w", err)
	}

	return m, nil
}

// Load opens path and decodes it.
func Load(path string, opts ...matrix.Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matfile: open: %w", err)
	}
	defer f.Close()

	m, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Encode writes m to w as a document.
func Encode(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateUsable(m); err != nil {
		return fmt.Errorf("matfile: %w", err)
	}

	doc := Document{Rows: make([]Row, m.Rows())}
	var i, j int
	var err error
	for i = 0; i < m.Rows(); i++ {
		doc.Rows[i] = make(Row, m.Cols())
		for j = 0; j < m.Cols(); j++ {
			if doc.Rows[i][j], err = m.At(i, j); err != nil {
				return fmt.Errorf("matfile: %w", err)
			}
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("matfile: encode: %w", err)
	}

	return enc.Close()
}

// Save writes m to path, replacing any existing file.
func Save(path string, m matrix.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matfile: create: %w", err)
	}
	if err = Encode(f, m); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
