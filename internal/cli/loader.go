package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/TrevorS/clique"
)

// FileConfig is the YAML config file layout. Absent keys keep the defaults.
type FileConfig struct {
	Xsi     *int     `yaml:"xsi"`
	Tau     *float64 `yaml:"tau"`
	Prune   *bool    `yaml:"prune"`
	Workers *int     `yaml:"workers"`
}

// LoadConfigFile reads a YAML config file. Unknown keys are rejected.
func LoadConfigFile(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fc FileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &fc, nil
}

// Apply copies the values present in fc onto cfg.
func (fc *FileConfig) Apply(cfg *clique.Config) {
	if fc.Xsi != nil {
		cfg.Xsi = *fc.Xsi
	}
	if fc.Tau != nil {
		cfg.Tau = *fc.Tau
	}
	if fc.Prune != nil {
		cfg.Prune = *fc.Prune
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
}

// LoadPoints reads numeric CSV rows from r. A first row that does not parse
// as numbers is taken as a header. Empty cells are read as NaN. Point ids are
// the 0-based data row numbers.
func LoadPoints(r io.Reader) (points []clique.Point, header []string, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	for row := 0; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		vec, perr := parseRecord(record)
		if perr != nil {
			if row == 0 {
				header = record
				continue
			}
			line, _ := cr.FieldPos(0)
			return nil, nil, fmt.Errorf("line %d: %w", line, perr)
		}
		points = append(points, clique.Point{ID: len(points), Vector: vec})
	}
	return points, header, nil
}

func parseRecord(record []string) ([]float64, error) {
	vec := make([]float64, len(record))
	for i, field := range record {
		field = strings.TrimSpace(field)
		if field == "" {
			vec[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		vec[i] = v
	}
	return vec, nil
}
