package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/TrevorS/clique"
)

// Report is the serialized result of a clustering run.
type Report struct {
	Points     int             `json:"points" yaml:"points"`
	Dimensions int             `json:"dimensions" yaml:"dimensions"`
	Columns    []string        `json:"columns,omitempty" yaml:"columns,omitempty"`
	Config     ReportConfig    `json:"config" yaml:"config"`
	Levels     []LevelReport   `json:"levels" yaml:"levels"`
	Clusters   []ClusterReport `json:"clusters" yaml:"clusters"`
}

// ReportConfig echoes the effective clustering parameters.
type ReportConfig struct {
	Xsi   int     `json:"xsi" yaml:"xsi"`
	Tau   float64 `json:"tau" yaml:"tau"`
	Prune bool    `json:"prune" yaml:"prune"`
}

// LevelReport summarizes one dimensionality level.
type LevelReport struct {
	Dimensionality int `json:"dimensionality" yaml:"dimensionality"`
	Candidates     int `json:"candidates" yaml:"candidates"`
	Retained       int `json:"retained" yaml:"retained"`
	Clusters       int `json:"clusters" yaml:"clusters"`
}

// ClusterReport is one subspace cluster with its centroid.
type ClusterReport struct {
	Dims     []int        `json:"dims" yaml:"dims,flow"`
	Size     int          `json:"size" yaml:"size"`
	Centroid []Coordinate `json:"centroid" yaml:"centroid,flow"`
	IDs      []int        `json:"ids" yaml:"ids,flow"`
}

// Coordinate is one centroid value. A dimension without any observed value
// is NaN and is written as null in JSON.
type Coordinate float64

// MarshalJSON implements json.Marshaler.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	f := float64(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func coordinates(v []float64) []Coordinate {
	if v == nil {
		return nil
	}
	out := make([]Coordinate, len(v))
	for i, f := range v {
		out[i] = Coordinate(f)
	}
	return out
}

// NewReport builds a Report from a clustering result over points.
func NewReport(points []clique.Point, columns []string, cfg clique.Config, res *clique.Result) *Report {
	r := &Report{
		Points:   res.Total,
		Columns:  columns,
		Config:   ReportConfig{Xsi: cfg.Xsi, Tau: cfg.Tau, Prune: cfg.Prune},
		Levels:   make([]LevelReport, 0, len(res.Levels)),
		Clusters: make([]ClusterReport, 0, len(res.Clusters)),
	}
	if len(points) > 0 {
		r.Dimensions = len(points[0].Vector)
	}
	for _, l := range res.Levels {
		r.Levels = append(r.Levels, LevelReport{
			Dimensionality: l.Dimensionality,
			Candidates:     l.Candidates,
			Retained:       l.Retained,
			Clusters:       l.Clusters,
		})
	}
	for _, c := range res.Clusters {
		r.Clusters = append(r.Clusters, ClusterReport{
			Dims:     c.Dims,
			Size:     len(c.IDs),
			Centroid: coordinates(clique.Centroid(points, c)),
			IDs:      c.IDs,
		})
	}
	return r
}

// WriteReport writes r to w in the given format.
func WriteReport(w io.Writer, format string, r *Report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return writeText(w, r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintf(w, "points: %d, dimensions: %d, xsi: %d, tau: %g, prune: %t\n",
		r.Points, r.Dimensions, r.Config.Xsi, r.Config.Tau, r.Config.Prune); err != nil {
		return err
	}
	for _, l := range r.Levels {
		if _, err := fmt.Fprintf(w, "level %d: candidates=%d retained=%d clusters=%d\n",
			l.Dimensionality, l.Candidates, l.Retained, l.Clusters); err != nil {
			return err
		}
	}
	for i, c := range r.Clusters {
		if _, err := fmt.Fprintf(w, "cluster %d: dims=%v size=%d centroid=%v ids=%v\n",
			i, c.Dims, c.Size, c.Centroid, c.IDs); err != nil {
			return err
		}
	}
	return nil
}
