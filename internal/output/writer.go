// Package output writes rendered plots and grid exports for a run.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/san-kum/quakesim/internal/seismic"
)

type Writer struct {
	baseDir string
}

func New(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

func (w *Writer) Init() error {
	return os.MkdirAll(w.baseDir, 0755)
}

func (w *Writer) Dir() string { return w.baseDir }

// Path returns the location name would be written to.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.baseDir, name)
}

// Create opens name for writing inside the output directory.
func (w *Writer) Create(name string) (io.WriteCloser, string, error) {
	path := w.Path(name)
	f, err := os.Create(path)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

// WriteTo creates name and hands it to fn, closing the file afterwards.
func (w *Writer) WriteTo(name string, fn func(io.Writer) error) (string, error) {
	f, path, err := w.Create(name)
	if err != nil {
		return "", err
	}
	if err := fn(f); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

// Value is a float64 that encodes NaN and ±Inf as JSON null.
type Value float64

func (v Value) MarshalJSON() ([]byte, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return []byte(formatFloat(f)), nil
}

func values(src []float64) []Value {
	out := make([]Value, len(src))
	for i, v := range src {
		out[i] = Value(v)
	}
	return out
}

// GridExport is the JSON layout of a finished run. Non-finite cells and
// metrics of an unstable run are written as null.
type GridExport struct {
	NX              int                `json:"nx"`
	NZ              int                `json:"nz"`
	DX              float64            `json:"dx"`
	DZ              float64            `json:"dz"`
	VP              float64            `json:"vp"`
	DT              float64            `json:"dt"`
	NT              int                `json:"nt"`
	Scheme          string             `json:"scheme"`
	SourceX         int                `json:"source_x"`
	SourceZ         int                `json:"source_z"`
	SourceAmplitude float64            `json:"source_amplitude"`
	StepsTaken      int                `json:"steps_taken"`
	Metrics         map[string]Value   `json:"metrics,omitempty"`
	Displacement    [][]Value          `json:"displacement"`
}

func NewGridExport(result *seismic.Result) GridExport {
	p := result.Params
	nz, _ := result.Grid.Shape()
	rows := make([][]Value, nz)
	for iz := range rows {
		rows[iz] = values(result.Grid.Row(iz))
	}
	var m map[string]Value
	if len(result.Metrics) > 0 {
		m = make(map[string]Value, len(result.Metrics))
		for name, v := range result.Metrics {
			m[name] = Value(v)
		}
	}
	return GridExport{
		NX:              p.NX,
		NZ:              p.NZ,
		DX:              p.DX,
		DZ:              p.DZ,
		VP:              p.VP,
		DT:              p.DT,
		NT:              p.NT,
		Scheme:          string(p.Scheme),
		SourceX:         p.SourceX,
		SourceZ:         p.SourceZ,
		SourceAmplitude: p.SourceAmplitude,
		StepsTaken:      result.StepsTaken,
		Metrics:         m,
		Displacement:    rows,
	}
}

func EncodeGridJSON(dst io.Writer, result *seismic.Result) error {
	enc := json.NewEncoder(dst)
	enc.SetIndent("", "  ")
	return enc.Encode(NewGridExport(result))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// EncodeGridCSV writes one CSV record per grid row. Values round-trip
// exactly.
func EncodeGridCSV(dst io.Writer, g *seismic.Grid) error {
	w := csv.NewWriter(dst)
	nz, nx := g.Shape()
	record := make([]string, nx)
	for iz := 0; iz < nz; iz++ {
		for ix, v := range g.Row(iz) {
			record[ix] = formatFloat(v)
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// EncodeTracesCSV writes a time column followed by one column per trace.
func EncodeTracesCSV(dst io.Writer, traces []seismic.Trace) error {
	if len(traces) == 0 {
		return nil
	}
	w := csv.NewWriter(dst)

	header := []string{"time"}
	for _, tr := range traces {
		header = append(header, tr.Receiver.Name)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	times := traces[0].Times()
	for i := range times {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, tr := range traces {
			if i < len(tr.Samples) {
				row = append(row, formatFloat(tr.Samples[i]))
			} else {
				row = append(row, "0")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (w *Writer) WriteGridCSV(name string, g *seismic.Grid) (string, error) {
	return w.WriteTo(name, func(dst io.Writer) error { return EncodeGridCSV(dst, g) })
}

func (w *Writer) WriteGridJSON(name string, result *seismic.Result) (string, error) {
	return w.WriteTo(name, func(dst io.Writer) error { return EncodeGridJSON(dst, result) })
}

func (w *Writer) WriteTracesCSV(name string, traces []seismic.Trace) (string, error) {
	return w.WriteTo(name, func(dst io.Writer) error { return EncodeTracesCSV(dst, traces) })
}
