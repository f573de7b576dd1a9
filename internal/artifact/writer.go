package artifact

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"wavesweep/internal/core"
	"wavesweep/internal/pde"
	"wavesweep/internal/render"
)

// Writer persists per-run artifacts under a single output directory:
// mid-plane heatmaps of the final field and a chart of the step metrics.
type Writer struct {
	dir string
}

// NewWriter creates the output directory if needed and returns a Writer
// rooted there.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// PairName builds the artifact filename for an (alpha, beta) pair.
func PairName(prefix string, alpha, beta float64, ext string) string {
	return fmt.Sprintf("%s_a%.1e_b%.1e.%s", prefix, alpha, beta, ext)
}

// Path resolves an artifact filename inside the output directory.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// SaveRun writes the final-field heatmaps along the two mid-planes and the
// amplitude/energy chart for one run.
func (w *Writer) SaveRun(alpha, beta float64, res *pde.RunResult) error {
	if err := w.savePNG(PairName("finalZ", alpha, beta, "png"), res.Final.AbsMidplaneZ()); err != nil {
		return err
	}
	if err := w.savePNG(PairName("finalY", alpha, beta, "png"), res.Final.AbsMidplaneY()); err != nil {
		return err
	}
	// The chart library needs at least two points per series.
	if len(res.MaxAmp) < 2 {
		return nil
	}
	return renderMetricsChart(w.Path(PairName("maxAmpEnergy", alpha, beta, "png")), res.MaxAmp, res.Energy)
}

// ReportRun logs the scalar outcome of every run, saved or not.
func (w *Writer) ReportRun(alpha, beta float64, res *pde.RunResult, saved bool) {
	outcome := "skipped"
	if saved {
		outcome = "saved"
	}
	log.Printf("alpha=%.2e beta=%.2e status=%s steps=%d max=%.4e elapsed=%s %s",
		alpha, beta, res.Status, res.StepsRun, res.FinalMax(), res.Elapsed.Round(time.Millisecond), outcome)
}

func (w *Writer) savePNG(name string, s core.Slice) error {
	f, err := os.Create(w.Path(name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := png.Encode(f, render.HeatmapImage(s)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}
