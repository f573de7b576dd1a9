package artifact

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"os"

	"github.com/icza/mjpeg"

	"wavesweep/internal/core"
	"wavesweep/internal/render"
)

// AnimMode selects the animation container written per run.
type AnimMode string

const (
	AnimOff AnimMode = "off"
	AnimGIF AnimMode = "gif"
	AnimAVI AnimMode = "avi"
)

// ParseAnimMode validates an animation mode flag value.
func ParseAnimMode(s string) (AnimMode, error) {
	switch AnimMode(s) {
	case AnimOff, AnimGIF, AnimAVI:
		return AnimMode(s), nil
	}
	return AnimOff, fmt.Errorf("unknown animation mode %q", s)
}

// Ext returns the file extension for the mode, empty when off.
func (m AnimMode) Ext() string {
	switch m {
	case AnimGIF:
		return "gif"
	case AnimAVI:
		return "avi"
	}
	return ""
}

const (
	defaultAnimFPS = 5
	maxAnimFrames  = 600
)

// Animator accumulates mid-plane heatmap frames during a run and writes
// them out as a GIF or MJPEG AVI when the run finishes.
type Animator struct {
	path   string
	mode   AnimMode
	fps    int
	frames []*image.Paletted
}

// NewAnimator builds a per-run animator writing to path. A non-positive
// fps falls back to the default.
func NewAnimator(path string, mode AnimMode, fps int) *Animator {
	if fps <= 0 {
		fps = defaultAnimFPS
	}
	return &Animator{path: path, mode: mode, fps: fps}
}

// ObserveSlice captures one frame, up to the frame cap.
func (a *Animator) ObserveSlice(step int, s core.Slice) {
	if a.mode == AnimOff || len(a.frames) >= maxAnimFrames {
		return
	}
	a.frames = append(a.frames, render.HeatmapImage(s))
}

// Finish writes the accumulated frames. Fewer than two frames is not an
// animation, so nothing is written and no error returned.
func (a *Animator) Finish() error {
	if a.mode == AnimOff || len(a.frames) < 2 {
		return nil
	}
	switch a.mode {
	case AnimGIF:
		return a.writeGIF()
	case AnimAVI:
		return a.writeAVI()
	}
	return nil
}

func (a *Animator) writeGIF() error {
	out := &gif.GIF{
		Image: a.frames,
		Delay: make([]int, len(a.frames)),
	}
	delay := 100 / a.fps
	if delay < 1 {
		delay = 1
	}
	for i := range out.Delay {
		out.Delay[i] = delay
	}

	f, err := os.Create(a.path)
	if err != nil {
		return fmt.Errorf("create animation: %w", err)
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return fmt.Errorf("encode animation: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close animation: %w", err)
	}
	return nil
}

func (a *Animator) writeAVI() error {
	b := a.frames[0].Bounds()
	aw, err := mjpeg.New(a.path, int32(b.Dx()), int32(b.Dy()), int32(a.fps))
	if err != nil {
		return fmt.Errorf("create video: %w", err)
	}

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: 90}
	for _, frame := range a.frames {
		buf.Reset()
		if err := jpeg.Encode(&buf, frame, opts); err != nil {
			aw.Close()
			return fmt.Errorf("encode frame: %w", err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			aw.Close()
			return fmt.Errorf("add frame: %w", err)
		}
	}
	if err := aw.Close(); err != nil {
		return fmt.Errorf("close video: %w", err)
	}
	return nil
}
