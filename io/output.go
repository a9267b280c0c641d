package io

import (
	"bufio"
	"fmt"
	"io"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/shortrange"
)

/*
TrajectoryWriter writes particle positions in the following text format:

    <n> <size>
    <x_0> <y_0>
    ...
    <x_n-1> <y_n-1>
    <blank line>
    <x_0> <y_0>
    ...

The header line only appears once, before the first frame, and every frame
is terminated by a blank line.
*/
type TrajectoryWriter struct {
	w      *bufio.Writer
	frames int
}

// NewTrajectoryWriter returns a TrajectoryWriter which writes to w.
func NewTrajectoryWriter(w io.Writer) *TrajectoryWriter {
	return &TrajectoryWriter{w: bufio.NewWriter(w)}
}

// Frames returns the number of frames written so far.
func (tw *TrajectoryWriter) Frames() int { return tw.frames }

// WriteFrame writes the current positions of ps.
func (tw *TrajectoryWriter) WriteFrame(
	ps shortrange.Particles, size float64,
) error {
	if tw.frames == 0 {
		if _, err := fmt.Fprintf(tw.w, "%d %g\n", len(ps), size); err != nil {
			return err
		}
	}

	for i := range ps {
		if _, err := fmt.Fprintf(tw.w, "%g %g\n", ps[i].X, ps[i].Y); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(tw.w); err != nil {
		return err
	}

	tw.frames++
	return nil
}

// Flush writes any buffered frames to the underlying writer.
func (tw *TrajectoryWriter) Flush() error {
	return tw.w.Flush()
}

// PlotSnapshot queues a plot of the positions of ps to be saved to fname.
// Nothing is rendered until plt.Execute is called.
func PlotSnapshot(fname string, ps shortrange.Particles, size float64, step int) {
	xs, ys := make([]float64, len(ps)), make([]float64, len(ps))
	for i := range ps {
		xs[i], ys[i] = ps[i].X, ps[i].Y
	}

	plt.Figure(plt.FigSize(8, 8))
	plt.Plot(xs, ys, "ok")
	plt.Title(fmt.Sprintf("%d particles, step %d", len(ps), step))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))
	plt.XLim(0, size)
	plt.YLim(0, size)
	plt.SaveFig(fname)
}
