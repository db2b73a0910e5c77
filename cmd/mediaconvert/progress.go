package main

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// progress draws a bar once the first task completes, when the total is
// known.
type progress struct {
	output io.Writer
	bar    *progressbar.ProgressBar
}

func newProgress(output io.Writer) *progress {
	return &progress{output: output}
}

func (p *progress) update(completed, total int) {
	if p.bar == nil {
		p.bar = progressbar.NewOptions(
			total,
			progressbar.OptionSetWriter(p.output),
			progressbar.OptionSetDescription("Converting"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetWidth(40),
		)
	}

	p.bar.Set(completed)
}

func (p *progress) finish() {
	if p.bar == nil {
		return
	}

	p.bar.Exit()
	fmt.Fprintln(p.output)
}
