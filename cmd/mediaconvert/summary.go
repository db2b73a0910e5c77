package main

import (
	"fmt"
	"io"
	"time"

	ddto "source.hodakov.me/hdkv/mediaconvert/internal/domains/dispatcher/dto"
)

const (
	exitOK = iota
	exitSetupError
	exitTaskFailed
	exitInterrupted
)

func printSummary(output io.Writer, summary *ddto.Summary, interrupted bool) {
	fmt.Fprintf(
		output, "Converted %d of %d files in %s\n",
		summary.Succeeded, summary.Total+summary.Cancelled, summary.Duration.Round(time.Millisecond),
	)

	if interrupted {
		fmt.Fprintf(output, "Interrupted, %d files were not started\n", summary.Cancelled)
	}

	if len(summary.Failures) == 0 {
		return
	}

	fmt.Fprintf(output, "%d failed:\n", summary.Failed())

	for _, failure := range summary.Failures {
		fmt.Fprintf(output, "  %s\n", failure)
	}
}

func exitCode(summary *ddto.Summary, interrupted bool) int {
	switch {
	case interrupted:
		return exitInterrupted
	case summary.Failed() > 0:
		return exitTaskFailed
	default:
		return exitOK
	}
}
