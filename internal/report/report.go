package report

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	ddto "source.hodakov.me/hdkv/mediaconvert/internal/domains/dispatcher/dto"
	"source.hodakov.me/hdkv/mediaconvert/internal/domains/engine/dto"
)

// Report is the machine readable result of one run.
type Report struct {
	Finished    string   `yaml:"finished"`
	Input       string   `yaml:"input"`
	Output      string   `yaml:"output"`
	Total       int      `yaml:"total"`
	Succeeded   int      `yaml:"succeeded"`
	Failed      int      `yaml:"failed"`
	Cancelled   int      `yaml:"cancelled"`
	Interrupted bool     `yaml:"interrupted"`
	Duration    string   `yaml:"duration"`
	Failures    []string `yaml:"failures,omitempty"`
}

func New(request *dto.Request, summary *ddto.Summary, interrupted bool, finished time.Time) *Report {
	return &Report{
		Finished:    finished.Format(time.RFC3339),
		Input:       request.InputDir,
		Output:      request.OutputDir,
		Total:       summary.Total + summary.Cancelled,
		Succeeded:   summary.Succeeded,
		Failed:      summary.Failed(),
		Cancelled:   summary.Cancelled,
		Interrupted: interrupted,
		Duration:    summary.Duration.Round(time.Millisecond).String(),
		Failures:    summary.Failures,
	}
}

// Write stores the report as YAML, replacing the file if it exists.
func Write(path string, report *Report) error {
	rawReport, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("%w: %w (%w)", ErrReport, ErrFailedToEncode, err)
	}

	err = os.WriteFile(path, rawReport, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w (%w)", ErrReport, ErrFailedToWrite, err)
	}

	return nil
}
