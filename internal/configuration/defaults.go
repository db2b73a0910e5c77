package configuration

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/sirupsen/logrus"
)

const (
	DefaultQuality   = 95
	DefaultInputDir  = "."
	convertedDirName = "converted"
)

func defaultConfig() *Config {
	return &Config{
		Paths: Paths{
			Input: DefaultInputDir,
		},
		MediaConvert: MediaConvert{
			LogLevel: logrus.InfoLevel,
		},
		Transcoding: Transcoding{
			Quality: DefaultQuality,
		},
	}
}

// resolve fills everything that depends on other settings or on the host:
// the output directory, the worker count and the task timeout.
func (c *Config) resolve() error {
	if c.Paths.Input == "" {
		c.Paths.Input = DefaultInputDir
	}

	if c.Paths.Output == "" {
		c.Paths.Output = DefaultOutputDir(c.Paths.Input)
	}

	if c.Transcoding.Parallel < 0 {
		return fmt.Errorf("%w (%d)", ErrInvalidParallel, c.Transcoding.Parallel)
	}

	if c.Transcoding.Parallel == 0 {
		c.Transcoding.Parallel = LogicalCPUCount()
	}

	if c.Transcoding.TaskTimeout != "" {
		timeout, err := time.ParseDuration(c.Transcoding.TaskTimeout)
		if err != nil {
			return fmt.Errorf("%w (%w)", ErrInvalidTaskTimeout, err)
		}

		c.Transcoding.Timeout = timeout
	}

	return nil
}

// DefaultOutputDir is the output directory used when none is configured.
func DefaultOutputDir(inputDir string) string {
	return filepath.Join(inputDir, convertedDirName)
}

// LogicalCPUCount returns the number of logical CPUs of the host.
func LogicalCPUCount() int {
	count, err := cpu.Counts(true)
	if err != nil || count < 1 {
		return runtime.NumCPU()
	}

	return count
}
