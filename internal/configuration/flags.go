package configuration

import (
	"flag"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Usage is printed by the front end on -h and on flag errors.
const Usage = `Usage: mediaconvert [input_dir] [options]

Converts HEIC images to JPEG and videos to H.264/AAC MP4, in parallel.

Options:
  -o, -output PATH     output directory (default: <input_dir>/converted)
  -q, -quality N       JPEG quality, 1-100 (default: 95)
  -w, -workers N       parallel worker processes (default: logical CPU count)
  -c, -config PATH     YAML configuration file
  -ffmpeg PATH         ffmpeg executable (default: looked up in PATH)
  -timeout DURATION    per-file time limit, e.g. 10m (default: none)
  -recycle N           restart a worker process after N files (default: never)
  -log-level LEVEL     panic, fatal, error, warn, info, debug or trace
  -report PATH         write a YAML run report to PATH
`

type flagValues struct {
	set *flag.FlagSet

	configPath string
	inputDir   string
	outputDir  string
	quality    int
	workers    int
	ffmpeg     string
	timeout    string
	recycle    int
	logLevel   string
	report     string
}

func parseFlags(args []string) (*flagValues, error) {
	values := new(flagValues)

	fs := flag.NewFlagSet("mediaconvert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&values.outputDir, "o", "", "")
	fs.StringVar(&values.outputDir, "output", "", "")
	fs.IntVar(&values.quality, "q", DefaultQuality, "")
	fs.IntVar(&values.quality, "quality", DefaultQuality, "")
	fs.IntVar(&values.workers, "w", 0, "")
	fs.IntVar(&values.workers, "workers", 0, "")
	fs.StringVar(&values.configPath, "c", "", "")
	fs.StringVar(&values.configPath, "config", "", "")
	fs.StringVar(&values.ffmpeg, "ffmpeg", "", "")
	fs.StringVar(&values.timeout, "timeout", "", "")
	fs.IntVar(&values.recycle, "recycle", 0, "")
	fs.StringVar(&values.logLevel, "log-level", "", "")
	fs.StringVar(&values.report, "report", "", "")

	// The input directory may appear anywhere among the options, as in
	// "mediaconvert ./photos -q 80" or "mediaconvert -q 80 ./photos -o out".
	// flag stops at the first positional argument, so parsing resumes after it.
	for {
		err := fs.Parse(args)
		if err != nil {
			return nil, err
		}

		rest := fs.Args()
		if len(rest) == 0 {
			break
		}

		if values.inputDir != "" {
			return nil, fmt.Errorf("%w: %v", ErrTooManyArguments, rest)
		}

		values.inputDir = rest[0]
		args = rest[1:]
	}

	values.set = fs

	return values, nil
}

// apply copies only the flags that were given explicitly, so values from the
// config file survive unless overridden.
func (f *flagValues) apply(config *Config) error {
	if f.inputDir != "" {
		config.Paths.Input = f.inputDir
	}

	var err error

	f.set.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "o", "output":
			config.Paths.Output = f.outputDir
		case "q", "quality":
			config.Transcoding.Quality = f.quality
		case "w", "workers":
			config.Transcoding.Parallel = f.workers
		case "ffmpeg":
			config.Transcoding.FFmpeg = f.ffmpeg
		case "timeout":
			config.Transcoding.TaskTimeout = f.timeout
		case "recycle":
			config.Transcoding.TasksPerWorker = f.recycle
		case "report":
			config.MediaConvert.Report = f.report
		case "log-level":
			level, parseErr := logrus.ParseLevel(f.logLevel)
			if parseErr != nil {
				err = fmt.Errorf("%w (%w)", ErrInvalidLogLevel, parseErr)

				return
			}

			config.MediaConvert.LogLevel = level
		}
	})

	return err
}
