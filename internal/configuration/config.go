package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"
)

const (
	defaultConfigPath = "/etc/mediaconvert.yaml"
	configPathEnv     = "MEDIACONVERT_CONFIG"
)

type Config struct {
	Paths        Paths        `yaml:"paths"`
	MediaConvert MediaConvert `yaml:"mediaconvert"`
	Transcoding  Transcoding  `yaml:"transcoding"`
}

type MediaConvert struct {
	LogLevel logrus.Level `yaml:"log_level"`
	Report   string       `yaml:"report"`
}

type Paths struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type Transcoding struct {
	Parallel       int    `yaml:"parallel"`
	Quality        int    `yaml:"quality"`
	FFmpeg         string `yaml:"ffmpeg"`
	TaskTimeout    string `yaml:"task_timeout"`
	TasksPerWorker int    `yaml:"tasks_per_worker"`

	// Resolved from TaskTimeout.
	Timeout time.Duration `yaml:"-"`
}

// New builds the configuration from defaults, the optional YAML file and
// the command line arguments (without the program name), in that order.
func New(args []string) (*Config, error) {
	flags, err := parseFlags(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %w (%w)", ErrConfiguration, ErrCantParseFlags, err)
	}

	config := defaultConfig()

	err = config.loadFile(flags.configPath)
	if err != nil {
		return nil, err
	}

	err = flags.apply(config)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	err = config.resolve()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return config, nil
}

func (c *Config) loadFile(explicitPath string) error {
	path := explicitPath
	if path == "" {
		if customPath, ok := os.LookupEnv(configPathEnv); ok {
			path = customPath
		}
	}

	optional := path == ""
	if optional {
		path = defaultConfigPath
	}

	rawConfig, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("%w: %w (%w)", ErrConfiguration, ErrCantReadConfigFile, err)
	}

	err = yaml.Unmarshal(rawConfig, c)
	if err != nil {
		return fmt.Errorf("%w: %w (%w)", ErrConfiguration, ErrCantParseConfigFile, err)
	}

	return nil
}
