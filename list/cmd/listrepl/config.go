package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vaughan0/go-ini"
	"go.uber.org/zap/zapcore"
)

const configSection = "listrepl"

type config struct {
	Prompt    string
	Delimiter string
	History   string
	LogLevel  zapcore.Level
}

func defaultConfig() config {
	c := config{
		Prompt:    "list> ",
		Delimiter: ";",
		LogLevel:  zapcore.InfoLevel,
	}
	if home, err := os.UserHomeDir(); err == nil {
		c.History = filepath.Join(home, ".listrepl_history")
	}
	return c
}

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".listrepl.ini")
}

// loadConfig reads the [listrepl] section of an ini file on top of the
// defaults. A missing file is not an error.
func loadConfig(filename string) (config, error) {
	c := defaultConfig()
	if filename == "" {
		return c, nil
	}
	file, err := ini.LoadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("error loading config (%s): %s", filename, err)
	}
	if err := c.apply(file); err != nil {
		return c, fmt.Errorf("bad config (%s): %s", filename, err)
	}
	return c, nil
}

func (c *config) apply(file ini.File) error {
	section := file.Section(configSection)
	if v, ok := section["prompt"]; ok {
		c.Prompt = v
	}
	// Delimiters may legitimately be empty.
	if v, ok := section["delimiter"]; ok {
		c.Delimiter = v
	}
	if v, ok := section["history"]; ok {
		c.History = v
	}
	if v, ok := section["loglevel"]; ok {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return err
		}
		c.LogLevel = level
	}
	return nil
}
