package main

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

func newLogger(stderr io.Writer, s settings) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	writers := []io.Writer{zerolog.ConsoleWriter{Out: stderr, TimeFormat: "15:04:05"}}

	var closer io.Closer
	if s.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   s.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			LocalTime:  true,
		}
		writers = append(writers, file)
		closer = file
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Str("app", "datefmt").
		Logger()
	return logger, closer, nil
}
