package main

import (
	"log/slog"
	"os"
)

// theLog writes to stderr so that it never mixes with command output. Debug
// records, such as the api client's request log, need USPS_VERBOSE set.
var theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level:       logLevel(),
	ReplaceAttr: dropNoise,
}))

func logLevel() slog.Level {
	if os.Getenv("USPS_VERBOSE") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func dropNoise(_ []string, a slog.Attr) slog.Attr {
	switch {
	case a.Key == slog.TimeKey:
		return slog.Attr{}
	case a.Key == slog.LevelKey && a.Value.String() == slog.LevelInfo.String():
		return slog.Attr{}
	}
	return a
}
