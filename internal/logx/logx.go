// Package logx holds the package-level zerolog.Logger shared by mdparse
// and render.
//
// The teacher configures rs/zerolog/log's global logger once in main.go
// (zerolog.ConsoleWriter in development) and every package logs through
// the shared log.Logger. This library has no main package and no
// process lifecycle to hook a setup call into, so it exposes its own
// package-level Logger instead of relying on zerolog's global, defaulting
// to zerolog.Nop() so the library is silent until a host program opts in.
package logx

import "github.com/rs/zerolog"

// Logger is the shared diagnostic logger for mdparse and render. Replace
// it before calling into the package, e.g.:
//
//	logx.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
var Logger = zerolog.Nop()
