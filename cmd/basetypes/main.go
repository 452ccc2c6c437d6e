// Command basetypes converts and composes rotations, transformation
// matrices and colors from the command line.
//
// Values are given in the same whitespace separated notation the library
// parses, either as separate arguments or quoted:
//
//	basetypes quat 0 0 1 1.5708
//	basetypes compose --translation "1 2 3" --rotation "0 1 0 0.5"
//	basetypes decompose 2 0 0 0  0 2 0 0  0 0 2 0  1 2 3 1
//	basetypes slerp "0 0 1 0" "0 0 1 1.5708" 0.5
//	basetypes hsv 1 0.5 0
//
// Arguments starting with a minus sign must follow "--".
//
// BASETYPES_LOG_LEVEL selects the log level (default warn) and
// BASETYPES_PRECISION the number of significant digits printed.
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/basetypes"
	"github.com/gogpu/basetypes/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("basetypes: %v", err)
	}
	level, _ := cfg.Level()
	basetypes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
