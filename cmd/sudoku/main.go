package main

import (
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"svw.info/sudoku-engine/internal/checker"
	"svw.info/sudoku-engine/internal/game"
	"svw.info/sudoku-engine/internal/generator"
	"svw.info/sudoku-engine/internal/solver"
	"svw.info/sudoku-engine/internal/validator"
)

var (
	logLevel  string
	logFormat string
	logger    *zap.Logger
)

var mainCommand = &cobra.Command{
	Use:          "sudoku",
	Short:        "Generate, solve, validate, and grade 9x9 Sudoku puzzles",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := buildLogger(logLevel, logFormat)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	mainCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	mainCommand.PersistentFlags().StringVar(&logFormat, "log-format", "console", "console|json")
}

func main() {
	err := mainCommand.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		os.Exit(1)
	}
}

// buildLogger keeps stdout free for command output; logs go to stderr.
func buildLogger(level, format string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}
	var cfg zap.Config
	if strings.ToLower(format) == "json" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// newService wires the engine behind the game façade. Seed 0 leaves
// the random source time-based.
func newService(seed int64) *game.Service {
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	s := solver.New()
	v := validator.New()
	return game.NewService(s, generator.New(s, rng), v, checker.New(v), rng, logger.Named("engine"))
}
