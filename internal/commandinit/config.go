package commandinit

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v2"
)

const (
	EnvLogLevel = "TRANSPILER_LOG_LEVEL"
	EnvTrace    = "TRANSPILER_TRACE"
)

type Flagger interface {
	String(name string) string
	Bool(name string) bool
	Int(name string) int
}

// Common is the configuration shared by every command.
type Common struct {
	LogLevel zerolog.Level
	Trace    bool
}

func CommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "log-level",
			Usage: fmt.Sprintf("Log level: trace, debug, info, warn, error. Falls back to $%s, then info.", EnvLogLevel),
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: fmt.Sprintf("Export traces over OTLP gRPC (configured with the standard OTEL_EXPORTER_OTLP_* envs). Also enabled by $%s.", EnvTrace),
		},
	}
}

func ReadCommon(flags Flagger, getEnv func(string) string) (*Common, error) {
	levelName := flags.String("log-level")
	if levelName == "" {
		levelName = getEnv(EnvLogLevel)
	}
	if levelName == "" {
		levelName = zerolog.InfoLevel.String()
	}

	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("flag --log-level is invalid: %w", err)
	}

	enableTrace := flags.Bool("trace")
	if env := getEnv(EnvTrace); !enableTrace && env != "" {
		enableTrace, err = strconv.ParseBool(env)
		if err != nil {
			return nil, fmt.Errorf("env var %s is invalid: %w", EnvTrace, err)
		}
	}

	cfg := Common{
		LogLevel: level,
		Trace:    enableTrace,
	}

	return &cfg, nil
}
