package root

import (
	"github.com/artuross/mini-compiler/internal/commands/compile"
	"github.com/artuross/mini-compiler/internal/commands/inspect"
	"github.com/artuross/mini-compiler/internal/meta/version"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.App {
	return &cli.App{
		Name:    "transpiler",
		Usage:   "Translates (add 2 4) into add(2, 4);",
		Version: version.Version,
		Commands: []*cli.Command{
			compile.NewCommand(),
			inspect.NewTokensCommand(),
			inspect.NewASTCommand(),
		},
	}
}
