package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/jdevries/superstock/cmd"
)

func main() {
	// Shell completion hook; exits the process when the shell asks for
	// completions instead of running a command.
	completion().Complete("super")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.Welcome()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion.
func completion() *complete.Command {
	period := map[string]complete.Predictor{
		"today":     predict.Nothing,
		"yesterday": predict.Nothing,
		"date":      predict.Something,
		"month":     predict.Something,
		"year":      predict.Something,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"bought-file": predict.Files("*.jsonl"),
			"sold-file":   predict.Files("*.jsonl"),
			"time-file":   predict.Files("*.txt"),
		},
		Sub: map[string]*complete.Command{
			"buy": {Flags: map[string]complete.Predictor{
				"product-name":    predict.Something,
				"price":           predict.Something,
				"expiration-date": predict.Something,
			}},
			"sell": {Flags: map[string]complete.Predictor{
				"product-name": predict.Something,
				"price":        predict.Something,
			}},
			"inventory": {Flags: map[string]complete.Predictor{
				"now":       predict.Nothing,
				"yesterday": predict.Nothing,
				"date":      predict.Something,
			}},
			"report-revenue": {Flags: period},
			"report-profit":  {Flags: period},
			"advance-time": {Flags: map[string]complete.Predictor{
				"reset":    predict.Nothing,
				"set-date": predict.Something,
			}},
			"import-purchases": {Flags: map[string]complete.Predictor{
				"i":    predict.Files("*.json"),
				"path": predict.Something,
			}},
			"topic": {Args: predict.Set{"readme", "welcome", "time", "reports"}},
		},
	}
}
