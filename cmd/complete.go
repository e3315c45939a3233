package cmd

import (
	"flag"

	"github.com/etnz/acctreports/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors complete the values of flags by name.
var flagPredictors = map[string]complete.Predictor{
	"db":            predict.Files("*.gnucash"),
	"output":        predict.Set{"csv", "json"},
	"period":        predict.Set{"month", "year"},
	"pairs":         predict.Files("*.yaml"),
	"accounts-file": predict.Files("*"),
}

// Completion describes the command line of the commands for shell completion.
func Completion(commands []subcommands.Command) *complete.Command {
	root := &complete.Command{Sub: map[string]*complete.Command{}}
	for _, c := range commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predictor(f)
		})
		if c.Name() == "topic" {
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(topics)
			}
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

func predictor(f *flag.Flag) complete.Predictor {
	if p, ok := flagPredictors[f.Name]; ok {
		return p
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}

// Complete runs the shell completion of acr when the shell asks for it, and
// returns otherwise.
func Complete(name string, commands []subcommands.Command) {
	Completion(commands).Complete(name)
}
