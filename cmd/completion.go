package cmd

import (
	"flag"

	"github.com/etnz/wallet/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors overrides the default prediction of some flags.
var flagPredictors = map[string]complete.Predictor{
	"k":   predict.Set{"I", "E"},
	"db":  predict.Files("*"),
	"cur": predict.Set{"USD", "EUR", "GBP", "CHF", "JPY"},
}

// Completion describes the wallet command line for shell completion.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(flag.CommandLine),
	}
	for _, cmds := range Commands {
		for _, c := range cmds {
			f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(f)
			root.Sub[c.Name()] = &complete.Command{Flags: predictFlags(f)}
		}
	}
	root.Sub["help"] = &complete.Command{}
	if topic, ok := root.Sub["topic"]; ok {
		topic.Args = predict.Set(append(docs.Names(), docs.All))
	}
	return root
}

// predictFlags predicts a value for every non boolean flag of f.
func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}
