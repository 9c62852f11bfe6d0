package cmd

import (
	"github.com/etnz/taxlot/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion definition of mssb.
func Completion() *complete.Command {
	statements := predict.Or(predict.Files("*.pdf"), predict.Files("*.txt"))
	process := map[string]complete.Predictor{
		"sort":  predict.Nothing,
		"group": predict.Nothing,
	}
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"csv":   {Flags: process, Args: statements},
			"jsonl": {Flags: process, Args: statements},
			"xlsx": {
				Flags: map[string]complete.Predictor{
					"sort":  predict.Nothing,
					"group": predict.Nothing,
					"o":     predict.Files("*.xlsx"),
				},
				Args: statements,
			},
			"txf": {
				Flags: map[string]complete.Predictor{"date": predict.Something},
				Args:  statements,
			},
			"categories": {},
			"topic": {
				Flags: map[string]complete.Predictor{"raw": predict.Nothing},
				Args:  predict.Set(topics),
			},
		},
		Flags: map[string]complete.Predictor{
			"v":         predict.Nothing,
			"pdftotext": predict.Files("*"),
		},
	}
}
