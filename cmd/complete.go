package cmd

import (
	"github.com/etnz/ytd"
	"github.com/etnz/ytd/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the application.
func Completion() *complete.Command {
	tickers := predict.Set{}
	for _, sec := range ytd.Securities() {
		tickers = append(tickers, sec.Ticker())
	}
	trade := &complete.Command{Flags: map[string]complete.Predictor{
		"d": predict.Something,
		"s": tickers,
		"q": predict.Something,
		"c": predict.Something,
		"m": predict.Something,
	}}
	cash := &complete.Command{Flags: map[string]complete.Predictor{
		"d": predict.Something,
		"c": predict.Something,
		"m": predict.Something,
	}}
	topics, _ := docs.GetAllTopics()
	report := &complete.Command{Flags: map[string]complete.Predictor{
		"md":           predict.Nothing,
		"transactions": predict.Nothing,
	}}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"buy":      trade,
			"sell":     trade,
			"deposit":  cash,
			"withdraw": cash,
			"fmt":      {},
			"prices": {Flags: map[string]complete.Predictor{
				"seed":   predict.Something,
				"import": predict.Files("*.json"),
				"path":   predict.Something,
			}},
			"rewind": report,
			"roi":    report,
			"topic":  {Args: predict.Set(append(topics, "*"))},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file":   predict.Files("*.jsonl"),
			"position-file": predict.Files("*.json"),
			"market-file":   predict.Files("*.jsonl"),
			"prefs":         predict.Files("*.yaml"),
			"log-level":     predict.Set{"debug", "info", "warn", "error"},
			"today":         predict.Something,
		},
	}
}
