package main

import (
	"fmt"
	"os"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/service"
)

func RunAnalyze(args []string) {
	if len(args) < 1 {
		panic("usage: analyze <logPath> [outDir] [title]")
	}
	logPath := args[0]
	out := "out"
	if len(args) > 1 {
		out = args[1]
	}
	title := "Robot Log"
	if len(args) > 2 {
		title = args[2]
	}

	res, err := service.AnalyzeLog(logPath, out, title, os.Getenv("DOT_BIN"))
	if err != nil {
		panic(err)
	}

	fmt.Printf("Wrote: %s, %s\n", res.JSONPath, res.DOTPath)
	if res.SVGPath != "" {
		fmt.Printf("Rendered: %s\n", res.SVGPath)
	}
	fmt.Printf("Events: %d total, %d with edges, %d skipped\n",
		res.Summary.TotalEvents, res.Summary.EdgeEvents, res.Summary.SkippedEvents)
	fmt.Printf("Graph: %d nodes, %d edges\n", len(res.Graph.Nodes), len(res.Graph.Edges))
	if len(res.Topics) > 0 {
		fmt.Printf("Topics (%d):\n", len(res.Topics))
		for _, t := range res.Topics {
			fmt.Printf(" - %s\n", t)
		}
	}
}
