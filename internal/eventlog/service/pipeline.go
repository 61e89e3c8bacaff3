package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/robolog-viz/robolog-backend/internal/eventlog/analysis"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/domain"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/graph/export"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/ingest/mapper"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/ingest/parser"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/ingest/validator"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/utils"
)

// Result is the offline analysis output written by the worker.
type Result struct {
	Title     string              `json:"title"`
	Summary   validator.Summary   `json:"summary"`
	Topics    []string            `json:"topics"`
	TimeRange analysis.TimeRange  `json:"time_range"`
	Graph     export.GraphPayload `json:"graph"`
	JSONPath  string              `json:"json_path"`
	DOTPath   string              `json:"dot_path"`
	SVGPath   string              `json:"svg_path,omitempty"`
}

// AnalyzeLog parses a robot log file, builds the graph and writes graph.json
// and graph.dot into outDir. When dotBin is set the DOT is also rendered to
// graph.svg via graphviz.
func AnalyzeLog(path string, outDir string, title string, dotBin string) (*Result, error) {
	doc, err := parser.ParseJSON(path)
	if err != nil {
		return nil, err
	}
	return analyzeToDir(doc, outDir, title, dotBin)
}

// AnalyzeLogBytes analyzes raw log bytes into a unique run folder under
// outBaseDir/runs/<id>.
func AnalyzeLogBytes(b []byte, outBaseDir string, title string, dotBin string) (*Result, error) {
	doc, err := parser.ParseJSONBytes(b)
	if err != nil {
		return nil, err
	}
	if outBaseDir == "" {
		outBaseDir = "out"
	}
	runDir := filepath.Join(outBaseDir, "runs", utils.NewID())
	return analyzeToDir(doc, runDir, title, dotBin)
}

func analyzeToDir(doc *domain.Document, outDir string, title string, dotBin string) (*Result, error) {
	if outDir == "" {
		outDir = "out"
	}
	_ = os.MkdirAll(outDir, 0755)

	g := mapper.ToGraph(doc)
	payload := export.BuildPayload(g)

	jsonPath := filepath.Join(outDir, "graph.json")
	if err := export.WriteJSON(jsonPath, payload); err != nil {
		return nil, err
	}

	dot := export.ToDOT(g, title)
	dotPath := filepath.Join(outDir, "graph.dot")
	if err := utils.WriteFile(dotPath, dot); err != nil {
		return nil, err
	}

	res := &Result{
		Title:    title,
		Summary:  validator.Summarize(doc),
		Topics:   analysis.Topics(doc),
		Graph:    payload,
		JSONPath: jsonPath,
		DOTPath:  dotPath,
	}
	res.TimeRange, _ = analysis.Range(doc)

	if dotBin != "" {
		svgPath := filepath.Join(outDir, "graph.svg")
		if err := utils.DotTo(dotPath, svgPath, "svg", dotBin); err != nil {
			return nil, fmt.Errorf("graphviz render: %w", err)
		}
		res.SVGPath = svgPath
	}

	return res, nil
}
