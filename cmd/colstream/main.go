// colstream is a command-line tool that reconstructs the row/column layout
// of a financial document and emits it as an annotated token stream.
//
// It takes page tokens from one of three sources — a PDF processed live
// with Google Document AI, a saved Document AI JSON response, or an hOCR
// file — groups them into rows, discovers the column baselines of each
// page, and serializes everything as a line-oriented stream in which every
// row has a stable id, every token a column index, and every numeric value
// a run-unique <v_NNN:...> marker. The stream is meant to be fed to a
// language-model reader that must address table cells without seeing the
// page image.
//
// Configuration:
//
// An optional YAML file supplies tuning parameters and, for live
// processing, the Document AI processor settings:
//
//	project_id: "your-gcp-project-id"
//	location: "us"
//	processor_id: "your-processor-id"
//	x_tolerance: 20
//	y_tolerance: 3
//	mask: false
//	match_policy: embedded      # or: whole-token
//	column_policy: first-match  # or: nearest
//	cluster_policy: greedy      # or: centroid
//	coord_width: 0              # token coordinate space for -grid-pdf
//	coord_height: 0
//
// Usage:
//
//	colstream [-config config.yml] -pdf in.pdf | -docai-json resp.json | -hocr in.hocr [options]
//
// Input flags (exactly one required):
//
//	-pdf string         PDF file to process live with Document AI (needs config)
//	-docai-json string  Saved Document AI API response (protojson)
//	-hocr string        hOCR file
//
// Output options:
//
//	-out string        Path to save the token stream (default stdout)
//	-grid-pdf string   Path to save a layout grid overlay PDF
//	-debug-api string  Path to save the raw API response as JSON (live only)
//
// Tuning overrides (take precedence over the config file):
//
//	-x-tol float  Horizontal tolerance
//	-y-tol float  Vertical tolerance
//	-mask         Mask numeric payloads
//
// Authentication for live processing uses the
// GOOGLE_APPLICATION_CREDENTIALS environment variable.
//
// Example:
//
//	colstream -config config.yml -pdf earnings.pdf -out earnings.txt -grid-pdf grid.pdf
//	colstream -docai-json response.json -mask -x-tol 15
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/radifuture-gmail/pdf-coordinate-flow/pkg/docai"
	"github.com/radifuture-gmail/pdf-coordinate-flow/pkg/gridpdf"
	"github.com/radifuture-gmail/pdf-coordinate-flow/pkg/hocr"
	"github.com/radifuture-gmail/pdf-coordinate-flow/pkg/layout"
	"github.com/radifuture-gmail/pdf-coordinate-flow/pkg/stream"
)

type yamlConfig struct {
	ProjectID   string `yaml:"project_id"`
	Location    string `yaml:"location"`
	ProcessorID string `yaml:"processor_id"`

	XTolerance    *float64 `yaml:"x_tolerance"`
	YTolerance    *float64 `yaml:"y_tolerance"`
	Mask          bool     `yaml:"mask"`
	MatchPolicy   string   `yaml:"match_policy"`
	ColumnPolicy  string   `yaml:"column_policy"`
	ClusterPolicy string   `yaml:"cluster_policy"`

	CoordWidth  float64 `yaml:"coord_width"`
	CoordHeight float64 `yaml:"coord_height"`
}

// loadConfig reads a YAML file and converts it to the engine and Document
// AI configs. Absent tuning keys keep the engine defaults.
func loadConfig(path string) (stream.Config, *docai.Config, yamlConfig, error) {
	engineCfg := stream.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return engineCfg, nil, yamlConfig{}, err
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return engineCfg, nil, yamlConfig{}, err
	}

	if yc.XTolerance != nil {
		engineCfg.XTolerance = *yc.XTolerance
	}
	if yc.YTolerance != nil {
		engineCfg.YTolerance = *yc.YTolerance
	}
	engineCfg.Mask = yc.Mask

	if engineCfg.Match, err = parseMatchPolicy(yc.MatchPolicy); err != nil {
		return engineCfg, nil, yc, err
	}
	if engineCfg.Column, err = parseColumnPolicy(yc.ColumnPolicy); err != nil {
		return engineCfg, nil, yc, err
	}
	if engineCfg.Cluster, err = parseClusterPolicy(yc.ClusterPolicy); err != nil {
		return engineCfg, nil, yc, err
	}

	aiCfg := &docai.Config{
		ProjectID:   yc.ProjectID,
		Location:    yc.Location,
		ProcessorID: yc.ProcessorID,
	}
	return engineCfg, aiCfg, yc, nil
}

func parseMatchPolicy(s string) (stream.MatchPolicy, error) {
	switch s {
	case "", "embedded":
		return stream.MatchEmbedded, nil
	case "whole-token":
		return stream.MatchWholeToken, nil
	default:
		return 0, fmt.Errorf("unknown match_policy %q (want embedded or whole-token)", s)
	}
}

func parseColumnPolicy(s string) (layout.ColumnPolicy, error) {
	switch s {
	case "", "first-match":
		return layout.ColumnFirstMatch, nil
	case "nearest":
		return layout.ColumnNearest, nil
	default:
		return 0, fmt.Errorf("unknown column_policy %q (want first-match or nearest)", s)
	}
}

func parseClusterPolicy(s string) (layout.ClusterPolicy, error) {
	switch s {
	case "", "greedy":
		return layout.ClusterGreedy, nil
	case "centroid":
		return layout.ClusterCentroid, nil
	default:
		return 0, fmt.Errorf("unknown cluster_policy %q (want greedy or centroid)", s)
	}
}

func main() {
	configPath := flag.String("config", "", "Path to the config YAML file")

	// Input flags
	pdfPath := flag.String("pdf", "", "PDF file to process live with Document AI")
	docaiJSONPath := flag.String("docai-json", "", "Saved Document AI API response (protojson)")
	hocrPath := flag.String("hocr", "", "hOCR file")

	// Output flags
	outPath := flag.String("out", "", "Path to save the token stream (default stdout)")
	gridPDFPath := flag.String("grid-pdf", "", "Path to save a layout grid overlay PDF")
	debugAPIPath := flag.String("debug-api", "", "Path to save the raw API response as JSON")

	// Tuning overrides
	xTol := flag.Float64("x-tol", 0, "Horizontal tolerance override")
	yTol := flag.Float64("y-tol", 0, "Vertical tolerance override")
	mask := flag.Bool("mask", false, "Mask numeric payloads")

	flag.Parse()

	providedFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		providedFlags[f.Name] = true
	})

	// Exactly one input source.
	inputs := 0
	for _, p := range []string{*pdfPath, *docaiJSONPath, *hocrPath} {
		if p != "" {
			inputs++
		}
	}
	if inputs != 1 {
		fmt.Fprintln(os.Stderr, "Error: Exactly one of -pdf, -docai-json or -hocr must be provided")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if providedFlags["debug-api"] && *pdfPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -debug-api only applies to live processing with -pdf")
		os.Exit(1)
	}

	// Load config, or start from defaults when none is given.
	engineCfg := stream.DefaultConfig()
	var aiCfg *docai.Config
	var yc yamlConfig
	if *configPath != "" {
		var err error
		engineCfg, aiCfg, yc, err = loadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	// Command-line overrides win over the config file.
	if providedFlags["x-tol"] {
		engineCfg.XTolerance = *xTol
	}
	if providedFlags["y-tol"] {
		engineCfg.YTolerance = *yTol
	}
	if providedFlags["mask"] {
		engineCfg.Mask = *mask
	}

	// Collect token pages from the chosen source.
	var pages [][]layout.Token

	switch {
	case *pdfPath != "":
		if aiCfg == nil || aiCfg.ProjectID == "" || aiCfg.Location == "" || aiCfg.ProcessorID == "" {
			log.Fatalf("Live processing requires project_id, location and processor_id in the config file")
		}

		pdfBytes, err := os.ReadFile(*pdfPath)
		if err != nil {
			log.Fatalf("Failed to read PDF file: %v", err)
		}

		fmt.Fprintln(os.Stderr, "Processing PDF with Document AI:", *pdfPath)
		doc, err := docai.ProcessDocument(context.Background(), pdfBytes, aiCfg)
		if err != nil {
			log.Fatalf("Error processing document: %v", err)
		}

		if *debugAPIPath != "" {
			apiJSON, err := docai.ToJSON(doc)
			if err != nil {
				log.Fatalf("Failed to convert API response to JSON: %v", err)
			}
			if err := os.WriteFile(*debugAPIPath, []byte(apiJSON), 0644); err != nil {
				log.Fatalf("Failed to write API response JSON: %v", err)
			}
			fmt.Fprintln(os.Stderr, "API response JSON saved to:", *debugAPIPath)
		}

		pages = docai.TokenPages(doc)

	case *docaiJSONPath != "":
		data, err := os.ReadFile(*docaiJSONPath)
		if err != nil {
			log.Fatalf("Failed to read Document AI JSON: %v", err)
		}
		doc, err := docai.DocumentFromJSON(data)
		if err != nil {
			log.Fatalf("Failed to parse Document AI JSON: %v", err)
		}
		pages = docai.TokenPages(doc)

	case *hocrPath != "":
		data, err := os.ReadFile(*hocrPath)
		if err != nil {
			log.Fatalf("Failed to read hOCR file: %v", err)
		}
		pages, err = hocr.TokenPages(data)
		if err != nil {
			log.Fatalf("Failed to parse hOCR file: %v", err)
		}
	}

	// Stream the document.
	streamer := stream.NewStreamer(engineCfg)
	output := streamer.StreamDocument(pages)

	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(output), 0644); err != nil {
			log.Fatalf("Failed to write token stream: %v", err)
		}
		fmt.Fprintln(os.Stderr, "Token stream saved to:", *outPath)
	} else {
		fmt.Println(output)
	}

	// Render the layout grid overlay if requested.
	if *gridPDFPath != "" {
		gridCfg := gridpdf.DefaultConfig()
		gridCfg.CoordWidth = yc.CoordWidth
		gridCfg.CoordHeight = yc.CoordHeight

		pdfBytes, err := gridpdf.Render(pages, engineCfg.XTolerance, engineCfg.YTolerance, gridCfg)
		if err != nil {
			log.Fatalf("Failed to render grid PDF: %v", err)
		}
		if err := os.WriteFile(*gridPDFPath, pdfBytes, 0644); err != nil {
			log.Fatalf("Failed to write grid PDF: %v", err)
		}
		fmt.Fprintln(os.Stderr, "Layout grid PDF saved to:", *gridPDFPath)
	}
}
