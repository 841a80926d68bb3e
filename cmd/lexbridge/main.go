package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lexbridge-ai/lexbridge/internal/config"
	"github.com/lexbridge-ai/lexbridge/internal/mapper"
	"github.com/lexbridge-ai/lexbridge/internal/telemetry"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: lexbridge <command> [flags]

commands:
  translate    translate a value term to its frame concept (or back with -reverse)
  category     translate a taxonomy category, optionally refined by a subcategory
  response     translate a response-type label
  analyze      extract value terms and framing markers from text
  corpus       scan several text samples and aggregate detection
  interaction  analyze a human/AI exchange for mirrored values
  reframe      compare original and revised text for lost framing
  export       write the current tables to a JSON file
  import       check that a JSON table file merges cleanly

run 'lexbridge <command> -h' for command flags`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	cmd := os.Args[1]
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	configPath := fs.String("config", "lexbridge.yaml", "path to config file")

	var (
		term     = fs.String("term", "", "term, frame concept, category, or label to translate")
		ctxNote  = fs.String("context", "", "optional context hint for translation")
		reverse  = fs.Bool("reverse", false, "translate frame concept back to a value term")
		sub      = fs.String("sub", "", "subcategory refinement for category translation")
		text     = fs.String("text", "", "text to analyze")
		userText = fs.String("user", "", "human side of an interaction")
		aiText   = fs.String("ai", "", "AI side of an interaction")
		original = fs.String("original", "", "original text for reframing comparison")
		revised  = fs.String("revised", "", "revised text for reframing comparison")
		path     = fs.String("path", "", "table file path for export/import")
		stats    = fs.Bool("stats", false, "print translation counters before exit")
	)
	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx := context.Background()
	tele, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:  cfg.Telemetry.Enabled,
		Endpoint: cfg.Telemetry.Endpoint,
		Protocol: cfg.Telemetry.Protocol,
		Service:  cfg.Telemetry.Service,
		Version:  cfg.Telemetry.Version,
	})
	if err != nil {
		log.Fatalf("telemetry init: %v", err)
	}
	defer tele.Shutdown(ctx)

	m, err := mapper.New(cfg, tele)
	if err != nil {
		log.Fatalf("mapper init: %v", err)
	}

	switch cmd {
	case "translate":
		if *reverse {
			emit(m.TranslateFrameToTerm(*term, *ctxNote))
		} else {
			emit(m.TranslateTermToFrame(*term, *ctxNote))
		}
	case "category":
		emit(m.TranslateCategory(*term, *sub))
	case "response":
		emit(m.TranslateResponseType(*term))
	case "analyze":
		emit(m.AnalyzeText(readText(*text, fs)))
	case "corpus":
		if fs.NArg() == 0 {
			log.Fatalf("corpus: pass text samples as arguments")
		}
		emit(m.AnalyzeCorpus(fs.Args()))
	case "interaction":
		emit(m.AnalyzeInteraction(*userText, *aiText))
	case "reframe":
		emit(m.DetectReframing(*original, *revised))
	case "export":
		if *path == "" {
			log.Fatalf("export: -path is required")
		}
		if err := m.ExportTables(*path); err != nil {
			log.Fatalf("export tables: %v", err)
		}
		log.Printf("tables written to %s", *path)
	case "import":
		if *path == "" {
			log.Fatalf("import: -path is required")
		}
		if err := m.ImportTables(*path); err != nil {
			log.Fatalf("import tables: %v", err)
		}
		log.Printf("tables from %s merged cleanly", *path)
	default:
		usage()
	}

	if *stats {
		emit(m.Stats())
	}
}

// readText falls back to a positional argument so short snippets don't need
// the -text flag.
func readText(text string, fs *flag.FlagSet) string {
	if text != "" {
		return text
	}
	if fs.NArg() > 0 {
		return fs.Arg(0)
	}
	return ""
}

func emit(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Println(string(out))
}
