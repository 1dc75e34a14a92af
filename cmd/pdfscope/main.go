package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mvbarbosa/pdfscope/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Best-effort .env loading; absence is not an error.
	_ = godotenv.Load()

	var (
		configPath  string
		reportPath  string
		reportHTML  string
		reportPDF   string
		imagesDir   string
		noImages    bool
		noSummary   bool
		llmBase     string
		llmModel    string
		llmKey      string
		language    string
		topN        int
		minTokenLen int
		verbose     bool
		quiet       bool
		showVersion bool
	)

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file.pdf>\n\nFlags:\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	flag.StringVar(&configPath, "config", os.Getenv("PDFSCOPE_CONFIG"), "Path to optional YAML config file")
	flag.StringVar(&reportPath, "report", "", "Write a Markdown report to this path")
	flag.StringVar(&reportPath, "r", "", "Shorthand for -report")
	flag.StringVar(&reportHTML, "report.html", "", "Write an HTML report to this path")
	flag.StringVar(&reportPDF, "report.pdf", "", "Write a PDF report to this path")
	flag.StringVar(&imagesDir, "images.dir", "", "Directory for extracted images (default images/<pdf-name>)")
	flag.StringVar(&imagesDir, "o", "", "Shorthand for -images.dir")
	flag.BoolVar(&noImages, "no-images", false, "Skip embedded image extraction")
	flag.BoolVar(&noSummary, "no-summary", false, "Skip LLM summary generation")
	flag.StringVar(&llmBase, "llm.base", os.Getenv("LLM_BASE_URL"), "OpenAI-compatible base URL")
	flag.StringVar(&llmModel, "llm.model", os.Getenv("LLM_MODEL"), "Model name for summarization")
	flag.StringVar(&llmModel, "m", os.Getenv("LLM_MODEL"), "Shorthand for -llm.model")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("LLM_API_KEY"), "API key for the OpenAI-compatible server")
	flag.StringVar(&language, "lang", "", "Stopword/summary language code, e.g. 'pt' or 'en' (default pt)")
	flag.IntVar(&topN, "top", 0, "How many frequent words to report (default 10)")
	flag.IntVar(&minTokenLen, "minword", 0, "Minimum token length kept by the tokenizer (default 3)")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&quiet, "q", false, "Only log errors")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("pdfscope %s (%s, %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return 0
	}

	cfg := app.Config{
		InputPath:      flag.Arg(0),
		ReportPath:     reportPath,
		ReportHTMLPath: reportHTML,
		ReportPDFPath:  reportPDF,
		ImagesDir:      imagesDir,
		NoImages:       noImages,
		NoSummary:      noSummary,
		LLMBaseURL:     llmBase,
		LLMModel:       llmModel,
		LLMAPIKey:      llmKey,
		Language:       language,
		TopN:           topN,
		MinTokenLen:    minTokenLen,
		Verbose:        verbose,
		Quiet:          quiet,
	}

	if strings.TrimSpace(configPath) != "" {
		fc, err := app.LoadFileConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
		cfg = fc.Merge(cfg)
	}

	switch {
	case cfg.Quiet && cfg.Verbose:
		fmt.Fprintln(os.Stderr, "error: -v and -q are mutually exclusive")
		return 2
	case cfg.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case cfg.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := validateInput(cfg.InputPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		return 2
	}

	ctx := context.Background()
	a := app.New(ctx, cfg, os.Stdout)
	if err := a.Run(ctx); err != nil {
		log.Error().Err(err).Msg("analysis failed")
		return 1
	}
	return 0
}

func validateInput(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("missing PDF file argument")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input %s is a directory", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("input file must be a PDF: %s", path)
	}
	return nil
}
