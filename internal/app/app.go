// Package app wires the analysis pipeline together: it opens the document,
// runs the lexical analysis, extracts images, invokes the summarizer, and
// writes console output and report artifacts per the configuration.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/mvbarbosa/pdfscope/internal/analysis"
	"github.com/mvbarbosa/pdfscope/internal/llm"
	"github.com/mvbarbosa/pdfscope/internal/outline"
	"github.com/mvbarbosa/pdfscope/internal/pdfdoc"
	"github.com/mvbarbosa/pdfscope/internal/report"
	"github.com/mvbarbosa/pdfscope/internal/stopwords"
	"github.com/mvbarbosa/pdfscope/internal/summarize"
)

// App runs one document analysis.
type App struct {
	cfg Config
	ai  llm.Client
	out io.Writer
}

// New builds an App from cfg. Console output is written to out. When
// summarization is enabled a client for the configured OpenAI-compatible
// endpoint is created and probed best-effort; an unreachable backend degrades
// to the summary-unavailable marker later instead of failing startup.
func New(ctx context.Context, cfg Config, out io.Writer) *App {
	cfg = cfg.normalized()
	a := &App{cfg: cfg, out: out}

	if !cfg.NoSummary {
		transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
		if cfg.LLMBaseURL != "" {
			transportCfg.BaseURL = cfg.LLMBaseURL
		}
		client := openai.NewClientWithConfig(transportCfg)
		a.ai = &llm.OpenAICompatible{API: client}
		a.preflight(ctx)
	}
	return a
}

// preflight lists models on the backend as a connectivity check. Failures are
// logged, never fatal.
func (a *App) preflight(ctx context.Context) {
	lister, ok := a.ai.(llm.ModelLister)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	models, err := lister.ListModels(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("LLM model list failed; continuing")
		return
	}
	log.Info().Int("count", len(models.Models)).Msg("LLM models available")
}

// Run executes the pipeline for the configured input and writes artifacts.
// Page-level and summarization failures are recovered internally; only
// unexpected conditions (unreadable document, unwritable artifacts) return an
// error.
func (a *App) Run(ctx context.Context) error {
	doc, err := pdfdoc.Open(a.cfg.InputPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	stop := a.stopwordSet()

	log.Info().Str("file", a.cfg.InputPath).Int("pages", doc.PageCount()).Msg("analyzing document")
	result := analysis.Run(doc, analysis.Options{
		Stopwords:   stop,
		MinTokenLen: a.cfg.MinTokenLen,
		TopN:        a.cfg.TopN,
		Outline:     outline.Config{},
	})

	var images []string
	imageDir := a.imagesDir()
	if !a.cfg.NoImages {
		images, err = pdfdoc.ExtractImages(a.cfg.InputPath, imageDir)
		if err != nil {
			// Images are a best-effort artifact; analysis stands without them.
			log.Warn().Err(err).Msg("image extraction failed; continuing without images")
			images = nil
		}
	}

	var summary string
	if !a.cfg.NoSummary {
		if result.Empty() {
			log.Warn().Msg("skipping summary: document has no usable text")
		} else {
			s := &summarize.Summarizer{
				Client:   a.ai,
				Model:    a.cfg.LLMModel,
				Language: a.cfg.Language,
			}
			summary = s.SummarizeOrMarker(ctx, result.FullText)
		}
	}

	in := report.Input{Result: result, Images: images, ImageDir: imageDir, Summary: summary}
	fmt.Fprint(a.out, report.Console(in))

	return a.writeArtifacts(in)
}

// stopwordSet resolves the configured language to a stopword set, degrading
// to an empty set with a warning for unknown codes.
func (a *App) stopwordSet() map[string]struct{} {
	if !stopwords.Supported(a.cfg.Language) {
		log.Warn().Str("lang", a.cfg.Language).Msg("no stopword list for language; frequency counts keep function words")
		return nil
	}
	set, err := stopwords.For(a.cfg.Language)
	if err != nil {
		log.Warn().Str("lang", a.cfg.Language).Err(err).Msg("stopword list unavailable; frequency counts keep function words")
		return nil
	}
	return set
}

// imagesDir returns the configured image output directory, defaulting to
// images/<pdf-stem>.
func (a *App) imagesDir() string {
	if a.cfg.ImagesDir != "" {
		return a.cfg.ImagesDir
	}
	stem := strings.TrimSuffix(filepath.Base(a.cfg.InputPath), filepath.Ext(a.cfg.InputPath))
	return filepath.Join("images", stem)
}
