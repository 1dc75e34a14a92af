package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mvbarbosa/pdfscope/internal/fsutil"
	"github.com/mvbarbosa/pdfscope/internal/report"
)

// writeArtifacts persists the configured report renderings. Rendering is pure;
// this is the only place report output touches the filesystem.
func (a *App) writeArtifacts(in report.Input) error {
	if a.cfg.ReportPath != "" {
		if err := writeFileInDir(a.cfg.ReportPath, []byte(report.Markdown(in))); err != nil {
			return fmt.Errorf("write markdown report: %w", err)
		}
		log.Info().Str("path", a.cfg.ReportPath).Msg("markdown report written")
	}

	if a.cfg.ReportHTMLPath != "" {
		html, err := report.HTML(in)
		if err != nil {
			return err
		}
		if err := writeFileInDir(a.cfg.ReportHTMLPath, []byte(html)); err != nil {
			return fmt.Errorf("write html report: %w", err)
		}
		log.Info().Str("path", a.cfg.ReportHTMLPath).Msg("html report written")
	}

	if a.cfg.ReportPDFPath != "" {
		if err := writeReportPDF(report.Markdown(in), a.cfg.ReportPDFPath); err != nil {
			return fmt.Errorf("write pdf report: %w", err)
		}
		log.Info().Str("path", a.cfg.ReportPDFPath).Msg("pdf report written")
	}

	return nil
}

func writeFileInDir(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if _, err := fsutil.EnsureDir(dir); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
