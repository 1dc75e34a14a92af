package pdfdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog/log"

	"github.com/mvbarbosa/pdfscope/internal/fsutil"
)

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".tif": true, ".tiff": true, ".webp": true,
}

// The extractor names files after the source document, page number and image
// resource, e.g. "report_3_Im0.png".
var extractedPageRe = regexp.MustCompile(`_(\d+)_[^_]*$`)

// ExtractImages writes every embedded image of the PDF at path into outDir and
// returns the written file paths. Only files created by this call are
// reported; anything already in outDir is left alone and excluded, so a reused
// output directory never inflates the count. Each new file is renamed to
// page<p>_img<i>.<ext>, with a numeric suffix on collision. Individual
// undecodable images are skipped by the extractor; a failure of the extraction
// pass as a whole is returned to the caller, who treats images as optional.
func ExtractImages(path, outDir string) ([]string, error) {
	dir, err := fsutil.EnsureDir(outDir)
	if err != nil {
		return nil, err
	}

	before, err := imageFileSet(dir)
	if err != nil {
		return nil, err
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ExtractImagesFile(path, dir, nil, conf); err != nil {
		return nil, fmt.Errorf("extract images from %s: %w", path, err)
	}

	after, err := imageFileSet(dir)
	if err != nil {
		return nil, err
	}
	var written []string
	for name := range after {
		if !before[name] {
			written = append(written, name)
		}
	}
	sort.Strings(written)

	paths := renameExtracted(dir, written)
	log.Debug().Int("count", len(paths)).Str("dir", dir).Msg("images extracted")
	return paths, nil
}

func imageFileSet(dir string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list image directory %s: %w", dir, err)
	}
	set := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			set[e.Name()] = true
		}
	}
	return set, nil
}

// renameExtracted moves freshly extracted files onto the page<p>_img<i>
// naming scheme and returns their final paths in sorted order. A file whose
// rename fails keeps its extractor-given name.
func renameExtracted(dir string, files []string) []string {
	perPage := map[int]int{}
	var paths []string
	for _, name := range files {
		page := extractedPage(name)
		perPage[page]++
		base := fmt.Sprintf("page%d_img%d", page, perPage[page])
		target := fsutil.UniqueFilename(dir, base, filepath.Ext(name))
		if err := os.Rename(filepath.Join(dir, name), filepath.Join(dir, target)); err != nil {
			log.Warn().Str("file", name).Err(err).Msg("could not rename extracted image")
			target = name
		}
		paths = append(paths, filepath.Join(dir, target))
	}
	sort.Strings(paths)
	return paths
}

// extractedPage parses the page number out of an extractor-generated filename;
// unparseable names land on page 0.
func extractedPage(name string) int {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if m := extractedPageRe.FindStringSubmatch(stem); m != nil {
		if p, err := strconv.Atoi(m[1]); err == nil {
			return p
		}
	}
	return 0
}
