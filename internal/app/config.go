package app

// Config holds runtime configuration for one analysis run. It is assembled in
// main from flags, environment, and an optional config file, and passed by
// value so the pipeline stays independently testable.
type Config struct {
	// InputPath is the PDF to analyze.
	InputPath string

	// Reports
	ReportPath     string // Markdown, empty disables
	ReportHTMLPath string // HTML, empty disables
	ReportPDFPath  string // PDF, empty disables

	// Images
	ImagesDir string // empty means images/<pdf-stem>
	NoImages  bool

	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string
	NoSummary  bool

	// Analysis
	Language    string // stopword/prompt language code
	TopN        int
	MinTokenLen int

	// Behavior
	Verbose bool
	Quiet   bool
}

// normalized fills defaults for zero-valued fields.
func (c Config) normalized() Config {
	if c.Language == "" {
		c.Language = "pt"
	}
	if c.TopN <= 0 {
		c.TopN = 10
	}
	return c
}
