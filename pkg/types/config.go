package types

// OutputFormat selects the emitter used for the final record set.
type OutputFormat string

const (
	FormatJS   OutputFormat = "js"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// ScanConfig holds settings for input discovery.
type ScanConfig struct {
	// InputDir is the directory holding the leveled article documents.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// Extension filters the files considered for processing (default ".docx").
	Extension string `json:"extension" yaml:"extension"`
}

// EmitConfig holds settings for the output stage.
type EmitConfig struct {
	// Format selects the file emitter: js, json, or yaml (default js).
	Format OutputFormat `json:"format" yaml:"format"`

	// OutputPath is the file the records are written to
	// (default "newsData.js").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// DatabasePath, when set, additionally stores the records in a SQLite
	// database with a full-text index.
	DatabasePath string `json:"database_path,omitempty" yaml:"database_path,omitempty"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Scan ScanConfig `json:"scan" yaml:"scan"`
	Emit EmitConfig `json:"emit" yaml:"emit"`
}

// WithDefaults returns a copy of cfg with unset fields replaced by defaults.
func (c PipelineConfig) WithDefaults() PipelineConfig {
	if c.Scan.Extension == "" {
		c.Scan.Extension = ".docx"
	}
	if c.Emit.Format == "" {
		c.Emit.Format = FormatJS
	}
	if c.Emit.OutputPath == "" {
		c.Emit.OutputPath = "newsData.js"
	}
	return c
}
