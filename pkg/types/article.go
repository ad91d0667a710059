package types

import "fmt"

// Level is a reading-difficulty tier under which an article variant is
// published. The recognized range is the closed set 0 through 6; current
// inputs only populate 1, 3, and 6, but the output schema always carries
// every level.
type Level int

const (
	// MinLevel and MaxLevel bound the recognized level range.
	MinLevel Level = 0
	MaxLevel Level = 6

	// LevelAdvanced is the only tier whose homework section may contain a
	// writing prompt.
	LevelAdvanced Level = 6
)

// Valid reports whether l falls inside the recognized level range.
func (l Level) Valid() bool {
	return l >= MinLevel && l <= MaxLevel
}

// AllLevels returns every recognized level in ascending order.
func AllLevels() []Level {
	levels := make([]Level, 0, MaxLevel-MinLevel+1)
	for l := MinLevel; l <= MaxLevel; l++ {
		levels = append(levels, l)
	}
	return levels
}

// RawDocument is one input file paired with its extracted text. It exists
// only between extraction and segmentation and is never retained.
type RawDocument struct {
	// Filename is the base name of the source file.
	Filename string `json:"filename" yaml:"filename"`

	// Level is the tier parsed from the filename's leading level token.
	Level Level `json:"level" yaml:"level"`

	// RawText is the full plain text extracted from the document container.
	RawText string `json:"raw_text" yaml:"raw_text"`
}

// ParsedLevelContent is the structured parse of one document at one level.
// Immutable once produced by the segmenter.
type ParsedLevelContent struct {
	// Level is the tier this parse belongs to.
	Level Level `json:"level" yaml:"level"`

	// Headline is the first non-blank line of the raw text, trimmed.
	Headline string `json:"headline" yaml:"headline"`

	// ArticleText is the body before the homework marker (or the whole
	// trimmed text when no marker is present).
	ArticleText string `json:"article_text" yaml:"article_text"`

	// Instruction is the homework instruction line, when one of the known
	// instruction phrases matched.
	Instruction string `json:"instruction" yaml:"instruction"`

	// Questions is the homework question block following the instruction
	// line, or the whole homework block when no instruction matched.
	Questions string `json:"questions" yaml:"questions"`

	// WritingPrompt is populated only for LevelAdvanced; empty otherwise.
	WritingPrompt string `json:"writing_prompt" yaml:"writing_prompt"`
}

// ArticleRecord is the final per-article output unit merging every level
// seen for one slug into the fixed field schema.
type ArticleRecord struct {
	// ID is "rec" plus a 3-digit zero-padded sequence number, assigned in
	// slug first-encounter order.
	ID string `json:"id" yaml:"id"`

	// Fields maps schema field names to values. Every name in FieldOrder is
	// present; unpopulated levels hold empty strings, never missing keys.
	Fields map[string]string `json:"fields" yaml:"fields"`
}

// RecordID formats an article sequence number as a record identifier
// (1 -> "rec001").
func RecordID(seq int) string {
	return fmt.Sprintf("rec%03d", seq)
}

// Schema field names. The names, including embedded spaces, are part of the
// output contract.
const (
	FieldHeadline = "Headline"
	FieldSlug     = "Slug"

	// FieldImageURL is reserved for a downstream collaborator and is always
	// emitted as an empty string.
	FieldImageURL = "Image URL"
)

// LevelTextField returns the schema field name for a level's article text.
func LevelTextField(l Level) string {
	return fmt.Sprintf("Level %d Text", l)
}

// LevelQuestionsField returns the schema field name for a level's questions.
func LevelQuestionsField(l Level) string {
	return fmt.Sprintf("Level %d Questions", l)
}

// LevelInstructionField returns the schema field name for a level's
// instruction line. Only levels 1, 3, and 6 carry an instruction column.
func LevelInstructionField(l Level) string {
	return fmt.Sprintf("Level %d Instruction", l)
}

// LevelWritingPromptField returns the schema field name for a level's
// writing prompt. Only LevelAdvanced carries one.
func LevelWritingPromptField(l Level) string {
	return fmt.Sprintf("Level %d Writing Prompt", l)
}

// instructionLevels are the tiers whose inputs carry an instruction line.
var instructionLevels = map[Level]bool{1: true, 3: true, 6: true}

// HasInstructionField reports whether the schema carries an instruction
// column for l.
func HasInstructionField(l Level) bool {
	return instructionLevels[l]
}

// FieldOrder returns every schema field name in canonical order. Ordered
// emitters (js, json) write fields in exactly this sequence.
func FieldOrder() []string {
	names := []string{FieldHeadline, FieldSlug, FieldImageURL}
	for _, l := range AllLevels() {
		names = append(names, LevelTextField(l), LevelQuestionsField(l))
		if HasInstructionField(l) {
			names = append(names, LevelInstructionField(l))
		}
		if l == LevelAdvanced {
			names = append(names, LevelWritingPromptField(l))
		}
	}
	return names
}
