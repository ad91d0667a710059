// Package aggregate merges per-level parses of the same article into one
// record per slug. It is the only stateful stage of the pipeline: record
// identifiers depend on the order slugs are first seen, so all parses must
// be funneled through a single Aggregator in a deterministic order.
package aggregate

import (
	"github.com/pdiddy/newspipe/pkg/types"
)

// entry accumulates everything seen for one slug before finalization.
type entry struct {
	id       string
	slug     string
	perLevel map[types.Level]types.ParsedLevelContent
}

// Aggregator groups parsed level content by slug, preserving slug
// first-encounter order. Not safe for concurrent use; callers running
// extraction in parallel must serialize Add calls in the original
// discovery order.
type Aggregator struct {
	order   []string
	entries map[string]*entry
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{entries: make(map[string]*entry)}
}

// Add records one level's parse under slug. The first Add for a new slug
// allocates the next sequential record id. Adding the same slug and level
// twice overwrites the earlier parse; last write wins.
func (a *Aggregator) Add(slug string, content types.ParsedLevelContent) {
	e, ok := a.entries[slug]
	if !ok {
		e = &entry{
			id:       types.RecordID(len(a.order) + 1),
			slug:     slug,
			perLevel: make(map[types.Level]types.ParsedLevelContent),
		}
		a.entries[slug] = e
		a.order = append(a.order, slug)
	}
	e.perLevel[content.Level] = content
}

// Len returns the number of distinct slugs seen so far.
func (a *Aggregator) Len() int {
	return len(a.order)
}

// Finalize produces one fixed-schema record per slug, in slug
// first-encounter order. Every level field is present on every record;
// levels absent from the input hold empty strings.
func (a *Aggregator) Finalize() []types.ArticleRecord {
	records := make([]types.ArticleRecord, 0, len(a.order))
	for _, slug := range a.order {
		records = append(records, a.entries[slug].record())
	}
	return records
}

// headlinePriority orders the levels consulted for a merged record's
// headline. The intermediate tier reads most naturally, so it wins over
// the beginner and advanced variants.
var headlinePriority = []types.Level{3, 1, 6}

func (e *entry) record() types.ArticleRecord {
	fields := make(map[string]string, len(types.FieldOrder()))

	fields[types.FieldHeadline] = e.headline()
	fields[types.FieldSlug] = e.slug
	fields[types.FieldImageURL] = ""

	for _, l := range types.AllLevels() {
		content := e.perLevel[l] // zero value for unpopulated levels
		fields[types.LevelTextField(l)] = content.ArticleText
		fields[types.LevelQuestionsField(l)] = content.Questions
		if types.HasInstructionField(l) {
			fields[types.LevelInstructionField(l)] = content.Instruction
		}
		if l == types.LevelAdvanced {
			fields[types.LevelWritingPromptField(l)] = content.WritingPrompt
		}
	}

	return types.ArticleRecord{ID: e.id, Fields: fields}
}

func (e *entry) headline() string {
	for _, l := range headlinePriority {
		if content, ok := e.perLevel[l]; ok {
			return content.Headline
		}
	}
	return ""
}
