package segment

import "strings"

// homeworkMarker delimits the article body from the homework section. The
// match is exact and case-sensitive; source documents spell it uniformly.
const homeworkMarker = "Homework:"

// markerRule is one entry of an ordered marker list. Rules are evaluated
// top-to-bottom and the first rule that matches anywhere wins, regardless
// of where in the text lower rules would have matched. That
// priority-over-position behavior is deliberate: it mirrors how the source
// corpus was segmented historically, and changing it would re-split
// existing documents.
type markerRule struct {
	phrase string
}

// writingPromptRules mark the start of the advanced level's writing prompt
// inside the homework block, in priority order.
var writingPromptRules = []markerRule{
	{phrase: "Free Writing"},
	{phrase: "Academic Writing"},
	{phrase: "Writing Practice"},
}

// instructionRules identify the homework instruction line, in priority
// order. Phrases match anywhere within a line.
var instructionRules = []markerRule{
	{phrase: "Write a full sentence"},
	{phrase: "Write a full-sentence"},
	{phrase: "Answer each question"},
	{phrase: "Write full sentences"},
	{phrase: "In your Vocab Notebook"},
}

// findByPriority returns the byte offset of the first occurrence of the
// highest-priority rule whose phrase occurs anywhere in text. Matching is
// case-insensitive. Returns ok=false when no rule matches.
func findByPriority(rules []markerRule, text string) (int, bool) {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if i := strings.Index(lower, strings.ToLower(r.phrase)); i >= 0 {
			return i, true
		}
	}
	return 0, false
}

// findLineByPriority returns the index of the first line matched by the
// highest-priority rule. Within one rule, lines are scanned top to bottom
// and the first containing the phrase (case-insensitively) wins; across
// rules, list order wins. Returns ok=false when no rule matches any line.
func findLineByPriority(rules []markerRule, lines []string) (int, bool) {
	for _, r := range rules {
		phrase := strings.ToLower(r.phrase)
		for i, line := range lines {
			if strings.Contains(strings.ToLower(line), phrase) {
				return i, true
			}
		}
	}
	return 0, false
}
