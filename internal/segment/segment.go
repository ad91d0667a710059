// Package segment splits one document's extracted text into its semantic
// sections: headline, article body, homework instruction, questions, and
// (for the advanced level) a writing prompt. Segmentation is heuristic and
// total: it never fails, it only degrades toward empty fields.
package segment

import (
	"strings"

	"github.com/pdiddy/newspipe/pkg/types"
)

// Segment parses rawText into its per-level content. An empty input yields
// an all-empty parse; a missing homework marker yields the whole trimmed
// text as the article body with every homework field empty.
func Segment(rawText string, level types.Level) types.ParsedLevelContent {
	parsed := types.ParsedLevelContent{
		Level:    level,
		Headline: firstNonBlankLine(rawText),
	}

	idx := strings.Index(rawText, homeworkMarker)
	if idx < 0 {
		parsed.ArticleText = strings.TrimSpace(rawText)
		return parsed
	}

	parsed.ArticleText = strings.TrimSpace(rawText[:idx])
	homework := strings.TrimSpace(rawText[idx+len(homeworkMarker):])

	if level == types.LevelAdvanced {
		if pos, ok := findByPriority(writingPromptRules, homework); ok {
			parsed.WritingPrompt = strings.TrimSpace(homework[pos:])
			homework = strings.TrimSpace(homework[:pos])
		}
	}

	parsed.Instruction, parsed.Questions = splitInstruction(homework)
	return parsed
}

// splitInstruction separates the instruction line from the questions that
// follow it. When no instruction phrase matches any line, the whole block
// passes through as questions, unchanged.
func splitInstruction(block string) (instruction, questions string) {
	lines := strings.Split(block, "\n")
	i, ok := findLineByPriority(instructionRules, lines)
	if !ok {
		return "", block
	}
	return strings.TrimSpace(lines[i]), strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
}

// firstNonBlankLine returns the trimmed first line of text that contains
// non-whitespace, or "" when there is none.
func firstNonBlankLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
