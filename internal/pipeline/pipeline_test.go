package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/newspipe/pkg/types"
)

// fakeExtractor serves canned text keyed by base filename.
type fakeExtractor struct {
	texts map[string]string
	fail  map[string]bool
}

func (f fakeExtractor) Extract(path string) (string, error) {
	name := filepath.Base(path)
	if f.fail[name] {
		return "", fmt.Errorf("corrupt container")
	}
	return f.texts[name], nil
}

// touchFiles creates empty placeholder files so directory discovery sees them.
func touchFiles(t *testing.T, dir string, names []string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
}

func testConfig(dir string) types.PipelineConfig {
	return types.PipelineConfig{Scan: types.ScanConfig{InputDir: dir}}
}

func TestRunMergesLevelsIntoOneRecord(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"Lvl 1 Storm Hits City.docx",
		"Lvl 3 Storm Hits City.docx",
		"Lvl 6 Storm Hits City _ Breaking News English.docx",
	}
	touchFiles(t, dir, files)

	ext := fakeExtractor{texts: map[string]string{
		files[0]: "Storm hits city\nSimple body.\nHomework:\nWrite a full sentence for each word.\n1. storm",
		files[1]: "Storm hits the city\nMedium body.\nHomework:\nAnswer each question.\n1. What happened?",
		files[2]: "Storm devastates city\nAdvanced body.\nHomework:\nAnswer each question.\n1. Why?\nFree Writing: your storm story",
	}}

	var out bytes.Buffer
	summary, records, err := Run(context.Background(), ext, testConfig(dir), &out)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Processed)
	assert.False(t, summary.HasFailures())
	require.Len(t, records, 1, "three levels of one article must merge into one record")

	rec := records[0]
	assert.Equal(t, "rec001", rec.ID)
	assert.Equal(t, "storm-hits-city", rec.Fields[types.FieldSlug])
	assert.Equal(t, "Storm hits the city", rec.Fields[types.FieldHeadline], "level 3 headline wins")
	assert.Equal(t, "Write a full sentence for each word.", rec.Fields["Level 1 Instruction"])
	assert.Equal(t, "1. What happened?", rec.Fields["Level 3 Questions"])
	assert.Equal(t, "Free Writing: your storm story", rec.Fields["Level 6 Writing Prompt"])
	assert.Equal(t, "", rec.Fields["Level 2 Text"], "unseen levels stay empty placeholders")
}

func TestRunSkipsAndFailuresDoNotAbort(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"Lvl 1 Good Article.docx",
		"Lvl 3 Broken Article.docx",
		"No Level Here.docx",
		"Lvl 9 Out Of Range.docx",
		"Lvl 1 Empty Article.docx",
		"notes.txt",
	}
	touchFiles(t, dir, files)

	ext := fakeExtractor{
		texts: map[string]string{
			files[0]: "Good headline\nBody.",
			files[4]: "   \n  ",
		},
		fail: map[string]bool{files[1]: true},
	}

	var out bytes.Buffer
	summary, records, err := Run(context.Background(), ext, testConfig(dir), &out)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Processed)
	assert.Equal(t, 3, summary.Skipped, "no-token, out-of-range, and empty files are skipped")
	assert.Equal(t, 1, summary.Failed)
	assert.True(t, summary.HasFailures())

	require.Len(t, records, 1)
	assert.Equal(t, "good-article", records[0].Fields[types.FieldSlug])

	diag := out.String()
	assert.Contains(t, diag, "skipped No Level Here.docx: no level token")
	assert.Contains(t, diag, "failed  Lvl 3 Broken Article.docx")
	assert.NotContains(t, diag, "notes.txt", "non-matching extensions are ignored silently")
}

func TestRunIDOrderIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		"Lvl 1 Alpha.docx",
		"Lvl 1 Beta.docx",
		"Lvl 3 Alpha.docx",
	}
	touchFiles(t, dir, files)

	ext := fakeExtractor{texts: map[string]string{
		files[0]: "Alpha\nBody.",
		files[1]: "Beta\nBody.",
		files[2]: "Alpha again\nBody.",
	}}

	for run := 0; run < 3; run++ {
		var out bytes.Buffer
		_, records, err := Run(context.Background(), ext, testConfig(dir), &out)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "rec001", records[0].ID)
		assert.Equal(t, "alpha", records[0].Fields[types.FieldSlug])
		assert.Equal(t, "rec002", records[1].ID)
		assert.Equal(t, "beta", records[1].Fields[types.FieldSlug])
	}
}

func TestRunMissingInputDirIsFatal(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "does-not-exist"))

	var out bytes.Buffer
	_, _, err := Run(context.Background(), fakeExtractor{}, cfg, &out)
	require.Error(t, err)
}

func TestRunCanceledContext(t *testing.T) {
	dir := t.TempDir()
	touchFiles(t, dir, []string{"Lvl 1 Alpha.docx"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, _, err := Run(ctx, fakeExtractor{texts: map[string]string{"Lvl 1 Alpha.docx": "A\nB."}}, testConfig(dir), &out)
	assert.ErrorIs(t, err, context.Canceled)
}
