// Package pipeline runs the batch: discover input files, extract their
// text, segment each into per-level content, and aggregate the parses into
// one record per article.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/newspipe/internal/aggregate"
	"github.com/pdiddy/newspipe/internal/scan"
	"github.com/pdiddy/newspipe/internal/segment"
	"github.com/pdiddy/newspipe/pkg/types"
)

// TextExtractor turns a document container into plain text. The docfile
// package provides the .docx implementation; tests supply fakes.
type TextExtractor interface {
	Extract(path string) (string, error)
}

// Summary holds counts from one batch run.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
}

// Total returns the number of files considered.
func (s Summary) Total() int {
	return s.Processed + s.Skipped + s.Failed
}

// HasFailures reports whether any file failed extraction.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Run processes every matching file in the configured input directory and
// returns the merged records in slug first-encounter order. Per-file
// problems are written to w and skipped; only a missing or unreadable
// input directory is fatal.
//
// Record ids depend on the order slugs are first seen, so files are
// processed in sorted filename order (os.ReadDir guarantees it) and all
// parses funnel through one Aggregator.
func Run(ctx context.Context, extractor TextExtractor, cfg types.PipelineConfig, w io.Writer) (Summary, []types.ArticleRecord, error) {
	cfg = cfg.WithDefaults()

	entries, err := os.ReadDir(cfg.Scan.InputDir)
	if err != nil {
		return Summary{}, nil, fmt.Errorf("reading input directory %s: %w", cfg.Scan.InputDir, err)
	}

	agg := aggregate.New()
	var summary Summary

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), cfg.Scan.Extension) {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, nil, ctx.Err()
		default:
		}

		name := entry.Name()

		parsed, ok := scan.Parse(name)
		if !ok {
			fmt.Fprintf(w, "skipped %s: no level token\n", name)
			summary.Skipped++
			continue
		}
		if !parsed.Level.Valid() {
			fmt.Fprintf(w, "skipped %s: level %d outside recognized range\n", name, parsed.Level)
			summary.Skipped++
			continue
		}

		text, err := extractor.Extract(filepath.Join(cfg.Scan.InputDir, name))
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		if strings.TrimSpace(text) == "" {
			fmt.Fprintf(w, "skipped %s: no text content\n", name)
			summary.Skipped++
			continue
		}

		agg.Add(parsed.Slug, segment.Segment(text, parsed.Level))
		fmt.Fprintf(w, "processed %s -> %s (level %d)\n", name, parsed.Slug, parsed.Level)
		summary.Processed++
	}

	records := agg.Finalize()
	fmt.Fprintf(w, "\nprocessed: %d, skipped: %d, failed: %d (articles: %d)\n",
		summary.Processed, summary.Skipped, summary.Failed, len(records))

	return summary, records, nil
}
