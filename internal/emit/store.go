package emit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/newspipe/pkg/types"
)

// Store persists article records in a SQLite database with one column per
// schema field and a full-text index over the headline and level texts.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the database at path and ensures the schema
// exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// fieldColumn maps a schema field name to its column name
// ("Level 6 Writing Prompt" -> "level_6_writing_prompt").
func fieldColumn(field string) string {
	return strings.ReplaceAll(strings.ToLower(field), " ", "_")
}

func (s *Store) createSchema() error {
	cols := make([]string, 0, len(types.FieldOrder()))
	for _, f := range types.FieldOrder() {
		cols = append(cols, fieldColumn(f)+" TEXT NOT NULL DEFAULT ''")
	}

	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS articles (
			id TEXT PRIMARY KEY,
			seq INTEGER NOT NULL,
			%s
		)`, strings.Join(cols, ",\n\t\t\t")),
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_articles_slug ON articles(slug)`,
		`CREATE VIRTUAL TABLE IF NOT EXISTS articles_fts USING fts5(id UNINDEXED, body)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Put upserts the full record set in one transaction, replacing each
// record's full-text index entry. The seq column preserves the record
// order so reads come back in id-assignment order.
func (s *Store) Put(ctx context.Context, records []types.ArticleRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	fields := types.FieldOrder()

	columns := []string{"id", "seq"}
	for _, f := range fields {
		columns = append(columns, fieldColumn(f))
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")

	updates := make([]string, 0, len(columns)-1)
	for _, c := range columns[1:] {
		updates = append(updates, fmt.Sprintf("%s=excluded.%s", c, c))
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO articles (%s) VALUES (%s)
		 ON CONFLICT(id) DO UPDATE SET %s`,
		strings.Join(columns, ", "), placeholders, strings.Join(updates, ", "),
	))
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	for seq, rec := range records {
		args := make([]any, 0, len(columns))
		args = append(args, rec.ID, seq+1)
		for _, f := range fields {
			args = append(args, rec.Fields[f])
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("upserting %s: %w", rec.ID, err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM articles_fts WHERE id = ?`, rec.ID); err != nil {
			return fmt.Errorf("clearing index for %s: %w", rec.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO articles_fts (id, body) VALUES (?, ?)`,
			rec.ID, searchBody(rec),
		); err != nil {
			return fmt.Errorf("indexing %s: %w", rec.ID, err)
		}
	}

	return tx.Commit()
}

// searchBody concatenates a record's searchable text: headline plus every
// level's article text and questions.
func searchBody(rec types.ArticleRecord) string {
	parts := []string{rec.Fields[types.FieldHeadline]}
	for _, l := range types.AllLevels() {
		parts = append(parts, rec.Fields[types.LevelTextField(l)], rec.Fields[types.LevelQuestionsField(l)])
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// Hit is one full-text search result.
type Hit struct {
	ID       string
	Slug     string
	Headline string
}

// Search runs an FTS5 query over the indexed records and returns up to
// limit hits ranked by relevance.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT a.id, a.slug, a.headline
		 FROM articles_fts f
		 JOIN articles a ON a.id = f.id
		 WHERE articles_fts MATCH ?
		 ORDER BY rank
		 LIMIT ?`,
		query, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.ID, &h.Slug, &h.Headline); err != nil {
			return nil, fmt.Errorf("scanning hit: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// All returns every stored record in id-assignment order.
func (s *Store) All(ctx context.Context) ([]types.ArticleRecord, error) {
	fields := types.FieldOrder()
	cols := make([]string, 0, len(fields)+1)
	cols = append(cols, "id")
	for _, f := range fields {
		cols = append(cols, fieldColumn(f))
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s FROM articles ORDER BY seq`, strings.Join(cols, ", "),
	))
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var records []types.ArticleRecord
	for rows.Next() {
		values := make([]string, len(cols))
		dests := make([]any, len(cols))
		for i := range values {
			dests[i] = &values[i]
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}

		rec := types.ArticleRecord{ID: values[0], Fields: make(map[string]string, len(fields))}
		for i, f := range fields {
			rec.Fields[f] = values[i+1]
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
