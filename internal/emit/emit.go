// Package emit persists the finalized record set. File emitters cover the
// JS data module consumed by the site, plain JSON, and YAML; Store adds a
// SQLite database with a full-text index.
package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/newspipe/pkg/types"
)

// WriteFile serializes records to path in the given format.
func WriteFile(records []types.ArticleRecord, format types.OutputFormat, path string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case types.FormatJS:
		data, err = MarshalJS(records)
	case types.FormatJSON:
		data, err = MarshalJSON(records)
	case types.FormatYAML:
		data, err = yaml.Marshal(records)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// MarshalJS renders records as an ES module exporting a newsData constant.
// Field order and layout match the site's existing data file, so the
// output can be dropped in as-is.
func MarshalJS(records []types.ArticleRecord) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("export const newsData = [\n")

	for i, rec := range records {
		buf.WriteString("  {\n")
		fmt.Fprintf(&buf, "    id: '%s',\n", rec.ID)
		buf.WriteString("    fields: {\n")
		for _, name := range types.FieldOrder() {
			value, err := json.Marshal(rec.Fields[name])
			if err != nil {
				return nil, fmt.Errorf("encoding field %q of %s: %w", name, rec.ID, err)
			}
			fmt.Fprintf(&buf, "      %q: %s,\n", name, value)
		}
		buf.WriteString("    }\n")
		if i < len(records)-1 {
			buf.WriteString("  },\n")
		} else {
			buf.WriteString("  }\n")
		}
	}

	buf.WriteString("];\n")
	return buf.Bytes(), nil
}

// MarshalJSON renders records as a JSON array of {id, fields} objects with
// fields in canonical order.
func MarshalJSON(records []types.ArticleRecord) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[\n")

	for i, rec := range records {
		buf.WriteString("  {\n")
		fmt.Fprintf(&buf, "    \"id\": %q,\n", rec.ID)
		buf.WriteString("    \"fields\": {\n")
		order := types.FieldOrder()
		for j, name := range order {
			value, err := json.Marshal(rec.Fields[name])
			if err != nil {
				return nil, fmt.Errorf("encoding field %q of %s: %w", name, rec.ID, err)
			}
			comma := ","
			if j == len(order)-1 {
				comma = ""
			}
			fmt.Fprintf(&buf, "      %q: %s%s\n", name, value, comma)
		}
		buf.WriteString("    }\n")
		if i < len(records)-1 {
			buf.WriteString("  },\n")
		} else {
			buf.WriteString("  }\n")
		}
	}

	buf.WriteString("]\n")
	return buf.Bytes(), nil
}
