// Package docfile reads the plain text out of .docx document containers.
// A .docx file is a ZIP archive whose word/document.xml holds the
// paragraphs; the extractor streams that XML and keeps one line per
// non-empty paragraph.
package docfile

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
)

const documentEntry = "word/document.xml"

// Extractor reads .docx containers. It satisfies the pipeline's
// TextExtractor interface.
type Extractor struct{}

// Extract returns the document's paragraph text, one trimmed line per
// non-empty paragraph, joined with newlines. An unreadable or malformed
// container is an error; the caller treats it as a per-file skip.
func (Extractor) Extract(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening container %s: %w", path, err)
	}
	defer r.Close()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == documentEntry {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("%s: no %s in archive", path, documentEntry)
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("opening %s in %s: %w", documentEntry, path, err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var (
		paragraphs  []string
		current     strings.Builder
		inParagraph bool
		inText      bool
	)

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = inParagraph
			}

		case xml.CharData:
			// Only text runs (<w:t>) carry content; other character data
			// inside a paragraph is markup whitespace.
			if inText {
				current.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inParagraph {
					if text := strings.TrimSpace(current.String()); text != "" {
						paragraphs = append(paragraphs, text)
					}
					inParagraph = false
				}
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
