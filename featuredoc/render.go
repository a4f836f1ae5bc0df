package featuredoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// defaultMarker annotates entries named in the manifest's default list.
const defaultMarker = " *(enabled by default)*"

// render produces the Markdown fragment for a parsed document. Entries are
// emitted in source order: grouping text verbatim, then one list item per
// entry, then any trailing grouping text. Rendering is deterministic;
// identical input yields byte-identical output.
func (e *Extractor) render(doc *document) string {
	var sb strings.Builder

	for _, ent := range doc.entries {
		marker := ""
		if doc.defaults[ent.name] {
			marker = defaultMarker
		}

		label := strings.ReplaceAll(e.label, featurePlaceholder, ent.name)

		if strings.TrimSpace(ent.attached) != "" {
			fmt.Fprintf(&sb, "%s* %s%s — %s\n", ent.grouping, label, marker, ent.attached)
		} else {
			fmt.Fprintf(&sb, "%s* %s%s\n\n", ent.grouping, label, marker)
		}
	}

	sb.WriteString(doc.trailing)

	return sb.String()
}

// RenderHTML converts a rendered Markdown fragment to HTML using goldmark
// with GitHub Flavored Markdown extensions. It is a post-processing step
// for embedding the fragment outside Markdown pipelines; the extractor
// itself always produces Markdown.
func RenderHTML(markdown []byte) ([]byte, error) {
	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	var buf bytes.Buffer

	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return buf.Bytes(), nil
}
