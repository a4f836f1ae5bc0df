package featuredoc

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the extractor and its collaborators.
var (
	// ErrParse indicates manifest text that could not be scanned: an
	// unterminated table header, an unbalanced value, or a malformed
	// default list.
	ErrParse = errors.New("manifest parse")
	// ErrAssociation indicates a doc comment that cannot be attached to a
	// feature or optional dependency.
	ErrAssociation = errors.New("comment association")
	// ErrNoFeatures indicates a manifest without any documented entries.
	ErrNoFeatures = errors.New("no documented features")
	// ErrInvalidOption indicates an invalid configuration value.
	ErrInvalidOption = errors.New("invalid option")
	// ErrReadManifest indicates an I/O error locating or reading a manifest.
	ErrReadManifest = errors.New("read manifest")
	// ErrWriteOutput indicates an I/O error writing rendered output.
	ErrWriteOutput = errors.New("write output")
)

// DefaultFeatureLabel is the label template applied when [WithFeatureLabel]
// is not used. See [WithFeatureLabel] for the template syntax.
const DefaultFeatureLabel = "**`{feature}`**"

// featurePlaceholder is the substring of a label template replaced by the
// entry name.
const featurePlaceholder = "{feature}"

// Extractor turns manifest text into a Markdown fragment.
//
// Create instances with [NewExtractor]. An Extractor holds no state across
// calls; a single instance may be used concurrently.
type Extractor struct {
	label string
}

// Option configures an [Extractor].
type Option func(*Extractor)

// NewExtractor creates an [Extractor] with the given options.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		label: DefaultFeatureLabel,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// WithFeatureLabel sets the label template for rendered entries. The
// template must contain the "{feature}" placeholder, which is replaced by
// the entry name; the rest of the template is emitted verbatim. Rendering
// is a pure template substitution and does not affect parsing.
//
// Templates are not validated here; use [Config.NewExtractor] for
// validated construction from CLI flags.
func WithFeatureLabel(tmpl string) Option {
	return func(e *Extractor) {
		e.label = tmpl
	}
}

// Process extracts doc comments from manifest text and renders them as
// Markdown. Entries appear in source order; entries without a doc comment
// are omitted. Any malformed comment association aborts the whole
// extraction with an error wrapping one of the sentinel errors.
func (e *Extractor) Process(manifest []byte) (string, error) {
	doc, err := parse(string(manifest))
	if err != nil {
		return "", err
	}

	return e.render(doc), nil
}

// entry is one documented feature or optional dependency.
type entry struct {
	// name is the feature or dependency name.
	name string
	// grouping holds the `#!` text pending when the entry was recognized,
	// emitted verbatim before the entry.
	grouping string
	// attached holds the `##` text directly above the entry.
	attached string
}

// document is the parsed form handed to the renderer.
type document struct {
	defaults map[string]bool
	trailing string
	entries  []entry
}

// parser is the mutable state of a single scan pass. Comment text
// accumulates in grouping and attached until an entry boundary flushes
// both into an [entry].
type parser struct {
	defaults map[string]bool
	table    string
	lines    []string
	entries  []entry
	grouping strings.Builder
	attached strings.Builder
	pos      int
}

// parse runs the single-pass line scan over manifest text.
func parse(manifest string) (*document, error) {
	p := &parser{
		lines:    scanLines(manifest),
		defaults: make(map[string]bool),
	}

	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		p.pos++

		var err error

		switch {
		case strings.HasPrefix(line, "#!"):
			err = p.groupingComment(line[2:])
		case strings.HasPrefix(line, "##"):
			p.attachedComment(line[2:])
		case strings.HasPrefix(line, "["):
			err = p.tableHeader(line)
		default:
			if key, rest, ok := strings.Cut(line, "="); ok {
				err = p.keyValue(key, rest)
			}
		}

		if err != nil {
			return nil, err
		}
	}

	if p.attached.Len() > 0 {
		return nil, fmt.Errorf("%w: Found comment not associated with a feature", ErrAssociation)
	}

	if len(p.entries) == 0 {
		return nil, fmt.Errorf("%w: Could not find documented features in Cargo.toml", ErrNoFeatures)
	}

	return &document{
		entries:  p.entries,
		defaults: p.defaults,
		trailing: p.grouping.String(),
	}, nil
}

// scanLines trims every line of the manifest and drops blank lines and `#`
// comments that are not doc markers. The balanced-value reader pulls
// continuation lines from the same filtered stream.
func scanLines(manifest string) []string {
	var lines []string

	for line := range strings.SplitSeq(manifest, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") &&
			!strings.HasPrefix(line, "##") && !strings.HasPrefix(line, "#!") {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}

// next feeds continuation lines to [readBalanced].
func (p *parser) next() (string, bool) {
	if p.pos >= len(p.lines) {
		return "", false
	}

	line := p.lines[p.pos]
	p.pos++

	return line, true
}

// docContent qualifies the text after a doc marker. Content must be absent
// or start with a space; anything else (a third marker character, a
// decorative rule) marks the line as noise.
func docContent(rest string) (string, bool) {
	if rest != "" && !strings.HasPrefix(rest, " ") {
		return "", false
	}

	return rest, true
}

// groupingComment appends a `#!` line to the grouping block. Mixing a
// grouping line into a pending attached block is a structural error: the
// attached block would no longer sit directly above its entry.
func (p *parser) groupingComment(rest string) error {
	content, ok := docContent(rest)
	if !ok {
		return nil
	}

	if p.attached.Len() > 0 {
		return fmt.Errorf("%w: Cannot mix ## and #! comments between features", ErrAssociation)
	}

	p.grouping.WriteString(content)
	p.grouping.WriteByte('\n')

	return nil
}

// attachedComment appends a `##` line to the attached block.
func (p *parser) attachedComment(rest string) {
	content, ok := docContent(rest)
	if !ok {
		return
	}

	p.attached.WriteString(content)
	p.attached.WriteByte('\n')
}

// tableHeader handles a `[path]` line. It sets the current table and, when
// an attached comment is pending, requires the header itself to declare an
// optional dependency (a dotted path whose prefix ends in "dependencies",
// e.g. [dependencies.awesome] or [target.'cfg(unix)'.build-dependencies.x]).
func (p *parser) tableHeader(line string) error {
	path, _, ok := strings.Cut(line[1:], "]")
	if !ok {
		return fmt.Errorf("%w: Parse error while parsing line: %s", ErrParse, line)
	}

	p.table = strings.TrimSpace(path)

	if p.attached.Len() == 0 {
		return nil
	}

	i := strings.LastIndex(p.table, ".")
	if i < 0 || !strings.HasSuffix(strings.TrimSpace(p.table[:i]), "dependencies") {
		return fmt.Errorf("%w: Not a feature: `%s`", ErrAssociation, line)
	}

	p.flush(strings.TrimSpace(p.table[i+1:]))

	return nil
}

// keyValue handles a `key = value` line, reading the full balanced value
// (possibly spanning further physical lines) before any interpretation.
func (p *parser) keyValue(key, rest string) error {
	key = strings.TrimSpace(key)

	value, err := readBalanced(rest, p.next)
	if err != nil {
		return fmt.Errorf("%w: Parse error while parsing dependency %s: %w", ErrParse, key, err)
	}

	if p.table == "features" && key == "default" {
		if err := p.addDefaults(value); err != nil {
			return err
		}
	}

	if p.attached.Len() == 0 {
		return nil
	}

	switch {
	case strings.HasSuffix(p.table, "dependencies"):
		if !optionalTrue(value) {
			return fmt.Errorf("%w: Dependency %s is not an optional dependency", ErrAssociation, key)
		}

	case p.table != "features":
		return fmt.Errorf("%w: Comment cannot be associated with a feature: %s",
			ErrAssociation, strings.TrimSuffix(p.attached.String(), "\n"))
	}

	p.flush(key)

	return nil
}

// flush moves both pending comment blocks into a new entry.
func (p *parser) flush(name string) {
	p.entries = append(p.entries, entry{
		name:     name,
		grouping: p.grouping.String(),
		attached: p.attached.String(),
	})

	p.grouping.Reset()
	p.attached.Reset()
}

// addDefaults parses the value of the `default` key in [features]: a
// bracketed, comma-separated list of quoted or bare names.
func (p *parser) addDefaults(value string) error {
	list, ok := strings.CutPrefix(strings.TrimSpace(value), "[")
	if ok {
		list, ok = strings.CutSuffix(list, "]")
	}

	if !ok {
		return fmt.Errorf("%w: Parse error while parsing dependency default", ErrParse)
	}

	for item := range strings.SplitSeq(list, ",") {
		item = strings.TrimSpace(item)
		item = strings.Trim(item, `"'`)
		item = strings.TrimSpace(item)

		if item != "" {
			p.defaults[item] = true
		}
	}

	return nil
}

// optionalTrue reports whether an inline dependency value contains an
// `optional` key assigned the boolean true. This is a textual check on the
// joined value, matching the scanner's minimal grammar.
func optionalTrue(value string) bool {
	_, after, ok := strings.Cut(value, "optional")
	if !ok {
		return false
	}

	after, ok = strings.CutPrefix(strings.TrimSpace(after), "=")
	if !ok {
		return false
	}

	return strings.HasPrefix(strings.TrimSpace(after), "true")
}
