package usda

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nutrikit/trophe/pkg/food"
)

// ABBREV layout constants. Field indexes are zero-based positions within a
// caret-delimited line.
const (
	abbrevFieldCount   = 53
	fieldDescription   = 1
	fieldKCal          = 3
	fieldProteinGrams  = 4
	fieldServingGrams  = 48
	fieldServingAmount = 49
)

// maxQuantity bounds parsed quantities. No real nutrient value comes close;
// anything beyond it is data corruption.
const maxQuantity = 1e9

// ErrFieldCount indicates a line with the wrong number of fields. Unlike a
// record-level parse failure, this is structural: the whole file is rejected.
var ErrFieldCount = errors.New("unexpected field count")

// errSkipRecord marks lines that are well-formed but describe an unusable
// record. Loaders skip these rather than failing the load.
var errSkipRecord = errors.New("record not usable")

// Option configures a Parser.
type Option func(*Parser)

// Parser parses ABBREV-format lines into food records. The field layout is
// fixed; only the delimiter and text marker are configurable, for datasets
// re-exported with different punctuation.
type Parser struct {
	fieldDelimiter string
	textMarker     string
}

// WithFieldDelimiter sets the field delimiter. Default is "^".
func WithFieldDelimiter(delim string) Option {
	return func(p *Parser) {
		p.fieldDelimiter = delim
	}
}

// WithTextMarker sets the marker wrapping text fields. Default is "~".
func WithTextMarker(marker string) Option {
	return func(p *Parser) {
		p.textMarker = marker
	}
}

// NewParser creates a parser for the standard ABBREV layout. Options exist
// for datasets exported with non-standard delimiters.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		fieldDelimiter: "^",
		textMarker:     "~",
	}

	// Apply options
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseLine parses a single ABBREV line into a food record.
//
// A wrong field count returns an error wrapping ErrFieldCount; callers
// should treat that as fatal for the whole file. Any other error means the
// line is individually unusable and safe to skip.
func (p *Parser) ParseLine(line string) (*food.Record, error) {
	fields := strings.Split(line, p.fieldDelimiter)
	if len(fields) != abbrevFieldCount {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), abbrevFieldCount)
	}

	description, ok := p.unquoteText(fields[fieldDescription])
	if !ok {
		return nil, fmt.Errorf("%w: malformed description %q", errSkipRecord, fields[fieldDescription])
	}

	serving, ok := p.unquoteText(fields[fieldServingAmount])
	if !ok {
		return nil, fmt.Errorf("%w: malformed serving measure %q", errSkipRecord, fields[fieldServingAmount])
	}

	servingGrams, ok := parseRounded(fields[fieldServingGrams])
	if !ok {
		return nil, fmt.Errorf("%w: unparsable serving grams %q", errSkipRecord, fields[fieldServingGrams])
	}

	kcal, ok := parseRounded(fields[fieldKCal])
	if !ok {
		return nil, fmt.Errorf("%w: unparsable kcal %q", errSkipRecord, fields[fieldKCal])
	}

	proteinGrams, ok := parseRounded(fields[fieldProteinGrams])
	if !ok {
		return nil, fmt.Errorf("%w: unparsable protein grams %q", errSkipRecord, fields[fieldProteinGrams])
	}

	r := &food.Record{
		Description:  description,
		Serving:      serving,
		ServingGrams: servingGrams,
		KCal:         kcal,
		ProteinGrams: proteinGrams,
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errSkipRecord, err)
	}

	return r, nil
}

// Parse parses a whole ABBREV document. Unusable lines are skipped with a
// debug log; a structurally broken line fails the parse. The returned count
// of skipped lines feeds loader metrics.
func (p *Parser) Parse(data []byte) (records food.List, skipped int, err error) {
	if !utf8.Valid(data) {
		return nil, 0, fmt.Errorf("dataset is not valid UTF-8")
	}

	lines := strings.Split(string(data), "\n")
	records = make(food.List, 0, len(lines))

	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		r, err := p.ParseLine(line)
		if err != nil {
			if errors.Is(err, ErrFieldCount) {
				return nil, 0, fmt.Errorf("line %d: %w", i+1, err)
			}
			slog.Debug("skipping record", "line", i+1, "reason", err)
			skipped++
			continue
		}

		records = append(records, r)
	}

	return records, skipped, nil
}

// unquoteText strips the text markers from a field. The field must be at
// least one character between markers.
func (p *Parser) unquoteText(field string) (string, bool) {
	m := p.textMarker
	if len(field) < 2*len(m)+1 ||
		!strings.HasPrefix(field, m) ||
		!strings.HasSuffix(field, m) {
		return "", false
	}
	return field[len(m) : len(field)-len(m)], true
}

// parseRounded parses a decimal field and rounds it to the nearest whole
// unit, halves away from zero. ABBREV publishes quantities per 100 g with
// two decimals; whole units are enough for budget arithmetic.
func parseRounded(field string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil || math.IsNaN(f) || math.Abs(f) > maxQuantity {
		return 0, false
	}
	return int(math.Round(f)), true
}
