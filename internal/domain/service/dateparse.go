package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-send-later/internal/domain"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// DateSpan is one date expression found in a text.
type DateSpan struct {
	// Index is the byte offset of the expression in the text.
	Index int
	Text  string
	Time  time.Time
}

// DateParser finds every date expression in a text, in text order.
// Relative expressions resolve against base and in base's location.
type DateParser interface {
	ParseAll(text string, base time.Time) ([]DateSpan, error)
}

type whenParser struct {
	w *when.Parser
}

// NewWhenParser returns the English natural-language parser.
func NewWhenParser() DateParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &whenParser{w: w}
}

// ParseAll calls Parse again on the remainder after each match since Parse only
// reports the first cluster of expressions.
func (p *whenParser) ParseAll(text string, base time.Time) ([]DateSpan, error) {
	var spans []DateSpan

	offset := 0
	for offset < len(text) {
		r, err := p.w.Parse(text[offset:], base)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}
		if r == nil {
			break
		}

		spans = append(spans, DateSpan{
			Index: offset + r.Index,
			Text:  r.Text,
			Time:  r.Time,
		})

		next := offset + r.Index + len(r.Text)
		if next <= offset {
			break
		}
		offset = next
	}

	return spans, nil
}

// Extraction is the outcome of reading a date out of a message.
type Extraction struct {
	// Date is the wall-clock time of the last span, in the canonical location.
	Date time.Time
	// Body is the text preceding the last span, trimmed.
	Body string
	Span DateSpan
}

type dateExtractor struct {
	parser DateParser
	loc    *time.Location
	now    func() time.Time
}

func newDateExtractor(parser DateParser, loc *time.Location, now func() time.Time) *dateExtractor {
	return &dateExtractor{parser: parser, loc: loc, now: now}
}

// Extract takes the last date expression of text as the delivery date. A later
// "tomorrow at 5pm" wins over an incidental earlier mention.
func (e *dateExtractor) Extract(text string) (Extraction, error) {
	spans, err := e.parser.ParseAll(text, e.now().In(e.loc))
	if err != nil {
		return Extraction{}, err
	}
	if len(spans) == 0 {
		return Extraction{}, domain.ErrNoDateFound
	}

	last := spans[len(spans)-1]
	if last.Index < 0 || last.Index > len(text) {
		return Extraction{}, fmt.Errorf("date span index %d out of range", last.Index)
	}

	ext := Extraction{
		Date: last.Time,
		Body: trimConnector(strings.TrimSpace(text[:last.Index])),
		Span: last,
	}
	if ext.Body == "" {
		return ext, domain.ErrEmptyMessage
	}

	return ext, nil
}

// trimConnector drops a trailing "at" or "on" left behind when the parser matched
// only the time, as in "standup notes at 9:30pm".
func trimConnector(body string) string {
	i := strings.LastIndexAny(body, " \t\n")
	switch strings.ToLower(body[i+1:]) {
	case "at", "on":
		return strings.TrimSpace(body[:i+1])
	}
	return body
}
