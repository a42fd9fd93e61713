package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"golang.org/x/text/unicode/norm"
)

// QuoteMode qo'shtirnoqlarni qayta ishlash rejimi
type QuoteMode string

const (
	// QuoteRFC4180 "" -> " va qo'shtirnoq ichidagi yangi qatorlar
	QuoteRFC4180 QuoteMode = "rfc4180"
	// QuoteLegacy har bir " inQuote ni almashtiradi va tashlab yuboriladi
	QuoteLegacy QuoteMode = "legacy"
)

// ErrMalformedInput fayl umuman o'qib bo'lmaydigan holatda
var ErrMalformedInput = errors.New("malformed sheet input")

const utf8BOM = "\ufeff"

// ParseQuoteMode konfiguratsiya qiymatini tekshirish
func ParseQuoteMode(raw string) (QuoteMode, error) {
	switch QuoteMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", QuoteRFC4180:
		return QuoteRFC4180, nil
	case QuoteLegacy:
		return QuoteLegacy, nil
	}
	return "", fmt.Errorf("unknown csv quote mode %q", raw)
}

type csvParser struct {
	mode QuoteMode
}

func newCSVParser(mode QuoteMode) *csvParser {
	if mode == "" {
		mode = QuoteRFC4180
	}
	return &csvParser{mode: mode}
}

// parse CSV matnni header-kalitli yozuvlarga aylantirish
func (c *csvParser) parse(data []byte) (entity.ParseResult, error) {
	if !utf8.Valid(data) {
		return entity.ParseResult{}, fmt.Errorf("%w: input is not valid UTF-8 text", ErrMalformedInput)
	}

	text := strings.TrimPrefix(string(data), utf8BOM)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	headers, next := c.readHeader(lines)
	result := entity.ParseResult{Headers: headers}

	for i := next; i < len(lines); {
		if strings.TrimSpace(lines[i]) == "" {
			i++
			continue
		}

		lineNo := i + 1
		cells, after, open := c.scanRow(lines, i)
		i = after

		if open {
			result.Issues = append(result.Issues, entity.RowIssue{
				Line:   lineNo,
				Kind:   entity.IssueUnterminatedQuote,
				Detail: "quoted field not closed before end of input",
			})
		}
		rec, issue := associate(headers, cells, lineNo)
		if issue != nil {
			result.Issues = append(result.Issues, *issue)
		}
		result.Records = append(result.Records, rec)
	}

	return result, nil
}

// readHeader birinchi qatordan header ro'yxatini olish
func (c *csvParser) readHeader(lines []string) ([]string, int) {
	if c.mode == QuoteLegacy {
		parts := strings.Split(lines[0], ",")
		headers := make([]string, len(parts))
		for i, p := range parts {
			headers[i] = normalizeHeader(stripQuotePair(strings.TrimSpace(p)))
		}
		return headers, 1
	}

	cells, next, _ := c.scanRow(lines, 0)
	headers := make([]string, len(cells))
	for i, cell := range cells {
		headers[i] = normalizeHeader(cell)
	}
	return headers, next
}

// scanRow bitta mantiqiy qatorni o'qiydi. rfc4180 rejimida qo'shtirnoq faqat katak
// boshida ochiladi, katak ichidagi " oddiy belgi (masalan 15.6"); ochiq qo'shtirnoq
// keyingi fizik qatorga davom etadi. legacy rejimida har bir " almashtiradi va qator
// chegarasi qat'iy.
func (c *csvParser) scanRow(lines []string, start int) (cells []string, next int, open bool) {
	var buf strings.Builder
	inQuote := false
	fieldStarted := false // katakda bo'sh joydan boshqa belgi yoki qo'shtirnoq bo'lganmi
	i := start

	for {
		line := lines[i]
		for j := 0; j < len(line); j++ {
			ch := line[j]
			switch {
			case ch == '"' && c.mode == QuoteLegacy:
				inQuote = !inQuote
			case ch == '"' && inQuote:
				if j+1 < len(line) && line[j+1] == '"' {
					buf.WriteByte('"')
					j++
					continue
				}
				inQuote = false
			case ch == '"' && !fieldStarted:
				inQuote = true
				fieldStarted = true
			case ch == ',' && !inQuote:
				cells = append(cells, cleanCell(buf.String()))
				buf.Reset()
				fieldStarted = false
			default:
				if ch != ' ' && ch != '\t' {
					fieldStarted = true
				}
				buf.WriteByte(ch)
			}
		}
		i++

		if !inQuote || c.mode == QuoteLegacy || i >= len(lines) {
			break
		}
		buf.WriteByte('\n')
	}

	cells = append(cells, cleanCell(buf.String()))
	return cells, i, inQuote
}

// associate header[i] -> cells[i]; yetishmagan kataklar "" bo'ladi, ortiqchalari tashlanadi
func associate(headers, cells []string, lineNo int) (entity.RawRecord, *entity.RowIssue) {
	rec := make(entity.RawRecord, len(headers))
	for i, h := range headers {
		if i < len(cells) {
			rec[h] = cells[i]
		} else {
			rec[h] = ""
		}
	}

	switch {
	case len(cells) < len(headers):
		return rec, &entity.RowIssue{
			Line:   lineNo,
			Kind:   entity.IssueShortRow,
			Detail: fmt.Sprintf("%d of %d cells present", len(cells), len(headers)),
		}
	case len(cells) > len(headers):
		return rec, &entity.RowIssue{
			Line:   lineNo,
			Kind:   entity.IssueLongRow,
			Detail: fmt.Sprintf("%d extra cells dropped", len(cells)-len(headers)),
		}
	}
	return rec, nil
}

func cleanCell(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func normalizeHeader(h string) string {
	return norm.NFC.String(strings.TrimSpace(strings.TrimPrefix(h, utf8BOM)))
}

// stripQuotePair ikkala chetda ham " bo'lsa bitta juftni olib tashlaydi
func stripQuotePair(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
