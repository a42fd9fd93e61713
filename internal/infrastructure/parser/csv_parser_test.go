package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yourusername/laptop-storefront/internal/domain/entity"
)

func parseCSV(t *testing.T, mode QuoteMode, text string) entity.ParseResult {
	t.Helper()
	res, err := newCSVParser(mode).parse([]byte(text))
	require.NoError(t, err)
	return res
}

func TestCSVParser(t *testing.T) {
	t.Run("HeaderKeyedRecords", func(t *testing.T) {
		res := parseCSV(t, QuoteRFC4180, "Name,Price\nDell XPS,45.000.000₫\n")
		require.Equal(t, []string{"Name", "Price"}, res.Headers)
		require.Len(t, res.Records, 1)
		require.Equal(t, entity.RawRecord{"Name": "Dell XPS", "Price": "45.000.000₫"}, res.Records[0])
		require.Empty(t, res.Issues)
	})

	t.Run("QuotedCommaStaysInOneCell", func(t *testing.T) {
		for _, mode := range []QuoteMode{QuoteRFC4180, QuoteLegacy} {
			res := parseCSV(t, mode, "Name,Price\nAsus,\"6.000.000,6.700.000\"\n")
			require.Len(t, res.Records, 1, mode)
			require.Equal(t, "6.000.000,6.700.000", res.Records[0]["Price"], mode)
		}
	})

	t.Run("ShortRowResolvesToEmptyStrings", func(t *testing.T) {
		res := parseCSV(t, QuoteRFC4180, "Name,Price,Brand\nDell\n")
		require.Len(t, res.Records, 1)
		require.Equal(t, "Dell", res.Records[0]["Name"])
		require.Equal(t, "", res.Records[0]["Price"])
		require.Equal(t, "", res.Records[0]["Brand"])
		require.Equal(t, []entity.RowIssue{{Line: 2, Kind: entity.IssueShortRow, Detail: "1 of 3 cells present"}}, res.Issues)
	})

	t.Run("LongRowDropsExtraCells", func(t *testing.T) {
		res := parseCSV(t, QuoteRFC4180, "Name\nA,B,C\n")
		require.Equal(t, entity.RawRecord{"Name": "A"}, res.Records[0])
		require.Len(t, res.Issues, 1)
		require.Equal(t, entity.IssueLongRow, res.Issues[0].Kind)
	})

	t.Run("BlankLinesSkippedAndNotCounted", func(t *testing.T) {
		res := parseCSV(t, QuoteRFC4180, "Name,Price\n\n   \nA\n\nB,2\n")
		require.Len(t, res.Records, 2)
		require.Equal(t, "A", res.Records[0]["Name"])
		require.Equal(t, "B", res.Records[1]["Name"])
		require.Equal(t, 4, res.Issues[0].Line)
	})

	t.Run("CRLFAndBOM", func(t *testing.T) {
		res := parseCSV(t, QuoteRFC4180, "\ufeffName,Price\r\nA,1\r\n")
		require.Equal(t, []string{"Name", "Price"}, res.Headers)
		require.Equal(t, entity.RawRecord{"Name": "A", "Price": "1"}, res.Records[0])
	})

	t.Run("DecomposedHeaderIsNormalized", func(t *testing.T) {
		res := parseCSV(t, QuoteRFC4180, "Tên\nA\n")
		require.Equal(t, "A", res.Records[0]["Tên"])
	})

	t.Run("DuplicateHeaderRightmostWins", func(t *testing.T) {
		res := parseCSV(t, QuoteRFC4180, "Name,Name\nA,B\n")
		require.Equal(t, "B", res.Records[0]["Name"])
	})

	t.Run("EmptyInput", func(t *testing.T) {
		res := parseCSV(t, QuoteRFC4180, "")
		require.Empty(t, res.Records)
	})

	t.Run("InvalidUTF8IsMalformed", func(t *testing.T) {
		_, err := newCSVParser(QuoteRFC4180).parse([]byte{'N', 0xff, 0xfe, '\n'})
		require.ErrorIs(t, err, ErrMalformedInput)
	})
}

func TestCSVParserQuoteModes(t *testing.T) {
	t.Run("DoubledQuoteRFC4180", func(t *testing.T) {
		res := parseCSV(t, QuoteRFC4180, "Name,Description\nX,\"He said \"\"hi\"\"\"\n")
		require.Equal(t, `He said "hi"`, res.Records[0]["Description"])
	})

	t.Run("DoubledQuoteLegacy", func(t *testing.T) {
		res := parseCSV(t, QuoteLegacy, "Name,Description\nX,\"He said \"\"hi\"\"\"\n")
		require.Equal(t, "He said hi", res.Records[0]["Description"])
	})

	t.Run("MultilineFieldRFC4180", func(t *testing.T) {
		res := parseCSV(t, QuoteRFC4180, "Name,Description\nX,\"line1\r\nline2\"\nY,z\n")
		require.Len(t, res.Records, 2)
		require.Equal(t, "line1\nline2", res.Records[0]["Description"])
		require.Equal(t, "Y", res.Records[1]["Name"])
	})

	t.Run("MultilineFieldLegacySplitsRows", func(t *testing.T) {
		res := parseCSV(t, QuoteLegacy, "Name,Description\nX,\"line1\nline2\"\nY,z\n")
		require.Len(t, res.Records, 3)
		require.Equal(t, "line1", res.Records[0]["Description"])
		require.Equal(t, "line2", res.Records[1]["Name"])
	})

	t.Run("QuotedHeadersLegacy", func(t *testing.T) {
		res := parseCSV(t, QuoteLegacy, "\"Name\",\"Price\"\nA,1\n")
		require.Equal(t, []string{"Name", "Price"}, res.Headers)
	})

	t.Run("QuotedHeaderWithCommaRFC4180", func(t *testing.T) {
		res := parseCSV(t, QuoteRFC4180, "\"Name, full\",Price\nA,1\n")
		require.Equal(t, []string{"Name, full", "Price"}, res.Headers)
	})

	t.Run("InchMarkInsideFieldIsLiteralRFC4180", func(t *testing.T) {
		res := parseCSV(t, QuoteRFC4180, "Name,Specs,Price\nDell XPS,15.6\" OLED,45.000.000₫\nMacBook Air,13.6\" Retina,30.000.000₫\nAsus,i5,20.000.000₫\n")
		require.Empty(t, res.Issues)
		require.Len(t, res.Records, 3)
		require.Equal(t, entity.RawRecord{"Name": "Dell XPS", "Specs": `15.6" OLED`, "Price": "45.000.000₫"}, res.Records[0])
		require.Equal(t, entity.RawRecord{"Name": "MacBook Air", "Specs": `13.6" Retina`, "Price": "30.000.000₫"}, res.Records[1])
		require.Equal(t, "Asus", res.Records[2]["Name"])
	})

	t.Run("QuoteAfterLeadingSpaceOpensField", func(t *testing.T) {
		res := parseCSV(t, QuoteRFC4180, "Name,Price\nA,  \"1,5\"\n")
		require.Empty(t, res.Issues)
		require.Equal(t, "1,5", res.Records[0]["Price"])
	})

	t.Run("UnterminatedQuoteKeepsBestEffortRecord", func(t *testing.T) {
		res := parseCSV(t, QuoteRFC4180, "Name,Description\nA,\"open\nB,c\n")
		require.Len(t, res.Records, 1)
		require.Equal(t, "open\nB,c", res.Records[0]["Description"])
		require.Equal(t, entity.IssueUnterminatedQuote, res.Issues[0].Kind)
		require.Equal(t, 2, res.Issues[0].Line)
	})
}

func TestParseQuoteMode(t *testing.T) {
	mode, err := ParseQuoteMode("")
	require.NoError(t, err)
	require.Equal(t, QuoteRFC4180, mode)

	mode, err = ParseQuoteMode(" Legacy ")
	require.NoError(t, err)
	require.Equal(t, QuoteLegacy, mode)

	_, err = ParseQuoteMode("strict")
	require.Error(t, err)
}

func TestSheetParserDispatch(t *testing.T) {
	p := NewSheetParser(QuoteRFC4180)

	res, err := p.Parse(context.Background(), []byte("Name\nA\n"), "products.CSV")
	require.NoError(t, err)
	require.Len(t, res.Records, 1)

	_, err = p.Parse(context.Background(), []byte("Name\nA\n"), "products.xlsx")
	require.ErrorIs(t, err, ErrMalformedInput)
}
