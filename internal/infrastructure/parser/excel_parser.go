package parser

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/laptop-storefront/internal/domain/entity"
)

type excelParser struct{}

func newExcelParser() *excelParser {
	return &excelParser{}
}

// parse workbook baytlaridan birinchi sheetni o'qish
func (e *excelParser) parse(data []byte) (entity.ParseResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return entity.ParseResult{}, fmt.Errorf("%w: failed to open excel: %v", ErrMalformedInput, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return entity.ParseResult{}, fmt.Errorf("%w: excel file has no sheets", ErrMalformedInput)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return entity.ParseResult{}, fmt.Errorf("%w: failed to get rows: %v", ErrMalformedInput, err)
	}
	if len(rows) == 0 {
		return entity.ParseResult{}, nil
	}

	log.Printf("📋 Excel sheet %q header: %v", sheets[0], rows[0])

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = normalizeHeader(h)
	}

	result := entity.ParseResult{Headers: headers}
	for i := 1; i < len(rows); i++ {
		row := rows[i]

		// Bo'sh qatorlarni skip qilish
		if isEmptyRow(row) {
			continue
		}

		cells := make([]string, len(row))
		for j, raw := range row {
			cells[j] = cleanCell(raw)
		}

		// excelize oxiridagi bo'sh kataklarni qaytarmaydi, shuning uchun qisqa qator odatiy hol
		rec, issue := associate(headers, cells, i+1)
		if issue != nil && issue.Kind == entity.IssueLongRow {
			result.Issues = append(result.Issues, *issue)
		}
		result.Records = append(result.Records, rec)
	}

	return result, nil
}

// isEmptyRow qator bo'sh yoki yo'qligini tekshirish
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
