package parser

import (
	"context"
	"log"
	"path/filepath"
	"strings"

	"github.com/yourusername/laptop-storefront/internal/domain/entity"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

type sheetParser struct {
	csv   *csvParser
	excel *excelParser
}

// NewSheetParser CSV va XLSX uchun umumiy parser yaratish
func NewSheetParser(mode QuoteMode) repository.RecordParser {
	return &sheetParser{
		csv:   newCSVParser(mode),
		excel: newExcelParser(),
	}
}

// Parse kengaytma bo'yicha formatni tanlab o'qish; boshqa hamma narsa CSV
func (p *sheetParser) Parse(ctx context.Context, data []byte, filename string) (entity.ParseResult, error) {
	var (
		result entity.ParseResult
		err    error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		result, err = p.excel.parse(data)
	default:
		result, err = p.csv.parse(data)
	}
	if err != nil {
		return entity.ParseResult{}, err
	}

	if len(result.Issues) > 0 {
		log.Printf("⚠️ %s: %d rows parsed, %d row issues", displayName(filename), len(result.Records), len(result.Issues))
	}
	return result, nil
}

func displayName(filename string) string {
	if filename == "" {
		return "sheet"
	}
	return filename
}
