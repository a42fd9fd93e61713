package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/yourusername/laptop-storefront/internal/domain/repository"
)

var (
	// ErrUnexpectedStatus manba 2xx bo'lmagan javob qaytardi
	ErrUnexpectedStatus = errors.New("unexpected status from sheet source")
	// ErrBodyTooLarge javob MaxBytes dan katta
	ErrBodyTooLarge = errors.New("sheet body exceeds size limit")
)

// Options fetcher sozlamalari
type Options struct {
	Timeout  time.Duration
	MaxBytes int64
	Now      func() time.Time
}

type sheetFetcher struct {
	client   *resty.Client
	maxBytes int64
	now      func() time.Time
}

// NewSheetFetcher resty asosidagi fetcher yaratish; qayta urinishlar yo'q
func NewSheetFetcher(opts Options) repository.SheetFetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 20 << 20
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "text/csv, text/plain, */*")

	return &sheetFetcher{
		client:   client,
		maxBytes: opts.MaxBytes,
		now:      opts.Now,
	}
}

// Fetch jadvalni yuklab olish; t=<ms> kesh chetlab o'tish parametri qo'shiladi
func (f *sheetFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("t", strconv.FormatInt(f.now().UnixMilli(), 10)).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("sheet request failed: %w", err)
	}

	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status())
	}

	data, err := io.ReadAll(io.LimitReader(body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("sheet body read failed: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, f.maxBytes)
	}

	log.Printf("📥 Sheet yuklandi: %d bytes (%s)", len(data), resp.Time())
	return data, nil
}
