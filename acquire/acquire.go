package acquire

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Tutortoise/image-safety-service/models"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultMaxBytes  = 20 << 20
	DefaultUserAgent = "image-safety-service/1.0"
)

type Options struct {
	Timeout   time.Duration
	MaxBytes  int64
	UserAgent string
}

// Fetcher resolves a request's image source into encoded bytes.
type Fetcher struct {
	httpClient *http.Client
	maxBytes   int64
	userAgent  string
}

func NewFetcher(opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: opts.Timeout},
		maxBytes:   opts.MaxBytes,
		userAgent:  opts.UserAgent,
	}
}

// Resolve returns the encoded image bytes for src. Every failure is a
// *models.ProcessingError carrying the message shown to the caller.
func (f *Fetcher) Resolve(ctx context.Context, src models.ImageSource) ([]byte, error) {
	switch s := src.(type) {
	case models.InlineImage:
		if len(s.Data) == 0 {
			return nil, models.NewProcessingError(models.StageInput, models.MsgEmptyImageData, nil)
		}
		return s.Data, nil
	case models.RemoteImage:
		if s.URL == "" {
			return nil, models.NewProcessingError(models.StageInput, models.MsgEmptyImageURL, nil)
		}
		return f.fetch(ctx, s.URL)
	case nil:
		return nil, models.NewProcessingError(models.StageInput, models.MsgNoImageSource, nil)
	default:
		return nil, models.NewProcessingError(models.StageInput, fmt.Sprintf("unsupported image source %T", src), nil)
	}
}

func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	fetchErr := func(cause error) error {
		return models.NewProcessingError(models.StageAcquire, fmt.Sprintf(models.MsgFetchFailed, url), cause)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fetchErr(err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fetchErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fetchErr(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err == nil && int64(len(data)) > f.maxBytes {
		err = fmt.Errorf("image exceeds %d bytes", f.maxBytes)
	}
	if err != nil {
		return nil, models.NewProcessingError(models.StageAcquire, fmt.Sprintf(models.MsgReadFailed, url), err)
	}
	return data, nil
}
