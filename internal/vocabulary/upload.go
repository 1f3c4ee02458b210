package vocabulary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mmcdole/vocab/internal/domain"
)

var (
	// ErrEmptyInput is returned for blank upload input
	ErrEmptyInput = errors.New("Please paste a JSON array of words")

	// ErrNotArray is returned when the input is valid JSON but not an array
	ErrNotArray = errors.New("Input must be an array")

	// ErrUploadStalled is returned when the server asks for more but does not advance the offset
	ErrUploadStalled = errors.New("upload stalled: server did not advance the offset")
)

// FailedUploadMessage is shown when the server gives no reason for a failure
const FailedUploadMessage = "Failed to add words"

// InputError is an upload input rejected before any request was made
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return e.Err.Error() }
func (e *InputError) Unwrap() error { return e.Err }

// ExampleInput is the expected upload format
const ExampleInput = `[
  {
    "word": "eloquent",
    "meaning": "fluent or persuasive in speaking or writing",
    "synonyms": ["articulate", "fluent", "persuasive"]
  },
  {
    "word": "ephemeral",
    "meaning": "lasting for a very short time",
    "synonyms": ["transient", "fleeting", "temporary"]
  }
]`

// ParseUploadInput checks that text is a JSON array and splits it into
// elements. Elements are kept verbatim.
func ParseUploadInput(text string) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace([]byte(text))
	if len(trimmed) == 0 {
		return nil, &InputError{Err: ErrEmptyInput}
	}

	var raw json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, &InputError{Err: err}
	}
	if raw[0] != '[' {
		return nil, &InputError{Err: ErrNotArray}
	}

	var words []json.RawMessage
	if err := json.Unmarshal(raw, &words); err != nil {
		return nil, &InputError{Err: err}
	}
	if words == nil {
		words = []json.RawMessage{}
	}
	return words, nil
}

// Upload sends words with the server-paged bulk loop. Requests are strictly
// sequential; the offset is always the one the server handed back.
func (s *Service) Upload(ctx context.Context, words []json.RawMessage, onProgress domain.ProgressFunc) (domain.UploadResult, error) {
	report := func(p domain.UploadProgress) {
		if onProgress != nil {
			onProgress(p)
		}
	}

	result := domain.UploadResult{Submitted: len(words)}
	report(domain.UploadProgress{Current: 0, Total: len(words)})

	offset := 0
	for {
		res, err := s.client.BulkAdd(ctx, words, offset)
		result.Requests++
		if err != nil {
			s.logger.Error("bulk upload failed", "error", err, "offset", offset, "requests", result.Requests)
			return result, fmt.Errorf("bulk upload at offset %d: %w", offset, err)
		}

		result.Final = domain.UploadProgress{Current: res.TotalProcessed, Total: res.TotalWords}
		report(result.Final)
		s.logger.Debug("bulk upload progress", "processed", res.TotalProcessed, "total", res.TotalWords, "hasMore", res.HasMore)

		if !res.HasMore {
			s.logger.Info("bulk upload finished", "words", len(words), "requests", result.Requests)
			return result, nil
		}

		if res.NextOffset <= offset {
			s.logger.Error("bulk upload stalled", "offset", offset, "nextOffset", res.NextOffset)
			return result, fmt.Errorf("%w (offset %d, next %d)", ErrUploadStalled, offset, res.NextOffset)
		}
		offset = res.NextOffset

		if err := sleep(ctx, s.uploadPause); err != nil {
			return result, err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SuccessMessage is shown after a finished upload
func SuccessMessage(r domain.UploadResult) string {
	return fmt.Sprintf("Successfully added %d words!", r.Submitted)
}

// FailureMessage turns an upload error into the text shown to the user
func FailureMessage(err error) string {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return inputErr.Error()
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		if strings.TrimSpace(apiErr.Message) != "" {
			return apiErr.Message
		}
		return FailedUploadMessage
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return FailedUploadMessage
	case errors.Is(err, domain.ErrServerOffline):
		return domain.ErrServerOffline.Error()
	case errors.Is(err, ErrUploadStalled):
		return ErrUploadStalled.Error()
	case errors.Is(err, context.Canceled):
		return "Upload canceled"
	}
	return err.Error()
}
