//go:generate mockgen -destination=mock/client_mock.go -package=mock_vocabulary github.com/mmcdole/vocab/internal/domain VocabularyClient

package vocabulary

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmcdole/vocab/internal/domain"
)

// DefaultUploadPause is the delay between bulk upload requests
const DefaultUploadPause = 100 * time.Millisecond

// Service orchestrates vocabulary client + session store operations.
type Service struct {
	client domain.VocabularyClient
	store  domain.SessionStore
	logger *slog.Logger

	uploadPause time.Duration
}

// Option configures a Service
type Option func(*Service)

// WithUploadPause sets the delay between bulk upload requests
func WithUploadPause(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.uploadPause = d
		}
	}
}

// NewService creates a new vocabulary service.
func NewService(client domain.VocabularyClient, store domain.SessionStore, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{client: client, store: store, logger: logger, uploadPause: DefaultUploadPause}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) FetchPage(ctx context.Context, page, limit int) (domain.Page, error) {
	p, err := s.client.ListWords(ctx, page, limit)
	if err != nil {
		s.logger.Error("failed to fetch vocabulary", "error", err, "page", page)
		return domain.Page{}, err
	}
	s.logger.Debug("fetched vocabulary page", "page", page, "count", len(p.Entries), "total", p.Pagination.Total)
	return p, nil
}

// FetchGroups returns the group mapping, from the session cache when present.
// The bool reports a cache hit.
func (s *Service) FetchGroups(ctx context.Context) (domain.Groups, bool, error) {
	if groups, ok := s.store.GetGroups(); ok {
		s.logger.Debug("groups served from session", "count", len(groups))
		return groups, true, nil
	}

	groups, err := s.client.GetGroups(ctx)
	if err != nil {
		s.logger.Error("failed to fetch groups", "error", err)
		return nil, false, err
	}
	if err := s.store.SaveGroups(groups); err != nil {
		s.logger.Error("failed to save groups", "error", err)
	}
	s.logger.Debug("fetched groups", "count", len(groups))
	return groups, false, nil
}

func (s *Service) FetchRandom(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.client.GetRandom(ctx)
	if err != nil {
		s.logger.Error("failed to fetch random words", "error", err)
		return nil, err
	}
	s.logger.Debug("fetched random words", "count", len(entries))
	return entries, nil
}

func (s *Service) FetchTones(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.client.GetTones(ctx)
	if err != nil {
		s.logger.Error("failed to fetch tones", "error", err)
		return nil, err
	}
	s.logger.Debug("fetched tones", "count", len(entries))
	return entries, nil
}

// DeleteWord deletes an entry on the server. The groups cache is left alone.
func (s *Service) DeleteWord(ctx context.Context, word string) error {
	if err := s.client.DeleteWord(ctx, word); err != nil {
		s.logger.Error("failed to delete word", "error", err, "word", word)
		return err
	}
	s.logger.Info("deleted word", "word", word)
	return nil
}

func (s *Service) SessionInfo() domain.SessionInfo {
	return s.store.Info()
}

func (s *Service) EndSession() error {
	if err := s.store.End(); err != nil {
		s.logger.Error("failed to end session", "error", err)
		return err
	}
	s.logger.Info("session ended")
	return nil
}
