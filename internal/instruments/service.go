package instruments

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/vikkysarswat/dhan-mcp-server/internal/models"
)

// commonIDs short-circuits lookups for a handful of heavily traded NSE
// equities so they resolve without touching the database.
var commonIDs = map[string]string{
	"reliance": "2885",
	"tcs":      "11536",
	"infosys":  "1594",
	"hdfcbank": "1333",
}

// Service downloads the scrip master on demand and answers searches from
// the local store.
type Service struct {
	store     *Store
	http      *http.Client
	masterURL string
	refresh   time.Duration
	log       zerolog.Logger
}

// ServiceConfig holds Service settings.
type ServiceConfig struct {
	MasterURL  string
	Refresh    time.Duration
	HTTPClient *http.Client
}

// NewService builds a Service over an opened store.
func NewService(store *Store, cfg ServiceConfig, log zerolog.Logger) *Service {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	refresh := cfg.Refresh
	if refresh <= 0 {
		refresh = 24 * time.Hour
	}
	return &Service{
		store:     store,
		http:      httpClient,
		masterURL: cfg.MasterURL,
		refresh:   refresh,
		log:       log,
	}
}

// EnsureFresh downloads and replaces the instrument master when the local
// copy is missing or older than the refresh window.
func (s *Service) EnsureFresh(ctx context.Context) error {
	if loadedAt, ok := s.store.LoadedAt(ctx); ok && time.Since(loadedAt) < s.refresh {
		return nil
	}

	s.log.Info().Str("url", s.masterURL).Msg("downloading instrument master")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.masterURL, nil)
	if err != nil {
		return fmt.Errorf("building master request: %w", err)
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("downloading instrument master: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading instrument master: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading instrument master: %w", err)
	}

	rows, err := parseMaster(data)
	if err != nil {
		return fmt.Errorf("parsing instrument master: %w", err)
	}
	if err := s.store.Replace(ctx, rows); err != nil {
		return fmt.Errorf("storing instrument master: %w", err)
	}

	s.log.Info().Int("instruments", len(rows)).Msg("instrument master loaded")
	return nil
}

// Search runs a query against the local master, refreshing it first if stale.
func (s *Service) Search(ctx context.Context, q Query) ([]models.Instrument, error) {
	if err := s.EnsureFresh(ctx); err != nil {
		return nil, err
	}
	return s.store.Search(ctx, q)
}

// Resolve maps a free-text symbol or company name to a security id within
// a segment. Common names resolve from a shortcut table first.
func (s *Service) Resolve(ctx context.Context, query string, segment models.ExchangeSegment) (string, error) {
	if id, ok := commonIDs[normalize(query)]; ok {
		return id, nil
	}
	matches, err := s.Search(ctx, Query{Text: query, ExchangeSegment: segment, Limit: 1})
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", &models.ValidationError{Field: "query", Message: fmt.Sprintf("no instrument matches %q", query)}
	}
	return matches[0].SecurityID, nil
}

// Count reports how many instruments are loaded locally.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// LoadedAt reports when the local master was last refreshed.
func (s *Service) LoadedAt(ctx context.Context) (time.Time, bool) {
	return s.store.LoadedAt(ctx)
}

func normalize(q string) string {
	out := make([]rune, 0, len(q))
	for _, r := range q {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r == ' ' || r == '\t' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
