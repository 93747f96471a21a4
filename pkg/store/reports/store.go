package reports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/de-tools/report-atlas/pkg/adapters"
	"github.com/de-tools/report-atlas/pkg/models/api"
	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/store/kv"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// StateKey is the key all saved reports are persisted under, as one JSON array.
const StateKey = "savedReportsState"

var ErrReportNotFound = errors.New("report not found")

type Store interface {
	List(ctx context.Context) ([]domain.ReportConfig, error)
	Get(ctx context.Context, id string) (domain.ReportConfig, error)
	Save(ctx context.Context, cfg domain.ReportConfig) (domain.ReportConfig, error)
	Delete(ctx context.Context, id string) error
}

type Option func(*reportStore)

// WithClock overrides the timestamp source used on save.
func WithClock(now func() time.Time) Option {
	return func(s *reportStore) {
		s.now = now
	}
}

type reportStore struct {
	mu  sync.Mutex
	kv  kv.Store
	now func() time.Time
}

func NewStore(store kv.Store, opts ...Option) (Store, error) {
	if store == nil {
		return nil, fmt.Errorf("kv store is nil")
	}
	s := &reportStore{
		kv:  store,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// entry is one element of the persisted array. Elements that cannot be
// read keep their raw bytes and are written back untouched.
type entry struct {
	id     string
	config domain.ReportConfig
	raw    json.RawMessage
}

func (e entry) readable() bool {
	return e.raw == nil
}

func (s *reportStore) List(ctx context.Context) ([]domain.ReportConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return readableConfigs(entries), nil
}

func (s *reportStore) Get(ctx context.Context, id string) (domain.ReportConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return domain.ReportConfig{}, err
	}
	for _, e := range entries {
		if e.readable() && e.id == id {
			return e.config, nil
		}
	}
	return domain.ReportConfig{}, fmt.Errorf("%w: %s", ErrReportNotFound, id)
}

// Save inserts a new report (empty ID) or replaces the one with the same ID.
// Unset fields get the report builder defaults.
func (s *reportStore) Save(ctx context.Context, cfg domain.ReportConfig) (domain.ReportConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return domain.ReportConfig{}, err
	}

	now := s.now().UTC()
	cfg = cfg.WithDefaults()
	cfg.UpdatedAt = now

	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
	}

	replaced := false
	for i := range entries {
		if entries[i].id != cfg.ID {
			continue
		}
		if entries[i].readable() {
			cfg.CreatedAt = entries[i].config.CreatedAt
		}
		if cfg.CreatedAt.IsZero() {
			cfg.CreatedAt = now
		}
		entries[i] = entry{id: cfg.ID, config: cfg}
		replaced = true
		break
	}
	if !replaced {
		if cfg.CreatedAt.IsZero() {
			cfg.CreatedAt = now
		}
		entries = append(entries, entry{id: cfg.ID, config: cfg})
	}

	if err := s.persist(ctx, entries); err != nil {
		return domain.ReportConfig{}, err
	}

	zerolog.Ctx(ctx).Debug().Str("report_id", cfg.ID).Bool("replaced", replaced).Msg("report saved")
	return cfg, nil
}

// Delete removes the report with the given ID, readable or not.
func (s *reportStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]entry, 0, len(entries))
	for _, e := range entries {
		if id == "" || e.id != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return fmt.Errorf("%w: %s", ErrReportNotFound, id)
	}
	return s.persist(ctx, kept)
}

func (s *reportStore) load(ctx context.Context) ([]entry, error) {
	raw, err := s.kv.Get(ctx, StateKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load saved reports: %w", err)
	}

	var stored []json.RawMessage
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode saved reports: %w", err)
	}

	logger := zerolog.Ctx(ctx)
	entries := make([]entry, 0, len(stored))
	for _, item := range stored {
		var wire api.ReportConfig
		if err := json.Unmarshal(item, &wire); err != nil {
			logger.Warn().Err(err).Msg("keeping unreadable saved report as is")
			entries = append(entries, entry{raw: item})
			continue
		}
		cfg, err := adapters.MapApiReportConfigToDomain(wire)
		if err != nil {
			logger.Warn().Err(err).Str("report_id", wire.ID).Msg("keeping unreadable saved report as is")
			entries = append(entries, entry{id: wire.ID, raw: item})
			continue
		}
		entries = append(entries, entry{id: cfg.ID, config: cfg})
	}
	return entries, nil
}

func (s *reportStore) persist(ctx context.Context, entries []entry) error {
	stored := make([]any, 0, len(entries))
	for _, e := range entries {
		if !e.readable() {
			stored = append(stored, e.raw)
			continue
		}
		stored = append(stored, adapters.MapDomainReportConfigToApi(e.config))
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode saved reports: %w", err)
	}
	if err := s.kv.Set(ctx, StateKey, raw); err != nil {
		return fmt.Errorf("failed to persist saved reports: %w", err)
	}
	return nil
}

func readableConfigs(entries []entry) []domain.ReportConfig {
	configs := make([]domain.ReportConfig, 0, len(entries))
	for _, e := range entries {
		if e.readable() {
			configs = append(configs, e.config)
		}
	}
	return configs
}
