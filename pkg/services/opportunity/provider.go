package opportunity

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/de-tools/report-atlas/pkg/adapters"
	"github.com/de-tools/report-atlas/pkg/models/api"
	"github.com/de-tools/report-atlas/pkg/models/domain"
	"github.com/de-tools/report-atlas/pkg/models/store"
	oppstore "github.com/de-tools/report-atlas/pkg/store/sqlite/opportunity"
	"github.com/rs/zerolog"
	"github.com/tailscale/hujson"
)

// DefaultLimit caps how many records one evaluation looks at.
const DefaultLimit = 10000

// Provider supplies the record snapshot reports are evaluated against.
type Provider interface {
	ListOpportunities(ctx context.Context) ([]domain.Opportunity, error)
}

type storeProvider struct {
	store oppstore.Store
	limit int
}

func NewProvider(opportunities oppstore.Store, limit int) (Provider, error) {
	if opportunities == nil {
		return nil, fmt.Errorf("opportunity store is nil")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &storeProvider{store: opportunities, limit: limit}, nil
}

func (p *storeProvider) ListOpportunities(ctx context.Context) ([]domain.Opportunity, error) {
	logger := zerolog.Ctx(ctx)

	rows, err := p.store.List(ctx, p.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	records := make([]domain.Opportunity, 0, len(rows))
	for _, row := range rows {
		opp, err := adapters.MapStoreOpportunityToDomain(row)
		if err != nil {
			logger.Warn().Err(err).Str("opportunity_id", row.ID).Msg("skipping malformed opportunity")
			continue
		}
		records = append(records, opp)
	}

	logger.Debug().Int("records", len(records)).Int("limit", p.limit).Msg("opportunities loaded")
	return records, nil
}

type fileProvider struct {
	path  string
	limit int
}

// NewFileProvider reads records from a JSON array of opportunities. Comments
// and trailing commas are accepted. Like the store provider it keeps the
// newest limit records, newest first.
func NewFileProvider(path string, limit int) (Provider, error) {
	if path == "" {
		return nil, fmt.Errorf("records file path is required")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &fileProvider{path: path, limit: limit}, nil
}

func (p *fileProvider) ListOpportunities(ctx context.Context) ([]domain.Opportunity, error) {
	wire, err := ReadRecordsFile(p.path)
	if err != nil {
		return nil, err
	}
	records, err := adapters.MapApiOpportunitiesToDomain(wire)
	if err != nil {
		return nil, fmt.Errorf("failed to map records from %s: %w", p.path, err)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if len(records) > p.limit {
		records = records[:p.limit]
	}
	zerolog.Ctx(ctx).Debug().Str("path", p.path).Int("records", len(records)).Msg("opportunities loaded")
	return records, nil
}

func ReadRecordsFile(path string) ([]api.Opportunity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file: %w", err)
	}
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse records file %s: %w", path, err)
	}

	var wire []api.Opportunity
	if err := json.Unmarshal(standardized, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode records file %s: %w", path, err)
	}
	return wire, nil
}

// Import loads a records file into the opportunity store. It joins the
// transaction carried by ctx, if any.
func Import(ctx context.Context, opportunities oppstore.Store, path string) (int, error) {
	wire, err := ReadRecordsFile(path)
	if err != nil {
		return 0, err
	}
	records, err := adapters.MapApiOpportunitiesToDomain(wire)
	if err != nil {
		return 0, fmt.Errorf("failed to map records from %s: %w", path, err)
	}

	rows := make([]store.Opportunity, 0, len(records))
	for _, opp := range records {
		rows = append(rows, adapters.MapDomainOpportunityToStore(opp))
	}
	if err := opportunities.Add(ctx, rows); err != nil {
		return 0, fmt.Errorf("failed to import opportunities: %w", err)
	}
	return len(rows), nil
}
