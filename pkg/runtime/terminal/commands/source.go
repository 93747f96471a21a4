package commands

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/report-atlas/pkg/services/config"
	"github.com/de-tools/report-atlas/pkg/services/opportunity"
	"github.com/de-tools/report-atlas/pkg/store/sqlite"
	oppstore "github.com/de-tools/report-atlas/pkg/store/sqlite/opportunity"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// recordSource selects where opportunity records come from: a records file
// or a named data-source profile pointing at a sqlite database.
type recordSource struct {
	recordsPath  string
	profilesPath string
	profile      string
}

func (s *recordSource) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.recordsPath, "records", "", "Path to a JSON records file")
	cmd.Flags().StringVar(&s.profilesPath, "profiles", "reports.ini", "Path to the data-source profiles file")
	cmd.Flags().StringVar(&s.profile, "profile", "", "Data-source profile to read records from")
	cmd.MarkFlagsMutuallyExclusive("records", "profile")
	cmd.MarkFlagsOneRequired("records", "profile")
}

// provider opens the selected source. The returned closer releases the
// database, if one was opened.
func (s *recordSource) provider(ctx context.Context) (opportunity.Provider, func(), error) {
	if s.recordsPath != "" {
		provider, err := opportunity.NewFileProvider(s.recordsPath, 0)
		return provider, func() {}, err
	}

	registry, err := config.NewRegistry(s.profilesPath)
	if err != nil {
		return nil, nil, err
	}
	profile, err := registry.GetProfile(ctx, s.profile)
	if err != nil {
		return nil, nil, err
	}
	zerolog.Ctx(ctx).Debug().Stringer("profile", profile).Msg("using data-source profile")

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: profile.Path})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", profile.Path, err)
	}
	closer := func() { closeDB(ctx, db) }

	store, err := oppstore.NewStore(db)
	if err != nil {
		closer()
		return nil, nil, fmt.Errorf("failed to create opportunity store: %w", err)
	}
	provider, err := opportunity.NewProvider(store, profile.Limit)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return provider, closer, nil
}

func closeDB(ctx context.Context, db *sql.DB) {
	if err := db.Close(); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("failed to close database")
	}
}
