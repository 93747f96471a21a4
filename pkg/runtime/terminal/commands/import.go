package commands

import (
	"context"
	"fmt"

	"github.com/de-tools/report-atlas/pkg/services/opportunity"
	"github.com/de-tools/report-atlas/pkg/store/sqlite"
	oppstore "github.com/de-tools/report-atlas/pkg/store/sqlite/opportunity"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ImportCmd struct {
	recordsPath string
	dbPath      string
}

func NewImportCmd() *cobra.Command {
	ic := &ImportCmd{}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a JSON records file into the opportunity database",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.recordsPath, "records", "", "Path to a JSON records file")
	cmd.Flags().StringVar(&ic.dbPath, "db", "reports.db", "Path to the sqlite database")

	_ = cmd.MarkFlagRequired("records")

	return cmd
}

func (ic *ImportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ic.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", ic.dbPath, err)
	}
	defer closeDB(ctx, db)

	store, err := oppstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create opportunity store: %w", err)
	}

	var imported int
	err = sqlite.InTransaction(ctx, db, func(ctx context.Context) error {
		n, err := opportunity.Import(ctx, store, ic.recordsPath)
		imported = n
		return err
	})
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Str("db", ic.dbPath).Int("records", imported).Msg("opportunities imported")
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d opportunities into %s\n", imported, ic.dbPath)
	return nil
}
