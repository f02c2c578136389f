// Command impactctl runs maintenance tasks against an impactlens store:
// schema migrations, demo data and one-off report generation.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"impactlens/internal/adapters/memstore"
	pg "impactlens/internal/adapters/postgres"
	"impactlens/internal/app"
	"impactlens/internal/catalog"
	"impactlens/internal/config"
	"impactlens/internal/llm"
	"impactlens/internal/seed"
	"impactlens/internal/services/investor"
	"impactlens/internal/services/reports"
	"impactlens/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// env carries what every subcommand needs. Tests replace newClient to avoid
// the network.
type env struct {
	cfg       config.Config
	log       *zap.Logger
	newClient func(context.Context, config.LLMConfig) (llm.Client, error)
}

func newRootCmd() *cobra.Command {
	e := &env{newClient: app.NewLLM}
	root := &cobra.Command{
		Use:          "impactctl",
		Short:        "Maintenance commands for impactlens",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, cfgErr := config.Load()
			log, err := app.Logger(cfg)
			if err != nil {
				return err
			}
			if cfgErr != nil {
				log.Debug("configuration", zap.Error(cfgErr))
			}
			e.cfg, e.log = cfg, log
			return nil
		},
	}
	root.AddCommand(newMigrateCmd(e), newSeedCmd(e), newReportCmd(e))
	return root
}

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|status|down",
		Short:     "Run Postgres schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "status", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL is required")
			}
			return pg.Migrate(cmd.Context(), e.cfg.DatabaseURL, args[0])
		},
	}
}

func newSeedCmd(e *env) *cobra.Command {
	var (
		workspace   string
		investments int
		seedValue   uint64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write demo investor preferences and investments into a workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if investments < 0 {
				return fmt.Errorf("--investments must not be negative")
			}
			backend, closeFn, err := app.OpenBackend(cmd.Context(), e.cfg, e.log)
			if err != nil {
				return err
			}
			defer closeFn()

			cat := catalog.Default()
			ctx := store.WithWorkspace(cmd.Context(), workspace)
			res, err := seed.Investor(ctx, investor.New(backend, cat), seed.NewGenerator(seedValue, cat), investments)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded workspace %q: investor %s, %d investments\n",
				store.Workspace(ctx), res.Preferences.InvestorName, len(res.Investments))
			return nil
		},
	}
	cmd.Flags().StringVar(&workspace, "workspace", store.DefaultWorkspace, "workspace to write into")
	cmd.Flags().IntVar(&investments, "investments", 8, "number of investments to create")
	cmd.Flags().Uint64Var(&seedValue, "seed", 1, "random seed; the same seed writes the same data")
	return cmd
}

func newReportCmd(e *env) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate one report from a metrics JSON file and print it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			metrics, err := readMetrics(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			client, err := e.newClient(cmd.Context(), e.cfg.LLM)
			if err != nil {
				return err
			}
			text, err := reports.New(client, memstore.New()).Generate(cmd.Context(), metrics)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", `metrics JSON file, "-" for stdin; defaults to sample metrics`)
	return cmd
}

func readMetrics(stdin io.Reader, file string) (json.RawMessage, error) {
	var (
		raw []byte
		err error
	)
	switch file {
	case "":
		return reports.SampleMetrics, nil
	case "-":
		raw, err = io.ReadAll(stdin)
	default:
		raw, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("read metrics: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("read metrics: %s is not valid JSON", file)
	}
	return raw, nil
}
