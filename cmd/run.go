package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lectio/internal/app"
	"github.com/abhisek/lectio/internal/assessment"
	"github.com/abhisek/lectio/internal/gateway"
	"github.com/abhisek/lectio/internal/llm"
	"github.com/abhisek/lectio/internal/messages"
	"github.com/abhisek/lectio/internal/store"
)

// deps are the services shared by the TUI and the headless command.
type deps struct {
	store  *store.Store
	logger *zap.Logger
	orch   *assessment.Orchestrator
}

func (d *deps) Close() {
	_ = d.logger.Sync()
	d.store.Close()
}

// buildDeps loads .env, opens the store and wires the gateway into a
// fresh orchestrator.
func buildDeps(cmd *cobra.Command) (*deps, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: could not read .env:", err)
	}

	logger, err := newLogger(cmd)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	st, err := openStore(cmd)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(cmd.Context(), eventRepo, logger)
	if err != nil {
		st.Close()
		_ = logger.Sync()
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}
	logger.Info("llm provider ready", zap.String("model", provider.ModelID()))

	msgs := messages.French()
	gw := gateway.New(provider, gateway.DefaultConfig(), msgs, logger)

	return &deps{
		store:  st,
		logger: logger,
		orch:   assessment.New(gw, msgs, eventRepo, logger),
	}, nil
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	d, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	reportDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	skipSplash, _ := cmd.Flags().GetBool("no-splash")

	return app.Run(app.Options{
		Orchestrator: d.orch,
		EventRepo:    d.store.EventRepo(),
		ReportDir:    reportDir,
		Logger:       d.logger,
		SkipSplash:   skipSplash,
	})
}
