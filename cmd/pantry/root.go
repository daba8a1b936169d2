package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/maxwell903/maxandjacob-sub000/internal/backend"
	"github.com/maxwell903/maxandjacob-sub000/internal/config"
	"github.com/maxwell903/maxandjacob-sub000/internal/logging"
)

// app carries what every subcommand needs once the root has loaded config.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	backendURL string
	output     string

	cfg    *config.Config
	logger *slog.Logger
	client *backend.Client
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pantry",
		Short: "Reconcile grocery lists against the fridge",
		Long: `pantry reads grocery lists and fridge inventory from the recipe backend
and shows which list items are still needed and which are already in stock.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (yaml, json or toml)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	pf.StringVar(&a.backendURL, "backend-url", "", "recipe backend base URL")
	pf.StringVarP(&a.output, "output", "o", "text", "output format: text or json")

	root.AddCommand(
		newInventoryCmd(a),
		newReconcileCmd(a),
		newListsCmd(a),
		newMenusCmd(a),
		newAddCmd(a),
		newAddRecipeCmd(a),
		newAddMenuCmd(a),
		newZeroCmd(a),
		newWatchCmd(a),
	)
	return root
}

// setup loads configuration, applies flag overrides and builds the logger
// and backend client.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if a.backendURL != "" {
		cfg.Backend.URL = a.backendURL
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	switch a.output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q", a.output)
	}

	a.cfg = cfg
	a.logger = logging.Setup(cfg.Log.Level, cfg.Log.Format)
	a.client = backend.NewClient(backend.Config{
		BaseURL:    cfg.Backend.URL,
		Timeout:    cfg.Backend.Timeout,
		MaxRetries: cfg.Backend.MaxRetries,
	}, a.logger.With("component", "backend"))
	return nil
}

func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, s)
	}
	return id, nil
}
