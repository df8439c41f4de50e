package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"actresses/internal/config"
	"actresses/internal/fetcher"
	"actresses/internal/formatter"
	"actresses/internal/logger"
	"actresses/internal/models"
)

const defaultConfigPath = "configs/actresses.yaml"

var errUnavailable = errors.New("actress unavailable")

type app struct {
	configPath string
	baseURL    string
	logLevel   string
	asJSON     bool

	log    logger.Interface
	client *fetcher.Client
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "actresses",
		Short:         "Query actress records from the actresses service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if zl, ok := a.log.(*logger.ZapLogger); ok {
				_ = zl.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to YAML configuration file")
	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "Service origin (overrides config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "Print JSON instead of a markdown table")

	root.AddCommand(a.getCmd(), a.listCmd(), a.manyCmd())

	return root
}

func (a *app) setup() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	a.log, err = logger.New(cfg.Logging)
	if err != nil {
		return err
	}

	a.log.Debug("configuration loaded", "config", cfg.String())

	a.client, err = fetcher.NewFromConfig(cfg, a.log)

	return err
}

func (a *app) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	switch {
	case a.configPath != "":
		cfg, err = config.LoadConfig(a.configPath)
	case fileExists(defaultConfigPath):
		cfg, err = config.LoadConfig(defaultConfigPath)
	default:
		cfg = config.Default()
	}

	if err != nil {
		return nil, err
	}

	if a.baseURL != "" {
		cfg.Client.BaseURL = a.baseURL
	}

	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch one actress by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			actress := a.client.FetchOne(cmd.Context(), ids[0])
			if actress == nil {
				return fmt.Errorf("%w: %d", errUnavailable, ids[0])
			}

			return a.print(cmd.OutOrStdout(), []*models.Actress{actress})
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Fetch every valid actress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			actresses := a.client.FetchAll(cmd.Context())
			if a.asJSON {
				return writeJSON(cmd.OutOrStdout(), actresses)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), formatter.ActressList(actresses))

			return err
		},
	}
}

func (a *app) manyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "many <id>...",
		Short: "Fetch several actresses concurrently, keeping input order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), a.client.FetchMany(cmd.Context(), ids))
		},
	}
}

func (a *app) print(w io.Writer, actresses []*models.Actress) error {
	if a.asJSON {
		return writeJSON(w, actresses)
	}

	_, err := fmt.Fprintln(w, formatter.ActressTable(actresses))

	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))

	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid actress id %q: %w", arg, err)
		}

		ids = append(ids, id)
	}

	return ids, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
