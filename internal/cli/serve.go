package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Aouidate/CartoonBuilder/internal/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	configPath string // optional TOML config file
	addr       string // listen address override
	backend    string // session backend override: "memory" or "redis"
}

// serveCommand creates the serve command for running the HTTP session server.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP session server",
		Long: `Serve starts the HTTP API for building molecule diagrams. Each client
session holds an isolated molecule with its own component and attachment
point registries, stored in memory or in Redis.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, &opts, c.Logger)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to TOML config file")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&opts.backend, "backend", "", "session backend: memory (default), redis (overrides config)")

	return cmd
}

// runServe loads the configuration, builds the session store, and runs the
// server until the command context is canceled.
func runServe(cmd *cobra.Command, opts *serveOpts, logger *log.Logger) error {
	cfg := server.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := server.LoadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if opts.addr != "" {
		cfg.Addr = opts.addr
	}
	if opts.backend != "" {
		cfg.Session.Backend = opts.backend
	}

	store, err := server.NewStore(cfg)
	if err != nil {
		return err
	}

	logger.Infof("Listening on %s (%s sessions)", cfg.Addr, cfg.Session.Backend)
	srv := server.New(cfg, store, logger)
	return srv.ListenAndServe(cmd.Context())
}
