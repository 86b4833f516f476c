package cmd

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/ringlite/ringlite/internal/cmn/config"
	"github.com/ringlite/ringlite/internal/cmn/logger"
	"github.com/ringlite/ringlite/internal/cmn/logger/tag"
	"github.com/ringlite/ringlite/internal/entitlement"
	"github.com/ringlite/ringlite/internal/license"
	"github.com/ringlite/ringlite/internal/persis/fileentitlement"
	"github.com/spf13/cobra"
)

// newVerifier builds the verifier for the compiled-in trust anchor.
var newVerifier = license.DefaultVerifier

// Context holds the configuration for a command.
type Context struct {
	context.Context

	Command      *cobra.Command
	Flags        []commandLineFlag
	Config       *config.Config
	Quiet        bool
	Store        *fileentitlement.Store
	Verifier     *license.Verifier
	Entitlements *entitlement.Manager

	degraded atomic.Bool
}

// NewContext loads the configuration, sets up the logger and wires the
// entitlement manager to the data directory.
func NewContext(cmd *cobra.Command, flags []commandLineFlag) (*Context, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}

	var configLoaderOpts []config.ConfigLoaderOption
	if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
		configLoaderOpts = append(configLoaderOpts, config.WithConfigFile(cfgPath))
	}
	if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
		configLoaderOpts = append(configLoaderOpts, config.WithDataDir(dataDir))
	}

	cfg, err := config.Load(configLoaderOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var opts []logger.Option
	if cfg.Core.Debug {
		opts = append(opts, logger.WithDebug())
	}
	if quiet {
		opts = append(opts, logger.WithQuiet())
	}
	if cfg.Core.LogFormat != "" {
		opts = append(opts, logger.WithFormat(cfg.Core.LogFormat))
	}
	ctx = logger.WithLogger(ctx, logger.NewLogger(opts...))

	for _, w := range cfg.Warnings {
		logger.Warn(ctx, w)
	}
	logger.Debug(ctx, "Configuration loaded", tag.Path(cfg.Paths.ConfigFileUsed), tag.Dir(cfg.Paths.DataDir))

	verifier, err := newVerifier()
	if err != nil {
		return nil, fmt.Errorf("failed to load license trust anchor: %w", err)
	}

	store := fileentitlement.New(cfg.Paths.DataDir)
	c := &Context{
		Context:  ctx,
		Command:  cmd,
		Flags:    flags,
		Config:   cfg,
		Quiet:    quiet,
		Store:    store,
		Verifier: verifier,
	}
	c.Entitlements = entitlement.NewManager(store, verifier,
		entitlement.WithPersistenceObserver(func(error) { c.degraded.Store(true) }),
	)

	return c, nil
}

// PersistenceDegraded reports whether a state change could not be saved
// during this command.
func (c *Context) PersistenceDegraded() bool {
	return c.degraded.Load()
}

// BoolParam retrieves a boolean flag value.
func (c *Context) BoolParam(name string) (bool, error) {
	val, err := c.Command.Flags().GetBool(name)
	if err != nil {
		return false, fmt.Errorf("failed to get flag %s: %w", name, err)
	}
	return val, nil
}

// StringParam retrieves a string flag value.
func (c *Context) StringParam(name string) (string, error) {
	val, err := c.Command.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to get flag %s: %w", name, err)
	}
	return val, nil
}

// Out is where command results are printed.
func (c *Context) Out() io.Writer {
	return c.Command.OutOrStdout()
}

// NewCommand creates a new command instance with the given cobra command and run function.
func NewCommand(cmd *cobra.Command, flags []commandLineFlag, runFunc func(cmd *Context, args []string) error) *cobra.Command {
	initFlags(cmd, flags...)

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd, flags)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Initialization error: %v\n", err)
			return err
		}
		if err := runFunc(ctx, args); err != nil {
			logger.Error(ctx, "Command failed", tag.Command(cmd.Name()), tag.Error(err))
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return err
		}
		return nil
	}

	return cmd
}
