package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/cupcake/internal/config"
)

type rootOptions struct {
	configPath string
	locale     string
	logLevel   string
	validate   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "cupcake",
		Short:         "Order cupcakes from the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", os.Getenv("CUPCAKE_CONFIG"), "config file (TOML)")
	cmd.Flags().StringVar(&opts.locale, "locale", "", "UI language, overrides ui.locale")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error; overrides log.level")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "print the resolved settings and exit")
	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return err
	}
	if opts.locale != "" {
		cfg.UI.Locale = opts.locale
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := buildApp(ctx, cfg, time.Now())
	if err != nil {
		return err
	}
	defer a.Close()

	if opts.validate {
		if err := validate(cmd.OutOrStdout(), a, cfg); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "validation ok")
		return nil
	}

	p := tea.NewProgram(a.model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		a.log.Error("tui exited", "err", err)
		return fmt.Errorf("run: %w", err)
	}
	a.log.Info("shutdown")
	return nil
}
