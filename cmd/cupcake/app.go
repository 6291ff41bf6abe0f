package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jask/cupcake/core"
	"github.com/jask/cupcake/internal/config"
	"github.com/jask/cupcake/internal/flow"
	"github.com/jask/cupcake/internal/locale"
	"github.com/jask/cupcake/internal/logging"
	"github.com/jask/cupcake/internal/order"
	"github.com/jask/cupcake/internal/share"
	"github.com/jask/cupcake/screens"
)

// app is everything main needs to run one session.
type app struct {
	model  core.Model
	flow   *flow.Flow
	labels *locale.Localizer
	sharer share.Sharer
	log    *logging.Logger
}

func (a *app) Close() error {
	if a.log == nil {
		return nil
	}
	return a.log.Close()
}

func buildApp(ctx context.Context, cfg config.Config, now time.Time) (*app, error) {
	logger, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	labels, err := locale.New(cfg.UI.Locale)
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("locale: %w", err)
	}
	rule, err := cfg.Pricing.Rule()
	if err != nil {
		logger.Close()
		return nil, err
	}
	sharer, err := share.New(share.Options{Target: cfg.Share.Target, Command: cfg.Share.Command, File: cfg.Share.File})
	if err != nil {
		logger.Close()
		return nil, fmt.Errorf("share: %w", err)
	}

	dates := order.PickupDates(now, cfg.UI.PickupDays, cfg.UI.DateFormat)
	catalog := order.NewCatalog(labels.Flavors(), dates)
	state := order.NewState(catalog, rule)
	f := flow.New(state, labels, cfg.Pricing.CurrencySymbol, logger.Logger)

	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), cfg.Keys))
	model := core.NewModel(core.Options{
		Context: ctx,
		Flow:    f,
		Screens: core.NewScreenSet(
			screens.NewStart(labels, catalog),
			screens.NewFlavor(labels, catalog),
			screens.NewSummary(labels, catalog),
		),
		Keys:            keys,
		Sharer:          sharer,
		Labels:          labels,
		AppName:         labels.T("AppName"),
		TransitionDelay: cfg.UI.TransitionDelay,
		Logger:          logger.Logger,
	})
	logger.Info("startup",
		"locale", labels.Tag().String(),
		"share_target", cfg.Share.Target,
		"pickup_dates", len(dates),
	)
	return &app{model: model, flow: f, labels: labels, sharer: sharer, log: logger}, nil
}

// validate prints the resolved settings and a sample price without starting the TUI.
func validate(w io.Writer, a *app, cfg config.Config) error {
	catalog := a.flow.Catalog()
	if len(catalog.Flavors) == 0 || len(catalog.Dates) == 0 {
		return fmt.Errorf("empty catalog: %d flavors, %d dates", len(catalog.Flavors), len(catalog.Dates))
	}
	rule := a.flow.State().Pricing()
	sample := rule.Price(catalog.Quantities[0], catalog.Earliest(), catalog.Earliest())
	fmt.Fprintf(w, "locale:       %s\n", a.labels.Tag())
	fmt.Fprintf(w, "flavors:      %d\n", len(catalog.Flavors))
	fmt.Fprintf(w, "pickup dates: %s .. %s\n", catalog.Dates[0], catalog.Dates[len(catalog.Dates)-1])
	fmt.Fprintf(w, "share target: %s\n", cfg.Share.Target)
	fmt.Fprintf(w, "same-day %s: %s\n", a.labels.Cupcakes(catalog.Quantities[0]), order.FormatPrice(sample, cfg.Pricing.CurrencySymbol))
	return nil
}
