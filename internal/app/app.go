package app

import (
	"context"
	"fmt"

	"github.com/avolkhin/complaintbot/core/bootstrap"
	corecmd "github.com/avolkhin/complaintbot/core/cmd"
	"github.com/avolkhin/complaintbot/core/logger"
	coretelegram "github.com/avolkhin/complaintbot/core/telegram"
	"github.com/avolkhin/complaintbot/core/telegram/commands"
	"github.com/avolkhin/complaintbot/core/telegram/middleware"
	"github.com/avolkhin/complaintbot/core/telegram/router"
	"github.com/avolkhin/complaintbot/core/telegram/state"
	"github.com/avolkhin/complaintbot/internal/flow"
	"github.com/avolkhin/complaintbot/internal/notify"
	"github.com/avolkhin/complaintbot/internal/review"
	"github.com/avolkhin/complaintbot/internal/store"
	"log/slog"
)

// Services groups the application services built during bootstrap.
type Services struct {
	States  state.Manager
	Machine *flow.Machine
	Flow    *flow.Handlers
	Review  *review.Handlers
}

// App is the assembled complaint bot, ready to produce Telegram run options.
type App struct {
	cfg      *Config
	store    *store.Store
	services *Services
}

// Bootstrap initializes logging, seeds the catalog, and wires all services.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg, ok := carrier.(*Config)
	if !ok {
		return nil, fmt.Errorf("app: unexpected config type %T", carrier)
	}

	st := store.New()
	res, err := bootstrap.Run(context.Background(), bootstrap.Options{
		Config:  cfg.CoreConfig(),
		Storage: st,
		Modules: bootstrap.Modules{
			Seeders:  []bootstrap.Seeder{bootstrap.SeederFunc(seedCatalog(cfg))},
			Services: bootstrap.TypedServiceProviderFunc[*Services](provideServices(cfg)),
		},
	})
	if err != nil {
		return nil, err
	}

	services, ok := res.Services.(*Services)
	if !ok {
		return nil, fmt.Errorf("app: unexpected services type %T", res.Services)
	}

	return &App{cfg: cfg, store: st, services: services}, nil
}

func seedCatalog(cfg *Config) func(ctx context.Context, storage bootstrap.Storage) error {
	return func(ctx context.Context, storage bootstrap.Storage) error {
		st, ok := storage.(*store.Store)
		if !ok {
			return fmt.Errorf("app: unexpected storage type %T", storage)
		}
		st.Catalog.Seed(cfg.Complaint.Batches, cfg.Complaint.Subjects)
		logger.SEED.LogAttrs(ctx, slog.LevelInfo, "catalog.seeded",
			slog.Int("batches", len(st.Catalog.Batches())),
			slog.Int("subjects", len(st.Catalog.Subjects())),
		)
		return nil
	}
}

func provideServices(cfg *Config) func(ctx context.Context, _ interface{}, storage bootstrap.Storage) (*Services, error) {
	return func(ctx context.Context, _ interface{}, storage bootstrap.Storage) (*Services, error) {
		st, ok := storage.(*store.Store)
		if !ok {
			return nil, fmt.Errorf("app: unexpected storage type %T", storage)
		}

		reviewerID := cfg.Core.Telegram.AdminID
		states := state.NewMemoryManager()
		machine := flow.NewMachine(states, st.Complaints, st.Catalog)
		notifier := notify.New(reviewerID)

		return &Services{
			States:  states,
			Machine: machine,
			Flow:    flow.NewHandlers(machine, st.Catalog, notifier),
			Review:  review.NewHandlers(review.NewService(st.Complaints, reviewerID), notifier),
		}, nil
	}
}

// TelegramRunOptions wires commands, callbacks, and routes for the bot runtime.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	fb := fallbacks{}
	svcs := a.services
	states := svcs.States

	reg.RegisterCommand("/start", commands.Command{
		Handler:     svcs.Flow.HandleStart,
		Description: "Begin submitting a complaint",
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     svcs.Flow.HandleCancel,
		Description: "Cancel the complaint in progress",
	})
	reg.RegisterCommand("/pending", commands.Command{
		Handler:     svcs.Review.HandlePending,
		Description: "List submitted complaints",
		AdminOnly:   true,
		Hidden:      true,
	})

	// Flow callbacks are gated on the FSM state so stale keyboard taps
	// are ignored instead of corrupting a draft.
	_ = reg.RegisterCallback(flow.CallbackBatch,
		middleware.State(states, flow.StateAwaitingBatch)(svcs.Flow.HandleBatchSelect))
	_ = reg.RegisterCallback(flow.CallbackRestart,
		middleware.State(states, flow.StateAwaitingBatch)(svcs.Flow.HandleRestart))
	_ = reg.RegisterCallback(flow.CallbackSubject,
		middleware.State(states, flow.StateAwaitingSubject)(svcs.Flow.HandleSubjectSelect))
	_ = reg.RegisterCallback(notify.CallbackStatus, svcs.Review.HandleStatusCallback)

	reg.SetTextFallback(fb.UnknownText())
	reg.SetCallbackNotFound(fb.UnknownCallback())

	svcs.Flow.RegisterStates()

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Core.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{
		NotFound: fb.UnknownCallback(),
	}))
	routes = append(routes, router.TextRoutes(states, reg, router.TextOptions{
		UnknownText:     fb.UnknownText(),
		UnknownPhoto:    fb.UnknownPhoto(),
		UnknownDocument: fb.UnknownDocument(),
	})...)

	mws := coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil)
	mws = append(mws, coretelegram.Middleware{
		Name: "fsm_session",
		Use:  state.WithSession(states),
	})

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: mws,
		Routes:      routes,
	}, nil
}
