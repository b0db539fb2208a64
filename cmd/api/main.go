package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"roadmap_backend/internal/config"
	"roadmap_backend/internal/delivery"
	"roadmap_backend/internal/events"
	"roadmap_backend/internal/generation"
	apphttp "roadmap_backend/internal/http"
	"roadmap_backend/internal/http/router"
	"roadmap_backend/internal/roadmap"
	"roadmap_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// One writer agent per configured model; the entry-tier model doubles
	// as the generation fallback.
	genClient, err := generation.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, roadmap.SystemPrompt(), cfg.EntryModel, cfg.PremiumModel)
	if err != nil {
		log.Error("failed to initialize generation client", "error", err)
		panic("failed to initialize generation client: " + err.Error())
	}
	invoker := generation.NewInvoker(genClient, cfg.EntryModel, log)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	var crmSink delivery.CRMUpdater
	if cfg.CRMEnabled() {
		crmSink = delivery.NewCRMClient(cfg.CRMBaseURL, cfg.CRMAPIKey, cfg.CRMRoadmapField)
		log.Info("crm delivery sink enabled", "field", cfg.CRMRoadmapField)
	} else {
		log.Warn("CRM_API_KEY not configured; crm delivery disabled")
	}

	var mailSink delivery.MailSender
	if cfg.EmailEnabled {
		mailSink = delivery.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPSecure, cfg.FromEmail, cfg.NotifyEmail)
		log.Info("email delivery sink enabled", "notify", cfg.NotifyEmail)
	} else {
		log.Warn("SMTP options incomplete; email delivery disabled")
	}

	// Delivery module subscribes to domain events (not HTTP-facing)
	deliveryModule := delivery.NewModule(crmSink, mailSink, log)
	deliveryModule.RegisterHandlers(eventBus)

	selector := roadmap.NewModelSelector(cfg.EntryModel, cfg.PremiumModel, cfg.DefaultToPremium)
	roadmapModule := roadmap.NewModule(selector, invoker, eventBus, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			roadmapModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, exiting")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
