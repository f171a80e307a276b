package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/varsilias/openclaw-setup/internal/api"
	"github.com/varsilias/openclaw-setup/internal/buildinfo"
	"github.com/varsilias/openclaw-setup/internal/chat"
	"github.com/varsilias/openclaw-setup/internal/config"
	"github.com/varsilias/openclaw-setup/internal/gemini"
	"github.com/varsilias/openclaw-setup/internal/logging"
	"github.com/varsilias/openclaw-setup/internal/middleware"
	"github.com/varsilias/openclaw-setup/internal/models"
	"github.com/varsilias/openclaw-setup/internal/ui"
	"github.com/varsilias/openclaw-setup/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the setup site and chat endpoint",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen port")
	serveCmd.Flags().StringVar(&cfg.Engine, "engine", cfg.Engine, "chat engine: rest|sdk|echo")
	serveCmd.Flags().StringVar(&cfg.Model, "model", cfg.Model, "Gemini model")
	serveCmd.Flags().StringVar(&cfg.BaseURL, "gemini-url", cfg.BaseURL, "Generative Language API base URL")
}

func runServe(cfg *config.Config) error {
	logger := logging.New(logLevelFlag, logJSONFlag)
	logger.Info("build", "version", buildinfo.Version, "commit", buildinfo.Commit, "built_at", buildinfo.BuiltAt)

	handler, err := newServerHandler(cfg, logger, config.EnvCredential(config.CredentialEnv))
	if err != nil {
		logger.Error("server init", "err", err)
		return err
	}

	server := http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Addr),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      2 * time.Minute, // a slow model reply must still make it back
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	go func() { errChan <- server.ListenAndServe() }()
	logger.Info("ClawBuddy is listening", "port", cfg.Addr, "engine", cfg.Engine, "model", cfg.Model)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			return err
		}
		return nil
	case sig := <-sigChan:
		logger.Info("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}

// newServerHandler wires every route and the middleware chain.
func newServerHandler(cfg *config.Config, logger *slog.Logger, cred config.Credential) (http.Handler, error) {
	engine, err := newEngine(cfg, logger)
	if err != nil {
		return nil, err
	}

	modelsMgr := models.NewStaticManager(models.GeminiModels)
	if err := modelsMgr.Healthy(context.Background(), cfg.Model); err != nil && cfg.Engine != "echo" {
		logger.Warn("configured model is not in the known catalog; the provider may reject it", "model", cfg.Model)
	}
	if cred() == "" && cfg.Engine != "echo" {
		logger.Warn("no credential configured; chat will answer with the administrator notice", "env", config.CredentialEnv)
	}

	chatCtrl := chat.NewController(logger, engine, cred)

	uih, err := ui.New(logger, web.FS)
	if err != nil {
		return nil, fmt.Errorf("ui init: %w", err)
	}
	assets, err := loadAssets(cfg)
	if err != nil {
		return nil, err
	}

	h := api.NewHandlers(logger, chatCtrl, modelsMgr, cfg.Model)
	mux := chi.NewRouter()
	ui.RegisterRoutes(mux, uih, assets)
	api.RegisterRoutes(mux, h, middleware.CORS(cfg.CORSOrigins))

	var handler http.Handler = mux
	handler = middleware.Recoverer(logger)(handler)
	handler = middleware.AccessLog(logger)(handler)
	handler = middleware.RequestID()(handler)
	handler = middleware.VersionHeader()(handler)
	return handler, nil
}

func newEngine(cfg *config.Config, logger *slog.Logger) (chat.Engine, error) {
	switch cfg.Engine {
	case "", "rest":
		return chat.NewRESTEngine(gemini.NewClient(cfg.BaseURL, cfg.Model, logger)), nil
	case "sdk":
		base := cfg.BaseURL
		if base == config.DefaultBaseURL {
			base = ""
		}
		return chat.NewSDKEngine(cfg.Model, base), nil
	case "echo":
		return chat.NewEchoEngine(30 * time.Millisecond), nil
	default:
		return nil, fmt.Errorf("unknown chat engine %q (want rest, sdk or echo)", cfg.Engine)
	}
}

func loadAssets(cfg *config.Config) (ui.Assets, error) {
	static, err := dirOrEmbedded(cfg.StaticDir, "static")
	if err != nil {
		return ui.Assets{}, err
	}
	scripts, err := dirOrEmbedded(cfg.ScriptsDir, "scripts")
	if err != nil {
		return ui.Assets{}, err
	}
	return ui.Assets{Static: static, Scripts: scripts}, nil
}

func dirOrEmbedded(dir, sub string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	f, err := fs.Sub(web.FS, sub)
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", sub, err)
	}
	return f, nil
}
