package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"figurine-manager/core/loader"
	"figurine-manager/core/logger"
	"figurine-manager/core/middleware/auth"
	"figurine-manager/core/middleware/rayid"
	"figurine-manager/core/telemetry"

	"figurine-manager/feature/collection"
	"figurine-manager/feature/integrity"
	"figurine-manager/feature/reconciliation"
	"figurine-manager/feature/roster"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "figurine-manager/docs/swagger"
)

// @title Figurine Manager API
// @version 1.0
// @description API for reconciling miniature collections against army rosters.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the figurine manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Configuration and logger
		e, err := loadEnv()
		if err != nil {
			return err
		}
		logg := e.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		cfg := e.cfg

		// 2. Tracing (opt-in)
		shutdownTracing, err := telemetry.Setup(cmd.Context(), cfg.Telemetry)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(ctx); err != nil {
				logg.Warn("Tracing shutdown failed", zap.Error(err))
			}
		}()
		metrics := telemetry.NewMetrics()

		// 3. Connect to Database (Optional)
		var db *gorm.DB
		if conn, err := e.connect(); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to collection database", zap.String("driver", cfg.Database.Driver))
		}

		// 4. Initialize Storage
		store, err := e.storage()
		if err != nil {
			return err
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// 6. Features
		rosters := roster.NewProvider(store, cfg.Storage.Bucket, cfg.Reconcile.RosterPrefix, cfg.Reconcile.CacheTTL(), metrics)
		coll := collection.NewFeature(db, logg, metrics)

		opts := reconciliation.Options{
			Models:       rosters,
			Client:       store,
			Bucket:       cfg.Storage.Bucket,
			ReportPrefix: cfg.Reconcile.ReportPrefix,
			MaxInstances: cfg.Reconcile.MaxInstances,
			Logger:       logg,
			Metrics:      metrics,
		}
		if db != nil {
			opts.Inventory = coll.Service().Repository()
		}

		mgr := loader.NewManager(logg)
		mgr.Register(coll)
		mgr.Register(roster.NewFeature(rosters, logg))
		mgr.Register(reconciliation.NewFeature(opts))
		mgr.Register(integrity.NewFeature(integrity.Options{
			Client:  store,
			Bucket:  cfg.Storage.Bucket,
			Region:  cfg.Storage.Region,
			Folders: cfg.Reconcile.Folders(),
			Rosters: rosters,
			DB:      db,
			Logger:  logg,
		}))

		// Middleware Registration
		// 0. A panicking handler fails its request, not the process
		app.Use(recover.New(recover.Config{EnableStackTrace: true}))

		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with Zap + RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			fields := []zap.Field{
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				l.Error("Request error", append(fields, zap.Error(err))...)
			} else {
				l.Info("Request completed", fields...)
			}
			return err
		})

		// 3. Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", metrics.Handler())

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{
			ApiKey: cfg.Server.ApiKey,
			Skip:   []string{"/swagger", "/metrics"},
		}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		// 6. Start Server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			errCh <- app.Listen(":" + cfg.Server.Port)
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case <-c:
			logg.Info("Shutting down server...")
			return app.Shutdown()
		case err := <-errCh:
			return err
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
