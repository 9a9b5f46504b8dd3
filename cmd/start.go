package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"teapot-fortune/core/database"
	"teapot-fortune/core/loader"
	"teapot-fortune/core/server"
	"teapot-fortune/feature/fortune"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the fortune server",
	Long:  `Starts the HTTP server. Every request on every path is answered with a random fortune.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration and Logger
		cfg, logg, err := loadConfig()
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Open Database (missing file is fatal)
		db, err := openDatabase(cmd.Context(), cfg, logg)
		if err != nil {
			logg.Fatal("Failed to open database", zap.Error(err))
		}
		defer database.Close(db)

		// 3. Initialize Fiber App
		app := server.New(cfg.Server, logg)

		// 4. Register Features
		repo := fortune.NewRepository(db, cfg.Database.Table, cfg.Database.FallbackMaxID)
		mgr := loader.NewManager(logg)
		mgr.Register(fortune.NewFeature(repo, cfg.Fortune, cfg.Server.ResponseCode, cfg.Server.RequestTimeout(), logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("addr", cfg.Server.Addr()),
				zap.Int("response_code", cfg.Server.ResponseCode),
				zap.Int("workers", cfg.Server.WorkerCount()),
			)
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
