package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/edaq/internal/analysisconfig"
	"github.com/wonny/edaq/internal/api"
	"github.com/wonny/edaq/internal/api/handlers"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

Endpoints:
  GET  /health                  - Health check
  POST /quality                 - 행/열 수 기반 간이 품질 점수
  POST /quality-from-csv        - CSV 업로드 품질 점수
  POST /quality-flags-from-csv  - CSV 업로드 전체 품질 플래그
  POST /summary-from-csv        - CSV 업로드 컬럼 요약

Example:
  go run ./cmd/edaq api
  go run ./cmd/edaq api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (default PORT or 8000)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), "=== edaq API Server ===")

	// 1. Load config
	rt, err := loadRuntime(os.Stdout)
	if err != nil {
		return err
	}
	cfg, log := rt.cfg, rt.log

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	hash, _ := analysisconfig.Hash(rt.analysis)
	log.WithFields(map[string]interface{}{
		"port":        cfg.Port,
		"env":         cfg.Env,
		"config_hash": hash,
	}).Info("Initializing API server")

	// 2. Create handler and router
	analysisHandler := handlers.NewAnalysisHandler(rt.analysis, cfg.HTTP.MaxUploadBytes, log)
	router := api.NewRouter(analysisHandler, cfg.HTTP, log)

	// 3. Create server
	server := api.New(cfg, log, router)

	// 4. Start server with graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Fprintln(cmd.OutOrStdout(), "\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Error("Server failed")
		}
		return err
	case <-quit:
	}

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
