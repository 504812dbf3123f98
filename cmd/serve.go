package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizgen/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.Server.Port = port
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, cfg)
		if err != nil {
			return err
		}

		router := server.New(a.gen, server.Options{
			Provider:    cfg.LLM.Provider,
			Model:       a.provider.ModelID(),
			CORSOrigins: cfg.Server.CORSOrigins,
		})

		if cfg.Server.Lambda {
			a.log.WithField("provider", cfg.LLM.Provider).Info("starting lambda handler")
			lambda.Start(chiadapter.New(router).ProxyWithContext)
			return nil
		}

		srv := &http.Server{
			Addr:              ":" + strconv.Itoa(cfg.Server.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			a.log.WithFields(logrus.Fields{
				"port":     cfg.Server.Port,
				"provider": cfg.LLM.Provider,
				"model":    a.provider.ModelID(),
			}).Info("starting server")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err, ok := <-errCh:
			if ok {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		a.log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		a.log.Info("server shutdown completed")
		return nil
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "Port to listen on (overrides server.port)")
}
