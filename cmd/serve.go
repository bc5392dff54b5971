package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Tutortoise/image-safety-service/grpcapi"
	"github.com/Tutortoise/image-safety-service/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the DetectNsfw operation over gRPC and HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	svc := newService(cfg, log)
	defer svc.Close(log)

	grpcLis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.GRPCAddr, err)
	}
	grpcServer := grpcapi.NewServer(svc.detector, log)

	httpServer := &http.Server{
		Addr:         cfg.Server.HTTPAddr,
		Handler:      httpapi.NewServer(svc.detector, log, 0).Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	cerr := make(chan error, 2)
	go func(c chan error) {
		log.Info("starting grpc server", zap.String("addr", grpcLis.Addr().String()))
		c <- grpcServer.Serve(grpcLis)
	}(cerr)
	go func(c chan error) {
		log.Info("starting http server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c <- err
		}
	}(cerr)

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-cerr:
		log.Error("server stopped unexpectedly", zap.Error(serveErr))
	}
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown incomplete", zap.Error(err))
	}
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcServer.Stop()
	}

	return serveErr
}
