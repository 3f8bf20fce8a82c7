package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"video-uploader/infrastructure/clients/objectstore"
	"video-uploader/infrastructure/clients/videoapi"
	"video-uploader/infrastructure/configuration"
	"video-uploader/infrastructure/credential"
	"video-uploader/infrastructure/logger"
	httpHandler "video-uploader/interfaces/http"
	"video-uploader/server"
	"video-uploader/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App
	backend := configuration.C.Backend
	timeout := time.Duration(backend.TimeoutSeconds) * time.Second

	credentials := credential.NewStore()
	videoBackend := videoapi.NewVideoBackend(backend.Host, timeout)
	transfer := objectstore.NewTransfer(timeout)

	authUsecase := usecase.NewAuthUsecase(videoBackend, credentials)
	videoUsecase := usecase.NewVideoUsecase(videoBackend, credentials)
	uploadUsecase := usecase.NewUploadUsecase(videoBackend, transfer, credentials, configuration.C.Upload.AllowedType)
	downloadUsecase := usecase.NewDownloadUsecase(videoBackend, transfer, credentials)

	authHandler := httpHandler.NewAuthHandler(authUsecase)
	videoHandler := httpHandler.NewVideoHandler(videoUsecase, downloadUsecase)
	uploadHandler := httpHandler.NewUploadHandler(uploadUsecase, configuration.C.Upload.AllowedType)

	router := server.InitiateRouter(authHandler, videoHandler, uploadHandler, credentials, configuration.C.Cors.Origins)

	logger.GetLogger().
		WithField("port", app.Port).
		WithField("backend", backend.Host).
		Info("Starting application")

	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", app.Port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
