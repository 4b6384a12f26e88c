package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/config"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/api/handler"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/api/router"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/repository"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/service"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/internal/trd"
	"github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/pkg/database"
	applogger "github.com/tecnicoplaneacioninfi-lgtm/archivo-planeacion/pkg/logger"
)

func main() {
	// 1. Configuración
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "no se pudo cargar la configuración: %v\n", err)
		os.Exit(1)
	}

	// 2. Registro estructurado
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "no se pudo iniciar el registro: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("iniciando la aplicación...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Base de datos
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("no se pudo conectar a la base de datos", zap.Error(err))
	}
	logger.Info("conexión a la base de datos establecida")

	// 3.1 Migraciones
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("no se pudo obtener el sql.DB subyacente", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("las migraciones fallaron", zap.Error(err))
	}

	// 4. Catálogo TRD (inmutable, cargado en memoria)
	catalogo := trd.Default()

	// 5. Inyección de dependencias: Repository → Service → Handler
	repo := repository.NewRepository(db, logger)
	svc := service.NewService(repo, catalogo, logger)
	h := handler.NewHandler(svc, catalogo)

	// 6. Rutas
	engine := router.Setup(cfg, h, logger)

	// 7. Servidor HTTP con cierre ordenado
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("servidor HTTP en marcha", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("el servidor HTTP falló", zap.Error(err))
		}
	}()

	// 8. Señales del sistema y cierre ordenado
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("señal de cierre recibida, apagando...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("el servidor no cerró limpiamente", zap.Error(err))
	}

	if cerrarDB, _ := db.DB(); cerrarDB != nil {
		cerrarDB.Close()
	}

	logger.Info("servidor detenido")
}
