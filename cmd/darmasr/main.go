package main

import (
	"context"
	"flag"
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/Ahmedfares-dev/darmasr/internal/config"
	"github.com/Ahmedfares-dev/darmasr/internal/infrastructure/database"
	"github.com/Ahmedfares-dev/darmasr/internal/infrastructure/gateway"
	"github.com/Ahmedfares-dev/darmasr/internal/infrastructure/repository"
	"github.com/Ahmedfares-dev/darmasr/internal/present/rest"
	"github.com/Ahmedfares-dev/darmasr/internal/service"
	"github.com/Ahmedfares-dev/darmasr/internal/usecase"
)

func main() {
	configPath := flag.String("c", "config.yaml", "path to config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if conf.Server.EnableTrace {
		shutdown, err := setupTracer(conf.Server.TraceEndpoint)
		if err != nil {
			panic("failed to set up tracing: " + err.Error())
		}
		defer shutdown()
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		panic("failed to connect database")
	}

	err = database.MigratePostgres(db)
	if err != nil {
		panic("failed to migrate database")
	}

	rdb := database.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
	mc := database.NewMemcached(conf.Server.MemcachedAddr)

	electionRepo := repository.NewElectionRepository(db)
	nominationRepo := repository.NewNominationRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	winnerRepo := repository.NewWinnerRepository(db)
	directoryRepo := repository.NewDirectoryRepository(db)
	directory := gateway.NewDirectoryGateway(directoryRepo)

	signal := service.NewSignalService(rdb)
	voteCounts := service.NewVoteCountCache(mc)

	electionUC := usecase.NewElectionUsecase(electionRepo, nominationRepo, voteRepo, winnerRepo, directory, signal)
	nominationUC := usecase.NewNominationUsecase(nominationRepo, electionRepo, directory, signal)
	voteUC := usecase.NewVoteUsecase(voteRepo, electionRepo, nominationRepo, directory, voteCounts, signal)
	tallyUC := usecase.NewTallyUsecase(electionRepo, nominationRepo, voteRepo, winnerRepo, signal)
	winnerUC := usecase.NewWinnerUsecase(winnerRepo, electionRepo, nominationRepo, directory, signal)
	directoryUC := usecase.NewDirectoryUsecase(directory)

	handler := rest.NewHandler(electionUC, nominationUC, voteUC, tallyUC, winnerUC, directoryUC)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("darmasr"))
	}

	handler.RegisterRoutes(e)

	slog.Info("starting server", slog.String("listen", conf.Server.Listen))
	e.Logger.Fatal(e.Start(conf.Server.Listen))
}

func setupTracer(endpoint string) (func(), error) {
	ctx := context.Background()

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName("darmasr"),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			slog.Error("failed to shut down tracer provider", slog.String("error", err.Error()))
		}
	}, nil
}
