package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"golang.org/x/sync/errgroup"

	"artifactsbot/internal/adapter/artifacts"
	httpadapter "artifactsbot/internal/adapter/http"
	metricsinmem "artifactsbot/internal/adapter/metrics/inmemory"
	gormrepo "artifactsbot/internal/adapter/repo/gorm"
	"artifactsbot/internal/adapter/repo/memory"
	"artifactsbot/internal/adapter/telemetry"
	"artifactsbot/internal/app/action"
	"artifactsbot/internal/app/character"
	"artifactsbot/internal/app/ports"
	"artifactsbot/internal/app/replay"
	"artifactsbot/internal/app/status"
	"artifactsbot/internal/app/tasks"
	"artifactsbot/internal/platform/config"
	platformotel "artifactsbot/internal/platform/otel"
)

const serviceName = "artifactsbot"

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	characters, err := config.LoadCharacters(settings.ConfigPath)
	if err != nil {
		log.Fatalf("load characters: %v", err)
	}
	logger, err := telemetry.NewLogger(os.Stdout, settings.LogFormat, settings.LogLevel)
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}
	slog.SetDefault(logger)
	logger.Info("characters configured", slog.Any("characters", characters.Names()), slog.String("config", settings.ConfigPath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := platformotel.Setup(ctx, platformotel.Config{
		ServiceName: serviceName,
		Endpoint:    settings.OTelEndpoint,
		Enabled:     settings.OTelEnabled,
	})
	if err != nil {
		log.Fatalf("setup tracing: %v", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("tracing shutdown", slog.Any("error", err))
		}
	}()

	doer, err := artifacts.NewHertzDoer(artifacts.HertzConfig{RequestTimeout: settings.RequestTimeout})
	if err != nil {
		log.Fatalf("build http client: %v", err)
	}
	client, err := artifacts.NewClient(artifacts.Config{
		BaseURL: settings.BaseURL,
		Token:   settings.Token,
		Doer:    doer,
	})
	if err != nil {
		log.Fatalf("build artifacts client: %v", err)
	}

	journal := mustBuildJournal(ctx, settings.DBDSN)
	journalSink := telemetry.NewBuffered(telemetry.JournalSink{Repo: journal, Logger: logger}, telemetry.DefaultBufferSize, logger)
	kpiRecorder := metricsinmem.NewRecorder()
	sink := telemetry.Multi{
		telemetry.NewLogSink(logger),
		telemetry.MetricsSink{Metrics: kpiRecorder},
		journalSink,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return journalSink.Run(gctx)
	})
	registry := tasks.DefaultRegistry()
	started := make([]string, 0, len(characters.Characters))
	for _, cc := range characters.Characters {
		ch, runner, err := buildCharacter(client, registry, cc, sink)
		if err != nil {
			logger.Error("character not started", slog.String("character", cc.Name), slog.Any("error", err))
			continue
		}
		loop := ch.Loop(sink)
		loop.CooldownBackoff = settings.CooldownBackoff

		g.Go(func() error {
			return ignoreShutdown(loop.Run(gctx))
		})
		g.Go(func() error {
			defer ch.Close()
			return ignoreShutdown(runner.Run(gctx))
		})
		started = append(started, cc.Name)
	}
	if len(started) == 0 {
		log.Fatal("no character could be started")
	}
	logger.Info("characters started", slog.Any("characters", started))

	if settings.OpsAddr != "" {
		h := httpadapter.Handler{
			StatusUC:   status.UseCase{Reader: client},
			ReplayUC:   replay.UseCase{Events: journal},
			KPI:        kpiRecorder,
			Characters: started,
		}
		s := server.Default(server.WithHostPorts(settings.OpsAddr))
		h.RegisterRoutes(s)

		g.Go(func() error {
			logger.Info("ops server listening", slog.String("addr", settings.OpsAddr))
			if err := s.Run(); err != nil && gctx.Err() == nil {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return s.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("runner stopped: %v", err)
	}
	logger.Info("runner stopped")
}

func buildCharacter(client *artifacts.Client, registry tasks.Registry, cc config.CharacterConfig, sink ports.EventSink) (*character.Character, tasks.Runner, error) {
	plan, err := tasks.BuildPlan(registry, cc.StepSpecs())
	if err != nil {
		return nil, tasks.Runner{}, err
	}
	queue := action.NewQueue(cc.Name, client.Doer(), action.WithSink(sink))
	ch, err := character.New(cc.Name, client, queue)
	if err != nil {
		return nil, tasks.Runner{}, err
	}
	return ch, tasks.Runner{Actor: ch, Plan: plan, Sink: sink}, nil
}

func mustBuildJournal(ctx context.Context, dsn string) ports.ActionEventRepository {
	if dsn == "" {
		return memory.NewActionEventRepo(memory.NewStore())
	}
	db, err := gormrepo.OpenJournal(ctx, dsn)
	if err != nil {
		log.Fatalf("open journal: %v", err)
	}
	return gormrepo.NewActionEventRepo(db)
}

func ignoreShutdown(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
