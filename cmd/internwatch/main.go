package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bakkerme/internwatch/internal/config"
	"github.com/bakkerme/internwatch/internal/core"
	"github.com/bakkerme/internwatch/internal/observability/otelx"
	"github.com/bakkerme/internwatch/internal/runner"
	"github.com/bakkerme/internwatch/internal/runner/factory"
)

func main() {
	env := config.LoadEnv()

	configPath := flag.String("config", env.WatchConfigPath, "path to watch document")
	flowID := flag.String("flow-id", env.FlowID, "flow identifier")
	runOnce := flag.Bool("run-once", env.RunOnce, "run once and exit")
	allowPartial := flag.Bool("allow-partial", env.AllowPartialSourceErrors, "continue if a source fails")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = core.WithLogger(ctx, logger)

	shutdownTraces, err := otelx.Init(ctx, logger, env.OTel)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	if shutdownTraces != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTraces(shutdownCtx)
		}()
	}

	doc, err := loadDocument(*configPath)
	if err != nil {
		log.Fatalf("failed to load document: %v", err)
	}

	f, err := factory.NewFromEnvConfig(logger, env)
	if err != nil {
		log.Fatalf("failed to build factory: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Error("close seen store", "error", err)
		}
	}()

	flow, err := doc.ParseToFlowWithFactory(f)
	if err != nil {
		log.Fatalf("failed to parse flow: %v", err)
	}
	flow.ID = *flowID

	r := runner.New(logger)
	if !*allowPartial {
		r = runner.NewStrict(logger)
	}

	if *runOnce {
		run, err := r.RunOnce(ctx, flow)
		if err != nil {
			log.Fatalf("run failed: %v", err)
		}
		logger.Info("run completed", "run_id", run.ID, "new_listings", len(run.Blocks), "errors", len(run.Errors))
		return
	}

	if err := r.Start(ctx, flow); err != nil {
		log.Fatalf("failed to start runner: %v", err)
	}
	logger.Info("watching", "flow_id", flow.ID, "triggers", len(flow.Triggers))

	<-ctx.Done()
	time.Sleep(200 * time.Millisecond)
}

func loadDocument(path string) (*config.WatchDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc config.WatchDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse watch document: %w", err)
	}
	return &doc, nil
}
