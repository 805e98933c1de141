// StageChat — a scripted chat room that plays itself.
//
// Usage:
//
//	stagechat [-verbose] [-quiet] [-script launch-room]
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"stagechat/internal/ambient"
	"stagechat/internal/config"
	"stagechat/internal/domain"
	"stagechat/internal/gen"
	"stagechat/internal/playback"
	"stagechat/internal/script"
	"stagechat/internal/transcript"
	"stagechat/internal/tui"
	"stagechat/internal/typing"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".stagechat-logs/stagechat.log", "file to write logs to (use \"stderr\" to log to console)")
	configPath := flag.String("config", "stagechat.yaml", "path to the tuning config file (optional)")
	list := flag.Bool("list", false, "list the available scripts and exit")
	scriptArg := flag.String("script", "launch-room", "script id to play, or a path to a YAML script file")
	generate := flag.Bool("generate", false, "generate a fresh script instead of playing a stored one")
	topic := flag.String("topic", "a product launch", "topic for generated scripts")
	tone := flag.String("tone", "casual", "tone for generated scripts")
	lines := flag.Int("lines", 8, "line count for generated scripts")
	dumpPath := flag.String("transcript", "", "write the session transcript to this JSON file on exit")
	flag.Parse()

	log := buildLogger(*verbose, *quiet, *logFile)
	defer log.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad config %s: %v\n", *configPath, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := script.NewMemorySource(log)

	if *list {
		summaries, err := source.List(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "list scripts: %v\n", err)
			os.Exit(1)
		}
		for _, s := range summaries {
			fmt.Printf("%-16s %-24s %d speakers, %d lines\n", s.ID, s.Name, s.Speakers, s.Lines)
		}
		return
	}

	sc, err := resolveScript(ctx, source, *scriptArg, *generate, *topic, *tone, *lines, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load script: %v\n", err)
		os.Exit(1)
	}
	log.Infof("playing script %q (%d messages, %d personas)", sc.ID, len(sc.Messages), len(sc.Personas))

	store := transcript.NewMemoryStore(log)
	est := typing.New(typing.WithConfig(cfg.Typing))

	var eng *playback.Engine
	eng = playback.New(sc, log,
		playback.WithEstimator(est),
		playback.WithAmbientOptions(ambient.WithConfig(cfg.Ambient)),
		playback.WithOnMessageSent(func(msg domain.LiveMessage) {
			if err := store.Append(ctx, eng.SessionID(), msg); err != nil {
				log.Warnf("transcript append failed: %v", err)
			}
		}),
	)
	defer eng.Close()

	app := tui.NewApp(eng, sc, log)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ui error: %v\n", err)
		os.Exit(1)
	}

	// Persist whatever the room ended up showing, scripted and live alike.
	if *dumpPath != "" {
		snap := eng.Snapshot()
		if err := store.Replace(ctx, eng.SessionID(), snap.Messages); err != nil {
			log.Warnf("transcript replace failed: %v", err)
		}
		if err := store.Dump(*dumpPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: transcript dump failed: %v\n", err)
		} else {
			log.Infof("transcript written to %s", *dumpPath)
		}
	}
}

// buildLogger directs logs to a file by default so the TUI stays clean.
func buildLogger(verbose, quiet bool, logFile string) *zap.SugaredLogger {
	if quiet {
		return zap.NewNop().Sugar()
	}

	zcfg := zap.NewDevelopmentConfig()
	if !verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	if logFile != "" && logFile != "stderr" {
		dir := filepath.Dir(logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		zcfg.OutputPaths = []string{logFile}
		zcfg.ErrorOutputPaths = []string{logFile}
	} else {
		zcfg.OutputPaths = []string{"stderr"}
		zcfg.ErrorOutputPaths = []string{"stderr"}
	}

	logger, err := zcfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logger init failed: %v (falling back to nop)\n", err)
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// resolveScript picks what to play: a YAML file path, a generated
// script, or a stored one by id.
func resolveScript(ctx context.Context, source *script.MemorySource, arg string, generate bool, topic, tone string, lines int, log *zap.SugaredLogger) (*domain.Script, error) {
	if generate {
		return generateScript(ctx, source, arg, topic, tone, lines, log)
	}

	if strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		sc, err := script.Load(arg)
		if err != nil {
			return nil, err
		}
		source.Add(sc)
		return sc, nil
	}

	return source.Get(ctx, arg)
}

// generateScript asks the remote generator when credentials are set and
// falls back to the local composer otherwise.
func generateScript(ctx context.Context, source *script.MemorySource, baseID, topic, tone string, lines int, log *zap.SugaredLogger) (*domain.Script, error) {
	base, err := source.Get(ctx, baseID)
	if err != nil {
		return nil, fmt.Errorf("base script for personas: %w", err)
	}

	endpoint, apiKey, model := config.GenFromEnv()
	if endpoint != "" && apiKey != "" {
		opts := []gen.ClientOption{}
		if model != "" {
			opts = append(opts, gen.WithModel(model))
		}
		client := gen.NewClient(endpoint, apiKey, log, opts...)
		generator := gen.NewGenerator(client, log)

		genCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
		defer cancel()

		sc, err := generator.Generate(genCtx, domain.GenerateRequest{
			Personas: base.Personas,
			Topic:    topic,
			Tone:     tone,
			Lines:    lines,
		})
		if err == nil {
			sc.ID = fmt.Sprintf("gen-%d", time.Now().Unix())
			sc.Name = "Generated: " + topic
			source.Add(sc)
			return sc, nil
		}
		log.Warnf("remote generation failed, composing locally: %v", err)
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	sc := script.Compose(topic, base.Personas, lines, rnd)
	source.Add(sc)
	return sc, nil
}
