package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"placerec/internal/api"
	"placerec/internal/config"
	"placerec/internal/device"
	"placerec/internal/logger"
	"placerec/internal/recorder"

	"go.uber.org/zap"
)

var mainDepsProvider = defaultDeps
var mainRunner = realMain

func main() {
	mainRunner(mainDepsProvider())
}

type mainDeps struct {
	loadConfig func() config.Config
	newLogger  func() (*zap.Logger, error)
	notify     func(chan<- os.Signal, ...os.Signal)
	run        func(context.Context, config.Config, *zap.Logger, io.Reader, io.Writer, <-chan os.Signal) error
}

func defaultDeps() mainDeps {
	return mainDeps{
		loadConfig: config.Load,
		newLogger:  logger.New,
		notify:     signal.Notify,
		run:        Run,
	}
}

func realMain(deps mainDeps) {
	cfg := deps.loadConfig()

	log, err := deps.newLogger()
	if err != nil {
		stdlog.Printf("logger setup failed: %v", err)
		return
	}
	defer func() { _ = log.Sync() }()

	signals := make(chan os.Signal, 1)
	deps.notify(signals, syscall.SIGINT, syscall.SIGTERM)

	if err := deps.run(context.Background(), cfg, log, os.Stdin, os.Stdout, signals); err != nil {
		log.Error("session exited with error", zap.Error(err))
	}
}

var buildRecorder = func(cfg config.Config, log *zap.Logger, prompt device.Confirmer, out io.Writer) *recorder.Recorder {
	client := api.NewClient(cfg.APIBaseURL, time.Duration(cfg.HTTPTimeout)*time.Second, log)
	loc := device.NewCommandLocator(cfg.LocationCmd, prompt, log)
	cam := device.NewCommandCamera(cfg.CameraCmd, cfg.PhotoQuality, prompt, log)
	return recorder.New(client, loc, cam, recorder.NewTerminalNotifier(out), log)
}

const usage = `commands:
  title <text>   set the title
  desc <text>    set the description
  locate         read the current gps position
  photo          capture a photo
  unphoto        remove the captured photo
  save           submit the new place
  list           redraw the screen
  quit           leave
`

// Run drives one interactive session: a single startup fetch, then line
// commands until quit, end of input, a signal or context cancellation.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger, in io.Reader, out io.Writer, signals <-chan os.Signal) error {
	reader := bufio.NewReader(in)
	prompt := device.NewPrompter(reader, out)
	rec := buildRecorder(cfg, log, prompt, out)

	_ = rec.LoadPlaces(ctx)
	fmt.Fprint(out, recorder.RenderScreen(rec))
	fmt.Fprint(out, usage)

	for {
		select {
		case <-signals:
			return nil
		case <-ctx.Done():
			return nil
		default:
		}

		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			// end of input ends the session
			return nil
		}
		if quit := dispatch(ctx, rec, strings.TrimSpace(line), out); quit {
			return nil
		}
	}
}

func dispatch(ctx context.Context, rec *recorder.Recorder, line string, out io.Writer) bool {
	cmd, rest, _ := strings.Cut(line, " ")
	switch cmd {
	case "":
		return false
	case "title":
		rec.SetTitle(strings.TrimSpace(rest))
	case "desc":
		rec.SetDescription(strings.TrimSpace(rest))
	case "locate":
		_ = rec.AcquireLocation(ctx)
	case "photo":
		_ = rec.CapturePhoto(ctx)
	case "unphoto":
		rec.RemovePhoto()
	case "save":
		_ = rec.Submit(ctx)
	case "list":
	case "help":
		fmt.Fprint(out, usage)
		return false
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(out, "unknown command %q (try 'help')\n", cmd)
		return false
	}

	fmt.Fprint(out, recorder.RenderScreen(rec))
	return false
}
