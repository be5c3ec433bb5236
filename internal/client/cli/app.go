package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/ipfsuploader/internal/buildinfo"
	"github.com/dmitrijs2005/ipfsuploader/internal/client/client"
	"github.com/dmitrijs2005/ipfsuploader/internal/client/config"
	"github.com/dmitrijs2005/ipfsuploader/internal/client/services"
	"github.com/dmitrijs2005/ipfsuploader/internal/logging"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	config   *config.Config
	client   client.Client
	logger   logging.Logger
	closeLog func() error

	uploadService services.UploadService
	namingService services.NamingService

	prompter Prompter
	animate  bool
	out      io.Writer
	errOut   io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, closeLog, err := logging.NewFileLogger(c.LogFile, c.Debug)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	cl, err := client.Open(ctx, c)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	tty := isTerminal(int(os.Stdin.Fd())) && isTerminal(int(os.Stdout.Fd()))

	var p Prompter = newLinePrompter(os.Stdin, os.Stdout)
	if tty {
		p = ttyPrompter{}
	}

	logger.Info(ctx, "uploader started", "build", buildinfo.String(),
		"storage", c.StorageBackend, "naming", c.NamingBackend, "interactive", tty)

	return &App{
		config:        c,
		client:        cl,
		logger:        logger,
		closeLog:      closeLog,
		uploadService: services.NewUploadService(cl, logger),
		namingService: services.NewNamingService(cl, logger),
		prompter:      p,
		animate:       tty,
		out:           os.Stdout,
		errOut:        os.Stderr,
	}, nil
}

// Run executes one upload session and returns the process exit code:
// 0 when the session finished or was cancelled, 1 on any other failure.
func (a *App) Run(ctx context.Context) int {
	defer a.close(ctx)

	fmt.Fprintln(a.out, banner(" Welcome to your file uploader! "))

	wf := &workflow{
		prompter: a.prompter,
		uploads:  a.uploadService,
		naming:   a.namingService,
		status:   newStatusLine(a.out, a.animate),
		out:      a.out,
		gateway:  a.config.GatewayURL,
		logger:   a.logger,
	}

	err := wf.run(ctx)
	switch {
	case err == nil:
		a.logger.Info(ctx, "session finished", "path", fmt.Sprint(wf.trace))
		return 0
	case errors.Is(err, ErrCancelled):
		a.logger.Info(ctx, "session cancelled", "path", fmt.Sprint(wf.trace))
		return 0
	default:
		a.logger.Error(ctx, "session failed", "path", fmt.Sprint(wf.trace), "error", err)
		fmt.Fprintf(a.errOut, "error: %v\n", err)
		return 1
	}
}

func (a *App) close(ctx context.Context) {
	if a.client != nil {
		if err := a.client.Close(); err != nil {
			a.logger.Warn(ctx, "closing client", "error", err)
		}
	}
	if a.closeLog != nil {
		_ = a.closeLog()
	}
}
