package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"myxl/cmd/myxl/ui"
	"myxl/internal/bookmark"
	"myxl/internal/config"
	"myxl/internal/payment"
	"myxl/internal/session"
	"myxl/internal/xlapi"
)

// app bundles the wired dependencies every flow needs.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	client    *xlapi.Client
	sessions  *session.Store
	bookmarks *bookmark.Store
	styles    ui.Styles

	in  *bufio.Reader
	out io.Writer
}

// newApp wires the stores and API client from configuration.
func newApp(cfg *config.Config, logger *zap.Logger) (*app, error) {
	sessions, err := session.Open(cfg.State.Dir)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	bookmarks, err := bookmark.Open(cfg.State.Dir)
	if err != nil {
		return nil, fmt.Errorf("open bookmark store: %w", err)
	}
	return &app{
		cfg:       cfg,
		logger:    logger,
		client:    xlapi.New(cfg.API.BaseURL, cfg.API.APIKey, cfg.API.TimeoutDuration(), logger),
		sessions:  sessions,
		bookmarks: bookmarks,
		styles:    ui.DefaultStyles(),
		in:        bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// activeSession returns the selected account or an actionable error.
func (a *app) activeSession() (*session.Session, error) {
	sess, ok := a.sessions.Active()
	if !ok {
		return nil, fmt.Errorf("no active account; add one with `myxl accounts add`")
	}
	return sess, nil
}

// settleFunc binds the API client's settlement call for one method into the
// engine's submitter shape. The printed reference (QRIS string, e-wallet
// deeplink) is not part of the retry protocol, so it is surfaced through the
// callback instead.
func (a *app) settleFunc(sess *session.Session, method string, onRef func(string)) payment.SubmitFunc {
	return func(ctx context.Context, req payment.Request) (*payment.Result, error) {
		res, ref, err := a.client.Settle(ctx, sess, req, method)
		if err != nil {
			return nil, err
		}
		if ref != "" && onRef != nil {
			onRef(ref)
		}
		return res, nil
	}
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// readLine prints the prompt and reads one trimmed input line.
func (a *app) readLine(prompt string) string {
	a.printf("%s ", a.styles.Key.Render(prompt))
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// confirm asks a yes/no question, default no.
func (a *app) confirm(prompt string) bool {
	answer := strings.ToLower(a.readLine(prompt + " [y/N]"))
	return answer == "y" || answer == "yes"
}
