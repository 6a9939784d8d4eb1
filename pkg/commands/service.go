package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/store"
)

// openService loads config, opens the on-disk blob and the daybook in it.
func openService(ctx context.Context) (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg.LogLevel())
	if err != nil {
		return nil, err
	}

	locale, err := language.Parse(cfg.Locale())
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", cfg.Locale(), err)
	}

	blob, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	log.WithField("path", cfg.BasePath()).Debug("using daybook")

	return app.Open(ctx, blob,
		app.WithKey(cfg.Key()),
		app.WithLogger(log),
		app.WithLocale(locale),
	)
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l, nil
}
