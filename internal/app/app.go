package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"prank_names/internal/config"
	"prank_names/internal/extract"
	"prank_names/internal/fetch"
	"prank_names/internal/logger"
	"prank_names/internal/models"
	"prank_names/internal/namegen"
)

const (
	Banner = "\nWelcome to generating amusing names in the style of prank calls " +
		"made by Bart Simpson on the classic show The Simpsons!\n"
	Prompt = "\nPress Enter to generate a name or press q to exit:  "
)

type NamesApp struct {
	config    *config.Config
	fetcher   fetch.Fetcher
	extractor *extract.Extractor
	logger    *slog.Logger
}

func NewNamesApp(cfg *config.Config, l *slog.Logger) (*NamesApp, error) {
	if l == nil {
		l = slog.Default()
	}

	fetcher, err := fetch.New(cfg.Fetch, l)
	if err != nil {
		return nil, err
	}

	return &NamesApp{
		config:    cfg,
		fetcher:   fetcher,
		extractor: extract.New(cfg.Extract),
		logger:    l,
	}, nil
}

// LoadNames fetches the source page and extracts the name lists from it.
func (a *NamesApp) LoadNames(ctx context.Context) (models.NameLists, error) {
	page, err := a.fetcher.Fetch(ctx, a.config.Fetch.URL)
	if err != nil {
		logger.LogFailed(a.logger, "fetch", err)
		return models.NameLists{}, err
	}
	logger.LogFetched(a.logger, page, extract.PageTitle(page.Body, page.FinalURL))

	names, err := a.extractor.Extract(page.Body)
	if err != nil {
		logger.LogFailed(a.logger, "extract", err)
		return models.NameLists{}, err
	}
	logger.LogExtracted(a.logger, names)
	return names, nil
}

// Run loads the names and then serves the prompt loop until the user quits
// or in is exhausted. An interrupt while loading aborts the fetch; once the
// prompt is up, interrupts get their default behaviour again.
func (a *NamesApp) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	loadCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	names, err := a.LoadNames(loadCtx)
	stop()
	if err != nil {
		return err
	}

	gen, err := namegen.New(names, nil)
	if err != nil {
		return err
	}

	return Loop(gen, in, out)
}

// Loop prints the banner, then one generated name per line read. A line
// reading "q" (any case, surrounding space ignored) or EOF ends the loop.
func Loop(gen *namegen.Generator, in io.Reader, out io.Writer) error {
	fmt.Fprint(out, Banner)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if strings.EqualFold(strings.TrimSpace(scanner.Text()), "q") {
			return nil
		}
		fmt.Fprintln(out, gen.Generate())
	}
}
