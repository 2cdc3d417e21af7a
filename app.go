package main

import (
	"context"
	"fmt"
	"io"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/charmbracelet/lipgloss"

	"wiki/article"
	"wiki/config"
	"wiki/fetcher"
	"wiki/render"
	"wiki/search"
	"wiki/selector"
	"wiki/theme"
)

const (
	msgNotFound    = "Wikipedia does not have an article with this exact name."
	msgFetchFailed = "There is a problem with fetching data. Please try again!"
)

// RunOptions are the per-invocation switches from the command line.
type RunOptions struct {
	Article article.Options
	Exact   bool // try the article first, search only when it is missing
}

// App ties retrieval, extraction, selection and rendering together for one
// invocation.
type App struct {
	baseURL string
	fetch   *fetcher.Client
	search  search.Provider
	out     *render.Renderer
	pick    *selector.Selector
	logger  *zap.Logger
}

// appEnv holds what the App takes from its surroundings rather than config.
type appEnv struct {
	baseURL string
	in      io.Reader
	out     io.Writer
	width   int
	logger  *zap.Logger
}

func newApp(cfg *config.Config, env appEnv) (*App, error) {
	th, ok := theme.ByName(cfg.Display.Theme)
	if !ok {
		return nil, errors.Errorf("unknown theme %q (available: %v)", cfg.Display.Theme, theme.Names())
	}

	width := env.width
	if cfg.Display.Width > 0 {
		width = cfg.Display.Width
	}

	logger := env.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	styles := theme.NewStyles(th, lipgloss.NewRenderer(env.out), cfg.Display.Color)
	out := render.New(env.out, styles, render.Options{Width: width, Wrap: cfg.Display.Wrap})
	client := fetcher.New(fetcher.Options{
		UserAgent:      cfg.Fetcher.UserAgent,
		TimeoutSeconds: cfg.Fetcher.TimeoutSeconds,
	}, logger.Named("fetcher"))

	return &App{
		baseURL: env.baseURL,
		fetch:   client,
		search:  search.NewWikipedia(client, env.baseURL, cfg.Search.Limit),
		out:     out,
		pick:    selector.New(env.in, out),
		logger:  logger,
	}, nil
}

// Run handles one query. Retrieval failures are reported to the user and
// not returned; only a broken console input is an error.
func (a *App) Run(ctx context.Context, query string, opts RunOptions) error {
	if opts.Exact {
		art, err := article.Fetch(ctx, a.fetch, a.baseURL, query, opts.Article)
		switch {
		case err == nil:
			a.showArticle(art)
			return nil
		case errors.Is(err, article.ErrNotFound):
			a.logger.Debug("exact title missing, searching", zap.String("query", query))
			a.out.Info(fmt.Sprintf(`No article named "%s", searching instead.`, query))
		default:
			a.fetchFailed(err)
			return nil
		}
	}
	return a.searchAndPick(ctx, query, opts.Article)
}

func (a *App) searchAndPick(ctx context.Context, query string, opts article.Options) error {
	res, err := a.search.Search(ctx, query)
	if errors.Is(err, search.ErrNoResults) {
		a.out.Error(fmt.Sprintf(`No results could be found for "%s".`, query))
		return nil
	}
	if err != nil {
		a.fetchFailed(err)
		return nil
	}

	a.logger.Debug("searched",
		zap.String("query", res.Query),
		zap.String("provider", res.Provider),
		zap.Time("searched_at", res.SearchedAt),
		zap.Int("results", len(res.Results)),
		zap.Int("total", res.TotalFound))
	a.out.Results(res)

	choice, ok, err := a.pick.Pick(res.Results)
	if err != nil {
		return err
	}
	if !ok {
		a.logger.Debug("selection cancelled")
		return nil
	}
	a.logger.Debug("selected",
		zap.Int("rank", choice.Rank),
		zap.String("title", choice.Title),
		zap.String("url", choice.URL))

	art, err := article.Fetch(ctx, a.fetch, a.baseURL, choice.Title, opts)
	switch {
	case errors.Is(err, article.ErrNotFound):
		a.out.Error(msgNotFound)
	case err != nil:
		a.fetchFailed(err)
	default:
		a.showArticle(art)
	}
	return nil
}

func (a *App) showArticle(art *article.Article) {
	kinds := make(map[string]int)
	for _, item := range art.Items {
		kinds[item.Kind.String()]++
	}
	a.logger.Debug("extracted",
		zap.String("title", art.Title),
		zap.String("url", art.URL),
		zap.Duration("elapsed", art.FetchTime),
		zap.Int("infobox_rows", len(art.Infobox)),
		zap.Any("items", kinds))
	a.out.Article(art)
}

func (a *App) fetchFailed(err error) {
	a.logger.Warn("fetch failed", zap.Error(err))
	a.out.Error(msgFetchFailed)
}
