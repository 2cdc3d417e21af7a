// Wiki prints Wikipedia articles and search results in the terminal.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/spf13/cobra"

	"wiki/article"
	"wiki/config"
	"wiki/logging"
	"wiki/render"
)

type flags struct {
	full       bool
	exact      bool
	configPath string
	initConfig bool
	noColor    bool
	theme      string
	verbose    bool
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "wiki [flags] <query>",
		Short: "Read Wikipedia articles in the terminal",
		Long: `wiki searches English Wikipedia for a query, lets you pick one of the
top results and prints its infobox and lead section.`,
		Example: `  wiki "alan turing"
  wiki -f Go
  wiki --exact "Ada Lovelace"
  wiki --init-config > ~/.config/wiki/config.toml`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.initConfig {
				fmt.Fprint(cmd.OutOrStdout(), config.DefaultTOML())
				return nil
			}
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return errors.New("a query is required")
			}
			return run(cmd, query, f, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.BoolVarP(&f.full, "full", "f", false, "print all sections instead of the lead section only")
	fl.BoolVarP(&f.exact, "exact", "e", false, "open the article with this exact title, searching only if it does not exist")
	fl.StringVar(&f.configPath, "config", "", "config file (default ~/.config/wiki/config.toml)")
	fl.BoolVar(&f.initConfig, "init-config", false, "print the default config and exit")
	fl.BoolVar(&f.noColor, "no-color", false, "disable colours")
	fl.StringVar(&f.theme, "theme", "", "colour theme: classic, dusk or mono")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log diagnostics to stderr")
	return cmd
}

func run(cmd *cobra.Command, query string, f flags, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}
	if f.theme != "" {
		cfg.Display.Theme = f.theme
	}
	if f.noColor {
		cfg.Display.Color = false
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.New(stderr, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	width := outputWidth(stdout)
	if width == 0 {
		cfg.Display.Color = false
	}

	app, err := newApp(cfg, appEnv{
		baseURL: article.DefaultBaseURL,
		in:      stdin,
		out:     stdout,
		width:   width,
		logger:  logger,
	})
	if err != nil {
		return err
	}

	return app.Run(cmd.Context(), query, RunOptions{
		Article: article.Options{Full: f.full},
		Exact:   f.exact,
	})
}

// outputWidth is the column count of w when it is a terminal and 0 otherwise.
func outputWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	return render.DetectWidth(f)
}
