package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bastiangx/pawn/internal/cli"
	"github.com/bastiangx/pawn/internal/logger"
	"github.com/bastiangx/pawn/internal/utils"
	"github.com/bastiangx/pawn/pkg/config"
	"github.com/bastiangx/pawn/pkg/dictionary"
	"github.com/bastiangx/pawn/pkg/morph"
	"github.com/bastiangx/pawn/pkg/resource"
	"github.com/bastiangx/pawn/pkg/server"
	"github.com/bastiangx/pawn/pkg/session"
	"github.com/bastiangx/pawn/pkg/wordnet"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	dataDir    string
	lexicon    string
	debug      bool
}

func (o *rootOptions) applyLogging() {
	logger.SetDebug(o.debug)
	log.SetReportTimestamp(o.debug)
}

// app is a configured facade plus the paths it was built from.
type app struct {
	cfg        *config.Config
	configPath string
	dataDir    string
	lexicon    string
	wn         *wordnet.WordNet
}

// open loads the config, resolves data paths and activates the default language.
func (o *rootOptions) open() (*app, error) {
	cfg, configPath, err := config.LoadConfigWithPriority(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.dataDir != "" {
		cfg.Data.Dir = o.dataDir
	}
	if o.lexicon != "" {
		cfg.Data.Lexicon = o.lexicon
	}

	configDir := ""
	if configPath != "" {
		configDir = filepath.Dir(configPath)
	}
	dataDir := utils.ResolveDataDir(cfg.Data.Dir, configDir)
	lexicon := resolveLexicon(cfg.Data.Lexicon, dataDir)
	log.Debugf("Using data dir at: %s", dataDir)
	log.Debugf("Using lexicon: %s", lexicon)

	sessions := session.New(dictionary.NewLoader(dataDir), morph.Options{
		DataDir:        dataDir,
		TreeTaggerHome: cfg.Morph.TreeTaggerHome,
		CacheSize:      cfg.Morph.CacheSize,
	})
	wn := wordnet.New(resource.Open(lexicon), sessions)
	if err := wn.EnsureLoaded(); err != nil {
		return nil, err
	}
	if err := wn.SetLanguage(cfg.Language.Default, cfg.Language.Analyzer); err != nil {
		return nil, fmt.Errorf("failed to activate %q: %w", cfg.Language.Default, err)
	}
	return &app{cfg: cfg, configPath: configPath, dataDir: dataDir, lexicon: lexicon, wn: wn}, nil
}

// resolveLexicon keeps path when it exists, else looks for its base name in dataDir.
func resolveLexicon(path, dataDir string) string {
	if utils.FileExists(path) {
		return utils.GetAbsolutePath(path)
	}
	if candidate := filepath.Join(dataDir, filepath.Base(path)); utils.FileExists(candidate) {
		return candidate
	}
	return path
}

func serveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve msgpack requests on stdin/stdout",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			log.Debug("spawning IPC")
			showStartupInfo(a)
			return server.NewServer(a.wn, a.cfg.Server, os.Stdin, os.Stdout).Start()
		},
	}
}

func replCmd(opts *rootOptions) *cobra.Command {
	limit := 0
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive lookups, :help for commands",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			if limit < 1 {
				limit = a.cfg.Server.MaxLimit
			}
			h := cli.NewInputHandler(a.wn, os.Stdin, os.Stdout, limit)
			h.SetAnalyzer(a.cfg.Language.Analyzer)
			return h.Start()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of completions to show")
	return cmd
}

func lookupCmd(opts *rootOptions) *cobra.Command {
	var language, analyzer, pos string
	cmd := &cobra.Command{
		Use:   "lookup <token>...",
		Short: "Print the synsets of a token",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			if language != "" || analyzer != "" {
				if language == "" {
					language = a.wn.Language().String()
				}
				if analyzer == "" {
					analyzer = a.cfg.Language.Analyzer
				}
				if err := a.wn.SetLanguage(language, analyzer); err != nil {
					return err
				}
			}
			token := strings.Join(args, " ")
			synsets, err := a.wn.Synsets(token, pos)
			if err != nil {
				return err
			}
			if len(synsets) == 0 {
				return fmt.Errorf("no synsets for %q in %s", token, a.wn.Language().Name())
			}
			for _, s := range synsets {
				fmt.Fprintf(os.Stdout, "%s\t%s\t%s\n", s.Name(), strings.Join(s.LemmaNames(), ","), s.Definition())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&language, "lang", "", "language code (en, fr, ru)")
	cmd.Flags().StringVar(&analyzer, "analyzer", "", "auto, morphy, snowball or treetagger")
	cmd.Flags().StringVar(&pos, "pos", "", "parts of speech to keep, letters of anrsv")
	return cmd
}

func versionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and data information",
		Run: func(_ *cobra.Command, _ []string) {
			showVersion(opts)
		},
	}
}

// showVersion prints the banner and, when the data loads, resource stats.
func showVersion(opts *rootOptions) {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ pawn ] WordNet in more than one language")
	l.Print("", "version", Version)
	l.Print("")

	a, err := opts.open()
	if err != nil {
		l.Print("data not loaded", "err", err)
	} else {
		synsets := 0
		for range a.wn.AllSynsets() {
			synsets++
		}
		l.Print("lexicon", "path", a.lexicon, "version", a.wn.Version())
		l.Print(a.wn.Language().Name(), "synsets", humanize.Comma(int64(synsets)), "words", humanize.Comma(int64(len(a.wn.Words()))))
		if info, err := os.Stat(a.lexicon); err == nil {
			l.Print("", "size", humanize.Bytes(uint64(info.Size())))
		}
	}
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(a *app) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	defer log.SetLevel(currentLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("config: ( %s )", a.configPath)
	log.Infof("data dir: ( %s )", a.dataDir)
	log.Infof("language: %s (%s)", a.wn.Language().Name(), a.wn.Analyzer())
	log.Info("status: ready")
}
