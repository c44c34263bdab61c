package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/a11ytutor/internal/app"
	"github.com/abhisek/a11ytutor/internal/config"
	"github.com/abhisek/a11ytutor/internal/curriculum"
	"github.com/abhisek/a11ytutor/internal/logging"
	"github.com/abhisek/a11ytutor/internal/session"
	"github.com/abhisek/a11ytutor/internal/store"
	"github.com/abhisek/a11ytutor/internal/validation"
)

// ErrCheckFailed is returned when a submission does not pass. The diagnostic
// has already been written to stderr.
var ErrCheckFailed = errors.New("submission did not pass")

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "a11ytutor",
		Short: "WCAG accessibility tutor",
		Long: "a11ytutor is a terminal tutor for the WCAG success criteria. Fix small HTML\n" +
			"snippets until they pass the accessibility rule, and answer short quizzes.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("curriculum", "", "Path to a YAML curriculum (overrides A11Y_CURRICULUM)")
	pf.String("journal", "", "SQLite DSN for the attempt journal (overrides A11Y_JOURNAL_DSN)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides A11Y_LOG_LEVEL)")
	pf.String("log-file", "", "Append logs to this file (overrides A11Y_LOG_FILE)")
	root.Flags().Bool("no-splash", false, "Skip the title screen")

	root.AddCommand(newListCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newQuizCmd())
	root.AddCommand(newLinksCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(versionCmd)
	return root
}

// loadConfig reads the environment and applies flag overrides. Flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v, _ := cmd.Flags().GetString("curriculum"); v != "" {
		cfg.CurriculumPath = v
	}
	if v, _ := cmd.Flags().GetString("journal"); v != "" {
		cfg.Journal.DSN = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.Log.File = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadCurriculum returns the configured curriculum, or the built-in one.
func loadCurriculum(cfg *config.Config) (*curriculum.Registry, error) {
	if cfg.CurriculumPath == "" {
		return curriculum.Default()
	}
	return curriculum.LoadFile(cfg.CurriculumPath)
}

// env is everything a command needs to run a session.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *store.Store
	session *session.Session
	closers []io.Closer
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i].Close()
	}
}

// openEnv loads config, logger, curriculum and journal, and starts a
// session. Logs go to logOut unless a log file is configured.
func openEnv(cmd *cobra.Command, logOut io.Writer) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, logCloser, err := logging.New(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg, logger: logger, closers: []io.Closer{logCloser}}

	reg, err := loadCurriculum(cfg)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("load curriculum: %w", err)
	}

	st, err := store.Open(cfg.Journal.DSN)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open journal: %w", err)
	}
	e.store = st
	e.closers = append(e.closers, st)

	e.session = session.New(reg, validation.New(nil),
		session.WithJournal(st.EventRepo()),
		session.WithLogger(logger),
	)
	logger.Debug("session opened",
		"exercises", reg.Len(),
		"curriculum", cfg.CurriculumPath,
		"journal", cfg.Journal.DSN,
	)
	return e, nil
}

// runTUI launches the terminal UI. Without a log file, logs are discarded
// since the terminal belongs to the UI.
func runTUI(cmd *cobra.Command) error {
	e, err := openEnv(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer e.Close()

	skip, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(app.Options{
		Session:    e.session,
		Logger:     e.logger,
		SkipSplash: skip,
	})
}

// exitCode maps an Execute error onto a process exit status, printing it
// unless it was already reported.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, ErrCheckFailed) {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return 1
}

// Main runs the CLI and returns the process exit status.
func Main() int {
	return exitCode(Execute(), os.Stderr)
}
