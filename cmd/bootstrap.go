package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/coach"
	"github.com/abhisek/mathquest/internal/config"
	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/leaderboard"
	"github.com/abhisek/mathquest/internal/llm"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/store"
)

// deps is everything a command needs, opened from config and flags.
type deps struct {
	cfg     *config.Config
	store   *store.Store
	env     *screen.Env
	closers []io.Closer
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i].Close()
	}
}

// loadConfig reads the config file and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.Database.Path = v
	}
	if v, _ := cmd.Flags().GetString("lang"); v != "" {
		cfg.Language = string(i18n.Parse(v))
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path, falling back to
// MATHQUEST_DB and then the default XDG path.
func resolveDBPath(cfg *config.Config) (string, error) {
	if p := cfg.Database.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// bootstrap opens the store and loads the player. With services set it
// also connects the leaderboard and the coach; their failures are
// reported and play continues without them.
func bootstrap(cmd *cobra.Command, services bool) (*deps, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	d := &deps{cfg: cfg}
	logger, logFile, err := config.SetupLogger(cfg.Log, filepath.Dir(dbPath))
	if err != nil {
		return nil, err
	}
	d.closers = append(d.closers, logFile)

	st, err := store.Open(dbPath)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	d.store = st
	d.closers = append(d.closers, st)

	players := player.NewRepo(st.SnapshotRepo())
	stats, err := players.Load(ctx)
	if err != nil {
		d.Close()
		return nil, err
	}
	if stats == nil {
		stats = player.New("", cfg.Lang())
	}
	if flag, _ := cmd.Flags().GetString("lang"); flag != "" {
		stats.Language = cfg.Lang()
	}

	d.env = &screen.Env{
		Stats:      stats,
		Players:    players,
		Events:     st.EventRepo(),
		Logger:     logger,
		Timing:     cfg.Timing(),
		BoardLimit: cfg.Leaderboard.Limit,
		Version:    version,
		NewSource: func() session.QuestionSource {
			return problemgen.NewDefault().WithLogger(logger)
		},
	}
	logger.Info("started", "db", dbPath, "lang", stats.Language, "player", stats.Name)

	if !services {
		return d, nil
	}

	board, err := leaderboard.Open(ctx, cfg.Leaderboard.Driver, cfg.Leaderboard.DSN, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Leaderboard not available:", err)
		logger.Warn("leaderboard disabled", "driver", cfg.Leaderboard.Driver, "error", err)
	} else if board != nil {
		d.closers = append(d.closers, board)
	}
	d.env.Board = leaderboard.NewPublisher(board, logger)
	d.env.Coach = newCoach(ctx, cfg, st.EventRepo(), logger)

	return d, nil
}

// newCoach returns a coach backed by the configured LLM, or nil when none
// is usable so the result screen keeps its static title.
func newCoach(ctx context.Context, cfg *config.Config, events store.EventRepo, logger *slog.Logger) *coach.Coach {
	opts, ok := llm.Resolve(cfg.LLM.Provider, cfg.LLM.Model, llm.Keys{
		Anthropic: cfg.LLM.AnthropicKey,
		OpenAI:    cfg.LLM.OpenAIKey,
		Gemini:    cfg.LLM.GeminiKey,
	})
	if !ok {
		logger.Debug("no LLM configured, coach uses static messages")
		return nil
	}
	provider, err := llm.New(ctx, opts, events, logger)
	if err != nil {
		logger.Warn("LLM provider not available", "provider", opts.Provider, "error", err)
		return nil
	}
	logger.Info("coach enabled", "provider", provider.Name(), "model", provider.Model())
	return coach.New(provider, logger)
}
