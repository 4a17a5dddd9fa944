package summary

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/coach"
	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/leaderboard"
	"github.com/abhisek/mathquest/internal/level"
	"github.com/abhisek/mathquest/internal/llm"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/session"
)

type recordingBoard struct {
	mu      sync.Mutex
	entries []leaderboard.Entry
}

func (b *recordingBoard) SubmitBest(_ context.Context, e leaderboard.Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, e)
	return nil
}
func (b *recordingBoard) Top(context.Context, int) ([]leaderboard.Entry, error) { return nil, nil }
func (b *recordingBoard) Close() error                                          { return nil }

type gameStub struct{ cfg level.Config }

func (g *gameStub) Init() tea.Cmd                           { return nil }
func (g *gameStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return g, nil }
func (g *gameStub) View(int, int) string                    { return "" }
func (g *gameStub) Title() string                           { return g.cfg.Name }

func testLevel(t *testing.T, index int) level.Config {
	t.Helper()
	cfg, err := level.Get(8, index, i18n.EN)
	if err != nil {
		t.Fatalf("level.Get: %v", err)
	}
	return cfg
}

func testEnv() *screen.Env {
	return &screen.Env{Stats: player.New("Budi", i18n.EN)}
}

func play(cfg level.Config) screen.Screen { return &gameStub{cfg: cfg} }

func passedResult(cfg level.Config) session.Result {
	return session.Result{
		LevelID:        cfg.ID,
		Score:          cfg.TargetScore,
		Passed:         true,
		CorrectCount:   9,
		TotalQuestions: cfg.QuestionsCount,
	}
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func replaced(t *testing.T, cmd tea.Cmd) *gameStub {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	g, ok := msg.Screen.(*gameStub)
	if !ok {
		t.Fatalf("expected game screen, got %T", msg.Screen)
	}
	return g
}

// deliver runs cmd, feeding every resulting message back to s.
func deliver(t *testing.T, s *SummaryScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				s.Update(c())
			}
		}
		return
	}
	s.Update(msg)
}

func TestSummaryScreen_AppliesOnce(t *testing.T) {
	env := testEnv()
	cfg := testLevel(t, 1)
	s := New(env, cfg, passedResult(cfg), play)

	s.Init()
	s.Init()

	if env.Stats.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, want 1", env.Stats.GamesPlayed)
	}
	if env.Stats.Stars[cfg.ID] != 3 {
		t.Errorf("stars = %d, want 3", env.Stats.Stars[cfg.ID])
	}
	if !env.Stats.LevelUnlocked(8, 2) {
		t.Error("expected level 2 unlocked")
	}
	if !s.outcome.NewUnlocked {
		t.Error("expected outcome to report the unlock")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	env := testEnv()
	cfg := testLevel(t, 1)
	s := New(env, cfg, passedResult(cfg), play)
	s.Init()

	view := s.View(80, 24)
	for _, want := range []string{"Amazing!", "New level unlocked!", "Next", "Retry"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_FailedHasNoNext(t *testing.T) {
	env := testEnv()
	cfg := testLevel(t, 1)
	s := New(env, cfg, session.Result{LevelID: cfg.ID, Score: 10, TotalQuestions: 10}, play)
	s.Init()

	if len(s.actions) != 2 || s.actions[0] != actionRetry {
		t.Fatalf("actions = %v, want retry and menu", s.actions)
	}
	if !strings.Contains(s.View(80, 24), "Retry") {
		t.Error("expected failure view")
	}

	_, cmd := s.Update(enter())
	g := replaced(t, cmd)
	if g.cfg.ID != cfg.ID {
		t.Errorf("retry level = %s, want %s", g.cfg.ID, cfg.ID)
	}
}

func TestSummaryScreen_NextLevel(t *testing.T) {
	env := testEnv()
	cfg := testLevel(t, 1)
	s := New(env, cfg, passedResult(cfg), play)
	s.Init()

	_, cmd := s.Update(enter())
	g := replaced(t, cmd)
	if g.cfg.Index != 2 {
		t.Errorf("next level index = %d, want 2", g.cfg.Index)
	}
}

func TestSummaryScreen_LastLevelHasNoNext(t *testing.T) {
	env := testEnv()
	cfg := testLevel(t, level.Count)
	s := New(env, cfg, passedResult(cfg), play)
	s.Init()

	if s.actions[0] == actionNext {
		t.Error("expected no next action after the last level")
	}
}

func TestSummaryScreen_MenuPops(t *testing.T) {
	env := testEnv()
	cfg := testLevel(t, 1)
	s := New(env, cfg, passedResult(cfg), play)
	s.Init()

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSummaryScreen_PublishesPassedLevel(t *testing.T) {
	board := &recordingBoard{}
	env := testEnv()
	env.Board = leaderboard.NewPublisher(board, nil)
	cfg := testLevel(t, 1)
	s := New(env, cfg, passedResult(cfg), play)

	deliver(t, s, s.Init())

	if len(board.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(board.entries))
	}
	if board.entries[0].Name != "BUDI" || board.entries[0].Score != cfg.TargetScore {
		t.Errorf("entry = %+v", board.entries[0])
	}
	if !s.published {
		t.Error("expected published flag")
	}
}

func TestSummaryScreen_CoachMessage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Content: json.RawMessage(`{"message":"Keep it up, Budi!"}`)})
	env := testEnv()
	env.Coach = coach.New(mock, nil)
	cfg := testLevel(t, 1)
	s := New(env, cfg, passedResult(cfg), play)

	deliver(t, s, s.Init())

	if !s.message.Generated || s.message.Text != "Keep it up, Budi!" {
		t.Errorf("message = %+v", s.message)
	}
	if !strings.Contains(s.View(80, 30), "Keep it up, Budi!") {
		t.Error("expected coach message in view")
	}
}
