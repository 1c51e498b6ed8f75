package achievements

import (
	"context"
	"testing"

	"geowiz-backend/internal/game"
	"geowiz-backend/internal/sessions"
)

func newTestServices(t *testing.T) (*Service, *sessions.Service) {
	t.Helper()
	sessionsRepo := sessions.NewMemoryRepo()
	svc := &Service{Repo: NewMemoryRepo(), History: sessionsRepo}
	sessionsSvc := &sessions.Service{Repo: sessionsRepo, OnCompleted: svc}
	return svc, sessionsSvc
}

func playSession(t *testing.T, svc *sessions.Service, userID string, region game.Region, correct, wrong int) sessions.GameSession {
	t.Helper()
	s, err := svc.Start(context.Background(), userID, game.ModeCapitals, region)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < correct; i++ {
		if _, _, err := svc.RecordAnswer(context.Background(), userID, s.ID, true); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	for i := 0; i < wrong; i++ {
		if _, _, err := svc.RecordAnswer(context.Background(), userID, s.ID, false); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	completed, err := svc.Complete(context.Background(), userID, s.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	return completed
}

func unlockedTypes(t *testing.T, svc *Service, userID string) map[string]int {
	t.Helper()
	list, err := svc.ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	out := make(map[string]int)
	for _, a := range list {
		out[a.Type]++
	}
	return out
}

func TestFirstCompletionUnlocksGlobeTrotter(t *testing.T) {
	svc, sessionsSvc := newTestServices(t)

	playSession(t, sessionsSvc, "guest:u1", game.RegionGlobal, 1, 1)

	types := unlockedTypes(t, svc, "guest:u1")
	if types[TypeGlobeTrotter] != 1 {
		t.Fatalf("globe-trotter = %d, want 1 (%v)", types[TypeGlobeTrotter], types)
	}
}

func TestPerfectGameRequiresFiveQuestions(t *testing.T) {
	svc, sessionsSvc := newTestServices(t)

	playSession(t, sessionsSvc, "guest:u1", game.RegionGlobal, 4, 0)
	if types := unlockedTypes(t, svc, "guest:u1"); types[TypePerfectGame] != 0 {
		t.Fatalf("perfect-game unlocked below 5 questions: %v", types)
	}

	playSession(t, sessionsSvc, "guest:u1", game.RegionGlobal, 5, 0)
	if types := unlockedTypes(t, svc, "guest:u1"); types[TypePerfectGame] != 1 {
		t.Fatalf("perfect-game = %d, want 1", types[TypePerfectGame])
	}
}

func TestStreakMasterAtTen(t *testing.T) {
	svc, sessionsSvc := newTestServices(t)

	playSession(t, sessionsSvc, "guest:u1", game.RegionGlobal, 10, 0)

	types := unlockedTypes(t, svc, "guest:u1")
	if types[TypeStreakMaster] != 1 {
		t.Fatalf("streak-master = %d, want 1 (%v)", types[TypeStreakMaster], types)
	}
}

func TestWorldExplorerNeedsThreeRegions(t *testing.T) {
	svc, sessionsSvc := newTestServices(t)

	playSession(t, sessionsSvc, "guest:u1", game.RegionEurope, 1, 0)
	playSession(t, sessionsSvc, "guest:u1", game.RegionAsia, 1, 0)
	if types := unlockedTypes(t, svc, "guest:u1"); types[TypeWorldExplorer] != 0 {
		t.Fatalf("world-explorer unlocked at 2 regions: %v", types)
	}

	playSession(t, sessionsSvc, "guest:u1", game.RegionAfrica, 1, 0)
	if types := unlockedTypes(t, svc, "guest:u1"); types[TypeWorldExplorer] != 1 {
		t.Fatalf("world-explorer = %d, want 1", types[TypeWorldExplorer])
	}
}

func TestUnlocksAreIdempotent(t *testing.T) {
	svc, sessionsSvc := newTestServices(t)

	playSession(t, sessionsSvc, "guest:u1", game.RegionGlobal, 1, 0)
	playSession(t, sessionsSvc, "guest:u1", game.RegionGlobal, 1, 0)

	types := unlockedTypes(t, svc, "guest:u1")
	if types[TypeGlobeTrotter] != 1 {
		t.Fatalf("globe-trotter = %d, want exactly 1", types[TypeGlobeTrotter])
	}
}
