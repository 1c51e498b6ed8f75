package leaderboard

import (
	"context"
	"testing"

	"geowiz-backend/internal/game"
	"geowiz-backend/internal/sessions"
	"geowiz-backend/internal/users"
)

func TestTopRanksCompletedScores(t *testing.T) {
	sessionsSvc := &sessions.Service{Repo: sessions.NewMemoryRepo()}
	userRepo := users.NewMemoryRepo()
	svc := &Service{Scores: sessionsSvc, Users: userRepo}

	if err := userRepo.Upsert(context.Background(), users.User{ID: "guest:alice", DisplayName: "Alice"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	play := func(userID string, correct int, complete bool) {
		t.Helper()
		s, err := sessionsSvc.Start(context.Background(), userID, game.ModeCapitals, game.RegionGlobal)
		if err != nil {
			t.Fatalf("start: %v", err)
		}
		for i := 0; i < correct; i++ {
			if _, _, err := sessionsSvc.RecordAnswer(context.Background(), userID, s.ID, true); err != nil {
				t.Fatalf("answer: %v", err)
			}
		}
		if complete {
			if _, err := sessionsSvc.Complete(context.Background(), userID, s.ID); err != nil {
				t.Fatalf("complete: %v", err)
			}
		}
	}

	play("guest:alice", 2, true) // 100 + 110 = 210
	play("guest:bob", 1, true)   // 100
	play("guest:carol", 5, false) // incomplete, must not count

	entries, err := svc.Top(context.Background(), 10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].User.DisplayName != "Alice" || entries[0].TotalScore != 210 || entries[0].Rank != 1 {
		t.Fatalf("entries[0] = %+v", entries[0])
	}
	// Bob has no profile row and falls back to his ID.
	if entries[1].User.DisplayName != "guest:bob" || entries[1].Rank != 2 {
		t.Fatalf("entries[1] = %+v", entries[1])
	}
}

func TestTopClampsLimit(t *testing.T) {
	sessionsSvc := &sessions.Service{Repo: sessions.NewMemoryRepo()}
	svc := &Service{Scores: sessionsSvc, Users: users.NewMemoryRepo()}

	if _, err := svc.Top(context.Background(), 1000); err != nil {
		t.Fatalf("top: %v", err)
	}
}
