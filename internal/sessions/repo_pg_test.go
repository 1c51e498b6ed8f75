package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"geowiz-backend/internal/game"
)

func TestPGRepoCreateInsertsCounters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	s := GameSession{
		ID:        "session-1",
		UserID:    "guest:u1",
		Mode:      game.ModeCapitals,
		Region:    game.RegionEurope,
		StartedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO game_sessions").
		WithArgs(
			s.ID,
			s.UserID,
			"capitals",
			"europe",
			0,
			0,
			0,
			0,
			0,
			false,
			s.StartedAt,
			nil,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE game_sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), GameSession{ID: "missing"}); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPGRepoCompletedScoreTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	rows := sqlmock.NewRows([]string{"user_id", "total_score"}).
		AddRow("guest:u1", 540).
		AddRow("guest:u2", 320)

	mock.ExpectQuery("SELECT user_id, SUM").
		WithArgs(10).
		WillReturnRows(rows)

	totals, err := repo.CompletedScoreTotals(context.Background(), 10)
	if err != nil {
		t.Fatalf("CompletedScoreTotals: %v", err)
	}
	if len(totals) != 2 || totals[0].TotalScore != 540 {
		t.Fatalf("totals = %+v", totals)
	}
}
