package questions

import (
	"context"
	"testing"

	"geowiz-backend/internal/game"
)

func seededRepo(t *testing.T) *MemoryRepo {
	t.Helper()
	repo := NewMemoryRepo()
	if err := Seed(context.Background(), repo); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return repo
}

func TestListGlobalRequestMatchesRegionalQuestions(t *testing.T) {
	svc := &Service{Repo: seededRepo(t)}

	qs, err := svc.List(context.Background(), game.ModeCapitals, game.RegionGlobal, 100)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	regions := make(map[game.Region]bool)
	for _, q := range qs {
		if q.Mode != game.ModeCapitals {
			t.Fatalf("unexpected mode %q in capitals listing", q.Mode)
		}
		regions[q.Region] = true
	}
	if !regions[game.RegionEurope] || !regions[game.RegionAsia] {
		t.Fatalf("global request should include regional questions, got regions %v", regions)
	}
}

func TestListRegionalRequestIncludesGlobalQuestions(t *testing.T) {
	svc := &Service{Repo: seededRepo(t)}

	qs, err := svc.List(context.Background(), game.ModeCapitals, game.RegionEurope, 100)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var sawGlobal, sawEurope, sawOther bool
	for _, q := range qs {
		switch q.Region {
		case game.RegionGlobal:
			sawGlobal = true
		case game.RegionEurope:
			sawEurope = true
		default:
			sawOther = true
		}
	}
	if !sawGlobal || !sawEurope {
		t.Fatalf("europe request should include global and europe questions (global=%v europe=%v)", sawGlobal, sawEurope)
	}
	if sawOther {
		t.Fatal("europe request matched a question from another region")
	}
}

func TestListAppliesLimit(t *testing.T) {
	svc := &Service{Repo: seededRepo(t)}

	qs, err := svc.List(context.Background(), game.ModeCapitals, game.RegionGlobal, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("len = %d, want 3", len(qs))
	}
}

func TestCheckAnswerNormalizesAndAcceptsAlternatives(t *testing.T) {
	q := Question{
		Answer:             "brasilia",
		AlternativeAnswers: []string{"brasília"},
	}

	cases := []struct {
		submitted string
		want      bool
	}{
		{"brasilia", true},
		{"  Brasilia  ", true},
		{"BRASÍLIA", true},
		{"rio de janeiro", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := CheckAnswer(q, tc.submitted); got != tc.want {
			t.Fatalf("CheckAnswer(%q) = %v, want %v", tc.submitted, got, tc.want)
		}
	}
}

func TestGetRejectsEmptyID(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	if _, err := svc.Get(context.Background(), "  "); err != ErrInvalidInput {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
