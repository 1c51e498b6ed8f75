package sessions_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"geowiz-backend/internal/bootstrap"
	"geowiz-backend/internal/shared/config"
)

func buildTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		MediaStoreType:  "local",
		LocalMediaDir:   t.TempDir(),
		Env:             "dev",
		SeedQuestions:   true,
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, guestID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", guestID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSessionGameplayFlow(t *testing.T) {
	router := buildTestApp(t)

	// Start a capitals session.
	resp := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "flow-guest", map[string]string{
		"mode":   "capitals",
		"region": "global",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var started struct {
		SessionID string `json:"sessionId"`
		Mode      string `json:"mode"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&started); err != nil {
		t.Fatalf("decode start response: %v", err)
	}
	if started.SessionID == "" {
		t.Fatalf("expected sessionId, got empty")
	}
	if started.Mode != "capitals" {
		t.Fatalf("expected mode capitals, got %s", started.Mode)
	}

	// Questions are listed without answers.
	respList := doJSON(t, router, http.MethodGet, "/api/v1/questions/capitals/global", "flow-guest", nil)
	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}
	var listed []map[string]any
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode questions: %v", err)
	}
	if len(listed) == 0 {
		t.Fatalf("expected seeded questions, got none")
	}
	if _, ok := listed[0]["answer"]; ok {
		t.Fatalf("question listing must not reveal the answer")
	}

	// Submit a correct answer against a known seeded question.
	respAns := doJSON(t, router, http.MethodPost, "/api/v1/answers", "flow-guest", map[string]any{
		"sessionId":  started.SessionID,
		"questionId": "capitals-australia",
		"userAnswer": "Canberra",
	})
	if respAns.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", respAns.Code, respAns.Body.String())
	}
	var graded struct {
		IsCorrect     bool   `json:"isCorrect"`
		CorrectAnswer string `json:"correctAnswer"`
		ScoreEarned   int    `json:"scoreEarned"`
		Session       struct {
			Score         int `json:"score"`
			CurrentStreak int `json:"currentStreak"`
		} `json:"session"`
	}
	if err := json.NewDecoder(respAns.Body).Decode(&graded); err != nil {
		t.Fatalf("decode answer response: %v", err)
	}
	if !graded.IsCorrect {
		t.Fatalf("expected correct grade")
	}
	if graded.CorrectAnswer != "canberra" {
		t.Fatalf("expected correctAnswer canberra, got %s", graded.CorrectAnswer)
	}
	if graded.ScoreEarned != 100 {
		t.Fatalf("expected 100 points, got %d", graded.ScoreEarned)
	}
	if graded.Session.Score != 100 || graded.Session.CurrentStreak != 1 {
		t.Fatalf("unexpected session state: %+v", graded.Session)
	}

	// Complete the session.
	respDone := doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+started.SessionID+"/complete", "flow-guest", nil)
	if respDone.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", respDone.Code, respDone.Body.String())
	}
	var completed struct {
		IsCompleted bool    `json:"isCompleted"`
		CompletedAt *string `json:"completedAt"`
	}
	if err := json.NewDecoder(respDone.Body).Decode(&completed); err != nil {
		t.Fatalf("decode complete response: %v", err)
	}
	if !completed.IsCompleted || completed.CompletedAt == nil {
		t.Fatalf("expected completed session, got %+v", completed)
	}

	// Completed sessions reject further answers.
	respLate := doJSON(t, router, http.MethodPost, "/api/v1/answers", "flow-guest", map[string]any{
		"sessionId":  started.SessionID,
		"questionId": "capitals-japan",
		"userAnswer": "tokyo",
	})
	if respLate.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", respLate.Code)
	}

	// History contains the session.
	respHist := doJSON(t, router, http.MethodGet, "/api/v1/sessions", "flow-guest", nil)
	if respHist.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respHist.Code)
	}
	var history []struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(respHist.Body).Decode(&history); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(history) != 1 || history[0].SessionID != started.SessionID {
		t.Fatalf("expected one session in history, got %+v", history)
	}
}

func TestSessionIsolationBetweenUsers(t *testing.T) {
	router := buildTestApp(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "owner-guest", map[string]string{
		"mode":   "flag-quirks",
		"region": "europe",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var started struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&started); err != nil {
		t.Fatalf("decode start response: %v", err)
	}

	respOther := doJSON(t, router, http.MethodGet, "/api/v1/sessions/"+started.SessionID, "other-guest", nil)
	if respOther.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign session, got %d", respOther.Code)
	}
}

func TestSessionRejectsUnknownMode(t *testing.T) {
	router := buildTestApp(t)

	resp := doJSON(t, router, http.MethodPost, "/api/v1/sessions", "mode-guest", map[string]string{
		"mode":   "rivers",
		"region": "global",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
	}
}
