package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/guesser/api"
	httpAdapter "github.com/aretw0/guesser/pkg/adapters/http"
	"github.com/aretw0/guesser/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gameServer is a scripted stand-in for the game endpoints.
type gameServer struct {
	mu      sync.Mutex
	answer  string // raw JSON returned by /api/answer
	status  int
	guesses []string
	ends    []domain.RoundSummary
	opened  []string
}

func newGameServer(t *testing.T, g *gameServer) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()

	r.Get("/game", func(w http.ResponseWriter, r *http.Request) {
		g.mu.Lock()
		g.opened = append(g.opened, r.URL.RequestURI())
		g.mu.Unlock()
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "round-1", Path: "/"})
		w.Write([]byte("<html></html>"))
	})

	r.Post(api.PathAnswer, func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("session"); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"No active round"}`))
			return
		}
		var body struct {
			Guess string `json:"guess"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}

		g.mu.Lock()
		g.guesses = append(g.guesses, body.Guess)
		status, answer := g.status, g.answer
		g.mu.Unlock()

		if status != 0 {
			w.WriteHeader(status)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(answer))
	})

	r.Post(api.PathEnd, func(w http.ResponseWriter, r *http.Request) {
		var summary domain.RoundSummary
		if err := json.NewDecoder(r.Body).Decode(&summary); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		g.mu.Lock()
		g.ends = append(g.ends, summary)
		g.mu.Unlock()
		w.Write([]byte(`{"redirect":"/"}`))
	})

	r.Post(api.PathNext, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"redirect":"/game"}`))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, url string, opts ...httpAdapter.Option) *httpAdapter.Client {
	t.Helper()
	c, err := httpAdapter.New(url, opts...)
	require.NoError(t, err)
	return c
}

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:5000", "ftp://example.com", "http://"} {
		_, err := httpAdapter.New(raw)
		assert.Error(t, err, raw)
	}
}

func TestCheckAnswer_UsesSessionCookie(t *testing.T) {
	g := &gameServer{answer: `{"result":"wrong","wrong_count":1,"show_hint":false,"hint":null,"guesses_remaining":3}`}
	srv := newGameServer(t, g)
	client := newClient(t, srv.URL)
	ctx := context.Background()

	_, err := client.CheckAnswer(ctx, "lyon")
	assert.ErrorIs(t, err, domain.ErrNetwork, "no session yet, the server answers 400")

	require.NoError(t, client.Redirect(ctx, "/game"))

	outcome, err := client.CheckAnswer(ctx, "lyon")
	require.NoError(t, err)
	assert.Equal(t, domain.Outcome{
		Verdict:          domain.VerdictContinue,
		RawResult:        "wrong",
		WrongCount:       1,
		HasWrongCount:    true,
		GuessesRemaining: 3,
	}, outcome)
	assert.Equal(t, []string{"lyon"}, g.guesses, "the rejected call never reached the handler body")
}

func TestCheckAnswer_Correct(t *testing.T) {
	g := &gameServer{answer: `{"result":"correct","answer":"PARIS","wrong_count":2}`}
	srv := newGameServer(t, g)
	client := newClient(t, srv.URL)
	require.NoError(t, client.Redirect(context.Background(), "/game"))

	outcome, err := client.CheckAnswer(context.Background(), "paris")
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictCorrect, outcome.Verdict)
	assert.Equal(t, "PARIS", outcome.Answer)
	assert.Equal(t, 2, outcome.WrongCount)
	assert.Zero(t, outcome.GuessesRemaining)
}

func TestCheckAnswer_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"result":"correct"}`},
		{"not json", 0, `<html>oops</html>`},
		{"null body", 0, `null`},
		{"array body", 0, `[]`},
		{"wrong field type", 0, `{"result":"wrong","wrong_count":"two"}`},
		{"fractional count", 0, `{"result":"wrong","wrong_count":2.9}`},
		{"count out of range", 0, `{"result":"wrong","guesses_remaining":1e20}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &gameServer{answer: tt.body, status: tt.status}
			srv := newGameServer(t, g)
			client := newClient(t, srv.URL)
			require.NoError(t, client.Redirect(context.Background(), "/game"))

			_, err := client.CheckAnswer(context.Background(), "paris")
			assert.ErrorIs(t, err, domain.ErrNetwork)
		})
	}
}

func TestCheckAnswer_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := newClient(t, url, httpAdapter.WithTimeout(time.Second))
	_, err := client.CheckAnswer(context.Background(), "paris")
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestCheckAnswer_StrictContract(t *testing.T) {
	contract, err := api.Load(context.Background())
	require.NoError(t, err)

	g := &gameServer{answer: `{"result":"maybe"}`}
	srv := newGameServer(t, g)
	ctx := context.Background()

	lenient := newClient(t, srv.URL)
	require.NoError(t, lenient.Redirect(ctx, "/game"))
	outcome, err := lenient.CheckAnswer(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictContinue, outcome.Verdict)
	assert.False(t, outcome.Recognized())

	strict := newClient(t, srv.URL, httpAdapter.WithContract(contract))
	require.NoError(t, strict.Redirect(ctx, "/game"))
	_, err = strict.CheckAnswer(ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.ErrorIs(t, err, domain.ErrProtocol)

	g.mu.Lock()
	g.answer = `{"result":"correct","answer":"PARIS","wrong_count":0}`
	g.mu.Unlock()
	outcome, err = strict.CheckAnswer(ctx, "paris")
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictCorrect, outcome.Verdict)
}

func TestReportScore(t *testing.T) {
	g := &gameServer{}
	srv := newGameServer(t, g)
	client := newClient(t, srv.URL)

	require.NoError(t, client.ReportScore(context.Background(), domain.RoundSummary{Result: domain.ResultLoss}))
	assert.Equal(t, []domain.RoundSummary{{Result: domain.ResultLoss}}, g.ends)
}

func TestNextRound(t *testing.T) {
	g := &gameServer{}
	srv := newGameServer(t, g)
	client := newClient(t, srv.URL)

	redirect, err := client.NextRound(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/game", redirect)
}

func TestRedirect_ResolvesAgainstBaseURL(t *testing.T) {
	g := &gameServer{}
	srv := newGameServer(t, g)
	client := newClient(t, srv.URL+"/")

	require.NoError(t, client.Redirect(context.Background(), "/game?round=2"))
	assert.Equal(t, []string{"/game?round=2"}, g.opened)

	assert.ErrorIs(t, client.Redirect(context.Background(), "/missing"), domain.ErrNetwork)
}
