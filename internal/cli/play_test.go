package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aretw0/guesser/api"
	"github.com/aretw0/guesser/internal/config"
	"github.com/aretw0/guesser/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// server answers "lisbon" as correct and everything else as wrong.
type server struct {
	mu     sync.Mutex
	opened []string
	ends   []domain.RoundSummary
	nexts  int
}

func newServer(t *testing.T, s *server) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()

	r.Get("/game", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.opened = append(s.opened, r.URL.RequestURI())
		s.mu.Unlock()
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "s", Path: "/"})
	})
	r.Post(api.PathAnswer, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Guess string `json:"guess"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		if body.Guess == "lisbon" {
			w.Write([]byte(`{"result":"correct","answer":"LISBON","wrong_count":1}`))
			return
		}
		w.Write([]byte(`{"result":"wrong","wrong_count":1,"show_hint":false,"hint":null,"guesses_remaining":4}`))
	})
	r.Post(api.PathEnd, func(w http.ResponseWriter, r *http.Request) {
		var summary domain.RoundSummary
		_ = json.NewDecoder(r.Body).Decode(&summary)
		s.mu.Lock()
		s.ends = append(s.ends, summary)
		s.mu.Unlock()
		w.Write([]byte(`{"redirect":"/"}`))
	})
	r.Post(api.PathNext, func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.nexts++
		s.mu.Unlock()
		w.Write([]byte(`{"redirect":"/game?round=2"}`))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func playOptions(url, input string, out *bytes.Buffer) PlayOptions {
	cfg := config.Default()
	cfg.BaseURL = url
	return PlayOptions{
		Config: cfg,
		Quiet:  true,
		In:     strings.NewReader(input),
		Out:    out,
		Err:    io.Discard,
	}
}

func TestRunPlay_TwoRoundsThenMenu(t *testing.T) {
	s := &server{}
	srv := newServer(t, s)
	var out bytes.Buffer

	input := strings.Join([]string{"", "porto", "lisbon", "x", "n", "lisbon", "m"}, "\n") + "\n"
	err := RunPlay(context.Background(), playOptions(srv.URL, input, &out))
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Not quite! 4 guesses remaining.")
	assert.Contains(t, text, "Wrong guesses: 1")
	assert.Contains(t, text, "✓ You got it!")
	assert.Contains(t, text, "The answer was: LISBON  (1 wrong guess)")
	assert.Contains(t, text, "Back to the menu after 2 round(s).")

	s.mu.Lock()
	defer s.mu.Unlock()
	assert.Equal(t, []string{"/game", "/game?round=2"}, s.opened)
	assert.Equal(t, 1, s.nexts)
	assert.Equal(t, []domain.RoundSummary{{Result: domain.ResultWin}, {Result: domain.ResultWin}}, s.ends)
}

func TestRunPlay_EOFEndsQuietly(t *testing.T) {
	srv := newServer(t, &server{})
	var out bytes.Buffer

	err := RunPlay(context.Background(), playOptions(srv.URL, "porto\n", &out))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Bye after 1 round(s).")
}

func TestRunPlay_QuitCommand(t *testing.T) {
	srv := newServer(t, &server{})
	var out bytes.Buffer

	err := RunPlay(context.Background(), playOptions(srv.URL, "quit\nlisbon\n", &out))
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "You got it!")
}

func TestRunPlay_ServerDown(t *testing.T) {
	srv := newServer(t, &server{})
	url := srv.URL
	srv.Close()
	var out bytes.Buffer

	err := RunPlay(context.Background(), playOptions(url, "porto\n", &out))
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestRunPlay_InvalidLogLevel(t *testing.T) {
	var out bytes.Buffer
	opts := playOptions("http://localhost:5000", "", &out)
	opts.Config.LogLevel = "chatty"

	assert.Error(t, RunPlay(context.Background(), opts))
}

func TestHandleExecutionError(t *testing.T) {
	assert.NoError(t, handleExecutionError(nil))
	assert.NoError(t, handleExecutionError(io.EOF))
	assert.NoError(t, handleExecutionError(context.Canceled))
	assert.NoError(t, handleExecutionError(errInterrupted))
	assert.ErrorIs(t, handleExecutionError(domain.ErrProtocol), domain.ErrProtocol)
}
