package tgbot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/bzstats/internal/config"
	"github.com/goserg/bzstats/internal/service"
)

const helpUpdate = `{"ok":true,"result":[{"update_id":1,"message":{"message_id":1,"date":0,` +
	`"chat":{"id":42,"type":"private"},"text":"/help",` +
	`"entities":[{"type":"bot_command","offset":0,"length":5}]}}]}`

// telegram fakes the Bot API: one /help update, then nothing. Sent texts
// are forwarded to sent.
func telegram(t *testing.T, sent chan<- string) *httptest.Server {
	t.Helper()
	var delivered atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"bz","username":"bzstats_bot"}}`))
		case strings.HasSuffix(r.URL.Path, "/getUpdates"):
			if delivered.CompareAndSwap(false, true) {
				_, _ = w.Write([]byte(helpUpdate))
				return
			}
			_, _ = w.Write([]byte(`{"ok":true,"result":[]}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			_ = r.ParseForm()
			select {
			case sent <- r.FormValue("text"):
			default:
			}
			_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":2,"date":0,"chat":{"id":42,"type":"private"}}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestBotRunStopsWithContext(t *testing.T) {
	sent := make(chan string, 1)
	srv := telegram(t, sent)
	api, err := tgbotapi.NewBotAPIWithAPIEndpoint("token", srv.URL+"/bot%s/%s")
	require.NoError(t, err)

	log, _ := test.NewNullLogger()
	svc, err := service.New(service.NewStore(&loader{data: []byte(document)}, log), config.Default().Analytics, log)
	require.NoError(t, err)
	bot := newBot(api, svc, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		bot.Run(ctx)
		close(done)
	}()

	select {
	case text := <-sent:
		assert.Contains(t, text, "/top")
	case <-time.After(5 * time.Second):
		t.Fatal("no reply to /help")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestBotRunCancelledBeforeStart(t *testing.T) {
	srv := telegram(t, make(chan string, 1))
	api, err := tgbotapi.NewBotAPIWithAPIEndpoint("token", srv.URL+"/bot%s/%s")
	require.NoError(t, err)
	log, _ := test.NewNullLogger()
	svc, err := service.New(service.NewStore(&loader{}, log), config.Default().Analytics, log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	done := make(chan struct{})
	go func() {
		newBot(api, svc, log).Run(ctx)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return for a cancelled context")
	}
}
