package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"meeting-insights/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

const desktopCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClientFromCredentials(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("desktop credentials with saved token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "token.json")
		tok := &oauth2.Token{AccessToken: "dummy", TokenType: "Bearer", Expiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
		if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
			t.Fatalf("SaveToken: %v", err)
		}

		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(desktopCreds), tokenPath); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("desktop credentials without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(desktopCreds), filepath.Join(dir, "missing.json"))
		if !errors.Is(err, gcalendar.ErrTokenMissing) {
			t.Fatalf("expected ErrTokenMissing, got %v", err)
		}
	})

	t.Run("desktop credentials with corrupt token", func(t *testing.T) {
		tokenPath := filepath.Join(dir, "bad.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(desktopCreds), tokenPath)
		if err == nil || errors.Is(err, gcalendar.ErrTokenMissing) {
			t.Fatalf("expected parse failure, got %v", err)
		}
	})

	t.Run("credentials file", func(t *testing.T) {
		path := filepath.Join(dir, "creds.json")
		os.WriteFile(path, []byte(`{"broken":true}`), 0o600)

		if _, err := gcalendar.NewClient(ctx, gcalendar.Credentials{Path: path}); err == nil {
			t.Errorf("expected failure loading broken file")
		}
		if _, err := gcalendar.NewClient(ctx, gcalendar.Credentials{Path: filepath.Join(dir, "nope.json")}); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestLoadTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	if _, err := gcalendar.LoadToken(""); !errors.Is(err, gcalendar.ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing for empty path, got %v", err)
	}

	if err := gcalendar.SaveToken(path, &oauth2.Token{AccessToken: "abc", RefreshToken: "def"}); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("token permissions = %v, want 0600", info.Mode().Perm())
	}

	tok, err := gcalendar.LoadToken(path)
	if err != nil {
		t.Fatalf("LoadToken: %v", err)
	}
	if tok.AccessToken != "abc" || tok.RefreshToken != "def" {
		t.Errorf("unexpected token: %+v", tok)
	}
}

func TestCreateEvent(t *testing.T) {
	t.Run("all-day event sends dates", func(t *testing.T) {
		var got map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/calendar/v3/calendars/team@example.com/events" || r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			body, _ := io.ReadAll(r.Body)
			json.Unmarshal(body, &got)
			w.Write([]byte(`{"id": "event-123", "summary": "Revisar el informe", "htmlLink": "https://calendar.google.com/event-uri"}`))
		})

		day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "team@example.com",
			Summary:    "Revisar el informe",
			StartTime:  day,
			EndTime:    day.AddDate(0, 0, 1),
			AllDay:     true,
			Timezone:   "UTC",
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" || !event.AllDay {
			t.Errorf("unexpected event: %+v", event)
		}

		start, _ := got["start"].(map[string]any)
		end, _ := got["end"].(map[string]any)
		if start["date"] != "2024-05-10" || end["date"] != "2024-05-11" {
			t.Errorf("unexpected dates: start=%v end=%v", start, end)
		}
		if _, ok := start["dateTime"]; ok {
			t.Errorf("all-day event must not send dateTime: %v", start)
		}
	})

	t.Run("timed event uses primary calendar", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				w.Write([]byte(`{"id": "event-456"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Title",
			StartTime: time.Now(),
			EndTime:   time.Now().Add(time.Hour),
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-456" {
			t.Errorf("unexpected id: %s", event.ID)
		}
	})

	t.Run("api error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{}); err == nil {
			t.Fatalf("expected create event error")
		}
	})
}

func TestListEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/test-fail/events" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
			if r.URL.Query().Get("q") != "informe" {
				t.Errorf("expected q=informe, got %q", r.URL.Query().Get("q"))
			}
			w.Write([]byte(`{
				"items": [
					{"id": "a", "summary": "Revisar el informe", "start": {"date": "2024-05-10"}, "end": {"date": "2024-05-11"}},
					{"id": "b", "summary": "Sync", "start": {"dateTime": "2024-05-10T09:00:00Z"}, "end": {"dateTime": "2024-05-10T10:00:00Z"}}
				]
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		TimeMin: day,
		TimeMax: day.AddDate(0, 0, 1),
		Query:   "informe",
	})
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if !events[0].AllDay || !events[0].StartTime.Equal(day) {
		t.Errorf("unexpected all-day event: %+v", events[0])
	}
	if events[1].AllDay || events[1].StartTime.Hour() != 9 {
		t.Errorf("unexpected timed event: %+v", events[1])
	}

	_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "test-fail",
		TimeMin:    day,
		TimeMax:    day.AddDate(0, 0, 1),
	})
	if err == nil {
		t.Fatalf("expected api error on test-fail")
	}
}
