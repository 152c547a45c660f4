package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//focusday//test//EN
BEGIN:VEVENT
UID:evt-1
DTSTAMP:20260301T000000Z
DTSTART:20260302T100000Z
DTEND:20260302T110000Z
SUMMARY:Team standup
ATTENDEE:mailto:a@example.com
ATTENDEE:mailto:b@example.com
END:VEVENT
BEGIN:VEVENT
UID:evt-2
DTSTAMP:20260301T000000Z
DTSTART:20260305T100000Z
DTEND:20260305T110000Z
SUMMARY:Next week planning
END:VEVENT
END:VCALENDAR
`

func writeFeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.ics")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestICSGateway_ListEventsFromFile(t *testing.T) {
	gw := NewICSGateway(map[string]string{"work": writeFeed(t, sampleFeed)})

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	events, err := gw.ListEvents(context.Background(), "work", start, end)
	require.NoError(t, err)
	require.Len(t, events, 1, "events outside the window are filtered")
	assert.Equal(t, "Team standup", events[0].Summary)
	assert.Equal(t, 2, events[0].Attendees)
	assert.Equal(t, start.Add(10*time.Hour), events[0].Start.UTC())
}

func TestICSGateway_ListEventsOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	gw := NewICSGateway(map[string]string{"work": server.URL})
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	events, err := gw.ListEvents(context.Background(), "work", start, start.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestICSGateway_HTTPStatusSurfacesForClassification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gw := NewICSGateway(map[string]string{"work": server.URL})
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	_, err := gw.ListEvents(context.Background(), "work", start, start.AddDate(0, 0, 1))
	require.Error(t, err)
	assert.Equal(t, CategoryServerError, Classify(err))
}

func TestICSGateway_NotConfigured(t *testing.T) {
	gw := NewICSGateway(nil)
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	_, err := gw.ListEvents(context.Background(), "personal", start, start.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestICSGateway_UnknownIDFallsBackToFirstSource(t *testing.T) {
	gw := NewICSGateway(map[string]string{"work": writeFeed(t, sampleFeed)})
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	events, err := gw.ListEvents(context.Background(), "nonexistent", start, start.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
