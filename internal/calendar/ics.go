package calendar

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	ical "github.com/emersion/go-ical"
)

// ICSGateway reads events from an iCalendar feed, either an HTTP(S) URL or a
// local file path. The calendarID passed to ListEvents selects among the
// configured sources; an unknown id falls back to the first source.
type ICSGateway struct {
	sources map[string]string
	http    *http.Client
}

// NewICSGateway creates a gateway over named ICS sources.
func NewICSGateway(sources map[string]string) *ICSGateway {
	return &ICSGateway{
		sources: sources,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *ICSGateway) source(calendarID string) (string, error) {
	if len(g.sources) == 0 {
		return "", ErrNotConfigured
	}
	if src, ok := g.sources[calendarID]; ok && src != "" {
		return src, nil
	}
	for _, src := range g.sources {
		if src != "" {
			return src, nil
		}
	}
	return "", ErrNotConfigured
}

// ListEvents fetches and parses the feed, returning events overlapping the
// [start, end) window. Events with unparsable times are dropped here; the
// caller's classifier reports skips for the rest.
func (g *ICSGateway) ListEvents(ctx context.Context, calendarID string, start, end time.Time) ([]RawEvent, error) {
	src, err := g.source(calendarID)
	if err != nil {
		return nil, err
	}

	r, err := g.open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	dec := ical.NewDecoder(r)
	var events []RawEvent

	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing calendar feed: %w", err)
		}

		for _, component := range cal.Children {
			if component.Name != ical.CompEvent {
				continue
			}
			event := ical.Event{Component: component}

			eventStart, err := event.DateTimeStart(nil)
			if err != nil {
				continue // malformed, skip
			}
			eventEnd, err := event.DateTimeEnd(nil)
			if err != nil {
				continue
			}
			if eventStart.IsZero() || eventEnd.IsZero() {
				continue
			}
			if !eventStart.Before(end) || !eventEnd.After(start) {
				continue
			}

			summary, _ := event.Props.Text(ical.PropSummary)
			description, _ := event.Props.Text(ical.PropDescription)
			events = append(events, RawEvent{
				Summary:     summary,
				Description: description,
				Start:       eventStart,
				End:         eventEnd,
				Attendees:   len(event.Props[ical.PropAttendee]),
			})
		}
	}
	return events, nil
}

func (g *ICSGateway) open(ctx context.Context, src string) (io.ReadCloser, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, fmt.Errorf("creating calendar request: %w", err)
		}
		resp, err := g.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching calendar feed: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, &StatusError{StatusCode: resp.StatusCode}
		}
		return resp.Body, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("opening calendar file: %w", err)
	}
	return f, nil
}
