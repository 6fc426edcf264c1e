package gcalendar

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	defaultCalendarID = "primary"
	defaultPageSize   = 250
	defaultTokenPath  = "token.json"

	statusCancelled = "cancelled"
)

// Client wraps the Google Calendar API service with read-only access.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account
// or installed-app JSON file path. tokenPath is only read for installed-app
// credentials; empty means "token.json" in the working directory.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	// Fallback: OAuth2 installed app credentials plus a stored token
	oauthConfig, oauthErr := InstalledAppConfig(credentialsJSON)
	if oauthErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	if tokenPath == "" {
		tokenPath = defaultTokenPath
	}
	tok, tokenErr := LoadToken(tokenPath)
	if os.IsNotExist(tokenErr) {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but %s is missing: run scripts/gcal-auth or use a Service Account", tokenPath)
	}
	if tokenErr != nil {
		return nil, tokenErr
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListEvents returns the single (recurrence-expanded) events that overlap
// [TimeMin, TimeMax), ordered by start time. Cancelled instances are skipped.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}
	pageSize := req.MaxResults
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	call := c.service.Events.List(calendarID).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(pageSize)
	if !req.TimeMin.IsZero() {
		call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
	}
	if !req.TimeMax.IsZero() {
		call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
	}

	var events []Event
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			if item.Status == statusCancelled {
				continue
			}
			ev, err := convertEvent(item, loc)
			if err != nil {
				return fmt.Errorf("event %s: %w", item.Id, err)
			}
			events = append(events, ev)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	return events, nil
}

func convertEvent(item *calendar.Event, loc *time.Location) (Event, error) {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		Location:    item.Location,
	}

	start, allDay, err := parseEventTime(item.Start, loc)
	if err != nil {
		return Event{}, fmt.Errorf("start: %w", err)
	}
	end, _, err := parseEventTime(item.End, loc)
	if err != nil {
		return Event{}, fmt.Errorf("end: %w", err)
	}

	// All-day end dates are exclusive.
	if allDay {
		end = end.Add(-time.Millisecond)
		if end.Before(start) {
			end = start.Add(24*time.Hour - time.Millisecond)
		}
	}

	ev.StartTime, ev.EndTime, ev.AllDay = start, end, allDay
	return ev, nil
}

func parseEventTime(dt *calendar.EventDateTime, loc *time.Location) (time.Time, bool, error) {
	if dt == nil {
		return time.Time{}, false, fmt.Errorf("missing time")
	}
	if dt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, dt.DateTime)
		return t, false, err
	}
	if dt.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", dt.Date, loc)
		return t, true, err
	}
	return time.Time{}, false, fmt.Errorf("empty time")
}
