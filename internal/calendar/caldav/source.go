// Package caldav reads busy intervals and holidays from a CalDAV server
// (Apple Calendar, Fastmail, Nextcloud, Radicale, etc.).
package caldav

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-webdav"
	"github.com/emersion/go-webdav/caldav"

	schedulingDomain "github.com/felixgeelhaar/serendip/internal/scheduling/domain"
)

// Common CalDAV server URLs.
const (
	AppleCalDAVURL    = "https://caldav.icloud.com"
	FastmailCalDAVURL = "https://caldav.fastmail.com"
)

// Source queries one calendar for busy events and, optionally, a second
// calendar whose all-day events mark holidays.
type Source struct {
	baseURL      string
	username     string
	password     string // App-specific password for Apple
	calendarPath string // Specific calendar path, or empty for default
	holidayPath  string // Holiday calendar path, empty disables holidays
	logger       *slog.Logger
}

// NewSource creates a CalDAV calendar source.
func NewSource(baseURL, username, password string, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		baseURL:  baseURL,
		username: username,
		password: password,
		logger:   logger,
	}
}

// WithCalendarPath sets the specific calendar path to use.
func (s *Source) WithCalendarPath(path string) *Source {
	s.calendarPath = path
	return s
}

// WithHolidayCalendarPath sets the calendar whose all-day events count as
// rest days.
func (s *Source) WithHolidayCalendarPath(path string) *Source {
	s.holidayPath = path
	return s
}

// BusyIntervals returns the timed events in the range as busy intervals.
// All-day events are skipped; they do not block specific hours.
func (s *Source) BusyIntervals(ctx context.Context, start, end time.Time) ([]schedulingDomain.TimeInterval, error) {
	client, err := s.getClient()
	if err != nil {
		return nil, err
	}

	calPath, err := s.findCalendarPath(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to find calendar: %w", err)
	}

	objects, err := client.QueryCalendar(ctx, calPath, eventQuery(start, end))
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar: %w", err)
	}

	var intervals []schedulingDomain.TimeInterval
	for _, obj := range objects {
		for _, span := range eventSpans(&obj, start.Location()) {
			if span.allDay {
				continue
			}
			interval, err := schedulingDomain.NewTimeInterval(span.start, span.end)
			if err != nil {
				s.logger.Warn("skipping malformed calendar event", "path", obj.Path, "error", err)
				continue
			}
			intervals = append(intervals, interval)
		}
	}
	return intervals, nil
}

// RestDayDates returns the dates covered by all-day events in the holiday
// calendar. Without a configured holiday calendar the set is empty.
func (s *Source) RestDayDates(ctx context.Context, start, end time.Time) (schedulingDomain.RestDays, error) {
	restDays := schedulingDomain.RestDays{}
	if s.holidayPath == "" {
		return restDays, nil
	}

	client, err := s.getClient()
	if err != nil {
		return nil, err
	}

	objects, err := client.QueryCalendar(ctx, s.holidayPath, eventQuery(start, end))
	if err != nil {
		return nil, fmt.Errorf("failed to query holiday calendar: %w", err)
	}

	for _, obj := range objects {
		for _, span := range eventSpans(&obj, start.Location()) {
			if !span.allDay {
				continue
			}
			// A multi-day all-day event marks every covered date. DTEND is
			// exclusive for all-day events.
			for d := span.start; d.Before(span.end); d = d.AddDate(0, 0, 1) {
				restDays.Add(d)
			}
		}
	}
	return restDays, nil
}

type eventSpan struct {
	start  time.Time
	end    time.Time
	allDay bool
}

// eventSpans extracts the start/end of each VEVENT in a calendar object.
func eventSpans(obj *caldav.CalendarObject, loc *time.Location) []eventSpan {
	if obj == nil || obj.Data == nil {
		return nil
	}

	var spans []eventSpan
	for _, child := range obj.Data.Children {
		if child.Name != ical.CompEvent {
			continue
		}

		startProp := child.Props.Get(ical.PropDateTimeStart)
		if startProp == nil {
			continue
		}
		start, err := startProp.DateTime(loc)
		if err != nil {
			continue
		}
		allDay := startProp.ValueType() == ical.ValueDate

		var end time.Time
		if endProp := child.Props.Get(ical.PropDateTimeEnd); endProp != nil {
			end, err = endProp.DateTime(loc)
			if err != nil {
				continue
			}
		} else if allDay {
			end = start.AddDate(0, 0, 1)
		} else {
			// Zero-length events still mark the calendar busy briefly.
			end = start.Add(time.Minute)
		}

		spans = append(spans, eventSpan{start: start, end: end, allDay: allDay})
	}
	return spans
}

func eventQuery(start, end time.Time) *caldav.CalendarQuery {
	return &caldav.CalendarQuery{
		CompRequest: caldav.CalendarCompRequest{
			Name:  "VCALENDAR",
			Props: []string{"VERSION"},
			Comps: []caldav.CalendarCompRequest{
				{
					Name:  "VEVENT",
					Props: []string{"SUMMARY", "DTSTART", "DTEND", "UID"},
				},
			},
		},
		CompFilter: caldav.CompFilter{
			Name: "VCALENDAR",
			Comps: []caldav.CompFilter{
				{
					Name:  "VEVENT",
					Start: start,
					End:   end,
				},
			},
		},
	}
}

func (s *Source) getClient() (*caldav.Client, error) {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	client, err := caldav.NewClient(webdav.HTTPClientWithBasicAuth(httpClient, s.username, s.password), s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create caldav client: %w", err)
	}
	return client, nil
}

func (s *Source) findCalendarPath(ctx context.Context, client *caldav.Client) (string, error) {
	if s.calendarPath != "" {
		return s.calendarPath, nil
	}

	principal, err := client.FindCurrentUserPrincipal(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to find principal: %w", err)
	}

	homeSet, err := client.FindCalendarHomeSet(ctx, principal)
	if err != nil {
		return "", fmt.Errorf("failed to find calendar home set: %w", err)
	}

	cals, err := client.FindCalendars(ctx, homeSet)
	if err != nil {
		return "", fmt.Errorf("failed to find calendars: %w", err)
	}
	if len(cals) == 0 {
		return "", fmt.Errorf("no calendars found")
	}

	// Use first calendar as default.
	return cals[0].Path, nil
}
