// Package calendar builds iCal payloads and calendar-service deep
// links for events.
package calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/domain"
)

const compactUTCLayout = "20060102T150405Z"

// eventStamp converts the event's local date and time-of-day into the
// compact UTC form calendar services expect.
func eventStamp(date, timeOfDay string) (string, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", date+" "+timeOfDay, time.Local)
	if err != nil {
		return "", fmt.Errorf("parse event date/time: %w", err)
	}
	return t.UTC().Format(compactUTCLayout), nil
}

func eventURL(baseURL, eventID string) string {
	return strings.TrimRight(baseURL, "/") + "/event/" + eventID
}

// ICal renders a single-event VCALENDAR document.
func ICal(e *domain.Event, baseURL string) (string, error) {
	stamp, err := eventStamp(e.Date, e.Time)
	if err != nil {
		return "", err
	}
	link := eventURL(baseURL, e.ID)

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//Cactoide//Event Calendar//EN",
		"BEGIN:VEVENT",
		"UID:" + e.ID + "@cactoide.com",
		"DTSTAMP:" + time.Now().UTC().Format(compactUTCLayout),
		"DTSTART:" + stamp,
		"DTEND:" + stamp,
		"SUMMARY:" + e.Name,
		"DESCRIPTION:Event URL: " + link,
		"LOCATION:" + e.Location,
		"URL:" + link,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n"), nil
}

// GoogleURL returns an add-to-Google-Calendar link.
func GoogleURL(e *domain.Event, baseURL string) (string, error) {
	stamp, err := eventStamp(e.Date, e.Time)
	if err != nil {
		return "", err
	}
	link := eventURL(baseURL, e.ID)

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Name)
	q.Set("dates", stamp+"/"+stamp)
	q.Set("details", "Event URL: "+link)
	q.Set("location", e.Location)

	return "https://calendar.google.com/calendar/render?" + q.Encode(), nil
}

// OutlookURL returns an add-to-Outlook deep link.
func OutlookURL(e *domain.Event, baseURL string) (string, error) {
	stamp, err := eventStamp(e.Date, e.Time)
	if err != nil {
		return "", err
	}
	link := eventURL(baseURL, e.ID)

	q := url.Values{}
	q.Set("subject", e.Name)
	q.Set("startdt", stamp)
	q.Set("enddt", stamp)
	q.Set("body", "Event URL: "+link)
	q.Set("location", e.Location)

	return "https://outlook.live.com/calendar/0/deeplink/compose?" + q.Encode(), nil
}
