package calendar

import (
	"bytes"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/simplyrugby/club-server/internal/domain/entity"
)

// ExportSessionsToICS serializes a plan's training sessions as an iCalendar
// feed. Session start and end times come from the "15:04" strings on the
// session; an unparseable window falls back to the session date with a two
// hour duration. Each event carries a one-hour display reminder.
func ExportSessionsToICS(plan *entity.TrainingPlan, sessions []entity.TrainingSession) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Simply Rugby//EN")
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")

	now := time.Now()
	for _, session := range sessions {
		if session.Status == entity.SessionCancelled {
			continue
		}

		e := cal.AddEvent(fmt.Sprintf("%s@simplyrugby", session.ID))
		e.SetDtStampTime(now)
		e.SetCreatedTime(session.CreatedAt)
		e.SetModifiedAt(session.UpdatedAt)

		start, end := sessionWindow(session)
		e.SetStartAt(start)
		e.SetEndAt(end)

		e.SetSummary(plan.Title)
		e.SetDescription(plan.Description)
		e.SetStatus(ics.ObjectStatusConfirmed)
		e.SetTimeTransparency(ics.TransparencyOpaque)
		e.SetClass(ics.ClassificationPublic)
		e.SetSequence(0)

		alarm := e.AddAlarm()
		alarm.SetAction(ics.ActionDisplay)
		alarm.AddProperty("TRIGGER;VALUE=DURATION", "-PT1H")
		alarm.SetDescription(fmt.Sprintf("Reminder: %s in one hour", plan.Title))
	}

	var buf bytes.Buffer
	if err := cal.SerializeTo(&buf); err != nil {
		return nil, fmt.Errorf("error serializing calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func sessionWindow(session entity.TrainingSession) (time.Time, time.Time) {
	date := session.Date
	start, errStart := time.Parse("15:04", session.StartTime)
	end, errEnd := time.Parse("15:04", session.EndTime)
	if errStart != nil || errEnd != nil {
		return date, date.Add(2 * time.Hour)
	}

	at := func(t time.Time) time.Time {
		return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
	}
	return at(start), at(end)
}
