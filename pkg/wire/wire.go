package wire

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/tidwall/jsonc"

	"github.com/jdziat/schedule-eta/pkg/core"
)

type request struct {
	ID           string  `json:"id,omitempty"`
	ScheduleType string  `json:"schedule_type"`
	Timezone     string  `json:"timezone"`
	DateFormat   string  `json:"date_format,omitempty"`
	Schedules    []entry `json:"schedules,omitempty"`
	Cron         string  `json:"cron,omitempty"`
	EndDate      string  `json:"end_date,omitempty"`
	EndTime      string  `json:"end_time,omitempty"`
	Recurring    *rule   `json:"recurring,omitempty"`
}

type entry struct {
	StartDate string `json:"start_date"`
	StartTime string `json:"start_time"`
	Timezone  string `json:"timezone,omitempty"`
}

type rule struct {
	RunOnMonday     flexBool `json:"run_on_monday"`
	RunOnTuesday    flexBool `json:"run_on_tuesday"`
	RunOnWednesday  flexBool `json:"run_on_wednesday"`
	RunOnThursday   flexBool `json:"run_on_thursday"`
	RunOnFriday     flexBool `json:"run_on_friday"`
	RepeatEvery     flexInt  `json:"repeat_every"`
	RepeatEveryUnit string   `json:"repeat_every_unit"`
	RepeatFor       flexInt  `json:"repeat_for"`
	RepeatForUnit   string   `json:"repeat_for_unit"`
}

// Item is a decoded request and the identifier responses are keyed by.
type Item struct {
	ID      string
	Request core.Request
}

// Decode parses a single request object. A missing "id" is replaced by a
// random UUID.
func Decode(data []byte) (Item, error) {
	var w request
	if err := unmarshal(jsonc.ToJSON(data), &w); err != nil {
		return Item{}, err
	}
	return w.item()
}

// DecodeBatch parses either one request object or an array of them.
func DecodeBatch(data []byte) ([]Item, error) {
	data = jsonc.ToJSON(data)
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '[' {
		item, err := Decode(data)
		if err != nil {
			return nil, err
		}
		return []Item{item}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &core.ValidationError{Reason: core.ErrInvalidRequest, Detail: err.Error()}
	}
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		item, err := Decode(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func unmarshal(data []byte, w *request) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(w); err != nil {
		return &core.ValidationError{Reason: core.ErrInvalidRequest, Detail: err.Error()}
	}
	return nil
}

func (w request) item() (Item, error) {
	id := w.ID
	if id == "" {
		id = uuid.NewString()
	}
	req := core.Request{Timezone: w.Timezone, DateFormat: w.DateFormat}

	switch core.ScheduleType(w.ScheduleType) {
	case core.TypeDateSpecific:
		entries := make([]core.Entry, len(w.Schedules))
		for i, e := range w.Schedules {
			entries[i] = e.entry()
		}
		req.Schedule = core.DateSpecific{Entries: entries}

	case core.TypeCron:
		if len(w.Schedules) > 1 {
			return Item{}, core.Invalidf(core.ErrMultipleEntries, "cron request has %d schedules", len(w.Schedules))
		}
		req.Schedule = core.Cron{Expression: w.Cron, End: w.end()}

	case core.TypeRecurring:
		switch n := len(w.Schedules); {
		case n == 0:
			return Item{}, core.Invalid(core.ErrMissingEntry, "")
		case n > 1:
			return Item{}, core.Invalidf(core.ErrMultipleEntries, "recurring request has %d schedules", n)
		}
		var r core.Rule
		if w.Recurring != nil {
			r = w.Recurring.rule()
		}
		req.Schedule = core.Recurring{Start: w.Schedules[0].entry(), End: w.end(), Rule: r}

	default:
		return Item{}, core.Invalid(core.ErrInvalidScheduleType, w.ScheduleType)
	}
	return Item{ID: id, Request: req}, nil
}

func (w request) end() *core.Bound {
	if w.EndDate == "" && w.EndTime == "" {
		return nil
	}
	return &core.Bound{Date: core.DateString(w.EndDate), Time: w.EndTime}
}

func (e entry) entry() core.Entry {
	return core.Entry{Date: core.DateString(e.StartDate), Time: e.StartTime, Timezone: e.Timezone}
}

func (r rule) rule() core.Rule {
	return core.Rule{
		Monday:    bool(r.RunOnMonday),
		Tuesday:   bool(r.RunOnTuesday),
		Wednesday: bool(r.RunOnWednesday),
		Thursday:  bool(r.RunOnThursday),
		Friday:    bool(r.RunOnFriday),
		Every:     int(r.RepeatEvery),
		EveryUnit: unit(r.RepeatEveryUnit),
		For:       int(r.RepeatFor),
		ForUnit:   unit(r.RepeatForUnit),
	}
}

// unit maps codes and long names; unknown values pass through so the
// resolver reports them as an invalid rule.
func unit(s string) core.Unit {
	if s == "" {
		return ""
	}
	if u, ok := core.ParseUnit(s); ok {
		return u
	}
	return core.Unit(s)
}

// Response is the encoded answer for one request.
type Response struct {
	ID    string   `json:"id"`
	ETA   core.ETA `json:"eta"`
	Error string   `json:"error,omitempty"`
}

// NewResponse builds the response for a resolution outcome.
func NewResponse(id string, eta core.ETA, err error) Response {
	if err != nil {
		return Response{ID: id, ETA: core.None, Error: err.Error()}
	}
	return Response{ID: id, ETA: eta}
}
