// Package wire decodes schedule requests from their JSON form and encodes
// resolution responses.
//
// The accepted shape is a single object carrying the fields of every schedule
// type at once:
//
//	{
//	  "schedule_type": "recurring",          // date_specific | cron | recurring
//	  "timezone": "Asia/Calcutta",
//	  "date_format": "%m/%d/%Y",             // optional
//	  "schedules": [{"start_date": "02/20/2099", "start_time": "12:24 PM"}],
//	  "cron": "*/5 * * * *",                 // cron only
//	  "end_date": "02/20/2100",              // cron and recurring, optional
//	  "end_time": "12:00 AM",
//	  "recurring": {"run_on_monday": true, "repeat_every": 1, "repeat_every_unit": "d"}
//	}
//
// Decoding keeps only the fields that belong to the named schedule type and
// returns a core.Request whose payload is the matching variant. Comments and
// trailing commas are tolerated.
package wire
