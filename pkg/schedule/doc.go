// Package schedule provides the occurrence generators behind the resolvers.
//
// This package includes:
//   - Schedule interface for computing the next occurrence after an instant
//   - CronSchedule, a 5-field cron expression backed by robfig/cron
//   - Recurrence, an interval rule with an optional weekday filter
//   - Advance for local calendar arithmetic (day, week, month, year steps)
//
// Most users should import the root package github.com/jdziat/schedule-eta
// which re-exports these types.
package schedule
