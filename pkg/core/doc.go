// Package core provides the fundamental types for the eta module.
//
// This package contains:
//   - Request, a value tagged by schedule type whose payload is one of
//     DateSpecific, Cron or Recurring
//   - Date, Entry, Bound and Rule, the building blocks of those payloads
//   - ETA, the resolved instant or the "no future occurrence" sentinel
//   - ValidationError and the sentinel reasons it wraps
//
// Most users should import the root package github.com/jdziat/schedule-eta
// instead of this package directly.
package core
