// Package security provides validation limits and clamps for the eta module.
//
// This package includes:
//   - Size limits for date_specific lists and cron expressions
//   - Range checks for recurrence counts
//   - Clamping functions that bound how far and how long a resolution may search
//
// Most users should import the root package github.com/jdziat/schedule-eta
// which re-exports these limits.
package security
