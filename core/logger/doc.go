// Package logger records evaluated lines as newline delimited JSON events
// and summarizes them into reports.
package logger
