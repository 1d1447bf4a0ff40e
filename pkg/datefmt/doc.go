// Package datefmt formats timestamps as short, human-readable date-time
// strings for a handful of common locales: numeric day and year, abbreviated
// month name, and a 24-hour clock ("Aug 26, 2026, 14:05" for English,
// "26. Aug. 2026, 14:05" for German).
//
// Locale tags are resolved with golang.org/x/text language matching, so
// regional variants fall back sensibly ("fr-CA" renders with the French
// pattern) and unknown tags fall back to English.
package datefmt
