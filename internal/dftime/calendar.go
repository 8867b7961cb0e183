// Package dftime holds the display names of the Dwarf Fortress calendar.
package dftime

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrOutOfRange is returned when a season or month index falls outside its table.
var ErrOutOfRange = errors.New("calendar index out of range")

const (
	SeasonCount = 4
	MonthCount  = 12
)

// Season is a zero-based season index.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

// Month is a zero-based month index.
type Month int

const (
	Granite Month = iota
	Slate
	Felsite
	Hematite
	Malachite
	Galena
	Limestone
	Sandstone
	Timber
	Moonstone
	Opal
	Obsidian
)

var seasonNames = [SeasonCount]string{
	"Spring",
	"Summer",
	"Autumn",
	"Winter",
}

var monthNames = [MonthCount]string{
	"Granite",
	"Slate",
	"Felsite",
	"Hematite",
	"Malachite",
	"Galena",
	"Limestone",
	"Sandstone",
	"Timber",
	"Moonstone",
	"Opal",
	"Obsidian",
}

// Valid reports whether s indexes the season table.
func (s Season) Valid() bool {
	return s >= 0 && int(s) < SeasonCount
}

func (s Season) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return seasonNames[s]
}

// Valid reports whether m indexes the month table.
func (m Month) Valid() bool {
	return m >= 0 && int(m) < MonthCount
}

func (m Month) String() string {
	if !m.Valid() {
		return "Unknown"
	}
	return monthNames[m]
}

// SeasonName returns the season at index (0..3).
func SeasonName(index int) (string, error) {
	s := Season(index)
	if !s.Valid() {
		return "", fmt.Errorf("season %d: %w", index, ErrOutOfRange)
	}
	return seasonNames[s], nil
}

// MonthName returns the month at index (0..11).
func MonthName(index int) (string, error) {
	m := Month(index)
	if !m.Valid() {
		return "", fmt.Errorf("month %d: %w", index, ErrOutOfRange)
	}
	return monthNames[m], nil
}

// Seasons returns the season names in calendar order.
// The slice is a copy.
func Seasons() []string {
	out := make([]string, SeasonCount)
	copy(out, seasonNames[:])
	return out
}

// Months returns the month names in calendar order.
// The slice is a copy.
func Months() []string {
	out := make([]string, MonthCount)
	copy(out, monthNames[:])
	return out
}

// DaySuffix returns the English ordinal suffix for a day of month.
//
// Only 1, 2, 3, 21, 22 and 23 get a non-"th" suffix. Months never reach 31,
// and 11..13 fall through to "th" on their own.
func DaySuffix(n int) string {
	switch n {
	case 1, 21:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	default:
		return "th"
	}
}

// Ordinal returns n followed by its day suffix, e.g. "21st".
func Ordinal(n int) string {
	return strconv.Itoa(n) + DaySuffix(n)
}

// FormatDay renders a day and month index as "15th Granite".
func FormatDay(day, month int) (string, error) {
	return FormatDaySep(day, month, " ")
}

// FormatDaySep is FormatDay with a custom separator between day and month.
func FormatDaySep(day, month int, sep string) (string, error) {
	name, err := MonthName(month)
	if err != nil {
		return "", err
	}
	return Ordinal(day) + sep + name, nil
}
