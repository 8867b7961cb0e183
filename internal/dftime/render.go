package dftime

import (
	"fmt"
	"io"
)

// WriteTables prints the season and month tables, one name per line.
func WriteTables(w io.Writer, showIndex bool) error {
	if err := writeTable(w, "Seasons", seasonNames[:], showIndex); err != nil {
		return err
	}
	return writeTable(w, "Months", monthNames[:], showIndex)
}

func writeTable(w io.Writer, title string, names []string, showIndex bool) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return fmt.Errorf("writing %s header: %w", title, err)
	}
	for i, name := range names {
		var err error
		if showIndex {
			_, err = fmt.Fprintf(w, "  %2d %s\n", i, name)
		} else {
			_, err = fmt.Fprintf(w, "  %s\n", name)
		}
		if err != nil {
			return fmt.Errorf("writing %s entry %d: %w", title, i, err)
		}
	}
	return nil
}
