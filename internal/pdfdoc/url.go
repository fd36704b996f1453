// Package pdfdoc retrieves notice documents and extracts their text.
package pdfdoc

import (
	"fmt"
	"time"
)

// publicationDateFormats are tried in order; first parse wins.
var publicationDateFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
}

// ParsePublicationDate parses a catalog publication-date field.
func ParsePublicationDate(s string) (time.Time, error) {
	for _, layout := range publicationDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
}

// DocumentURL derives the canonical document URL for a notice from its
// identifier and publication date: <host>/<year>/<mm>/<id>.pdf
func DocumentURL(host, id string, published time.Time) string {
	return fmt.Sprintf("%s/%d/%02d/%s.pdf", host, published.Year(), int(published.Month()), id)
}
