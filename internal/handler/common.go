package handler // handler defines http handlers

import (
	"fmt"     // fmt builds user-facing notice strings
	"strconv" // strconv converts string identifiers to numeric types
	"time"    // time supplies the clock for upcoming/past classification

	"gigbook/internal/repository" // repository holds the data access layer
	"github.com/labstack/echo/v4" // echo defines request context types
)

// showTimeLayout is the display format for show start times on
// detail and listing pages.
const showTimeLayout = "01/02/2006, 15:04:05"

// parseID extracts the :id route parameter as a uint64.
func parseID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// parseRef parses a foreign-key reference submitted as a form field.
func parseRef(v string) (uint64, error) {
	return strconv.ParseUint(v, 10, 64)
}

// partitionShows classifies shows into past and upcoming against the
// provided instant.  The comparison is strict: a show starting
// exactly at now is past.  Input order (ascending start time) is
// preserved within each half.
func partitionShows(shows []repository.ShowDetail, now time.Time) (past, upcoming []repository.ShowDetail) {
	past = make([]repository.ShowDetail, 0, len(shows))
	upcoming = make([]repository.ShowDetail, 0, len(shows))
	for _, s := range shows {
		if repository.Upcoming(s, now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}

// listedNotice builds the flash-style notice shown after a create or
// edit attempt, e.g. "Venue 'The Musical Hop' was successfully listed!".
func listedNotice(kind, name, verb string, ok bool) string {
	if ok {
		return fmt.Sprintf("%s '%s' was successfully %s!", kind, name, verb)
	}
	return fmt.Sprintf("An error occurred. %s '%s' could not be %s.", kind, name, verb)
}

// missingNotice names a record id that could not be found, attached
// to 404 responses so the page can surface it to the user.
func missingNotice(kind string, id uint64) string {
	return fmt.Sprintf("ERROR: %s with ID %d does not exist!", kind, id)
}
