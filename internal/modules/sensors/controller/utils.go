package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

const (
	defaultHours    = 24
	defaultInterval = 30
)

// parseHistoricalQuery reads ?hours= and ?interval= (minutes). Only the syntax
// is checked here; range checks belong to the generator.
func parseHistoricalQuery(r *http.Request) (hours int, interval int, err error) {
	q := r.URL.Query()

	hours = defaultHours
	if s := strings.TrimSpace(q.Get("hours")); s != "" {
		hours, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, errors.New("invalid 'hours' (expected integer)")
		}
	}

	interval = defaultInterval
	if s := strings.TrimSpace(q.Get("interval")); s != "" {
		interval, err = strconv.Atoi(s)
		if err != nil {
			return 0, 0, errors.New("invalid 'interval' (expected integer minutes)")
		}
	}

	return hours, interval, nil
}
