package http

import (
	"net/http"
	"strconv"
	"time"
)

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// getPeriodParams reads month/year query parameters, defaulting to the
// current calendar month.
func getPeriodParams(r *http.Request) (month, year int) {
	now := time.Now()
	month = getIntQueryParam(r, "month", int(now.Month()))
	year = getIntQueryParam(r, "year", now.Year())
	return month, year
}
