package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pathID parses the named path parameter as a positive integer id. The
// second return is false for anything that cannot identify a record —
// non-numeric input and ids ≤ 0 alike — so callers answer not-found without
// ever touching the store.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
