package handler

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// queryInt reads a positive integer query parameter, falling back to def.
func queryInt(c echo.Context, name string, def int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || v <= 0 {
		return def
	}

	return v
}
