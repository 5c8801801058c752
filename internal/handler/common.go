package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/rifadigital/raffle/internal/session"
)

var errNoSession = errors.New("no session in context")

// currentSession pulls the *session.Session stored by the SessionAuth
// middleware. Handlers treat a missing session as unauthorized.
func currentSession(c echo.Context) (*session.Session, error) {
	s, ok := c.Get("session").(*session.Session)
	if !ok || s == nil {
		return nil, errNoSession
	}
	return s, nil
}
