package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/aeronav/flightroutes/internal/airline"
	"github.com/aeronav/flightroutes/internal/route"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *route.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/routes/cheapest", func(c *fiber.Ctx) error {
		var req routeQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		plan, err := service.Cheapest(req.From, req.To, req.Timestamp)
		if err != nil {
			switch {
			case errors.Is(err, airline.ErrUnknownAirport):
				return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
			case errors.Is(err, route.ErrNoRoute):
				return fiber.NewError(fiber.StatusNotFound, "no route between requested airports")
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "failed to compute route")
			}
		}

		return c.JSON(plan)
	})

	v1.Get("/airports/:code", func(c *fiber.Ctx) error {
		a, err := service.Airport(c.Params("code"))
		if err != nil {
			if errors.Is(err, airline.ErrUnknownAirport) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to look up airport")
		}
		return c.JSON(a)
	})
}

// routeQuery holds query parameters for the cheapest-route endpoint.
type routeQuery struct {
	From      string `validate:"required"`
	To        string `validate:"required"`
	Timestamp int64
}

func (q *routeQuery) bind(c *fiber.Ctx) error {
	q.From = c.Query("from")
	q.To = c.Query("to")

	timeStr := c.Query("time")
	if timeStr == "" {
		return errors.New("time query parameter is required")
	}
	ts, err := parseTime(timeStr)
	if err != nil {
		return err
	}
	q.Timestamp = ts.Unix()

	return validate.Struct(q)
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}
