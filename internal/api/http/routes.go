package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/askmeteo/weather-chat/internal/chat"
	"github.com/askmeteo/weather-chat/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
//
// Pipeline failures are not HTTP errors: a query that could not be answered
// still yields a 200 with an apologetic assistant message, because that is
// what the transcript records. Only malformed requests and storage failures
// map to error statuses.
func RegisterRoutes(app *fiber.App, chatSvc *chat.Service, weatherSvc *weather.Service, recentLimit int) {
	v1 := app.Group("/api/v1")

	v1.Post("/chat/query", func(c *fiber.Ctx) error {
		var req queryRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		msg, err := chatSvc.Ask(c.Context(), req.Text)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to record chat message")
		}

		return c.JSON(msg)
	})

	v1.Get("/chat/transcript", func(c *fiber.Ctx) error {
		msgs, err := chatSvc.Messages()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load transcript")
		}

		return c.JSON(fiber.Map{"messages": msgs})
	})

	v1.Post("/chat/clear", func(c *fiber.Ctx) error {
		greeting, err := chatSvc.Clear()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to clear transcript")
		}

		return c.JSON(fiber.Map{"messages": []chat.Message{greeting}})
	})

	v1.Get("/chat/recent", func(c *fiber.Ctx) error {
		searches, err := chatSvc.RecentSearches(recentLimit)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to load recent searches")
		}

		return c.JSON(fiber.Map{"searches": searches})
	})

	// Raw outcome endpoint for non-chat clients. Lookup failures are encoded
	// in the outcome body, not the status.
	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		var req currentQuery
		req.Location = c.Query("location")
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(weatherSvc.GetWeatherByLocation(c.Context(), req.Location))
	})
}

// queryRequest is the body of POST /chat/query.
type queryRequest struct {
	Text string `json:"text" validate:"required"`
}

// currentQuery holds query parameters for the current-weather endpoint.
type currentQuery struct {
	Location string `validate:"required"`
}
