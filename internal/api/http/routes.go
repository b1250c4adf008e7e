package httpapi

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-now/internal/search"
	"github.com/i474232898/weather-now/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the widget page and the JSON API into the Fiber app.
// searcher serves stateless lookups; widget owns the page's search state.
func RegisterRoutes(app *fiber.App, searcher search.Searcher, widget *search.Controller) {
	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return widgetTemplate.Execute(c, newWidgetView(widget.State()))
	})

	// Form submissions from the page. Invalid queries and submissions while a
	// search is in flight are dropped, matching the disabled button.
	app.Post("/search", func(c *fiber.Ctx) error {
		req := searchRequest{Query: c.FormValue("query")}
		if err := req.validate(); err == nil && !widget.State().Loading {
			if _, err := widget.SubmitAsync(req.Query); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	})

	v1 := app.Group("/api/v1")

	v1.Get("/widget", func(c *fiber.Ctx) error {
		return c.JSON(newWidgetResponse(widget.State()))
	})

	v1.Post("/widget/search", func(c *fiber.Ctx) error {
		var req searchRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := req.validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if widget.State().Loading {
			return fiber.NewError(fiber.StatusConflict, "a search is already in progress")
		}

		st, err := widget.SubmitAsync(req.Query)
		if err != nil {
			if errors.Is(err, search.ErrEmptyQuery) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return err
		}
		return c.Status(fiber.StatusAccepted).JSON(newWidgetResponse(st))
	})

	v1.Get("/weather/search", func(c *fiber.Ctx) error {
		req := searchRequest{Query: c.Query("city")}
		if err := req.validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		result, err := searcher.Search(c.UserContext(), req.Query)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, weather.UserMessage(err))
		}

		return c.JSON(fiber.Map{
			"place":   result.Place,
			"weather": result.Weather,
			"display": weather.Present(result),
		})
	})
}

// ErrorHandler renders errors as {"error": true, "message": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

// searchRequest carries a query from either a JSON body, a form, or the query string.
type searchRequest struct {
	Query string `json:"query" form:"query" validate:"required,max=200"`
}

func (r *searchRequest) validate() error {
	r.Query = strings.TrimSpace(r.Query)
	return validate.Struct(r)
}

// widgetResponse is the JSON view of the widget state.
type widgetResponse struct {
	search.State
	Status  search.Status    `json:"status"`
	Display *weather.Display `json:"display,omitempty"`
}

func newWidgetResponse(st search.State) widgetResponse {
	resp := widgetResponse{State: st, Status: st.Status()}
	if st.Error == "" && st.Result != nil {
		d := weather.Present(*st.Result)
		resp.Display = &d
	}
	return resp
}
