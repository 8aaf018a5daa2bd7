package scheduling

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/appointments", h.Schedule)
	api.GET("/appointments", h.List)
}

func (h *Handler) Schedule(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Schedule(c.Request().Context(), &a); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Appointment scheduled",
		"success": true,
	})
}

func (h *Handler) List(c echo.Context) error {
	f := Filter{
		Doctor: c.QueryParam("doctor"),
		Date:   c.QueryParam("date"),
	}
	items, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Appointment{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"appointments": items})
}
