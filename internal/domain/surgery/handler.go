package surgery

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/surgeries", h.Schedule)
	api.GET("/surgeries", h.List)
	api.PATCH("/surgeries/:id", h.UpdateStatus)
	api.DELETE("/surgeries/:id", h.Cancel)
}

func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *Handler) Schedule(c echo.Context) error {
	var sg Surgery
	if err := c.Bind(&sg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Schedule(c.Request().Context(), &sg); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Surgery scheduled successfully",
		"surgery": sg,
	})
}

func (h *Handler) List(c echo.Context) error {
	var f Filter
	if raw := c.QueryParam("patient_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
		f.PatientID = id
	}
	if raw := c.QueryParam("surgeon_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid surgeon_id")
		}
		f.SurgeonID = id
	}
	f.RoomNumber = c.QueryParam("room_number")
	f.Date = c.QueryParam("date")
	f.Status = c.QueryParam("status")

	items, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Surgery{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"surgeries": items})
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdateStatus(c.Request().Context(), id, body.Status); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Surgery status updated successfully",
	})
}

func (h *Handler) Cancel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Cancel(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Surgery cancelled successfully",
	})
}
