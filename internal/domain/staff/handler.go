package staff

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
	api.POST("/staff", h.Create)
	api.GET("/staff", h.List)
	api.GET("/staff/:id", h.Get)
	api.PUT("/staff/:id", h.Update)
	api.DELETE("/staff/:id", h.Delete)
	api.GET("/nurses", h.ListNurses)
	api.GET("/doctors", h.ListDoctors)
	api.POST("/shifts", h.ScheduleShift)
	api.GET("/shifts", h.ListShifts)
	api.DELETE("/shifts/:id", h.DeleteShift)
}

func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *Handler) Create(c echo.Context) error {
	var m Member
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &m); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Staff added successfully",
		"success": true,
	})
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Member{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"staff": items})
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	m, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"staff": m})
}

func (h *Handler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var m Member
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m.ID = id
	if err := h.svc.Update(c.Request().Context(), &m); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Staff member updated successfully",
		"success": true,
	})
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Staff member deleted successfully",
		"success": true,
	})
}

func (h *Handler) ListNurses(c echo.Context) error {
	items, err := h.svc.ListNurses(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*DirectoryEntry{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"nurses": items})
}

func (h *Handler) ListDoctors(c echo.Context) error {
	items, err := h.svc.ListDoctors(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*DirectoryEntry{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"doctors": items})
}

func (h *Handler) ScheduleShift(c echo.Context) error {
	var sh Shift
	if err := c.Bind(&sh); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.ScheduleShift(c.Request().Context(), &sh); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Shift scheduled successfully",
		"success": true,
	})
}

func (h *Handler) ListShifts(c echo.Context) error {
	items, err := h.svc.ListShifts(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*ShiftDetail{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"shifts": items})
}

func (h *Handler) DeleteShift(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteShift(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Shift deleted successfully",
		"success": true,
	})
}
