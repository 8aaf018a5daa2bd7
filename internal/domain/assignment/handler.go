package assignment

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
	api.POST("/doctor-assignments", h.AssignDoctor)
	api.GET("/doctor-assignments", h.ListDoctorAssignments)
	api.DELETE("/doctor-assignments/:id", h.DeleteDoctorAssignment)
	api.POST("/nurse-assignments", h.AssignNurse)
	api.GET("/nurse-assignments", h.ListNurseAssignments)
	api.DELETE("/nurse-assignments/:id", h.DeleteNurseAssignment)
}

func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *Handler) AssignDoctor(c echo.Context) error {
	var a DoctorAssignment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.AssignDoctor(c.Request().Context(), &a); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Doctor assigned successfully",
		"success": true,
	})
}

func (h *Handler) ListDoctorAssignments(c echo.Context) error {
	items, err := h.svc.ListDoctorAssignments(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*DoctorAssignment{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"assignments": items})
}

func (h *Handler) DeleteDoctorAssignment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteDoctorAssignment(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Assignment deleted successfully",
		"success": true,
	})
}

func (h *Handler) AssignNurse(c echo.Context) error {
	var a NurseAssignment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.AssignNurse(c.Request().Context(), &a); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Nurse assigned successfully",
		"success": true,
	})
}

func (h *Handler) ListNurseAssignments(c echo.Context) error {
	items, err := h.svc.ListNurseAssignments(c.Request().Context())
	if err != nil {
		return err
	}
	if items == nil {
		items = []*NurseAssignment{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"assignments": items})
}

func (h *Handler) DeleteNurseAssignment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteNurseAssignment(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Assignment deleted successfully",
		"success": true,
	})
}
