package occupancy

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
	api.POST("/rooms", h.CreateRoom)
	api.GET("/rooms", h.ListRooms)
	api.POST("/rooms/assign", h.AssignRoom)
	api.POST("/patients/:id/discharge", h.DischargePatient)
	api.POST("/room-assignments", h.CreateAssignment)
	api.GET("/room-assignments", h.ListAssignments)
	api.DELETE("/room-assignments/:id", h.DeleteAssignment)
}

func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *Handler) CreateRoom(c echo.Context) error {
	var room Room
	if err := c.Bind(&room); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateRoom(c.Request().Context(), &room); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Room added successfully",
		"success": true,
	})
}

func (h *Handler) ListRooms(c echo.Context) error {
	items, err := h.svc.ListRooms(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	if items == nil {
		items = []*Room{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"rooms": items})
}

func (h *Handler) AssignRoom(c echo.Context) error {
	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	stay, err := h.svc.AssignRoom(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "Room assigned successfully",
		"success":    true,
		"assignment": stay,
	})
}

func (h *Handler) DischargePatient(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	stay, err := h.svc.DischargePatient(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "Patient discharged successfully",
		"success":    true,
		"assignment": stay,
	})
}

func (h *Handler) CreateAssignment(c echo.Context) error {
	var a RoomAssignment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateAssignment(c.Request().Context(), &a); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Room assigned successfully",
		"success": true,
	})
}

func (h *Handler) ListAssignments(c echo.Context) error {
	var patientID int64
	if raw := c.QueryParam("patient_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
		patientID = id
	}
	items, err := h.svc.ListAssignments(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*RoomAssignment{}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"assignments": items})
}

func (h *Handler) DeleteAssignment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteAssignment(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Room assignment removed successfully",
		"success": true,
	})
}
