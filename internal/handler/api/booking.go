package api

import (
	"errors"
	"net/http"

	"calendar-booking/internal/handler/dto/request"
	resdto "calendar-booking/internal/handler/dto/response"
	"calendar-booking/internal/handler/httperr"
	"calendar-booking/internal/infra"
	"calendar-booking/internal/pkg/civil"
	"calendar-booking/internal/usecase/commands"
	"calendar-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a time slot on a calendar day
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body request.CreateBookingRequest true "Create booking request"
// @Success 201 {object} response.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings for a day or a date range
// @Tags bookings
// @Produce json
// @Param day query string false "Day (YYYY-MM-DD)"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {array} response.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	if dayStr := c.Query("day"); dayStr != "" {
		day, err := civil.ParseDate(dayStr)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid day", nil)
			return
		}
		views, err := h.q.ListByDay(c.Request.Context(), day)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
			return
		}
		c.JSON(http.StatusOK, resdto.FromBookingViews(views))
		return
	}

	from, to, err := parseDateRange(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}
	views, err := h.q.ListBetween(c.Request.Context(), from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Update booking
// @Description Partially update a booking; omitted fields keep their values
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body request.UpdateBookingRequest true "Update booking request"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req request.UpdateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Delete booking
// @Description Delete a booking by ID
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create holiday
// @Description Close a day (or part of it) with a closure marker
// @Tags holidays
// @Accept json
// @Produce json
// @Param request body request.CreateHolidayRequest true "Create holiday request"
// @Success 201 {object} response.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /holidays [post]
func (h *BookingHandler) CreateHoliday(c *gin.Context) {
	var req request.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

// @Summary List holidays
// @Description List closure markers in a date range
// @Tags holidays
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} response.BookingResponse
// @Failure 400 {object} map[string]string
// @Router /holidays [get]
func (h *BookingHandler) ListHolidays(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}
	views, err := h.q.ListClosures(c.Request.Context(), from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list holidays", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Delete holiday
// @Description Delete a closure marker by ID
// @Tags holidays
// @Param id path string true "Holiday ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /holidays/{id} [delete]
func (h *BookingHandler) DeleteHoliday(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Holiday not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load holiday", nil)
		return
	}
	if !view.IsClosure {
		httperr.AbortWithError(c, http.StatusNotFound, commands.ErrBookingNotFound, "Holiday not found", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortBookingError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseDateRange(c *gin.Context) (civil.Date, civil.Date, error) {
	from, err := civil.ParseDate(c.Query("from"))
	if err != nil {
		return civil.Date{}, civil.Date{}, err
	}
	to, err := civil.ParseDate(c.Query("to"))
	if err != nil {
		return civil.Date{}, civil.Date{}, err
	}
	return from, to, nil
}

func abortBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrPastDate):
		httperr.AbortWithError(c, http.StatusConflict, err, "Cannot book a day in the past", nil)
	case errors.Is(err, commands.ErrInvalidTimeRange):
		httperr.AbortWithError(c, http.StatusConflict, err, "End time must be after start time", nil)
	case errors.Is(err, commands.ErrClosedDay):
		httperr.AbortWithError(c, http.StatusConflict, err, "The day is a recurring closure day", nil)
	case errors.Is(err, commands.ErrOutsideOperatingHours):
		httperr.AbortWithError(c, http.StatusConflict, err, "Requested time is outside operating hours", nil)
	case errors.Is(err, commands.ErrSlotConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is already booked", nil)
	case errors.Is(err, commands.ErrLockTimeout):
		httperr.AbortWithError(c, http.StatusConflict, err, "Another booking for this day is in progress, retry shortly", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
