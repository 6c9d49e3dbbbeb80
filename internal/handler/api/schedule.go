package api

import (
	"errors"
	"net/http"
	"strconv"

	"calendar-booking/internal/domain/schedule"
	"calendar-booking/internal/handler/dto/request"
	resdto "calendar-booking/internal/handler/dto/response"
	"calendar-booking/internal/handler/httperr"
	"calendar-booking/internal/infra"
	"calendar-booking/internal/usecase/commands"
	"calendar-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	cmds commands.ScheduleCommands
	q    queries.ScheduleQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q}
}

var errWeekdayMismatch = errors.New("weekday in body does not match path")

// @Summary Upsert operating hours
// @Description Set the booking window for one weekday
// @Tags schedule
// @Accept json
// @Produce json
// @Param weekday path int true "Weekday (0=Monday .. 6=Sunday)"
// @Param request body request.OperatingHoursBody true "Operating hours"
// @Success 200 {object} response.OperatingHoursResponse
// @Failure 400 {object} map[string]string
// @Router /admin/operating-hours/{weekday} [put]
func (h *ScheduleHandler) UpsertHours(c *gin.Context) {
	weekday, err := parseWeekday(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid weekday", nil)
		return
	}
	var req request.OperatingHoursBody
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if req.Weekday != nil && *req.Weekday != weekday {
		httperr.AbortWithError(c, http.StatusBadRequest, errWeekdayMismatch, "Weekday mismatch", nil)
		return
	}
	hours, err := h.cmds.UpsertOperatingHours(c.Request.Context(), commands.OperatingHoursInput{
		Weekday: weekday,
		Open:    *req.Open,
		Close:   *req.Close,
	})
	if err != nil {
		abortScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOperatingHours(hours))
}

// @Summary Replace operating hours
// @Description Replace the whole week's configuration in one batch
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body request.ReplaceOperatingHoursRequest true "Operating hours batch"
// @Success 200 {array} response.OperatingHoursResponse
// @Failure 400 {object} map[string]string
// @Router /admin/operating-hours [put]
func (h *ScheduleHandler) ReplaceHours(c *gin.Context) {
	var req request.ReplaceOperatingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	hours, err := h.cmds.ReplaceOperatingHours(c.Request.Context(), req.ToInputs())
	if err != nil {
		abortScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOperatingHoursList(hours))
}

// @Summary Set unified operating hours
// @Description Apply one open/close window to every weekday
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body request.UnifiedOperatingHoursRequest true "Unified hours"
// @Success 200 {array} response.OperatingHoursResponse
// @Failure 400 {object} map[string]string
// @Router /admin/operating-hours/unified [post]
func (h *ScheduleHandler) SetUnifiedHours(c *gin.Context) {
	var req request.UnifiedOperatingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	hours, err := h.cmds.SetUnifiedOperatingHours(c.Request.Context(), *req.Open, *req.Close)
	if err != nil {
		abortScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOperatingHoursList(hours))
}

// @Summary List operating hours
// @Tags schedule
// @Produce json
// @Success 200 {array} response.OperatingHoursResponse
// @Router /admin/operating-hours [get]
func (h *ScheduleHandler) ListHours(c *gin.Context) {
	views, err := h.q.ListOperatingHours(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list operating hours", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOperatingHoursViews(views))
}

// @Summary Get operating hours
// @Tags schedule
// @Produce json
// @Param weekday path int true "Weekday (0=Monday .. 6=Sunday)"
// @Success 200 {object} response.OperatingHoursResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/operating-hours/{weekday} [get]
func (h *ScheduleHandler) GetHours(c *gin.Context) {
	weekday, err := parseWeekday(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid weekday", nil)
		return
	}
	view, err := h.q.GetOperatingHours(c.Request.Context(), weekday)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No operating hours for weekday", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load operating hours", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOperatingHoursView(view))
}

// @Summary List closure rules
// @Tags schedule
// @Produce json
// @Param include_inactive query bool false "Include deactivated rules"
// @Success 200 {array} response.ClosureRuleResponse
// @Router /admin/closure-rules [get]
func (h *ScheduleHandler) ListClosureRules(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	views, err := h.q.ListClosureRules(c.Request.Context(), includeInactive)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list closure rules", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClosureRuleViews(views))
}

// @Summary Create closure rule
// @Description Mark a weekday as recurrently closed
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body request.CreateClosureRuleRequest true "Closure rule"
// @Success 201 {object} response.ClosureRuleResponse
// @Failure 400 {object} map[string]string
// @Router /admin/closure-rules [post]
func (h *ScheduleHandler) CreateClosureRule(c *gin.Context) {
	var req request.CreateClosureRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rule, err := h.cmds.CreateClosureRule(c.Request.Context(), *req.Weekday, req.Name)
	if err != nil {
		abortScheduleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromClosureRule(rule))
}

// @Summary Deactivate closure rule
// @Description Soft-disable a closure rule; past occurrences stay on record
// @Tags schedule
// @Produce json
// @Param id path string true "Closure rule ID"
// @Success 200 {object} response.ClosureRuleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/closure-rules/{id} [delete]
func (h *ScheduleHandler) DeactivateClosureRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	rule, err := h.cmds.DeactivateClosureRule(c.Request.Context(), id)
	if err != nil {
		abortScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClosureRule(rule))
}

// @Summary List closure occurrences
// @Description Expand active closure rules into concrete dates over a range
// @Tags schedule
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} queries.ClosureOccurrence
// @Failure 400 {object} map[string]string
// @Router /admin/closure-rules/occurrences [get]
func (h *ScheduleHandler) ClosureOccurrences(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}
	occurrences, err := h.q.ClosureOccurrences(c.Request.Context(), from, to)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to expand closure rules", nil)
		return
	}
	c.JSON(http.StatusOK, occurrences)
}

func parseWeekday(c *gin.Context) (int, error) {
	weekday, err := strconv.Atoi(c.Param("weekday"))
	if err != nil {
		return 0, err
	}
	if !schedule.ValidWeekday(weekday) {
		return 0, schedule.ErrInvalidWeekday
	}
	return weekday, nil
}

func abortScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrClosureRuleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Closure rule not found", nil)
	case errors.Is(err, commands.ErrDuplicateWeekday):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Duplicate weekday in batch", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid schedule data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
