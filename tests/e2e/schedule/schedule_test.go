//go:build e2e

package schedule_test

import (
	"net/http"
	"testing"

	"calendar-booking/internal/handler/dto/request"
	"calendar-booking/internal/handler/dto/response"
	"calendar-booking/internal/pkg/civil"
	"calendar-booking/internal/usecase/queries"
	"calendar-booking/tests/common/dbtest"
	"calendar-booking/tests/common/httptest"
	"calendar-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	operatingHoursURL = "/api/admin/operating-hours"
	closureRulesURL   = "/api/admin/closure-rules"
)

type ScheduleSuite struct {
	e2e.SharedSuite
}

func (s *ScheduleSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestScheduleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ScheduleSuite))
}

func mustTOD(t *testing.T, v string) civil.TimeOfDay {
	t.Helper()
	tod, err := civil.ParseTimeOfDay(v)
	require.NoError(t, err)
	return tod
}

func intPtr(v int) *int { return &v }

// =============================================================================
// TestOperatingHours - Operating hours admin API tests
// =============================================================================

func (s *ScheduleSuite) TestOperatingHours() {
	s.Run("Normal case: Hours upserted for a single weekday", func() {
		t := s.T()

		open := mustTOD(t, "10:00")
		closeAt := mustTOD(t, "22:00")
		reqBody := request.OperatingHoursBody{Open: &open, Close: &closeAt}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, operatingHoursURL+"/0", reqBody)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.OperatingHoursResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, 0, updated.Weekday)
		require.Equal(t, "10:00", updated.Open)
		require.Equal(t, "22:00", updated.Close)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, operatingHoursURL+"/0", nil)
		require.Equal(t, http.StatusOK, gw.Code)
	})

	s.Run("Error case: Body weekday must match path weekday", func() {
		t := s.T()

		open := mustTOD(t, "10:00")
		closeAt := mustTOD(t, "22:00")
		reqBody := request.OperatingHoursBody{Weekday: intPtr(3), Open: &open, Close: &closeAt}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, operatingHoursURL+"/0", reqBody)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: Out-of-range weekday returns 400", func() {
		t := s.T()

		open := mustTOD(t, "10:00")
		closeAt := mustTOD(t, "22:00")
		reqBody := request.OperatingHoursBody{Open: &open, Close: &closeAt}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, operatingHoursURL+"/7", reqBody)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Error case: Unset weekday returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, operatingHoursURL+"/5", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Normal case: Replace swaps the full weekly schedule", func() {
		t := s.T()

		dbtest.SeedOperatingHours(t, s.DB, 9*60, 17*60)

		open := mustTOD(t, "11:00")
		closeAt := mustTOD(t, "23:00")
		reqBody := request.ReplaceOperatingHoursRequest{
			Items: []request.OperatingHoursItem{
				{Weekday: intPtr(0), Open: &open, Close: &closeAt},
				{Weekday: intPtr(5), Open: &open, Close: &closeAt},
			},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, operatingHoursURL, reqBody)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, operatingHoursURL, nil)
		require.Equal(t, http.StatusOK, lw.Code)

		var listed []*response.OperatingHoursResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &listed))
		require.Len(t, listed, 2, "Replace should drop weekdays absent from the new schedule")
	})

	s.Run("Error case: Replace rejects duplicate weekdays", func() {
		t := s.T()

		open := mustTOD(t, "11:00")
		closeAt := mustTOD(t, "23:00")
		reqBody := request.ReplaceOperatingHoursRequest{
			Items: []request.OperatingHoursItem{
				{Weekday: intPtr(2), Open: &open, Close: &closeAt},
				{Weekday: intPtr(2), Open: &open, Close: &closeAt},
			},
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, operatingHoursURL, reqBody)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Normal case: Unified hours apply to all seven weekdays", func() {
		t := s.T()

		open := mustTOD(t, "08:30")
		closeAt := mustTOD(t, "21:30")
		reqBody := request.UnifiedOperatingHoursRequest{Open: &open, Close: &closeAt}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, operatingHoursURL+"/unified", reqBody)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var listed []*response.OperatingHoursResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Len(t, listed, 7)
		for _, h := range listed {
			require.Equal(t, "08:30", h.Open)
			require.Equal(t, "21:30", h.Close)
		}
	})

	s.Run("Error case: Inverted window is rejected", func() {
		t := s.T()

		open := mustTOD(t, "22:00")
		closeAt := mustTOD(t, "10:00")
		reqBody := request.OperatingHoursBody{Open: &open, Close: &closeAt}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, operatingHoursURL+"/0", reqBody)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestClosureRules - Recurring closure rule admin API tests
// =============================================================================

func (s *ScheduleSuite) TestClosureRules() {
	s.Run("Normal case: Rule created, listed and deactivated", func() {
		t := s.T()

		reqBody := request.CreateClosureRuleRequest{Weekday: intPtr(0), Name: "定休日"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, closureRulesURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ClosureRuleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.True(t, created.Active)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, closureRulesURL, nil)
		require.Equal(t, http.StatusOK, lw.Code)

		var listed []*response.ClosureRuleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &listed))
		require.Len(t, listed, 1)

		dw := httptest.PerformRequest(t, s.Router, http.MethodDelete, closureRulesURL+"/"+created.ID, nil)
		require.Equal(t, http.StatusOK, dw.Code)

		var deactivated response.ClosureRuleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &deactivated))
		require.False(t, deactivated.Active)

		// Gone from the active list, visible with include_inactive
		lw2 := httptest.PerformRequest(t, s.Router, http.MethodGet, closureRulesURL, nil)
		var active []*response.ClosureRuleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw2.Body, &active))
		require.Empty(t, active)

		lw3 := httptest.PerformRequest(t, s.Router, http.MethodGet, closureRulesURL+"?include_inactive=true", nil)
		var all []*response.ClosureRuleResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw3.Body, &all))
		require.Len(t, all, 1)
	})

	s.Run("Error case: Returns 404 Not Found for non-existent rule", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, closureRulesURL+"/"+uuid.New().String(), nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Normal case: Occurrences expanded over a date range with hours", func() {
		t := s.T()

		dbtest.SeedOperatingHours(t, s.DB, 10*60, 20*60)
		dbtest.CreateClosureRule(t, s.DB, 0, "定休日") // every Monday

		// 2099-01-05 is a Monday
		url := closureRulesURL + "/occurrences?from=2099-01-01&to=2099-01-14"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var occurrences []queries.ClosureOccurrence
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &occurrences))
		require.Len(t, occurrences, 2)
		require.Equal(t, "2099-01-05", occurrences[0].Date)
		require.Equal(t, "2099-01-12", occurrences[1].Date)
		require.NotNil(t, occurrences[0].Hours)
		require.Equal(t, "10:00", occurrences[0].Hours.Open)
	})
}
