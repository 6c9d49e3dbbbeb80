package response

import (
	"calendar-booking/internal/domain/schedule"
	"calendar-booking/internal/usecase/queries"
)

type OperatingHoursResponse struct {
	Weekday int    `json:"weekday"`
	Open    string `json:"open"`
	Close   string `json:"close"`
}

func FromOperatingHoursView(v *queries.OperatingHoursView) *OperatingHoursResponse {
	return &OperatingHoursResponse{Weekday: v.Weekday, Open: v.Open, Close: v.Close}
}

func FromOperatingHoursViews(views []*queries.OperatingHoursView) []*OperatingHoursResponse {
	res := make([]*OperatingHoursResponse, len(views))
	for i, v := range views {
		res[i] = FromOperatingHoursView(v)
	}
	return res
}

func FromOperatingHours(h schedule.OperatingHours) *OperatingHoursResponse {
	return &OperatingHoursResponse{
		Weekday: h.Weekday(),
		Open:    h.Open().String(),
		Close:   h.Close().String(),
	}
}

func FromOperatingHoursList(items []schedule.OperatingHours) []*OperatingHoursResponse {
	res := make([]*OperatingHoursResponse, len(items))
	for i, h := range items {
		res[i] = FromOperatingHours(h)
	}
	return res
}

type ClosureRuleResponse struct {
	ID      string `json:"id"`
	Weekday int    `json:"weekday"`
	Name    string `json:"name"`
	Active  bool   `json:"active"`
}

func FromClosureRule(r *schedule.ClosureRule) *ClosureRuleResponse {
	return &ClosureRuleResponse{
		ID:      r.ID().String(),
		Weekday: r.Weekday(),
		Name:    r.Name(),
		Active:  r.Active(),
	}
}

func FromClosureRuleViews(views []*queries.ClosureRuleView) []*ClosureRuleResponse {
	res := make([]*ClosureRuleResponse, len(views))
	for i, v := range views {
		res[i] = &ClosureRuleResponse{
			ID:      v.ID.String(),
			Weekday: v.Weekday,
			Name:    v.Name,
			Active:  v.Active,
		}
	}
	return res
}
