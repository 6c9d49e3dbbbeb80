package request

import (
	"calendar-booking/internal/pkg/civil"
	"calendar-booking/internal/usecase/commands"
)

// Weekday fields are pointers so Monday (0) survives required-binding.
type OperatingHoursBody struct {
	Weekday *int             `json:"weekday" binding:"omitempty,min=0,max=6"`
	Open    *civil.TimeOfDay `json:"open" binding:"required"`
	Close   *civil.TimeOfDay `json:"close" binding:"required"`
}

type OperatingHoursItem struct {
	Weekday *int             `json:"weekday" binding:"required,min=0,max=6"`
	Open    *civil.TimeOfDay `json:"open" binding:"required"`
	Close   *civil.TimeOfDay `json:"close" binding:"required"`
}

type ReplaceOperatingHoursRequest struct {
	Items []OperatingHoursItem `json:"items" binding:"required,dive"`
}

func (r *ReplaceOperatingHoursRequest) ToInputs() []commands.OperatingHoursInput {
	inputs := make([]commands.OperatingHoursInput, 0, len(r.Items))
	for _, item := range r.Items {
		weekday := -1
		if item.Weekday != nil {
			weekday = *item.Weekday
		}
		inputs = append(inputs, commands.OperatingHoursInput{
			Weekday: weekday,
			Open:    *item.Open,
			Close:   *item.Close,
		})
	}
	return inputs
}

type UnifiedOperatingHoursRequest struct {
	Open  *civil.TimeOfDay `json:"open" binding:"required"`
	Close *civil.TimeOfDay `json:"close" binding:"required"`
}

type CreateClosureRuleRequest struct {
	Weekday *int   `json:"weekday" binding:"required,min=0,max=6"`
	Name    string `json:"name" binding:"required,max=100"`
}
