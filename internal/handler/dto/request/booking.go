package request

import (
	"calendar-booking/internal/pkg/civil"
	"calendar-booking/internal/usecase/commands"
)

type CreateBookingRequest struct {
	Day        *civil.Date      `json:"day" binding:"required"`
	Start      *civil.TimeOfDay `json:"start_time" binding:"required"`
	End        *civil.TimeOfDay `json:"end_time" binding:"required"`
	HolderName string           `json:"holder_name" binding:"required,max=100"`
	Contact    string           `json:"contact" binding:"required,max=100"`
	Adults     int              `json:"adults" binding:"min=0"`
	Children   int              `json:"children" binding:"min=0"`
	Notes      *string          `json:"notes" binding:"omitempty,max=500"`
	Plan       *string          `json:"plan" binding:"omitempty,max=100"`
}

func (r *CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		Day:        *r.Day,
		Start:      *r.Start,
		End:        *r.End,
		HolderName: r.HolderName,
		Contact:    r.Contact,
		Adults:     r.Adults,
		Children:   r.Children,
		Notes:      r.Notes,
		Plan:       r.Plan,
	}
}

type UpdateBookingRequest struct {
	Day        *civil.Date      `json:"day"`
	Start      *civil.TimeOfDay `json:"start_time"`
	End        *civil.TimeOfDay `json:"end_time"`
	HolderName *string          `json:"holder_name" binding:"omitempty,max=100"`
	Contact    *string          `json:"contact" binding:"omitempty,max=100"`
	Adults     *int             `json:"adults" binding:"omitempty,min=0"`
	Children   *int             `json:"children" binding:"omitempty,min=0"`
	Notes      *string          `json:"notes" binding:"omitempty,max=500"`
	Plan       *string          `json:"plan" binding:"omitempty,max=100"`
}

func (r *UpdateBookingRequest) ToInput() commands.UpdateBookingInput {
	return commands.UpdateBookingInput{
		Day:        r.Day,
		Start:      r.Start,
		End:        r.End,
		HolderName: r.HolderName,
		Contact:    r.Contact,
		Adults:     r.Adults,
		Children:   r.Children,
		Notes:      r.Notes,
		Plan:       r.Plan,
	}
}

// CreateHolidayRequest books a closure marker. Times default to the whole
// day when omitted.
type CreateHolidayRequest struct {
	Day   *civil.Date      `json:"day" binding:"required"`
	Name  *string          `json:"name" binding:"omitempty,max=100"`
	Start *civil.TimeOfDay `json:"start_time"`
	End   *civil.TimeOfDay `json:"end_time"`
}

func (r *CreateHolidayRequest) ToInput() commands.CreateBookingInput {
	start, _ := civil.NewTimeOfDay(0, 0)
	end, _ := civil.NewTimeOfDay(23, 59)
	if r.Start != nil {
		start = *r.Start
	}
	if r.End != nil {
		end = *r.End
	}

	holder := "休業"
	if r.Name != nil && *r.Name != "" {
		holder = *r.Name
	}

	return commands.CreateBookingInput{
		Day:         *r.Day,
		Start:       start,
		End:         end,
		HolderName:  holder,
		Contact:     "-",
		IsClosure:   true,
		ClosureName: r.Name,
	}
}
