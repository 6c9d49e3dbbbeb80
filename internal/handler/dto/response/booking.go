package response

import (
	"calendar-booking/internal/domain/booking"
	"calendar-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID          string  `json:"id"`
	Day         string  `json:"day"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	HolderName  string  `json:"holder_name"`
	Contact     string  `json:"contact"`
	Adults      int     `json:"adults"`
	Children    int     `json:"children"`
	Notes       *string `json:"notes,omitempty"`
	Plan        *string `json:"plan,omitempty"`
	IsClosure   bool    `json:"is_closure"`
	ClosureName *string `json:"closure_name,omitempty"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:          v.ID.String(),
		Day:         v.Day,
		StartTime:   v.StartAt.Format("15:04"),
		EndTime:     v.EndAt.Format("15:04"),
		HolderName:  v.HolderName,
		Contact:     v.Contact,
		Adults:      v.Adults,
		Children:    v.Children,
		Notes:       v.Notes,
		Plan:        v.Plan,
		IsClosure:   v.IsClosure,
		ClosureName: v.ClosureName,
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = FromBookingView(v)
	}
	return res
}

// FromReservation renders a freshly written aggregate, used by the command
// endpoints so they answer without a second read.
func FromReservation(r *booking.Reservation) *BookingResponse {
	return &BookingResponse{
		ID:          r.ID().String(),
		Day:         r.Slot().Day().String(),
		StartTime:   r.Slot().StartTime().String(),
		EndTime:     r.Slot().EndTime().String(),
		HolderName:  r.HolderName(),
		Contact:     r.Contact(),
		Adults:      r.Adults(),
		Children:    r.Children(),
		Notes:       r.Notes(),
		Plan:        r.Plan(),
		IsClosure:   r.IsClosure(),
		ClosureName: r.ClosureName(),
		CreatedAt:   r.CreatedAt().Unix(),
		UpdatedAt:   r.UpdatedAt().Unix(),
	}
}
