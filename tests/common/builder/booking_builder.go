//go:build unit || e2e

package builder

import (
	"time"

	"calendar-booking/internal/handler/dto/request"
	"calendar-booking/internal/pkg/civil"
	"calendar-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingBuilder struct {
	Day        civil.Date
	Start      civil.TimeOfDay
	End        civil.TimeOfDay
	HolderName string
	Contact    string
	Adults     int
	Children   int
	Notes      *string
	Plan       *string
	IsClosure  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	day, _ := civil.ParseDate("2099-01-08")
	start, _ := civil.NewTimeOfDay(18, 0)
	end, _ := civil.NewTimeOfDay(20, 0)
	return &BookingBuilder{
		Day:        day,
		Start:      start,
		End:        end,
		HolderName: "山田太郎",
		Contact:    "090-0000-0000",
		Adults:     2,
		Children:   0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() request.CreateBookingRequest {
	day, start, end := b.Day, b.Start, b.End
	return request.CreateBookingRequest{
		Day:        &day,
		Start:      &start,
		End:        &end,
		HolderName: b.HolderName,
		Contact:    b.Contact,
		Adults:     b.Adults,
		Children:   b.Children,
		Notes:      b.Notes,
		Plan:       b.Plan,
	}
}

func (b *BookingBuilder) BuildUpdateRequestDTO() request.UpdateBookingRequest {
	day, start, end := b.Day, b.Start, b.End
	holder, contact := b.HolderName, b.Contact
	adults, children := b.Adults, b.Children
	return request.UpdateBookingRequest{
		Day:        &day,
		Start:      &start,
		End:        &end,
		HolderName: &holder,
		Contact:    &contact,
		Adults:     &adults,
		Children:   &children,
		Notes:      b.Notes,
		Plan:       b.Plan,
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	view := &queries.BookingView{ID: uuid.New()}
	_ = copier.Copy(view, b)
	view.Day = b.Day.String()
	view.StartAt = b.Day.At(b.Start)
	view.EndAt = b.Day.At(b.End)
	return view
}
