package dto

import (
	"catering/internal/domains/booking/model"
	menuModel "catering/internal/domains/menu/model"
	menuDto "catering/internal/domains/menu/model/dto"
	userModel "catering/internal/domains/user/model"
	userDto "catering/internal/domains/user/model/dto"
	"catering/shared/constant"
	gDto "catering/shared/dto"
	"catering/shared/failure"
	gModel "catering/shared/model"
	"catering/shared/timezone"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	MessageCreated   = "Booking created successfully"
	MessageUpdated   = "Booking status updated"
	MessageAssigned  = "Employee assigned successfully"
	MessageCancelled = "Booking cancelled"
)

var errInvalidEventDate = failure.BadRequestFromString("eventDate must be a date (YYYY-MM-DD) or an RFC3339 timestamp")

// CreateBookingRequest is the complete set of fields a client may send when requesting a booking.
// The date and guest count are accepted under their historical aliases.
type CreateBookingRequest struct {
	ClientName    *string  `json:"clientName,omitempty"    validate:"omitempty,max=150"`
	ClientAddress *string  `json:"clientAddress,omitempty" validate:"omitempty,max=255"`
	Location      *string  `json:"location,omitempty"      validate:"omitempty,max=255"`
	EventType     *string  `json:"eventType,omitempty"     validate:"omitempty,max=100"`
	EventDate     string   `json:"eventDate,omitempty"     validate:"omitempty,max=40"`
	Date          string   `json:"date,omitempty"          validate:"omitempty,max=40"`
	Guests        int      `json:"guests,omitempty"        validate:"gte=0"`
	NumGuests     int      `json:"numGuests,omitempty"     validate:"gte=0"`
	NumPeople     int      `json:"num_people,omitempty"    validate:"gte=0"`
	Menu          []string `json:"menu,omitempty"          validate:"omitempty,max=100,dive,required,max=64"`
	Notes         *string  `json:"notes,omitempty"         validate:"omitempty,max=1000"`
}

func (r *CreateBookingRequest) RawEventDate() string {
	if date := strings.TrimSpace(r.EventDate); date != "" {
		return date
	}

	return strings.TrimSpace(r.Date)
}

// GuestCount returns the first positive guest alias, or zero.
func (r *CreateBookingRequest) GuestCount() int {
	for _, count := range []int{r.Guests, r.NumGuests, r.NumPeople} {
		if count > 0 {
			return count
		}
	}

	return 0
}

// ToModel builds a pending, unassigned booking owned by owner.
func (r *CreateBookingRequest) ToModel(owner string) (model.Booking, error) {
	rawDate := r.RawEventDate()
	guests := r.GuestCount()

	if rawDate == "" || guests == 0 {
		return model.Booking{}, failure.MissingBookingFieldsError
	}

	eventDate, err := timezone.ParseDate(rawDate)
	if err != nil {
		return model.Booking{}, errInvalidEventDate
	}

	menu := pq.StringArray{}
	for _, id := range r.Menu {
		menu = append(menu, strings.TrimSpace(id))
	}

	return model.Booking{
		ID:            uuid.NewString(),
		UserID:        owner,
		ClientName:    r.ClientName,
		ClientAddress: r.ClientAddress,
		Location:      r.Location,
		EventType:     r.EventType,
		EventDate:     eventDate,
		Guests:        guests,
		Menu:          menu,
		Status:        model.StatusPending,
		Notes:         r.Notes,
		Metadata:      gModel.NewMetadata(owner),
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type EmployeeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type AssignEmployeeRequest struct {
	EmployeeID string `json:"employeeId" validate:"required,max=64"`
}

// StatusUpdate and Assignment are the column sets written by status transitions.
type StatusUpdate struct {
	Status model.Status `db:"status"`
}

type Assignment struct {
	AssignedEmployeeID string       `db:"assigned_employee_id"`
	Status             model.Status `db:"status"`
}

type BookingResponse struct {
	ID               string            `json:"id"`
	User             *userDto.Summary  `json:"user"`
	AssignedEmployee *userDto.Summary  `json:"assignedEmployee"`
	ClientName       *string           `json:"clientName,omitempty"`
	ClientAddress    *string           `json:"clientAddress,omitempty"`
	Location         *string           `json:"location,omitempty"`
	EventType        *string           `json:"eventType,omitempty"`
	EventDate        string            `json:"eventDate"`
	Guests           int               `json:"guests"`
	Menu             []menuDto.Summary `json:"menu"`
	Status           model.Status      `json:"status"`
	Notes            *string           `json:"notes,omitempty"`
	gDto.Metadata
}

// FromModel fills the response and resolves references from the given lookups.
// Menu entries keep their stored order; ids with no item are left out.
func (r *BookingResponse) FromModel(booking model.Booking, menu map[string]menuModel.MenuItem, parties map[string]userModel.User) {
	r.ID = booking.ID
	r.ClientName = booking.ClientName
	r.ClientAddress = booking.ClientAddress
	r.Location = booking.Location
	r.EventType = booking.EventType
	r.EventDate = timezone.Format(booking.EventDate, constant.DateOnlyFormat)
	r.Guests = booking.Guests
	r.Status = booking.Status
	r.Notes = booking.Notes
	r.Metadata.FromModel(booking.Metadata)

	if owner, ok := parties[booking.UserID]; ok {
		r.User = userDto.NewSummary(owner)
	} else {
		r.User = &userDto.Summary{ID: booking.UserID}
	}

	r.AssignedEmployee = nil
	if booking.AssignedEmployeeID != nil {
		if assignee, ok := parties[*booking.AssignedEmployeeID]; ok {
			r.AssignedEmployee = userDto.NewSummary(assignee)
		} else {
			r.AssignedEmployee = &userDto.Summary{ID: *booking.AssignedEmployeeID}
		}
	}

	r.Menu = make([]menuDto.Summary, 0, len(booking.Menu))
	for _, id := range booking.Menu {
		if item, ok := menu[id]; ok {
			r.Menu = append(r.Menu, menuDto.NewSummary(item))
		}
	}
}

func (r BookingResponse) NotificationKey() string {
	return r.ID
}

func FromModels(bookings []model.Booking, menu map[string]menuModel.MenuItem, parties map[string]userModel.User) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		res[i].FromModel(booking, menu, parties)
	}

	return res
}

type BookingMessageResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

// StatusChangedEvent is the payload of BOOKING_UPDATED.
type StatusChangedEvent struct {
	ID               string       `json:"id"`
	Status           model.Status `json:"status"`
	AssignedEmployee *string      `json:"assignedEmployee,omitempty"`
}

func (e StatusChangedEvent) NotificationKey() string {
	return e.ID
}
