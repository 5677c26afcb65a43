package dto

type CreateReservationRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,phone10"`
	Date        string `json:"date" binding:"required,isodate,notpast"`
	Time        string `json:"time" binding:"required,time12h"`
	Guests      *int   `json:"guests" binding:"required,min=1,max=20"`
}

type CheckAvailabilityRequest struct {
	Date string `json:"date" binding:"required,isodate,notpast"`
	Time string `json:"time" binding:"required,time12h"`
}

// UpdateReservationRequest is a partial update; absent fields stay as they are.
type UpdateReservationRequest struct {
	Name        *string `json:"name" binding:"omitnil,min=2,max=50"`
	Email       *string `json:"email" binding:"omitnil,email"`
	PhoneNumber *string `json:"phoneNumber" binding:"omitnil,phone10"`
	Date        *string `json:"date" binding:"omitnil,isodate,notpast"`
	Time        *string `json:"time" binding:"omitnil,time12h"`
	Guests      *int    `json:"guests" binding:"omitnil,min=1,max=20"`
}

func (r UpdateReservationRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.PhoneNumber == nil &&
		r.Date == nil && r.Time == nil && r.Guests == nil
}

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

type IDParam struct {
	ID string `uri:"id" binding:"required,objectid"`
}

type DateParam struct {
	Date string `uri:"date" binding:"required,isodate"`
}

type StatusParam struct {
	Status string `uri:"status" binding:"required,oneof=pending confirmed cancelled"`
}

type AuditLogQuery struct {
	ReservationID string `form:"reservation_id" binding:"omitempty,objectid"`
	Limit         int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
