package request

import "strings"

type CreateBookingRequest struct {
	SelectedSeats []string `json:"selected_seats" validate:"required,min=1,max=10,unique,dive,required,max=5,alphanum"`
}

// Normalize trims and upper-cases every seat identifier, so "a1 " and "A1" are the same seat.
// Dipanggil sebelum validasi supaya duplikat setelah kanonisasi ikut tertolak.
func (r *CreateBookingRequest) Normalize() {
	for i, seat := range r.SelectedSeats {
		r.SelectedSeats[i] = strings.ToUpper(strings.TrimSpace(seat))
	}
}

const (
	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

type ProcessPaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=success failed"`
}
