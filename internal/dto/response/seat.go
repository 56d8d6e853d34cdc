package response

type SeatMapResponse struct {
	Schedule    ScheduleResponse `json:"schedule"`
	BookedSeats []string         `json:"booked_seats"`
	// Available dihitung dari kapasitas studio, hanya indikatif
	Available int `json:"available"`
}
