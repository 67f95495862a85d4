package persons

type ActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
