package dto

// LoginRequest carries the credentials posted to the portal login endpoint.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is forwarded to the backend registration endpoint, which
// expects the English field names.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	BirthDate   string `json:"birthDate"`
	Gender      string `json:"gender" binding:"omitempty,oneof=M F"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Nationality string `json:"nationality"`
}
