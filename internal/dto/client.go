package dto

// CreateClientRequest is the admin-side client creation payload, forwarded to
// the backend with its English field names.
type CreateClientRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	BirthDate   string `json:"birthDate"`
	Gender      string `json:"gender" binding:"omitempty,oneof=M F"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Nationality string `json:"nationality"`
}

// UpdateClientRequest uses the portal's French vocabulary; the mapping layer
// renames the fields to what the backend update endpoint expects.
type UpdateClientRequest struct {
	Nom     string `json:"nom"`
	Prenom  string `json:"prenom"`
	Email   string `json:"email" binding:"omitempty,email"`
	Adresse string `json:"adresse"`
}

// StatusChangeResponse is returned after a suspend/activate call: the backend
// confirmation message plus the optimistically flipped status, so the admin
// view can update without a full reload.
type StatusChangeResponse struct {
	Message string `json:"message"`
	Statut  string `json:"statut"`
}
