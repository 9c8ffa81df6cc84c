package dto

// CreateCompteRequest is the admin account-creation payload. The backend
// expects a numeric clientId; the service converts the string id.
type CreateCompteRequest struct {
	ClientID string `json:"clientId" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=COURANT EPARGNE"`
}
