package dto

// ReleveRequest asks for a statement over a date range (yyyy-mm-dd bounds).
type ReleveRequest struct {
	NumeroCompte string `form:"numeroCompte" binding:"required"`
	DateDebut    string `form:"dateDebut" binding:"required"`
	DateFin      string `form:"dateFin" binding:"required"`
}
