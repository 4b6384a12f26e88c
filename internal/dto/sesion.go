package dto

// SesionResponse identidad mostrada en la interfaz. Es decorativa: el
// sistema no tiene modelo de autenticación ni autorización.
type SesionResponse struct {
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}
