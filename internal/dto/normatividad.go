package dto

// ── DTO del asistente de normatividad ──

// ConsultaRequest pregunta en texto libre al asistente.
type ConsultaRequest struct {
	Mensaje string `json:"mensaje" binding:"required,max=1000"`
}

// ConsultaResponse respuesta fija del asistente.
type ConsultaResponse struct {
	Respuesta string `json:"respuesta"`
	Tema      string `json:"tema"`
}

// SugerenciasResponse saludo inicial y preguntas sugeridas.
type SugerenciasResponse struct {
	Saludo    string   `json:"saludo"`
	Preguntas []string `json:"preguntas"`
}
