package dto

// PageResponse metadatos de paginación que acompañan a los listados.
// Limit y Offset reflejan los valores efectivamente aplicados por el servidor
// (con defaults y topes), no los crudos de la query.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo uniforme de error de la API: código estable para el
// cliente y mensaje legible.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
