package dto

// ErrorResponse cuerpo de error HTTP (errores de transporte, no de dominio).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
