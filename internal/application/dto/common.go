package dto

// ErrorResponse corpo de erro HTTP. Campos traz o motivo por campo nas falhas de validação.
type ErrorResponse struct {
	Msg    string            `json:"msg"`
	Code   string            `json:"code,omitempty"`
	Campos map[string]string `json:"campos,omitempty"`
}

// MessageResponse resposta simples de sucesso.
type MessageResponse struct {
	Msg string `json:"msg"`
}
