package dto

import "time"

// RegisterRequest entrada do registro (auth). A senha em texto é consumida e nunca devolvida.
type RegisterRequest struct {
	Nome        string `json:"nome" validate:"required,min=1,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Senha       string `json:"senha" validate:"required,min=6"`
	NivelAcesso string `json:"nivel_acesso" validate:"required,oneof=admin gerente operador"`
}

// UpdateUsuarioRequest atualização parcial de usuário. senha_hash nunca é aceito.
type UpdateUsuarioRequest struct {
	Nome        *string `json:"nome" validate:"omitempty,min=1,max=200"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Senha       *string `json:"senha" validate:"omitempty,min=6"`
	NivelAcesso *string `json:"nivel_acesso" validate:"omitempty,oneof=admin gerente operador"`
}

// UsuarioResponse saída de um usuário (sem hash nem senha).
type UsuarioResponse struct {
	ID              int64     `json:"id"`
	Nome            string    `json:"nome"`
	Email           string    `json:"email"`
	NivelAcesso     string    `json:"nivel_acesso"`
	DataCriacao     time.Time `json:"data_criacao"`
	DataModificacao time.Time `json:"data_modificacao"`
}

// LoginRequest entrada do login.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// LoginResponse saída com o token JWT.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// MeResponse identidade extraída do token.
type MeResponse struct {
	UserID      int64  `json:"user_id"`
	NivelAcesso string `json:"nivel_acesso"`
}
