package entity

// Níveis de acesso conhecidos para Usuario.
const (
	NivelAdmin    = "admin"
	NivelGerente  = "gerente"
	NivelOperador = "operador"
)

// Usuario representa um usuário do sistema.
type Usuario struct {
	Meta
	Nome        string
	Email       string
	SenhaHash   string // bcrypt; a senha em texto nunca chega à planilha
	NivelAcesso string
}
