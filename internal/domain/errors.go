package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrUnauthorized       = errors.New("credenciais inválidas")
	// ErrStoreUnavailable indica falha na planilha remota; nunca deve ser confundido com "sem registros".
	ErrStoreUnavailable = errors.New("armazenamento indisponível")
)
