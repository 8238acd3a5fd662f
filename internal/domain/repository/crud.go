package repository

import "context"

// CRUD define o contrato comum de persistência por id, igual para todos os tipos de registro.
// Ausência é sinalizada com (nil, nil) / false, nunca com erro.
type CRUD[T any] interface {
	List(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	// Create persiste o registro com id e carimbos já atribuídos. ErrDuplicate se o id já existe.
	Create(ctx context.Context, rec *T) error
	// Update aplica merge sobre o registro atual e grava a linha. id e data_criacao são preservados;
	// data_modificacao é renovada pelo repositório.
	Update(ctx context.Context, id int64, merge func(*T) error) (*T, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
