package dto

import "time"

// CreateFuncionarioRequest entrada para criar um funcionário.
type CreateFuncionarioRequest struct {
	Nome            string  `json:"nome" validate:"required,min=1,max=200"`
	Sobrenome       string  `json:"sobrenome" validate:"required,min=1,max=200"`
	CPF             string  `json:"cpf" validate:"required,min=11,max=14"`
	Cargo           string  `json:"cargo" validate:"required"`
	Salario         float64 `json:"salario" validate:"gte=0"`
	Telefone        string  `json:"telefone"`
	Email           string  `json:"email" validate:"omitempty,email"`
	DataContratacao string  `json:"data_contratacao" validate:"omitempty,isodate"`
}

// UpdateFuncionarioRequest atualização parcial.
type UpdateFuncionarioRequest struct {
	Nome            *string  `json:"nome" validate:"omitempty,min=1,max=200"`
	Sobrenome       *string  `json:"sobrenome" validate:"omitempty,min=1,max=200"`
	CPF             *string  `json:"cpf" validate:"omitempty,min=11,max=14"`
	Cargo           *string  `json:"cargo" validate:"omitempty,min=1"`
	Salario         *float64 `json:"salario" validate:"omitempty,gte=0"`
	Telefone        *string  `json:"telefone"`
	Email           *string  `json:"email" validate:"omitempty,email"`
	DataContratacao *string  `json:"data_contratacao" validate:"omitempty,isodate"`
}

// FuncionarioResponse saída de um funcionário.
type FuncionarioResponse struct {
	ID              int64     `json:"id"`
	Nome            string    `json:"nome"`
	Sobrenome       string    `json:"sobrenome"`
	CPF             string    `json:"cpf"`
	Cargo           string    `json:"cargo"`
	Salario         float64   `json:"salario"`
	Telefone        string    `json:"telefone"`
	Email           string    `json:"email"`
	DataContratacao string    `json:"data_contratacao"`
	DataCriacao     time.Time `json:"data_criacao"`
	DataModificacao time.Time `json:"data_modificacao"`
}

// CreateClienteRequest entrada para criar um cliente.
type CreateClienteRequest struct {
	Nome     string `json:"nome" validate:"required,min=1,max=200"`
	CPFCNPJ  string `json:"cpf_cnpj" validate:"required,min=11,max=18"`
	Telefone string `json:"telefone"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// UpdateClienteRequest atualização parcial.
type UpdateClienteRequest struct {
	Nome     *string `json:"nome" validate:"omitempty,min=1,max=200"`
	CPFCNPJ  *string `json:"cpf_cnpj" validate:"omitempty,min=11,max=18"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// ClienteResponse saída de um cliente.
type ClienteResponse struct {
	ID              int64     `json:"id"`
	Nome            string    `json:"nome"`
	CPFCNPJ         string    `json:"cpf_cnpj"`
	Telefone        string    `json:"telefone"`
	Email           string    `json:"email"`
	DataCriacao     time.Time `json:"data_criacao"`
	DataModificacao time.Time `json:"data_modificacao"`
}

// CreateProdutoRequest entrada para criar um produto.
type CreateProdutoRequest struct {
	Nome      string  `json:"nome" validate:"required,min=1,max=200"`
	Descricao string  `json:"descricao"`
	Peso      float64 `json:"peso" validate:"gte=0"`
	Preco     float64 `json:"preco" validate:"gte=0"`
	Estoque   int64   `json:"estoque" validate:"gte=0"`
}

// UpdateProdutoRequest atualização parcial.
type UpdateProdutoRequest struct {
	Nome      *string  `json:"nome" validate:"omitempty,min=1,max=200"`
	Descricao *string  `json:"descricao"`
	Peso      *float64 `json:"peso" validate:"omitempty,gte=0"`
	Preco     *float64 `json:"preco" validate:"omitempty,gte=0"`
	Estoque   *int64   `json:"estoque" validate:"omitempty,gte=0"`
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	ID              int64     `json:"id"`
	Nome            string    `json:"nome"`
	Descricao       string    `json:"descricao"`
	Peso            float64   `json:"peso"`
	Preco           float64   `json:"preco"`
	Estoque         int64     `json:"estoque"`
	DataCriacao     time.Time `json:"data_criacao"`
	DataModificacao time.Time `json:"data_modificacao"`
}

// CreateDespesaRequest entrada para registrar uma despesa.
type CreateDespesaRequest struct {
	Tipo         string  `json:"tipo" validate:"required,min=1,max=100"`
	Descricao    string  `json:"descricao"`
	Valor        float64 `json:"valor" validate:"gte=0"`
	Data         string  `json:"data" validate:"omitempty,isodate"`
	Beneficiario string  `json:"beneficiario"`
}

// UpdateDespesaRequest atualização parcial.
type UpdateDespesaRequest struct {
	Tipo         *string  `json:"tipo" validate:"omitempty,min=1,max=100"`
	Descricao    *string  `json:"descricao"`
	Valor        *float64 `json:"valor" validate:"omitempty,gte=0"`
	Data         *string  `json:"data" validate:"omitempty,isodate"`
	Beneficiario *string  `json:"beneficiario"`
}

// DespesaResponse saída de uma despesa.
type DespesaResponse struct {
	ID              int64     `json:"id"`
	Tipo            string    `json:"tipo"`
	Descricao       string    `json:"descricao"`
	Valor           float64   `json:"valor"`
	Data            string    `json:"data"`
	Beneficiario    string    `json:"beneficiario"`
	DataCriacao     time.Time `json:"data_criacao"`
	DataModificacao time.Time `json:"data_modificacao"`
}

// CreatePlantioRequest entrada para registrar um plantio.
type CreatePlantioRequest struct {
	DataPlantio          string  `json:"data_plantio" validate:"omitempty,isodate"`
	TipoCafe             string  `json:"tipo_cafe" validate:"required,min=1,max=100"`
	Hectares             float64 `json:"hectares" validate:"gt=0"`
	Localizacao          string  `json:"localizacao"`
	DataPrevisaoColheita string  `json:"data_previsao_colheita" validate:"omitempty,isodate"`
}

// UpdatePlantioRequest atualização parcial.
type UpdatePlantioRequest struct {
	DataPlantio          *string  `json:"data_plantio" validate:"omitempty,isodate"`
	TipoCafe             *string  `json:"tipo_cafe" validate:"omitempty,min=1,max=100"`
	Hectares             *float64 `json:"hectares" validate:"omitempty,gt=0"`
	Localizacao          *string  `json:"localizacao"`
	DataPrevisaoColheita *string  `json:"data_previsao_colheita" validate:"omitempty,isodate"`
}

// PlantioResponse saída de um plantio.
type PlantioResponse struct {
	ID                   int64     `json:"id"`
	DataPlantio          string    `json:"data_plantio"`
	TipoCafe             string    `json:"tipo_cafe"`
	Hectares             float64   `json:"hectares"`
	Localizacao          string    `json:"localizacao"`
	DataPrevisaoColheita string    `json:"data_previsao_colheita"`
	DataCriacao          time.Time `json:"data_criacao"`
	DataModificacao      time.Time `json:"data_modificacao"`
}
