// Package sheets implementa o armazenamento de registros sobre uma planilha remota.
//
// Cada tipo de registro ocupa uma aba com um intervalo fixo de colunas. A linha 1 é o
// cabeçalho; as demais são registros. A posição de um registro (índice de linha) não é
// estável: é recalculada com uma leitura completa antes de cada escrita.
package sheets

import "context"

// RowStore é o cliente mínimo da planilha remota de que os repositórios precisam.
// Intervalos usam notação A1 ("Usuarios!A1:G", "Usuarios!A5:G5").
type RowStore interface {
	ReadRange(ctx context.Context, a1 string) ([][]string, error)
	AppendRow(ctx context.Context, a1 string, row []any) error
	WriteRange(ctx context.Context, a1 string, rows [][]any) error
	// DeleteRow remove a linha estrutural rowIndex (0 = cabeçalho) da aba sheetID.
	DeleteRow(ctx context.Context, sheetID int64, rowIndex int) error
	SheetID(ctx context.Context, name string) (int64, bool, error)
}

// Locker serializa as escritas de um mesmo tipo de registro.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// SheetNames nomes de todas as abas usadas pela aplicação.
func SheetNames() []string {
	return []string{
		UsuarioSchema.Sheet, FuncionarioSchema.Sheet, ClienteSchema.Sheet, ProdutoSchema.Sheet,
		VendaSchema.Sheet, DespesaSchema.Sheet, PlantioSchema.Sheet,
	}
}
