package sheets

import (
	"fmt"
	"strconv"
)

// cellString normaliza o valor de uma célula para texto. Números saem sem notação
// científica para que ids grandes sobrevivam à ida e volta.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(x)
	}
}
