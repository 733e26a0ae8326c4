// Package sequence asigna identificadores internos y códigos visibles
// consecutivos por colección (c1/C1, p2/P2, ...). El consecutivo se deriva del
// largo actual de la colección al momento de insertar; no se reutiliza después
// de un borrado y no es seguro bajo inserción concurrente (el store garantiza
// un único escritor).
package sequence

import "fmt"

// Kind identifica la colección a la que pertenece el consecutivo.
type Kind string

const (
	KindClient  Kind = "c"
	KindProduct Kind = "p"
	KindOrder   Kind = "o"
	KindExpense Kind = "e"
)

// Next produce el ID interno y el código visible para el elemento n+1 de una
// colección que hoy tiene n registros.
func Next(kind Kind, n int) (id, code string) {
	id = fmt.Sprintf("%s%d", kind, n+1)
	code = fmt.Sprintf("%s%d", prefix(kind), n+1)
	return id, code
}

func prefix(kind Kind) string {
	switch kind {
	case KindClient:
		return "C"
	case KindProduct:
		return "P"
	case KindOrder:
		return "O"
	case KindExpense:
		return "E"
	}
	return "X"
}
