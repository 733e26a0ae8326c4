package repository

import "github.com/jhoicas/pos-libro/internal/domain/entity"

// DocumentStore define el puerto del almacén del documento único (DIP).
// Snapshot entrega copias profundas; Replace sustituye el documento completo
// de forma atómica y notifica a los suscriptores.
type DocumentStore interface {
	Snapshot() *entity.Document
	Replace(doc *entity.Document) error
	Subscribe(fn func(*entity.Document)) (unsubscribe func())
}
