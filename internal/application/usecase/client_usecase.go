// Package usecase contiene los casos de uso de escritura y consulta sobre el
// documento: upserts por entidad, ajustes de stock y búsqueda global. Cada
// operación es un micro-transacción: copia del documento, cambio, Replace.
package usecase

import (
	"strings"

	"github.com/jhoicas/pos-libro/internal/application/dto"
	"github.com/jhoicas/pos-libro/internal/domain"
	"github.com/jhoicas/pos-libro/internal/domain/entity"
	"github.com/jhoicas/pos-libro/internal/domain/repository"
	"github.com/jhoicas/pos-libro/internal/domain/sequence"
	"github.com/jhoicas/pos-libro/pkg/logger"
)

const defaultClientName = "New Client"

// ClientUseCase upsert de clientes.
type ClientUseCase struct {
	store repository.DocumentStore
	log   *logger.Logger
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(store repository.DocumentStore, log *logger.Logger) *ClientUseCase {
	return &ClientUseCase{store: store, log: log}
}

// Upsert crea un cliente (ID vacío) o aplica el parche sobre uno existente.
// Un ID que no existe devuelve ErrNotFound y deja el documento intacto.
func (uc *ClientUseCase) Upsert(p dto.ClientPatch) (*entity.Client, error) {
	doc := uc.store.Snapshot()

	if p.ID == "" {
		id, code := sequence.Next(sequence.KindClient, len(doc.Clients))
		name := defaultClientName
		if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
			name = strings.TrimSpace(*p.Name)
		}
		created := entity.Client{ID: id, Code: code, Name: name}
		doc.Clients = append(doc.Clients, created)
		if err := uc.store.Replace(doc); err != nil {
			return nil, err
		}
		uc.log.Debug().Str("id", id).Str("code", code).Msg("cliente creado")
		return &created, nil
	}

	existing := doc.FindClient(p.ID)
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	mergeClient(existing, p)
	if err := uc.store.Replace(doc); err != nil {
		return nil, err
	}
	updated := *existing
	return &updated, nil
}

// mergeClient aplica el parche sobre el registro existente: el parche gana
// cuando el campo viene presente.
func mergeClient(c *entity.Client, p dto.ClientPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
}
