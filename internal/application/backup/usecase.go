// Package backup implementa la exportación e importación del documento como
// texto JSON, y el reinicio al documento semilla.
package backup

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/pos-libro/internal/domain"
	"github.com/jhoicas/pos-libro/internal/domain/entity"
	"github.com/jhoicas/pos-libro/internal/domain/repository"
	"github.com/jhoicas/pos-libro/pkg/logger"
)

// UseCase exporta, importa y reinicia el documento.
type UseCase struct {
	store repository.DocumentStore
	seed  func() *entity.Document
	log   *logger.Logger
}

// NewUseCase construye el caso de uso. seed produce el documento al que
// vuelve Reset.
func NewUseCase(store repository.DocumentStore, seed func() *entity.Document, log *logger.Logger) *UseCase {
	return &UseCase{store: store, seed: seed, log: log}
}

// Export devuelve el documento como JSON con sangría de dos espacios.
func (uc *UseCase) Export() (string, error) {
	doc := uc.store.Snapshot()
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("exportar documento: %w", err)
	}
	return string(raw), nil
}

// Import interpreta el texto como documento y lo reemplaza completo. Si el
// JSON no es válido devuelve el error y el documento anterior queda intacto;
// no hay importación parcial ni validación campo a campo.
func (uc *UseCase) Import(text string) error {
	var doc entity.Document
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		uc.log.Warn().Err(err).Msg("importación rechazada: JSON inválido")
		return fmt.Errorf("%w: %v", domain.ErrBadDocument, err)
	}
	return uc.store.Replace(&doc)
}

// Reset reemplaza el documento por el semilla.
func (uc *UseCase) Reset() error {
	uc.log.Info().Msg("documento reiniciado al semilla")
	return uc.store.Replace(uc.seed())
}
