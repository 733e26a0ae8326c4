package localstore

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/pos-libro/internal/domain/entity"
	"github.com/jhoicas/pos-libro/internal/domain/repository"
	"github.com/jhoicas/pos-libro/pkg/logger"
)

// DocumentStore es el dueño del documento único. Cada mutación es un
// read-modify-write sobre una copia profunda seguido de Replace: los
// suscriptores nunca observan un documento a medio actualizar.
type DocumentStore struct {
	mu   sync.Mutex
	kv   repository.KV
	log  *logger.Logger
	doc  *entity.Document
	subs map[uuid.UUID]func(*entity.Document)
}

// NewDocumentStore carga el documento persistido bajo la clave fija; si no
// existe o está corrupto arranca con el documento semilla provisto.
func NewDocumentStore(kv repository.KV, fallback *entity.Document, log *logger.Logger) *DocumentStore {
	s := &DocumentStore{
		kv:   kv,
		log:  log,
		doc:  fallback.Clone(),
		subs: make(map[uuid.UUID]func(*entity.Document)),
	}
	raw, ok, err := kv.Get(repository.KeyDocument)
	if err != nil {
		log.Warn().Err(err).Msg("leer documento persistido; se usa el documento semilla")
		return s
	}
	if !ok {
		return s
	}
	var doc entity.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Warn().Err(err).Msg("documento persistido corrupto; se usa el documento semilla")
		return s
	}
	s.doc = &doc
	return s
}

// Snapshot devuelve una copia profunda del documento actual.
func (s *DocumentStore) Snapshot() *entity.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Replace sustituye el documento completo, lo persiste y notifica a los
// suscriptores. El documento notificado es una copia: tratarlo como lectura.
func (s *DocumentStore) Replace(doc *entity.Document) error {
	s.mu.Lock()
	next := doc.Clone()
	raw, err := json.Marshal(next)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("serializar documento: %w", err)
	}
	if err := s.kv.Set(repository.KeyDocument, raw); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("persistir documento: %w", err)
	}
	s.doc = next
	listeners := make([]func(*entity.Document), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	s.log.Debug().
		Int("clients", len(next.Clients)).
		Int("products", len(next.Products)).
		Int("orders", len(next.Orders)).
		Int("expenses", len(next.Expenses)).
		Msg("documento reemplazado")

	if len(listeners) > 0 {
		snapshot := next.Clone()
		for _, fn := range listeners {
			fn(snapshot)
		}
	}
	return nil
}

// Subscribe registra un observador de cambios y devuelve su cancelación.
func (s *DocumentStore) Subscribe(fn func(*entity.Document)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}
