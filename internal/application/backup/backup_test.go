package backup_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-libro/internal/application/backup"
	"github.com/jhoicas/pos-libro/internal/domain"
	"github.com/jhoicas/pos-libro/internal/infrastructure/localstore"
	"github.com/jhoicas/pos-libro/internal/seed"
	"github.com/jhoicas/pos-libro/pkg/logger"
)

func newUseCase(t *testing.T) (*backup.UseCase, *localstore.DocumentStore) {
	t.Helper()
	store := localstore.NewDocumentStore(localstore.NewMemoryKV(), seed.Document(), logger.Nop())
	return backup.NewUseCase(store, seed.Document, logger.Nop()), store
}

func TestExportImport_IdaYVuelta(t *testing.T) {
	uc, _ := newUseCase(t)

	exported, err := uc.Export()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(exported, "{\n  \"clients\""), "JSON con sangría de dos espacios")

	require.NoError(t, uc.Import(exported))

	again, err := uc.Export()
	require.NoError(t, err)
	assert.Equal(t, exported, again, "exportar → importar → exportar es estable")
}

func TestImport_JSONInvalidoDejaElDocumentoIntacto(t *testing.T) {
	uc, _ := newUseCase(t)

	before, err := uc.Export()
	require.NoError(t, err)

	err = uc.Import("{esto no es json")
	assert.ErrorIs(t, err, domain.ErrBadDocument)

	after, err := uc.Export()
	require.NoError(t, err)
	assert.Equal(t, before, after, "byte a byte igual que antes")
}

func TestImport_ReemplazaCompleto(t *testing.T) {
	uc, store := newUseCase(t)

	require.NoError(t, uc.Import(`{"clients":[{"id":"c1","code":"C1","name":"Solo"}],"products":[],"orders":[],"expenses":[]}`))

	doc := store.Snapshot()
	assert.Len(t, doc.Clients, 1)
	assert.Equal(t, "Solo", doc.Clients[0].Name)
	assert.Empty(t, doc.Products, "no hay importación parcial: el documento entra completo")
}

func TestReset(t *testing.T) {
	uc, store := newUseCase(t)

	require.NoError(t, uc.Import(`{"clients":[],"products":[],"orders":[],"expenses":[]}`))
	require.Empty(t, store.Snapshot().Clients)

	require.NoError(t, uc.Reset())
	doc := store.Snapshot()
	assert.Len(t, doc.Clients, 3)
	assert.Len(t, doc.Products, 3)
}
