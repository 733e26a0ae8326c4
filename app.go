// Package poslibro arma el núcleo de la aplicación: punto de venta y
// contabilidad para un negocio pequeño, con persistencia local en un único
// documento JSON. La capa de presentación consume esta fachada; aquí no hay
// servidor HTTP ni base de datos.
package poslibro

import (
	"github.com/jhoicas/pos-libro/internal/application/analytics"
	"github.com/jhoicas/pos-libro/internal/application/auth"
	"github.com/jhoicas/pos-libro/internal/application/backup"
	"github.com/jhoicas/pos-libro/internal/application/prefs"
	"github.com/jhoicas/pos-libro/internal/application/usecase"
	"github.com/jhoicas/pos-libro/internal/domain/repository"
	"github.com/jhoicas/pos-libro/internal/infrastructure/localstore"
	"github.com/jhoicas/pos-libro/internal/seed"
	"github.com/jhoicas/pos-libro/pkg/config"
	"github.com/jhoicas/pos-libro/pkg/logger"
)

// App agrupa los casos de uso ya cableados sobre un único store.
type App struct {
	Config *config.Config
	Log    *logger.Logger
	Store  repository.DocumentStore

	Clients       *usecase.ClientUseCase
	Products      *usecase.ProductUseCase
	Orders        *usecase.OrderUseCase
	Expenses      *usecase.ExpenseUseCase
	Search        *usecase.SearchUseCase
	Dashboard     *analytics.DashboardUseCase
	ClientSummary *analytics.ClientSummaryUseCase
	Reports       *analytics.ReportsUseCase
	Auth          *auth.UseCase
	Backup        *backup.UseCase
	Prefs         *prefs.UseCase
}

// New carga la configuración y arma la aplicación con persistencia en
// archivos bajo el directorio de datos configurado.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	kv, err := localstore.NewFileKV(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}
	return NewWithKV(cfg, kv, log), nil
}

// NewWithKV arma la aplicación sobre un KV ya construido; útil para tests y
// para embebedores que traen su propio almacenamiento.
func NewWithKV(cfg *config.Config, kv repository.KV, log *logger.Logger) *App {
	store := localstore.NewDocumentStore(kv, seed.Document(), log)
	return &App{
		Config:        cfg,
		Log:           log,
		Store:         store,
		Clients:       usecase.NewClientUseCase(store, log),
		Products:      usecase.NewProductUseCase(store, log),
		Orders:        usecase.NewOrderUseCase(store, log),
		Expenses:      usecase.NewExpenseUseCase(store, log),
		Search:        usecase.NewSearchUseCase(store),
		Dashboard:     analytics.NewDashboardUseCase(store),
		ClientSummary: analytics.NewClientSummaryUseCase(store),
		Reports:       analytics.NewReportsUseCase(store),
		Auth:          auth.NewUseCase(cfg.Auth, kv, log),
		Backup:        backup.NewUseCase(store, seed.Document, log),
		Prefs:         prefs.NewUseCase(kv),
	}
}
