package usecase

import (
	"strings"

	"github.com/jhoicas/pos-libro/internal/application/dto"
	"github.com/jhoicas/pos-libro/internal/domain/repository"
)

// SearchUseCase búsqueda global por subcadena, sin distinguir mayúsculas.
// Los pedidos coinciden por su código o por el nombre de su cliente.
type SearchUseCase struct {
	store repository.DocumentStore
}

// NewSearchUseCase construye el caso de uso.
func NewSearchUseCase(store repository.DocumentStore) *SearchUseCase {
	return &SearchUseCase{store: store}
}

// Search devuelve las coincidencias por colección. Una consulta vacía (o de
// solo espacios) devuelve resultados vacíos.
func (uc *SearchUseCase) Search(query string) dto.SearchResults {
	q := strings.ToLower(strings.TrimSpace(query))
	results := dto.SearchResults{}
	if q == "" {
		return results
	}
	doc := uc.store.Snapshot()

	for _, c := range doc.Clients {
		if contains(c.Name, q) || contains(c.Code, q) {
			results.Clients = append(results.Clients, c)
		}
	}
	for _, p := range doc.Products {
		if contains(p.Name, q) || contains(p.Code, q) {
			results.Products = append(results.Products, p)
		}
	}
	for _, o := range doc.Orders {
		clientName := ""
		if c := doc.FindClient(o.ClientID); c != nil {
			clientName = c.Name
		}
		if contains(o.Code, q) || contains(clientName, q) {
			results.Orders = append(results.Orders, o)
		}
	}
	return results
}

func contains(s, lowered string) bool {
	return strings.Contains(strings.ToLower(s), lowered)
}
