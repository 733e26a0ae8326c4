package entity

// Document es el objeto único que agrupa las cuatro colecciones.
// Es la unidad de persistencia y de reemplazo atómico: cada mutación toma una
// copia profunda, la modifica y reemplaza el documento completo.
type Document struct {
	Clients  []Client  `json:"clients"`
	Products []Product `json:"products"`
	Orders   []Order   `json:"orders"`
	Expenses []Expense `json:"expenses"`
}

// Clone devuelve una copia profunda del documento. Los observadores del store
// nunca comparten slices con el documento interno.
func (d *Document) Clone() *Document {
	c := &Document{
		Clients:  make([]Client, len(d.Clients)),
		Products: make([]Product, len(d.Products)),
		Orders:   make([]Order, len(d.Orders)),
		Expenses: make([]Expense, len(d.Expenses)),
	}
	copy(c.Clients, d.Clients)
	copy(c.Expenses, d.Expenses)
	for i, p := range d.Products {
		cp := p
		cp.Pricing = make([]PricingTier, len(p.Pricing))
		copy(cp.Pricing, p.Pricing)
		if p.LastOrderedAt != nil {
			t := *p.LastOrderedAt
			cp.LastOrderedAt = &t
		}
		c.Products[i] = cp
	}
	for i, o := range d.Orders {
		co := o
		co.Items = make([]OrderItem, len(o.Items))
		copy(co.Items, o.Items)
		co.PaymentMethods = make([]string, len(o.PaymentMethods))
		copy(co.PaymentMethods, o.PaymentMethods)
		c.Orders[i] = co
	}
	return c
}

// FindClient localiza un cliente por ID; nil si no existe.
func (d *Document) FindClient(id string) *Client {
	for i := range d.Clients {
		if d.Clients[i].ID == id {
			return &d.Clients[i]
		}
	}
	return nil
}

// FindProduct localiza un producto por ID; nil si no existe.
func (d *Document) FindProduct(id string) *Product {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return &d.Products[i]
		}
	}
	return nil
}

// FindOrder localiza un pedido por ID; nil si no existe.
func (d *Document) FindOrder(id string) *Order {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return &d.Orders[i]
		}
	}
	return nil
}
