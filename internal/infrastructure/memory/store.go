// Package memory implementa los puertos de persistencia sobre un único
// agregado en memoria, el comportamiento de referencia del sistema: el estado
// vive lo que vive el proceso. El Store es dueño exclusivo de las colecciones;
// la única vía de escritura son sus repositorios y todo pasa por un solo mutex,
// nunca se expone estado mutable compartido.
package memory

import (
	"sync"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// Store agregado de inventario en memoria: materiales, productos, log de
// transacciones (inmutable, más reciente primero), historial de producción y
// usuarios.
type Store struct {
	mu           sync.Mutex
	materials    map[string]*entity.Material
	products     map[string]*entity.Product
	transactions []*entity.StockTransaction
	logs         []*entity.ProductionLog
	users        map[string]*entity.User
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		materials: make(map[string]*entity.Material),
		products:  make(map[string]*entity.Product),
		users:     make(map[string]*entity.User),
	}
}

// Materials devuelve un repositorio de materiales que toma el mutex en cada
// operación (para lecturas fuera de una sección crítica).
func (s *Store) Materials() *MaterialRepo { return &MaterialRepo{store: s, locking: true} }

// Products repositorio de productos con mutex por operación.
func (s *Store) Products() *ProductRepo { return &ProductRepo{store: s, locking: true} }

// Transactions repositorio del log de transacciones con mutex por operación.
func (s *Store) Transactions() *TransactionRepo { return &TransactionRepo{store: s, locking: true} }

// ProductionLogs repositorio del historial de producción con mutex por operación.
func (s *Store) ProductionLogs() *ProductionLogRepo { return &ProductionLogRepo{store: s, locking: true} }

// Users repositorio de usuarios con mutex por operación.
func (s *Store) Users() *UserRepo { return &UserRepo{store: s, locking: true} }

// ── Copias defensivas ────────────────────────────────────────────────────────
// El Store entrega y recibe copias: ningún caller queda con un puntero a lo
// que el agregado guarda.

func cloneMaterial(m *entity.Material) *entity.Material {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

func cloneProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	c := *p
	c.Recipe = make([]entity.RecipeIngredient, len(p.Recipe))
	copy(c.Recipe, p.Recipe)
	return &c
}

func cloneTransaction(t *entity.StockTransaction) *entity.StockTransaction {
	if t == nil {
		return nil
	}
	c := *t
	if t.PurchasePrice != nil {
		price := *t.PurchasePrice
		c.PurchasePrice = &price
	}
	return &c
}

func cloneLog(l *entity.ProductionLog) *entity.ProductionLog {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
