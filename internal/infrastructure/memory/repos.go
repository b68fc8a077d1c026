package memory

import (
	"sort"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// Los repos tienen dos modos: con locking true toman el mutex del Store en
// cada operación; con locking false asumen que el caller ya lo tiene (repos
// atados a un TxRunner.Run). Es el equivalente en memoria del patrón
// pool-o-transacción de los adaptadores PostgreSQL.

var _ repository.MaterialRepository = (*MaterialRepo)(nil)
var _ repository.ProductRepository = (*ProductRepo)(nil)
var _ repository.TransactionRepository = (*TransactionRepo)(nil)
var _ repository.ProductionLogRepository = (*ProductionLogRepo)(nil)
var _ repository.UserRepository = (*UserRepo)(nil)

// ── Materiales ───────────────────────────────────────────────────────────────

// MaterialRepo adaptador en memoria de repository.MaterialRepository.
type MaterialRepo struct {
	store   *Store
	locking bool
}

func (r *MaterialRepo) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *MaterialRepo) Create(m *entity.Material) error {
	defer r.lock()()
	r.store.materials[m.ID] = cloneMaterial(m)
	return nil
}

func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	defer r.lock()()
	return cloneMaterial(r.store.materials[id]), nil
}

// GetForUpdate equivale a GetByID: la sección crítica del TxRunner ya excluye
// a cualquier otro mutador.
func (r *MaterialRepo) GetForUpdate(id string) (*entity.Material, error) {
	return r.GetByID(id)
}

func (r *MaterialRepo) GetByName(name string) (*entity.Material, error) {
	defer r.lock()()
	key := entity.NormalizeName(name)
	for _, m := range r.store.materials {
		if entity.NormalizeName(m.Name) == key {
			return cloneMaterial(m), nil
		}
	}
	return nil, nil
}

func (r *MaterialRepo) List() ([]*entity.Material, error) {
	defer r.lock()()
	out := make([]*entity.Material, 0, len(r.store.materials))
	for _, m := range r.store.materials {
		out = append(out, cloneMaterial(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MaterialRepo) Update(m *entity.Material) error {
	defer r.lock()()
	if _, ok := r.store.materials[m.ID]; !ok {
		return nil
	}
	r.store.materials[m.ID] = cloneMaterial(m)
	return nil
}

func (r *MaterialRepo) Delete(id string) error {
	defer r.lock()()
	delete(r.store.materials, id)
	return nil
}

// ── Productos ────────────────────────────────────────────────────────────────

// ProductRepo adaptador en memoria de repository.ProductRepository.
type ProductRepo struct {
	store   *Store
	locking bool
}

func (r *ProductRepo) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *ProductRepo) Create(p *entity.Product) error {
	defer r.lock()()
	r.store.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	defer r.lock()()
	return cloneProduct(r.store.products[id]), nil
}

func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	defer r.lock()()
	key := entity.NormalizeName(name)
	for _, p := range r.store.products {
		if entity.NormalizeName(p.Name) == key {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) List() ([]*entity.Product, error) {
	defer r.lock()()
	out := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ProductRepo) Update(p *entity.Product) error {
	defer r.lock()()
	if _, ok := r.store.products[p.ID]; !ok {
		return nil
	}
	r.store.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *ProductRepo) Delete(id string) error {
	defer r.lock()()
	delete(r.store.products, id)
	return nil
}

// ── Transacciones ────────────────────────────────────────────────────────────

// TransactionRepo adaptador en memoria del log de transacciones. Solo permite
// insertar; el slice se mantiene más-reciente-primero insertando al frente.
type TransactionRepo struct {
	store   *Store
	locking bool
}

func (r *TransactionRepo) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *TransactionRepo) Create(t *entity.StockTransaction) error {
	defer r.lock()()
	r.store.transactions = append([]*entity.StockTransaction{cloneTransaction(t)}, r.store.transactions...)
	return nil
}

func (r *TransactionRepo) List() ([]*entity.StockTransaction, error) {
	defer r.lock()()
	out := make([]*entity.StockTransaction, 0, len(r.store.transactions))
	for _, t := range r.store.transactions {
		out = append(out, cloneTransaction(t))
	}
	return out, nil
}

// ── Historial de producción ──────────────────────────────────────────────────

// ProductionLogRepo adaptador en memoria del historial de producción.
type ProductionLogRepo struct {
	store   *Store
	locking bool
}

func (r *ProductionLogRepo) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *ProductionLogRepo) Create(l *entity.ProductionLog) error {
	defer r.lock()()
	r.store.logs = append([]*entity.ProductionLog{cloneLog(l)}, r.store.logs...)
	return nil
}

func (r *ProductionLogRepo) List() ([]*entity.ProductionLog, error) {
	defer r.lock()()
	out := make([]*entity.ProductionLog, 0, len(r.store.logs))
	for _, l := range r.store.logs {
		out = append(out, cloneLog(l))
	}
	return out, nil
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

// UserRepo adaptador en memoria de repository.UserRepository.
type UserRepo struct {
	store   *Store
	locking bool
}

func (r *UserRepo) lock() func() {
	if !r.locking {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *UserRepo) Create(u *entity.User) error {
	defer r.lock()()
	r.store.users[u.ID] = cloneUser(u)
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	defer r.lock()()
	return cloneUser(r.store.users[id]), nil
}

func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	defer r.lock()()
	for _, u := range r.store.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}
