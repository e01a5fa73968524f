package postgres

import (
	"context"
	"database/sql"
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderdesk/internal/domain"
)

// InventoryRepository хранит остатки товаров в таблице stock_levels.
// Контракт StockChecker не возвращает ошибок, поэтому отказ базы
// логируется, а CheckStock в этом случае отвечает "нет в наличии".
type InventoryRepository struct {
	store  *Store
	logger *log.Entry
}

// NewInventoryRepository создаёт репозиторий остатков поверх подключения.
func NewInventoryRepository(store *Store, logger *log.Entry) *InventoryRepository {
	if logger == nil {
		logger = log.New().WithField("component", "postgres-inventory")
	}
	return &InventoryRepository{
		store:  store,
		logger: logger,
	}
}

// SetStock выставляет абсолютный остаток товара (начальное заполнение).
func (r *InventoryRepository) SetStock(ctx context.Context, product string, quantity int32) error {
	opCtx, cancel := context.WithTimeout(ctx, defaultOpTimeout)
	defer cancel()

	const query = `
INSERT INTO stock_levels (product, available, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (product) DO UPDATE SET available = EXCLUDED.available, updated_at = now()`
	_, err := r.store.db.ExecContext(opCtx, query, product, quantity)
	return err
}

// CheckStock сообщает, достаточно ли остатка для запрошенного количества.
func (r *InventoryRepository) CheckStock(product string, quantity int32) bool {
	opCtx, cancel := context.WithTimeout(context.Background(), defaultOpTimeout)
	defer cancel()

	var available int32
	const query = `SELECT available FROM stock_levels WHERE product = $1`
	err := r.store.db.QueryRowContext(opCtx, query, product).Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		r.logger.WithError(err).WithField("product", product).Error("stock check query failed")
		return false
	}

	return available >= quantity
}

// ReduceStock списывает количество с остатка товара.
func (r *InventoryRepository) ReduceStock(product string, quantity int32) {
	opCtx, cancel := context.WithTimeout(context.Background(), defaultOpTimeout)
	defer cancel()

	const query = `
UPDATE stock_levels SET available = available - $2, updated_at = now()
WHERE product = $1 AND available >= $2`
	result, err := r.store.db.ExecContext(opCtx, query, product, quantity)
	if err != nil {
		r.logger.WithError(err).WithField("product", product).Error("stock reduce failed")
		return
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		r.logger.WithFields(log.Fields{
			"product": product,
			"qty":     quantity,
		}).Warn("stock reduce skipped, insufficient level")
	}
}

// IncreaseStock возвращает количество на остаток товара.
func (r *InventoryRepository) IncreaseStock(product string, quantity int32) {
	opCtx, cancel := context.WithTimeout(context.Background(), defaultOpTimeout)
	defer cancel()

	const query = `
INSERT INTO stock_levels (product, available, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (product) DO UPDATE
SET available = stock_levels.available + EXCLUDED.available, updated_at = now()`
	if _, err := r.store.db.ExecContext(opCtx, query, product, quantity); err != nil {
		r.logger.WithError(err).WithField("product", product).Error("stock increase failed")
	}
}

var _ domain.StockChecker = (*InventoryRepository)(nil)
