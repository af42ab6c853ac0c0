package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/lojaviva/commerce-analytics-api/infrastructure/database/postgres"
	"github.com/lojaviva/commerce-analytics-api/internal/domain"
)

const (
	ordersTable     = "orders o"
	orderItemsTable = "order_items oi"
)

// OrderRepository carrega os pedidos pagos consumidos pelo motor de
// analytics. A filtragem por período e por pagamento acontece aqui; o
// núcleo recebe o conjunto pronto e somente o lê.
type OrderRepository interface {
	ListPaidSince(startDate time.Time) ([]*domain.OrderRecord, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) ListPaidSince(startDate time.Time) ([]*domain.OrderRecord, error) {
	orders, err := r.listOrders(startDate)
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return []*domain.OrderRecord{}, nil
	}

	byID := make(map[string]*domain.OrderRecord, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
	}

	if err := r.attachLineItems(byID); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) listOrders(startDate time.Time) ([]*domain.OrderRecord, error) {
	query, args, err := squirrel.
		Select("o.id, o.created_at, o.total_price, o.is_paid").
		From(ordersTable).
		Where(squirrel.Eq{"o.is_paid": true}).
		Where(squirrel.GtOrEq{"o.created_at": startDate}).
		OrderBy("o.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de pedidos")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, errors.Wrapf(pqErr, "erro no banco de dados (código: %s)", pqErr.Code)
		}
		return nil, errors.Wrap(err, "erro ao executar a query de pedidos")
	}
	defer rows.Close()

	orders := make([]*domain.OrderRecord, 0)
	for rows.Next() {
		order := &domain.OrderRecord{}
		if err := rows.Scan(&order.ID, &order.CreatedAt, &order.TotalPrice, &order.IsPaid); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear pedido")
		}

		order.LineItems = make([]*domain.LineItem, 0)
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de pedidos")
	}

	return orders, nil
}

func (r *orderRepository) attachLineItems(orders map[string]*domain.OrderRecord) error {
	orderIDs := make([]string, 0, len(orders))
	for id := range orders {
		orderIDs = append(orderIDs, id)
	}

	query, args, err := squirrel.
		Select("oi.order_id, oi.product_id, oi.product_name, oi.category_id, oi.category_name, oi.unit_price, oi.quantity").
		From(orderItemsTable).
		Where(squirrel.Eq{"oi.order_id": orderIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de itens")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return errors.Wrap(err, "erro ao executar a query de itens")
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		item := &domain.LineItem{}

		err := rows.Scan(
			&orderID,
			&item.ProductID,
			&item.ProductName,
			&item.CategoryID,
			&item.CategoryName,
			&item.UnitPrice,
			&item.Quantity,
		)
		if err != nil {
			return errors.Wrap(err, "erro ao escanear item de pedido")
		}

		if order, ok := orders[orderID]; ok {
			order.LineItems = append(order.LineItems, item)
		}
	}

	if err := rows.Err(); err != nil {
		return errors.Wrap(err, "erro durante a iteração de itens")
	}

	return nil
}
