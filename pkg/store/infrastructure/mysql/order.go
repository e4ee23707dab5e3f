package mysql

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Brixomart/Brixo-mart/pkg/store/domain/model"
)

// OrderRepository archives placed orders. Create writes the order row and
// its item snapshot in one database transaction, which is what makes order
// placement atomic when the archive is active.
type OrderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type orderRow struct {
	ID              int64     `db:"id"`
	Date            time.Time `db:"placed_at"`
	Total           int       `db:"total"`
	Status          string    `db:"status"`
	MRP             int       `db:"mrp"`
	ProductDiscount int       `db:"product_discount"`
	PlatformFee     int       `db:"platform_fee"`
	DeliveryFee     int       `db:"delivery_fee"`
	HandlingFee     int       `db:"handling_fee"`
	PaymentMethod   string    `db:"payment_method"`
	AddrName        string    `db:"addr_name"`
	AddrMobile      string    `db:"addr_mobile"`
	AddrHouse       string    `db:"addr_house"`
	AddrStreet      string    `db:"addr_street"`
	AddrPin         string    `db:"addr_pin"`
}

type orderItemRow struct {
	OrderID       int64  `db:"order_id"`
	Position      int    `db:"position"`
	Name          string `db:"name"`
	Price         string `db:"price"`
	OriginalPrice string `db:"original_price"`
	Discount      string `db:"discount"`
	Image         string `db:"image"`
	Quantity      int    `db:"quantity"`
	Size          string `db:"size"`
}

func (r *OrderRepository) Create(order *model.Order) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin order transaction")
	}
	defer tx.Rollback()

	const insertOrder = `
		INSERT INTO orders (id, placed_at, total, status, mrp, product_discount,
			platform_fee, delivery_fee, handling_fee, payment_method,
			addr_name, addr_mobile, addr_house, addr_street, addr_pin)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if _, err := tx.Exec(insertOrder,
		order.ID, order.Date, order.Total, order.Status, order.MRP, order.ProductDiscount,
		order.PlatformFee, order.DeliveryFee, order.HandlingFee, order.PaymentMethod,
		order.Address.Name, order.Address.Mobile, order.Address.House,
		order.Address.Street, order.Address.Pin,
	); err != nil {
		return errors.Wrap(err, "insert order")
	}

	const insertItem = `
		INSERT INTO order_items (order_id, position, name, price, original_price,
			discount, image, quantity, size)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for i, item := range order.Items {
		if _, err := tx.Exec(insertItem,
			order.ID, i, item.Name, item.Price, item.OriginalPrice,
			item.Discount, item.Image, item.Quantity, item.Size,
		); err != nil {
			return errors.Wrap(err, "insert order item")
		}
	}

	return errors.Wrap(tx.Commit(), "commit order transaction")
}

func (r *OrderRepository) Find(id int64) (*model.Order, error) {
	var row orderRow
	if err := r.db.Get(&row, `SELECT * FROM orders WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, errors.Wrap(err, "find order")
	}

	order := row.toModel()
	items, err := r.itemsOf(id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *OrderRepository) List() ([]*model.Order, error) {
	var rows []orderRow
	if err := r.db.Select(&rows, `SELECT * FROM orders ORDER BY placed_at, id`); err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	orders := make([]*model.Order, 0, len(rows))
	for _, row := range rows {
		order := row.toModel()
		items, err := r.itemsOf(row.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *OrderRepository) itemsOf(orderID int64) ([]model.CartLine, error) {
	var rows []orderItemRow
	err := r.db.Select(&rows,
		`SELECT order_id, position, name, price, original_price, discount, image, quantity, size
		 FROM order_items WHERE order_id = ? ORDER BY position`, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "load order items")
	}

	items := make([]model.CartLine, 0, len(rows))
	for _, row := range rows {
		items = append(items, model.CartLine{
			Product: model.Product{
				Name:          row.Name,
				Price:         row.Price,
				OriginalPrice: row.OriginalPrice,
				Discount:      row.Discount,
				Image:         row.Image,
			},
			Quantity: row.Quantity,
			Size:     row.Size,
		})
	}
	return items, nil
}

func (row orderRow) toModel() *model.Order {
	return &model.Order{
		ID:              row.ID,
		Date:            row.Date,
		Total:           row.Total,
		Status:          row.Status,
		MRP:             row.MRP,
		ProductDiscount: row.ProductDiscount,
		PlatformFee:     row.PlatformFee,
		DeliveryFee:     row.DeliveryFee,
		HandlingFee:     row.HandlingFee,
		PaymentMethod:   row.PaymentMethod,
		Address: model.Address{
			Name:   row.AddrName,
			Mobile: row.AddrMobile,
			House:  row.AddrHouse,
			Street: row.AddrStreet,
			Pin:    row.AddrPin,
		},
	}
}
