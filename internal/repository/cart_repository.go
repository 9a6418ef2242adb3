package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/minimarket/marketplace-service/internal/domain"
	"github.com/minimarket/marketplace-service/pkg/errs"
)

type CartRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreateCartRepository(db *sqlx.DB) CartRepository {
	return &CartRepositoryImpl{db: db}
}

// ext returns the active transaction when running inside HandleTrx, the
// plain pool otherwise.
func (r *CartRepositoryImpl) ext() sqlx.ExtContext {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *CartRepositoryImpl) GetCartItemByID(ctx context.Context, id int64) (data domain.CartItem, err error) {
	row := r.ext().QueryRowxContext(ctx, "SELECT * FROM cart_items WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetCartItemByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *CartRepositoryImpl) GetCartItemByUserAndProduct(ctx context.Context, userID, productID int64) (data domain.CartItem, err error) {
	row := r.ext().QueryRowxContext(ctx, "SELECT * FROM cart_items WHERE user_id = $1 AND product_id = $2", userID, productID)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetCartItemByUserAndProduct").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *CartRepositoryImpl) AddCartItem(ctx context.Context, data domain.CartItem) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	rows, err := sqlx.NamedQueryContext(ctx, r.ext(), "INSERT INTO cart_items(user_id, product_id, quantity, created_at, updated_at) VALUES (:user_id, :product_id, :quantity, :created_at, :updated_at) returning id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCartItem").Msg("")
		return 0, errs.ErrInternalServer
	}
	defer rows.Close()

	if rows.Next() {
		if err = rows.Scan(&id); err != nil {
			log.Error().Err(err).Str("component", "AddCartItem").Msg("")
			return 0, errs.ErrInternalServer
		}
	}

	if err = rows.Err(); err != nil {
		log.Error().Err(err).Str("component", "AddCartItem").Msg("")
		return 0, errs.ErrInternalServer
	}

	return id, nil
}

func (r *CartRepositoryImpl) UpdateCartItemQuantity(ctx context.Context, id int64, quantity int) (err error) {
	_, err = r.ext().ExecContext(ctx, "UPDATE cart_items SET quantity = $1, updated_at = $2 WHERE id = $3", quantity, time.Now().UnixMilli(), id)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCartItemQuantity").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *CartRepositoryImpl) DeleteCartItem(ctx context.Context, id int64) (err error) {
	_, err = r.ext().ExecContext(ctx, "DELETE FROM cart_items WHERE id = $1", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteCartItem").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *CartRepositoryImpl) GetCartDetails(ctx context.Context, userID int64) (data []domain.CartItemDetail, err error) {
	query := `SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
		p.title, p.image_url, p.price AS product_price
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at`

	err = sqlx.SelectContext(ctx, r.ext(), &data, query, userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCartDetails").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *CartRepositoryImpl) AddPurchases(ctx context.Context, data []domain.Purchase) (err error) {
	_, err = sqlx.NamedExecContext(ctx, r.ext(), "INSERT INTO purchases(user_id, product_id, price_at_purchase, purchased_at) VALUES (:user_id, :product_id, :price_at_purchase, :purchased_at)", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddPurchases").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *CartRepositoryImpl) GetPurchases(ctx context.Context, userID int64) (data []domain.PurchaseDetail, err error) {
	query := `SELECT pu.id, pu.user_id, pu.product_id, pu.price_at_purchase, pu.purchased_at,
		p.title, p.image_url
		FROM purchases pu
		JOIN products p ON p.id = pu.product_id
		WHERE pu.user_id = $1
		ORDER BY pu.purchased_at DESC, pu.id DESC`

	err = sqlx.SelectContext(ctx, r.ext(), &data, query, userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetPurchases").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

func (r *CartRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo CartRepository) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	trxRepo := &CartRepositoryImpl{db: r.db, tx: tx}

	err = fn(ctx, trxRepo)

	return err
}
