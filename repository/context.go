package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// GetTx get Transaction from context
func GetTx(ctx context.Context) Transaction {
	tx, ok := ctx.Value(ctxTxKey).(ctxTxValue)
	if !ok {
		panic("Not found transaction")
	}
	return tx.tx
}

// GetReadonly get Readonly from context
func GetReadonly(ctx context.Context) Readonly {
	db, ok := ctx.Value(ctxReadonlyKey).(ctxReadonlyValue)
	if !ok {
		panic("Not found readonly repository")
	}
	return db.db
}

// getQuerier returns the enclosing transaction when inside Transact, so
// reads observe the transaction's own writes and row locks, otherwise the
// readonly database.
func getQuerier(ctx context.Context) Readonly {
	tx, ok := ctx.Value(ctxTxKey).(ctxTxValue)
	if ok {
		return tx.tx
	}
	return GetReadonly(ctx)
}

type ctxTxKeyType struct {
}

type ctxReadonlyKeyType struct {
}

var ctxTxKey = ctxTxKeyType{}
var ctxReadonlyKey = ctxReadonlyKeyType{}

type ctxTxValue struct {
	tx *sqlx.Tx
}

type ctxReadonlyValue struct {
	db *sqlx.DB
}
