package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicateEntry is returned by inserts rejected by a unique index.
// The unique index, not an application-level pre-check, is the source of
// truth for duplicate suppression.
var ErrDuplicateEntry = errors.New("repository: duplicate entry")

const mysqlErrDuplicateEntry = 1062

func wrapInsertError(err error) error {
	if err == nil {
		return nil
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
		return ErrDuplicateEntry
	}
	return err
}
