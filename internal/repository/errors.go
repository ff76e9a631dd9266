package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"nurvo_backend/internal/util"
	"nurvo_backend/pkg/monitoring"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// classify wraps err with the operation name and one of the util error kinds
// so callers can tell a missing row from a broken store.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	kind := kindOf(err)
	if kind == nil {
		monitoring.StoreErrors.WithLabelValues(op, "internal").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}
	if kind != util.ErrNotFound {
		monitoring.StoreErrors.WithLabelValues(op, kind.Error()).Inc()
	}
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

func kindOf(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return util.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return util.ErrConstraintViolation
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone):
		return util.ErrConnectivity
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505", // unique_violation
			pgErr.Code == "23503", // foreign_key_violation
			pgErr.Code == "23502", // not_null_violation
			pgErr.Code == "23514": // check_violation
			return util.ErrConstraintViolation
		case strings.HasPrefix(pgErr.Code, "08"), // connection_exception
			pgErr.Code == "53300", // too_many_connections
			pgErr.Code == "57P01", pgErr.Code == "57P02", pgErr.Code == "57P03":
			return util.ErrConnectivity
		}
		return nil
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return util.ErrConnectivity
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1062, 1451, 1452, 1048:
			return util.ErrConstraintViolation
		case 1040, 1053:
			return util.ErrConnectivity
		}
		return nil
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return util.ErrConnectivity
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "constraint failed"), strings.Contains(msg, "duplicate key"):
		return util.ErrConstraintViolation
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "database is closed"):
		return util.ErrConnectivity
	}
	return nil
}
