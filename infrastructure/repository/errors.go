package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
)

var ErrDuplicate = errors.New("registro duplicado")

const uniqueViolation = "23505"

// translateError converte violações de unicidade do Postgres em ErrDuplicate
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	value := s.String
	return &value
}
