package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Códigos de error de PostgreSQL que el API traduce a mensajes de cliente.
const (
	codigoUnicidad     = "23505"
	codigoClaveForanea = "23503"
)

func EsRegistroNoEncontrado(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// EsDuplicado detecta violaciones de unicidad.
func EsDuplicado(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codigoUnicidad
}

// EsClaveForanea detecta violaciones de clave foránea (registros asociados).
func EsClaveForanea(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codigoClaveForanea
}
