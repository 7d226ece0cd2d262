package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Postgres error codes surfaced by the storage layer.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgInvalidTextRepr     = "22P02"
)

// Translate maps storage and business errors to the response taxonomy.
// Raw driver codes never reach the client; unexpected errors are logged
// and answered with a generic 500.
func Translate(c *gin.Context, log *zap.SugaredLogger, err error) {
	if be, ok := AsBusiness(err); ok {
		BadRequest(c, be.Message)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "Nie znaleziono rekordu.")
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			BadRequest(c, "Naruszenie klucza obcego powiązany rekord nie istnieje.")
			return
		case pgUniqueViolation:
			Conflict(c, "Rekord z takimi danymi już istnieje.")
			return
		case pgInvalidTextRepr:
			BadRequest(c, "Nieprawidłowy format danych.")
			return
		}
	}

	log.Errorw("unexpected error", "path", c.FullPath(), "err", err)
	Internal(c, "Wewnętrzny błąd serwera.")
}
