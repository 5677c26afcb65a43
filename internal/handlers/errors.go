package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/validators"
)

// respondError maps use case errors to the error envelope. Anything that is
// not a business error is logged and hidden behind a generic 500.
func respondError(c *gin.Context, op string, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		if be.Code == domain.CodeNotFound {
			httperr.NotFound(c, be.Code, be.Error())
			return
		}
		httperr.BadRequest(c, be.Code, be.Error())
		return
	}

	log.Printf("[reservations] %s: %v", op, err)
	httperr.Internal(c)
}

func bindFailed(c *gin.Context, err error) {
	httperr.ValidationFailed(c, validators.Details(err))
}
