package controllers

import (
	"errors"
	"net/http"
	"storepos-backend/services"
	"storepos-backend/store"
	"storepos-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps ledger errors onto HTTP statuses. A full
// persistent store maps to 507 so the caller can tell a quota failure
// apart from a rejected input.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrProductNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInsufficientStock):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrImageTooLarge):
		utils.RespondWithError(c, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, store.ErrQuotaExceeded):
		utils.RespondWithError(c, http.StatusInsufficientStorage,
			"Storage is full. Delete some items or use smaller pictures before saving anything else.")
	case errors.Is(err, services.ErrInvalidInput):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save changes")
	}
}

// requireConfirmation is the gate in front of destructive operations:
// the caller must pass confirm=true or the mutation is refused.
func requireConfirmation(c *gin.Context) bool {
	if c.Query("confirm") != "true" {
		utils.RespondWithError(c, http.StatusPreconditionRequired,
			"Deletion must be confirmed with confirm=true")
		return false
	}
	return true
}
