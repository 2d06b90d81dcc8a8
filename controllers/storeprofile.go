package controllers

import (
	"net/http"
	"storepos-backend/services"
	"storepos-backend/utils"

	"github.com/gin-gonic/gin"
)

// UpdateStoreNameInput defines the expected JSON structure for renaming the store
type UpdateStoreNameInput struct {
	Name string `json:"name" binding:"required"`
}

type StoreProfileController struct {
	ledger *services.Ledger
}

func NewStoreProfileController(ledger *services.Ledger) *StoreProfileController {
	return &StoreProfileController{ledger: ledger}
}

// GetStoreProfile returns the store name.
func (ctl *StoreProfileController) GetStoreProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"storeName": ctl.ledger.StoreName()})
}

// UpdateStoreName renames the store. Blank names are rejected.
func (ctl *StoreProfileController) UpdateStoreName(c *gin.Context) {
	var input UpdateStoreNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := ctl.ledger.SetStoreName(input.Name); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Store name updated", "storeName": ctl.ledger.StoreName()})
}
