package controllers

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"storepos-backend/models"
	"storepos-backend/services"
	"storepos-backend/utils"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CreateItemInput defines the expected structure for adding an inventory
// item, bound from JSON or from a multipart form (the image file itself
// rides alongside the form fields).
type CreateItemInput struct {
	Name     string  `json:"name" form:"name" binding:"required"`
	Category string  `json:"category" form:"category"`
	Price    float64 `json:"price" form:"price" binding:"min=0"`
	Stock    int     `json:"stock" form:"stock" binding:"min=0"`
	Image    string  `json:"image" form:"-"` // data URI, JSON only
}

type InventoryController struct {
	ledger *services.Ledger
}

func NewInventoryController(ledger *services.Ledger) *InventoryController {
	return &InventoryController{ledger: ledger}
}

// GetItems retrieves the full inventory in display order, oldest first.
func (ctl *InventoryController) GetItems(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.ledger.Items())
}

// CreateItem adds a new product. With a multipart form the image file is
// read and encoded inline before the ledger is touched, so the attachment
// can never trail the submission it belongs to.
func (ctl *InventoryController) CreateItem(c *gin.Context) {
	var input CreateItemInput

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
		image, err := readImageFile(c)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		input.Image = image
	} else {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
	}

	item, err := ctl.ledger.AddItem(input.Name, input.Category, input.Price, input.Stock, input.Image)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// DeleteItem removes a product after the confirmation gate.
func (ctl *InventoryController) DeleteItem(c *gin.Context) {
	if !requireConfirmation(c) {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid item ID format")
		return
	}

	if err := ctl.ledger.DeleteItem(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// readImageFile reads an optional "image" upload and returns it as a data
// URI. Oversized files are refused before any bytes are encoded; a form
// without an image returns the empty string so the placeholder applies.
func readImageFile(c *gin.Context) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", fmt.Errorf("%w: could not read image", services.ErrInvalidInput)
	}

	if fh.Size > models.MaxImageBytes {
		return "", services.ErrImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: could not open image", services.ErrInvalidInput)
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, models.MaxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: could not read image", services.ErrInvalidInput)
	}
	if len(raw) > models.MaxImageBytes {
		return "", services.ErrImageTooLarge
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
