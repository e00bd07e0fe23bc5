package handlers

import (
	"net/http"

	"iscort/catalog"
	"iscort/models"

	"github.com/gin-gonic/gin"
)

// CitiesHandler returns the cities a listing may be published in.
func CitiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": catalog.Cities})
}

// CategoriesHandler returns the listing categories with display labels.
func CategoriesHandler(c *gin.Context) {
	type category struct {
		ID    string `json:"id"`
		Label string `json:"label"`
	}
	categories := []category{
		{ID: models.CategoryFemale, Label: models.CategoryLabel(models.CategoryFemale)},
		{ID: models.CategoryMale, Label: models.CategoryLabel(models.CategoryMale)},
		{ID: models.CategoryTrans, Label: models.CategoryLabel(models.CategoryTrans)},
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
