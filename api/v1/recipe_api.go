package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipebook/api/v1/request"
	"recipebook/api/v1/response"
	"recipebook/dao"
	"recipebook/internal/metrics"
	"recipebook/internal/validator"
	"recipebook/service"
)

// RecipeAPI exposes the recipe listing and creation handlers. Both run
// behind SessionAuth.
type RecipeAPI struct {
	service *service.RecipeService
}

// NewRecipeAPI wires the service layer into the HTTP handlers.
func NewRecipeAPI(s *service.RecipeService) *RecipeAPI {
	return &RecipeAPI{service: s}
}

// Index lists every recipe with its owner nested.
func (r *RecipeAPI) Index(c *gin.Context) {
	recipes, err := r.service.ListRecipes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, response.NewRecipes(recipes))
}

// Create validates and persists a recipe owned by the session user.
func (r *RecipeAPI) Create(c *gin.Context) {
	var req request.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncRecipeCreate("validation_failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Title, instructions, and minutes_to_complete are required"})
		return
	}

	recipe, err := r.service.CreateRecipe(c.GetUint64("user_id"), service.CreateRecipeInput{
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
	})
	if err != nil {
		var verr *validator.ValidationError
		switch {
		case errors.As(err, &verr):
			metrics.IncRecipeCreate("validation_failed")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verr.Message})
		case errors.Is(err, dao.ErrConstraintViolated):
			metrics.IncRecipeCreate("conflict")
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to create recipe due to database constraints"})
		default:
			metrics.IncRecipeCreate("internal_error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	metrics.IncRecipeCreate("success")
	c.JSON(http.StatusCreated, response.NewRecipe(recipe))
}
