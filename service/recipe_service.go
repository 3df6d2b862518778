package service

import (
	"recipebook/dao"
	"recipebook/internal/validator"
	"recipebook/model"
)

// CreateRecipeInput carries the recipe fields into the service layer.
// MinutesToComplete stays a pointer so an absent field is rejected while
// an explicit zero is accepted.
type CreateRecipeInput struct {
	Title             string
	Instructions      string
	MinutesToComplete *int
}

// RecipeService validates and persists recipes for authenticated users.
type RecipeService struct {
	dao *dao.RecipeDAO
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(dao *dao.RecipeDAO) *RecipeService {
	return &RecipeService{dao: dao}
}

// CreateRecipe validates the candidate and persists it for the owner.
// Validation runs before any database work; the schema enforces the same
// invariants again as a second layer.
func (s *RecipeService) CreateRecipe(userID uint64, in CreateRecipeInput) (*model.Recipe, error) {
	if err := validator.ValidateRecipe(validator.RecipeCandidate{
		Title:             in.Title,
		Instructions:      in.Instructions,
		MinutesToComplete: in.MinutesToComplete,
	}); err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		UserID:            userID,
		Title:             in.Title,
		Instructions:      in.Instructions,
		MinutesToComplete: *in.MinutesToComplete,
	}
	if err := s.dao.CreateRecipe(recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// ListRecipes returns every recipe with its owner loaded.
func (s *RecipeService) ListRecipes() ([]model.Recipe, error) {
	return s.dao.ListWithOwners()
}
