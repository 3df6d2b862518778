package dao

import (
	"recipebook/model"

	"gorm.io/gorm"
)

type RecipeDAO struct {
	db *gorm.DB
}

// NewRecipeDAO creates a new RecipeDAO instance.
func NewRecipeDAO(db *gorm.DB) *RecipeDAO {
	return &RecipeDAO{db: db}
}

// CreateRecipe inserts a recipe and materializes its owner inside one
// transaction. Constraint failures (missing owner, schema checks) roll
// back and surface as ErrConstraintViolated.
func (dao *RecipeDAO) CreateRecipe(recipe *model.Recipe) error {
	err := dao.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		return tx.Preload("User").First(recipe, recipe.ID).Error
	})
	return classify(err)
}

// ListWithOwners returns all recipes with their owning user's fields
// loaded, batched in two queries rather than one per row.
func (dao *RecipeDAO) ListWithOwners() ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := dao.db.Preload("User").Order("id").Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Count returns the total number of recipe rows.
func (dao *RecipeDAO) Count() (int64, error) {
	var count int64
	err := dao.db.Model(&model.Recipe{}).Count(&count).Error
	return count, err
}
