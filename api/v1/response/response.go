// Package response defines the serialization contracts. Anything not
// listed here, the password hash above all, never reaches a client.
package response

import "recipebook/model"

// User is the public view of an account.
type User struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

// Recipe is the public view of a recipe with its owner nested.
type Recipe struct {
	ID                uint64 `json:"id"`
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete int    `json:"minutes_to_complete"`
	User              User   `json:"user"`
}

func NewUser(u *model.User) User {
	return User{
		ID:       u.ID,
		Username: u.Username,
		ImageURL: u.ImageURL,
		Bio:      u.Bio,
	}
}

func NewRecipe(r *model.Recipe) Recipe {
	return Recipe{
		ID:                r.ID,
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
		User:              NewUser(&r.User),
	}
}

func NewRecipes(rs []model.Recipe) []Recipe {
	out := make([]Recipe, 0, len(rs))
	for i := range rs {
		out = append(out, NewRecipe(&rs[i]))
	}
	return out
}
