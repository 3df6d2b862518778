package request

// CreateRecipeRequest uses a pointer for minutes_to_complete so a missing
// field is distinguishable from an explicit zero.
type CreateRecipeRequest struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
}
