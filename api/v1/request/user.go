package request

// SignupRequest has no binding constraints on purpose: the entity
// validator produces the contractual 422 message for missing fields.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
