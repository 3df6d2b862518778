package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	signupAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipebook_signup_attempts_total",
		Help: "Number of signup attempts grouped by status.",
	}, []string{"status"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipebook_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	logoutEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipebook_logout_events_total",
		Help: "Number of logout attempts grouped by status.",
	}, []string{"status"})

	recipeCreates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recipebook_recipe_creates_total",
		Help: "Number of recipe creation attempts grouped by status.",
	}, []string{"status"})
)

// IncSignup increments the signup counter.
func IncSignup(status string) {
	signupAttempts.WithLabelValues(status).Inc()
}

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncLogout increments the logout counter.
func IncLogout(status string) {
	logoutEvents.WithLabelValues(status).Inc()
}

// IncRecipeCreate increments the recipe creation counter.
func IncRecipeCreate(status string) {
	recipeCreates.WithLabelValues(status).Inc()
}
