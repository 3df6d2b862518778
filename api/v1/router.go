package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter registers every endpoint on a fresh engine. The sessionAuth
// middleware gates the protected routes; signup, login and logout manage
// the session themselves.
func SetupRouter(userAPI *UserAPI, recipeAPI *RecipeAPI, sessionAuth gin.HandlerFunc) *gin.Engine {
	r := gin.Default()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/signup", userAPI.Signup)
	r.POST("/login", userAPI.Login)
	r.DELETE("/logout", userAPI.Logout)

	authed := r.Group("", sessionAuth)
	{
		authed.GET("/check_session", userAPI.CheckSession)
		authed.GET("/recipes", recipeAPI.Index)
		authed.POST("/recipes", recipeAPI.Create)
	}
	return r
}
