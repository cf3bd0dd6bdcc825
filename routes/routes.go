package routes

import (
	"net/http"

	"ArogyaMCVK/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	// health check
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Arogya@MCVK API is running...")
	})

	// public
	controllers.Auth(r)

	// admin-only patient records
	controllers.Patients(r)
}
