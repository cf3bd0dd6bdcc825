package controllers

import (
	"net/http"

	"ArogyaMCVK/services"
	"ArogyaMCVK/util"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Auth(router *gin.Engine) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", Register)
		auth.POST("/login", Login)
	}
}

/*
* Bind the registration fields, if any error return error
* And if no error moves to services
 */
func Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.ErrsBody("Invalid request body."))
		return
	}

	user, token, err := services.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		util.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
		"msg":   "User registered successfully.",
	})
}

/*
* Bind the login fields, if any error return error
* If no error, pass to the services
 */
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.ErrsBody("Invalid request body."))
		return
	}

	user, token, err := services.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		util.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
		"msg":   "Logged in successfully.",
	})
}
