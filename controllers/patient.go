package controllers

import (
	"net/http"

	"ArogyaMCVK/middleware"
	"ArogyaMCVK/models"
	"ArogyaMCVK/services"
	"ArogyaMCVK/util"

	"github.com/gin-gonic/gin"
)

func Patients(router *gin.Engine) {
	patients := router.Group("/patients")
	patients.Use(middleware.RequireAuth(services.FetchUserByID), middleware.RequireRoles(models.RoleAdmin))
	{
		patients.GET("", ListPatients)
		patients.POST("", CreatePatient)
		patients.GET("/:id", FetchPatient)
		patients.PUT("/:id", UpdatePatient)
		patients.DELETE("/:id", DeletePatient)
	}
}

func ListPatients(c *gin.Context) {
	patients, err := services.FetchAllPatients(c.Request.Context(), c.Query("search"))
	if err != nil {
		util.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

func CreatePatient(c *gin.Context) {
	body := make(map[string]interface{})
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, util.ErrsBody("Invalid request body."))
		return
	}

	patient, err := services.CreatePatient(c.Request.Context(), body)
	if err != nil {
		util.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func FetchPatient(c *gin.Context) {
	patient, err := services.FetchPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func UpdatePatient(c *gin.Context) {
	body := make(map[string]interface{})
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, util.ErrsBody("Invalid request body."))
		return
	}

	patient, err := services.UpdatePatient(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		util.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

func DeletePatient(c *gin.Context) {
	msg, err := services.DeletePatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		util.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, util.MsgBody(msg))
}
