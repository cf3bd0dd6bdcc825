package main

import (
	"testing"

	"ArogyaMCVK/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRunWithoutServer(t *testing.T) {
	isTest = true
	defer func() { isTest = false }()

	gin.SetMode(gin.TestMode)
	main()
	run()
}

func TestRoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.Routes(r)

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /",
		"POST /auth/register",
		"POST /auth/login",
		"GET /patients",
		"POST /patients",
		"GET /patients/:id",
		"PUT /patients/:id",
		"DELETE /patients/:id",
	} {
		assert.True(t, registered[want], want)
	}
}
