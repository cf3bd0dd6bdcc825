package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorBody(t *testing.T) {
	err := ValidationError("Patient name is required.", "Aadhar number is required.")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	body := err.Body()
	list, ok := body["errors"].([]gin.H)
	require.True(t, ok)
	require.Len(t, list, 2)
	assert.Equal(t, "Patient name is required.", list[0]["msg"])
}

func TestNotFoundErrorBody(t *testing.T) {
	err := NotFoundError("Patient not found.")

	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, gin.H{"msg": "Patient not found."}, err.Body())
}

func TestJSONErrorRendersAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	JSONError(c, ConflictError("Patient with this Aadhar No. already exists."))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "errors")
}

func TestJSONErrorHidesUnexpectedErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	JSONError(c, errors.New("connection refused: 10.0.0.3:27017"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Server Error.", body["msg"])
}
