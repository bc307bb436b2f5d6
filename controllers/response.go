package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// failure writes the generic failure envelope and records err for the
// access log.
func failure(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":   http.StatusInternalServerError,
		"messages": err.Error(),
	})
}
