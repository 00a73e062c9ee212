package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/irademos/ai-news-song/infrastructure/gin_interface/dto"
)

func abortWithError(c *gin.Context, status int, summary string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Error:   summary,
		Details: details,
	})
}
