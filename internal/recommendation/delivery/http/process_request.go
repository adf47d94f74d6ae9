package http

import (
	"github.com/gin-gonic/gin"
)

// processRecommendReq binds and validates the recommend request body.
func (h *handler) processRecommendReq(c *gin.Context) (recommendReq, error) {
	var req recommendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "%s: ShouldBindJSON: %v", logPrefix, err)
		return req, errWrongBody
	}
	return req, req.validate()
}

// processGenerateReq binds and validates the user_id query parameter.
func (h *handler) processGenerateReq(c *gin.Context) (generateReq, error) {
	var req generateReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errEmptyUserID
	}
	return req, req.validate()
}
