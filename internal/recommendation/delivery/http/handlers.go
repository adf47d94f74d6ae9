package http

import (
	"github.com/gin-gonic/gin"

	"project-planner/pkg/response"
)

// Recommend godoc
// @Summary     Generate a project recommendation
// @Description Sends the user's input, together with their recent conversation, to the model and returns the generated project plan text.
// @Tags        Recommendation
// @Accept      json
// @Produce     json
// @Param       body body recommendReq true "User input"
// @Success     200  {object} recommendResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Generation failed"
// @Router      /recommendation/recommend [POST]
func (h *handler) Recommend(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecommendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Recommend(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "%s.Recommend: uc.Recommend: %v", logPrefix, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRecommendResp(output))
}

// GenerateDataFrame godoc
// @Summary     Extract a structured project plan
// @Description Converts the user's latest recommendation into structured project data (phases, tasks, MM/DD/YYYY dates).
// @Tags        Structured Data
// @Accept      json
// @Produce     json
// @Param       user_id query string true "User ID"
// @Success     200 {object} generateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No recommendation found for the user"
// @Failure     500 {object} response.Resp "Extraction failed"
// @Router      /structured_data/dataframe/generation [POST]
func (h *handler) GenerateDataFrame(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "%s.GenerateDataFrame: uc.Extract: %v", logPrefix, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateResp(output))
}

// DownloadDataFrame godoc
// @Summary     Download structured data
// @Description Placeholder kept for client compatibility.
// @Tags        Structured Data
// @Produce     json
// @Success     200 {object} messageResp
// @Router      /structured_data/dataframe/download [POST]
func (h *handler) DownloadDataFrame(c *gin.Context) {
	response.OK(c, messageResp{Message: "DataFrame downloaded"})
}
