package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// mw runs before every route, typically the rate limiter.
func RegisterRoutes(r gin.IRouter, h Handler, mw ...gin.HandlerFunc) {
	rec := r.Group("/recommendation", mw...)
	{
		rec.POST("/recommend", h.Recommend)
	}

	df := r.Group("/structured_data/dataframe", mw...)
	{
		df.POST("/generation", h.GenerateDataFrame)
		df.POST("/download", h.DownloadDataFrame)
	}
}
