package http

import (
	"github.com/gin-gonic/gin"

	"project-planner/internal/recommendation"
	"project-planner/pkg/log"
)

// Handler is the public interface for the recommendation HTTP delivery layer.
type Handler interface {
	Recommend(c *gin.Context)
	GenerateDataFrame(c *gin.Context)
	DownloadDataFrame(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc recommendation.UseCase
}

// New creates a new HTTP handler for the recommendation domain.
func New(l log.Logger, uc recommendation.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
