package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/dto"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/http/middleware"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/model"
)

func currentUser(c *gin.Context) *model.User {
	return middleware.GetUser(c.Request.Context())
}

// pathID parses a path parameter, writing a 400 when it is not a valid id.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := dto.ParseID(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name, "code": "invalid_input"})
		return 0, false
	}
	return id, true
}

func queryID(c *gin.Context, name string) (*int64, bool) {
	id, err := dto.ParseOptionalID(c.Query(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return nil, false
	}
	return id, true
}

func queryInt32(c *gin.Context, name string) (int32, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || n < 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return int32(n), true
}

func queryTime(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		badRequest(c, "invalid "+name+": expected RFC3339")
		return nil, false
	}
	return &t, true
}

func queryBool(c *gin.Context, name string) bool {
	b, _ := strconv.ParseBool(c.Query(name))
	return b
}

func queryString(c *gin.Context, name string) *string {
	if raw := c.Query(name); raw != "" {
		return &raw
	}
	return nil
}
