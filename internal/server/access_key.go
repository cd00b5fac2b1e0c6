package server

import (
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

type issueAccessKeyRequest struct {
	Name *string `json:"name"`
}

func (s *Server) IssueAccessKey(c *gin.Context) {
	orgID, ok := pathID(c, "org_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req issueAccessKeyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
	}

	key, secret, err := s.accessKeySvc.Issue(c.Request.Context(), userID, orgID, req.Name)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// The secret appears in this response and nowhere else; only its hash
	// is stored.
	c.JSON(http.StatusCreated, gin.H{
		"id":          key.ID,
		"name":        key.Name,
		"thumbnail":   key.Thumbnail,
		"create_time": key.CreateTime,
		"org_id":      key.OrgID,
		"user_id":     key.UserID,
		"secret":      secret,
	})
}

func (s *Server) RevokeAccessKey(c *gin.Context) {
	keyID, err := snowflake.ParseString(strings.TrimSpace(c.Param("key_id")))
	if err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.accessKeySvc.Revoke(c.Request.Context(), keyID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": keyID, "revoked": true})
}

func (s *Server) ListOrganizationAccessKeys(c *gin.Context) {
	orgID, ok := pathID(c, "org_id")
	if !ok {
		return
	}

	keys, err := s.accessKeySvc.ListValid(c.Request.Context(), orgID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": keys})
}
