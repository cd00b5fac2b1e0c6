package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	userdomain "github.com/metermint/metermint/internal/user/domain"
)

type createUserRequest struct {
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	Company       *string `json:"company"`
	Location      *string `json:"location"`
	SocialProfile *string `json:"social_profile"`
}

func (s *Server) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	u, err := s.userSvc.Create(c.Request.Context(), userdomain.CreateRequest{
		Username:      strings.TrimSpace(req.Username),
		Email:         strings.TrimSpace(req.Email),
		Company:       req.Company,
		Location:      req.Location,
		SocialProfile: req.SocialProfile,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

func (s *Server) ListUserOrganizations(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	rows, err := s.querySvc.OrganizationsOfUser(c.Request.Context(), userID, queryColumns(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}
