package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	organizationdomain "github.com/metermint/metermint/internal/organization/domain"
)

type createOrganizationRequest struct {
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
	Currency    string `json:"currency"`
}

func (s *Server) CreateOrganization(c *gin.Context) {
	var req createOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	org, err := s.organizationSvc.Create(c.Request.Context(), organizationdomain.CreateRequest{
		Name:        strings.TrimSpace(req.Name),
		CountryCode: strings.TrimSpace(req.CountryCode),
		Currency:    strings.TrimSpace(req.Currency),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, org)
}

type addMemberRequest struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

func (s *Server) AddMember(c *gin.Context) {
	orgID, ok := pathID(c, "org_id")
	if !ok {
		return
	}

	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = organizationdomain.RoleMember
	}

	if err := s.organizationSvc.AddMember(c.Request.Context(), orgID, req.UserID, role); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"org_id": orgID, "user_id": req.UserID, "role": role})
}

type updateMemberRoleRequest struct {
	Role string `json:"role"`
}

func (s *Server) UpdateMemberRole(c *gin.Context) {
	orgID, ok := pathID(c, "org_id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req updateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	role := strings.TrimSpace(req.Role)
	if err := s.organizationSvc.UpdateMemberRole(c.Request.Context(), orgID, userID, role); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"org_id": orgID, "user_id": userID, "role": role})
}

func (s *Server) ListOrganizationUsers(c *gin.Context) {
	orgID, ok := pathID(c, "org_id")
	if !ok {
		return
	}

	rows, err := s.querySvc.UsersOfOrganization(c.Request.Context(), orgID, queryColumns(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// pathID parses a decimal path parameter; on failure it aborts with a
// validation error and reports false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		AbortWithError(c, ErrInvalidRequest)
		return 0, false
	}
	return id, true
}

func queryColumns(c *gin.Context) []string {
	raw := strings.TrimSpace(c.Query("columns"))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	columns := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			columns = append(columns, p)
		}
	}
	return columns
}
