package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/metermint/metermint/internal/accesskey"
	accesskeydomain "github.com/metermint/metermint/internal/accesskey/domain"
	"github.com/metermint/metermint/internal/clock"
	"github.com/metermint/metermint/internal/config"
	"github.com/metermint/metermint/internal/idgen"
	"github.com/metermint/metermint/internal/keycodec"
	"github.com/metermint/metermint/internal/ledger"
	ledgerdomain "github.com/metermint/metermint/internal/ledger/domain"
	obsmetrics "github.com/metermint/metermint/internal/observability/metrics"
	"github.com/metermint/metermint/internal/organization"
	organizationdomain "github.com/metermint/metermint/internal/organization/domain"
	"github.com/metermint/metermint/internal/query"
	querydomain "github.com/metermint/metermint/internal/query/domain"
	"github.com/metermint/metermint/internal/user"
	userdomain "github.com/metermint/metermint/internal/user/domain"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	clock.Module,
	idgen.Module,
	keycodec.Module,
	obsmetrics.Module,
	organization.Module,
	user.Module,
	accesskey.Module,
	ledger.Module,
	query.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin() *gin.Engine {
	return NewEngine()
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	db              *gorm.DB
	organizationSvc organizationdomain.Service
	userSvc         userdomain.Service
	accessKeySvc    accesskeydomain.Service
	ledgerSvc       ledgerdomain.Service
	querySvc        querydomain.Service
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	DB              *gorm.DB
	OrganizationSvc organizationdomain.Service
	UserSvc         userdomain.Service
	AccessKeySvc    accesskeydomain.Service
	LedgerSvc       ledgerdomain.Service
	QuerySvc        querydomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		db:              p.DB,
		organizationSvc: p.OrganizationSvc,
		userSvc:         p.UserSvc,
		accessKeySvc:    p.AccessKeySvc,
		ledgerSvc:       p.LedgerSvc,
		querySvc:        p.QuerySvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	v1 := s.engine.Group("/v1")

	// -------- Organizations --------
	v1.POST("/organizations", s.CreateOrganization)
	v1.POST("/organizations/:org_id/users", s.AddMember)
	v1.PATCH("/organizations/:org_id/users/:user_id", s.UpdateMemberRole)
	v1.GET("/organizations/:org_id/users", s.ListOrganizationUsers)
	v1.GET("/organizations/:org_id/access_keys", s.ListOrganizationAccessKeys)

	// -------- Users --------
	v1.POST("/users", s.CreateUser)
	v1.GET("/users/:user_id/organizations", s.ListUserOrganizations)

	// -------- Access keys --------
	v1.POST("/organizations/:org_id/users/:user_id/access_keys", s.IssueAccessKey)
	v1.DELETE("/access_keys/:key_id", s.RevokeAccessKey)

	// -------- Ledger --------
	v1.POST("/transactions", s.IngestTransactions)
	v1.POST("/payments", s.RecordPayment)
	v1.POST("/balances/calculate", s.CalculateBalances)
}
