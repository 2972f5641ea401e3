package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"greenbook/internal/api/handler"
	"greenbook/internal/api/middleware"
	"greenbook/internal/pkg/config"
	"greenbook/internal/pkg/metrics"
	"greenbook/internal/repository"
	"greenbook/internal/service"
)

// Setup 设置路由
func Setup(cfg *config.Config, db *gorm.DB, automation service.ProjectAutomation) *gin.Engine {
	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	clientUserRepo := repository.NewClientUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	// 初始化Service
	authz := service.NewAuthorizationService(clientUserRepo)
	ldapService := service.NewLDAPService(&cfg.Auth.LDAP)

	return New(cfg, Services{
		Auth:    service.NewAuthService(&cfg.Auth, userRepo, clientUserRepo, ldapService),
		User:    service.NewUserService(userRepo),
		Client:  service.NewClientService(clientRepo, projectRepo, authz),
		Member:  service.NewClientUserService(clientUserRepo, userRepo, authz),
		Project: service.NewProjectService(projectRepo, clientUserRepo, authz, automation),
	})
}

// Services 路由依赖的业务服务
type Services struct {
	Auth    service.AuthService
	User    service.UserService
	Client  service.ClientService
	Member  service.ClientUserService
	Project service.ProjectService
}

// New 用给定的服务构建路由
func New(cfg *config.Config, svc Services) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger API 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 初始化Handler
	authHandler := handler.NewAuthHandler(svc.Auth)
	userHandler := handler.NewUserHandler(svc.User)
	clientHandler := handler.NewClientHandler(svc.Client)
	memberHandler := handler.NewClientMemberHandler(svc.Member)
	projectHandler := handler.NewProjectHandler(svc.Project)

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 认证相关(无需token)
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		// 需要认证的路由
		authed := v1.Group("")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.GET("/auth/me", authHandler.GetMe)
			authed.PUT("/users/me", userHandler.UpdateMe)

			// 客户管理
			clients := authed.Group("/clients")
			{
				clients.POST("", clientHandler.Create)                   // 创建客户, 创建者成为 ADMIN
				clients.GET("", clientHandler.List)                      // 我所属的客户
				clients.GET("/:id", clientHandler.Get)                   // 客户详情
				clients.PUT("/:id", clientHandler.Update)                // 更新客户 (ADMIN)
				clients.DELETE("/:id", clientHandler.Delete)             // 删除客户及项目 (ADMIN)
				clients.GET("/:id/projects", clientHandler.ListProjects) // 客户下的项目

				// 成员管理
				clients.GET("/:id/members", memberHandler.ListMembers)
				clients.POST("/:id/members", memberHandler.AddMember)
				clients.PUT("/:id/members/:userId", memberHandler.UpdateRole)
				clients.DELETE("/:id/members/:userId", memberHandler.RemoveMember)
			}

			// 项目管理
			projects := authed.Group("/projects")
			{
				projects.POST("", projectHandler.Create)                            // 创建项目 (仓库 + CMS 空间)
				projects.GET("", projectHandler.List)                               // 列表查询
				projects.GET("/:id", projectHandler.Get)                            // 获取详情
				projects.PUT("/:id", projectHandler.Update)                         // 更新名称/描述
				projects.PATCH("/:id/status", projectHandler.UpdateStatus)          // 更新部署状态 (ADMIN)
				projects.PATCH("/:id/builder-key", projectHandler.UpdateBuilderKey) // 更新公钥并同步仓库
				projects.DELETE("/:id", projectHandler.Delete)                      // 删除项目 (ADMIN)
			}
		}
	}

	return r
}
