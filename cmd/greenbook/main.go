package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"greenbook/internal/api/router"
	"greenbook/internal/core/automation"
	"greenbook/internal/pkg/builder"
	"greenbook/internal/pkg/config"
	"greenbook/internal/pkg/database"
	"greenbook/internal/pkg/git"
	"greenbook/internal/pkg/logger"
	"greenbook/internal/pkg/metrics"
	"greenbook/internal/repository"

	_ "greenbook/docs" // Swagger docs
)

// @title Greenbook API
// @version 1.0
// @description Greenbook 客户与项目管理 API 文档
// @description 创建项目时自动开通代码仓库和 Builder.io 空间

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var (
	configFile = flag.String("config", "", "配置文件路径 (例如: -config=configs/config.yaml)")
	envFile    = flag.String("env", ".env", "本地环境变量文件, 不存在时忽略")
	version    = flag.Bool("version", false, "显示版本信息")
)

const (
	appVersion = "1.0.0"
	appName    = "greenbook"
)

func main() {
	flag.Parse()

	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		os.Exit(0)
	}

	// init config logger
	var cfg *config.Config
	{
		// 本地开发时密钥放在 .env 中, 已存在的环境变量优先
		envLoaded := loadEnvFile(*envFile)

		configPath := getConfigPath()
		c, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("加载配置失败: %v\n", err)
			fmt.Println("\n使用方式:")
			fmt.Println("  1. 命令行参数指定:")
			fmt.Println("     ./greenbook -config=configs/config.yaml")
			fmt.Println("  2. 环境变量指定:")
			fmt.Println("     export CONFIG_FILE=configs/config.yaml")
			fmt.Println("     ./greenbook")
			fmt.Println("  3. 密钥通过环境变量提供:")
			fmt.Println("     GIT_TOKEN, BUILDER_PRIVATE_KEY, BUILDER_TEMPLATE_SPACE_ID")
			os.Exit(1)
		}
		cfg = c

		if err := logger.Init(&cfg.Log); err != nil {
			fmt.Printf("初始化日志失败: %v\n", err)
			os.Exit(1)
		}
		logger.Info(fmt.Sprintf("Load config file: %s of %s", configPath, getConfigSource()),
			zap.Bool("env_file_loaded", envLoaded))

		defer func() {
			_ = logger.Close()
		}()
	}

	logger.Info(fmt.Sprintf("服务 %s 启动中...", appName), zap.String("version", appVersion))

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("初始化数据库失败", zap.Error(err))
	}
	defer func() {
		_ = database.Close()
	}()
	logger.Info(fmt.Sprintf("数据库连接成功 %s:%v", cfg.Database.Host, cfg.Database.Port),
		zap.String("driver", cfg.Database.Driver),
		zap.String("database", cfg.Database.Database))

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(database.GetDB()); err != nil {
			logger.Fatal("数据库迁移失败", zap.Error(err))
		}
	}

	auto, err := newAutomation(cfg)
	if err != nil {
		logger.Fatal("初始化项目自动化失败", zap.Error(err))
	}

	r := router.Setup(cfg, database.GetDB(), auto)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logger.Info(fmt.Sprintf("%s 服务启动成功", cfg.Server.Name),
			zap.String("address", addr),
			zap.String("mode", cfg.Server.Mode),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("服务器启动失败", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("服务正在关闭...")

	// 正在进行的项目创建需要等待仓库初始化, 留足时间
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	logger.Info("服务已关闭")
}

// newAutomation 组装仓库, CMS 空间和配置写入三个步骤
func newAutomation(cfg *config.Config) (*automation.Automation, error) {
	provider, err := git.NewProvider(&cfg.Git)
	if err != nil {
		return nil, fmt.Errorf("创建代码托管平台客户端失败: %w", err)
	}
	cms, err := builder.NewClient(&cfg.Builder)
	if err != nil {
		return nil, fmt.Errorf("创建 Builder.io 客户端失败: %w", err)
	}

	m := automation.NewMetrics(metrics.Registry)
	repos := automation.NewRepositoryProvisioner(provider, automation.RepositoryOptionsFromConfig(&cfg.Git, &cfg.Provision), m)
	spaces := automation.NewSpaceProvisioner(cms, cfg.Builder.TemplateSpaceID, m)
	writer := automation.NewConfigWriter(provider, cfg.Builder.PrivateKey, m)

	logger.Info("项目自动化已就绪",
		zap.String("platform", string(provider.GetPlatformType())),
		zap.String("template", cfg.Git.TemplateOwnerOrOrg()+"/"+cfg.Git.TemplateRepo))

	return automation.New(repos, spaces, writer, repository.NewProjectRepository(database.GetDB()), m), nil
}

func loadEnvFile(path string) bool {
	if path == "" {
		return false
	}
	if _, err := os.Stat(path); err != nil {
		return false
	}
	if err := godotenv.Load(path); err != nil {
		fmt.Printf("读取 %s 失败: %v\n", path, err)
		return false
	}
	return true
}

// getConfigPath 获取配置文件路径
// 优先级: 命令行参数 > 环境变量 > 默认路径
func getConfigPath() string {
	if *configFile != "" {
		return *configFile
	}
	if envConfig := os.Getenv("CONFIG_FILE"); envConfig != "" {
		return envConfig
	}
	return "configs/config.yaml"
}

// getConfigSource 获取配置来源说明
func getConfigSource() string {
	if *configFile != "" {
		return "命令行参数"
	}
	if os.Getenv("CONFIG_FILE") != "" {
		return "环境变量"
	}
	return "默认配置"
}
