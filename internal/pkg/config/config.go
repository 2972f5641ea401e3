package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"greenbook/pkg/constants"
)

var GlobalConfig *Config

// Config 全局配置
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Git       GitConfig       `mapstructure:"git"`
	Builder   BuilderConfig   `mapstructure:"builder"`
	Provision ProvisionConfig `mapstructure:"provision"`
}

// ServerConfig 服务配置
type ServerConfig struct {
	Name string `mapstructure:"name"`
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"` // mysql, postgres
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Database        string `mapstructure:"database"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"ssl_mode"` // 仅 postgres
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
	LogLevel        string `mapstructure:"log_level"`         // SQL日志级别: silent/error/warn/info
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
}

// AuthConfig 认证配置
type AuthConfig struct {
	JWT   JWTConfig   `mapstructure:"jwt"`
	LDAP  LDAPConfig  `mapstructure:"ldap"`
	Local LocalConfig `mapstructure:"local"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	Secret             string `mapstructure:"secret"`
	AccessTokenExpire  int    `mapstructure:"access_token_expire"`  // 秒
	RefreshTokenExpire int    `mapstructure:"refresh_token_expire"` // 秒
}

// LDAPConfig LDAP配置
type LDAPConfig struct {
	Enabled      bool           `mapstructure:"enabled"`
	Host         string         `mapstructure:"host"`
	Port         int            `mapstructure:"port"`
	UseSSL       bool           `mapstructure:"use_ssl"`
	BindDN       string         `mapstructure:"bind_dn"`
	BindPassword string         `mapstructure:"bind_password"`
	BaseDN       string         `mapstructure:"base_dn"`
	UserFilter   string         `mapstructure:"user_filter"`
	Attributes   LDAPAttributes `mapstructure:"attributes"`
}

// LDAPAttributes LDAP属性映射
type LDAPAttributes struct {
	Username    string `mapstructure:"username"`
	Email       string `mapstructure:"email"`
	DisplayName string `mapstructure:"display_name"`
}

// LocalConfig 本地用户配置
type LocalConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`  // debug, info, warn, error
	Format   string `mapstructure:"format"` // json, console
	Output   string `mapstructure:"output"` // stdout, file
	FilePath string `mapstructure:"file_path"`
}

// GitConfig 代码托管平台配置
type GitConfig struct {
	Platform      string `mapstructure:"platform"` // github, gitea
	BaseURL       string `mapstructure:"base_url"` // API 地址, github 可留空
	Token         string `mapstructure:"token"`
	Org           string `mapstructure:"org"` // 新仓库所属组织, 为空时创建在 token 所属账号下
	TemplateOwner string `mapstructure:"template_owner"`
	TemplateRepo  string `mapstructure:"template_repo"`
	Timeout       string `mapstructure:"timeout"`
}

// BuilderConfig Builder.io 配置
type BuilderConfig struct {
	AdminURL        string `mapstructure:"admin_url"`
	APIURL          string `mapstructure:"api_url"`
	PrivateKey      string `mapstructure:"private_key"`
	TemplateSpaceID string `mapstructure:"template_space_id"`
	Timeout         string `mapstructure:"timeout"`
}

// ProvisionConfig 项目自动化配置
type ProvisionConfig struct {
	RepoPrefix      string `mapstructure:"repo_prefix"`
	MaxNameAttempts int    `mapstructure:"max_name_attempts"` // 含首次
	SettleDelay     string `mapstructure:"settle_delay"`      // 仓库创建后的等待时间
}

// Load 加载配置
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	// git.token -> GIT_TOKEN, builder.private_key -> BUILDER_PRIVATE_KEY
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	GlobalConfig = config

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.name", "greenbook")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", constants.DriverMySQL)
	v.SetDefault("database.log_level", "silent")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("auth.jwt.access_token_expire", 7200)
	v.SetDefault("auth.jwt.refresh_token_expire", 604800)
	v.SetDefault("auth.local.enabled", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("git.platform", constants.GitTypeGitHub)
	v.SetDefault("git.template_repo", "nextjs-boilerplate")
	v.SetDefault("git.timeout", "30s")
	v.SetDefault("builder.admin_url", "https://cdn.builder.io/api/v2/admin")
	v.SetDefault("builder.api_url", "https://api.builder.io")
	v.SetDefault("builder.timeout", "30s")
	v.SetDefault("provision.repo_prefix", constants.DefaultRepoPrefix)
	v.SetDefault("provision.max_name_attempts", constants.DefaultMaxNameAttempts)
	v.SetDefault("provision.settle_delay", "1s")

	// 未出现在配置文件中的密钥也要能从环境变量读取
	for _, key := range []string{"git.token", "git.org", "git.template_owner", "builder.private_key", "builder.template_space_id", "auth.jwt.secret"} {
		_ = v.BindEnv(key)
	}
}

// Validate 校验必填配置
func (c *Config) Validate() error {
	if c.Auth.JWT.Secret == "" {
		return fmt.Errorf("auth.jwt.secret 不能为空")
	}
	if c.Git.Token == "" {
		return fmt.Errorf("git.token 不能为空 (可通过环境变量 GIT_TOKEN 设置)")
	}
	if c.Git.TemplateOwner == "" && c.Git.Org == "" {
		return fmt.Errorf("git.template_owner 与 git.org 不能同时为空")
	}
	if c.Builder.PrivateKey == "" {
		return fmt.Errorf("builder.private_key 不能为空 (可通过环境变量 BUILDER_PRIVATE_KEY 设置)")
	}
	if c.Builder.TemplateSpaceID == "" {
		return fmt.Errorf("builder.template_space_id 不能为空 (可通过环境变量 BUILDER_TEMPLATE_SPACE_ID 设置)")
	}
	switch c.Git.Platform {
	case constants.GitTypeGitHub, constants.GitTypeGitea:
	default:
		return fmt.Errorf("不支持的代码托管平台: %s", c.Git.Platform)
	}
	switch c.Database.Driver {
	case constants.DriverMySQL, constants.DriverPostgres:
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", c.Database.Driver)
	}
	return nil
}

// TemplateOwnerOrOrg 模板仓库所属账号, 未配置时使用组织
func (c *GitConfig) TemplateOwnerOrOrg() string {
	if c.TemplateOwner != "" {
		return c.TemplateOwner
	}
	return c.Org
}

// GetSettleDelay 解析仓库创建后的等待时间
func (c *ProvisionConfig) GetSettleDelay() time.Duration {
	return parseDuration(c.SettleDelay, time.Second)
}

// GetMaxNameAttempts 最大命名尝试次数
func (c *ProvisionConfig) GetMaxNameAttempts() int {
	if c.MaxNameAttempts < 1 {
		return constants.DefaultMaxNameAttempts
	}
	return c.MaxNameAttempts
}

// GetRepoPrefix 仓库名前缀
func (c *ProvisionConfig) GetRepoPrefix() string {
	if c.RepoPrefix == "" {
		return constants.DefaultRepoPrefix
	}
	return c.RepoPrefix
}

// GetTimeout 解析 Git API 超时
func (c *GitConfig) GetTimeout() time.Duration {
	return parseDuration(c.Timeout, 30*time.Second)
}

// GetTimeout 解析 Builder API 超时
func (c *BuilderConfig) GetTimeout() time.Duration {
	return parseDuration(c.Timeout, 30*time.Second)
}

// GetDSN 获取数据库DSN
func (c *DatabaseConfig) GetDSN() string {
	if c.Driver == constants.DriverPostgres {
		sslMode := c.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host,
			c.Port,
			c.Username,
			c.Password,
			c.Database,
			sslMode,
		)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Username,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return fallback
	}
	return d
}
