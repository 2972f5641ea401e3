package constants

// 认证类型
const (
	AuthTypeLDAP  = "ldap"
	AuthTypeLocal = "local"
)

// Git 平台类型
const (
	GitTypeGitea  = "gitea"
	GitTypeGitHub = "github"
)

// 数据库驱动
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// JWT 相关
const (
	JWTTypeAccess  = "access"
	JWTTypeRefresh = "refresh"
)

// gin.Context 中保存的当前调用者信息
const (
	ContextKeyUser   = "user"
	ContextKeyUserID = "user_id"
	ContextKeyEmail  = "email"
)

// HTTP Header
const (
	HeaderAuthorization = "Authorization"
	HeaderBearerPrefix  = "Bearer "
)

// 项目自动化
const (
	DefaultRepoPrefix      = "greenbook"
	DefaultMaxNameAttempts = 5
	EnvFilePath            = ".env"
	SeedCommitMessage      = "Initial commit from boilerplate"
	EnvCommitMessage       = "Add Builder.io configuration"
)
