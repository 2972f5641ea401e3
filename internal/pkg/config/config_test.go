package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenbook/pkg/constants"
)

const minimalYAML = `
auth:
  jwt:
    secret: s
git:
  template_owner: acme
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadReadsSecretsFromEnv(t *testing.T) {
	t.Setenv("GIT_TOKEN", "ghp_x")
	t.Setenv("BUILDER_PRIVATE_KEY", "bpk_x")
	t.Setenv("BUILDER_TEMPLATE_SPACE_ID", "tpl_1")
	t.Setenv("PROVISION_SETTLE_DELAY", "250ms")

	cfg, err := Load(writeConfig(t, minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "ghp_x", cfg.Git.Token)
	assert.Equal(t, "bpk_x", cfg.Builder.PrivateKey)
	assert.Equal(t, "tpl_1", cfg.Builder.TemplateSpaceID)
	assert.Equal(t, 250*time.Millisecond, cfg.Provision.GetSettleDelay())
	assert.Equal(t, "nextjs-boilerplate", cfg.Git.TemplateRepo)
	assert.Equal(t, "https://cdn.builder.io/api/v2/admin", cfg.Builder.AdminURL)
	assert.Equal(t, constants.DefaultRepoPrefix, cfg.Provision.GetRepoPrefix())
	assert.Equal(t, 5, cfg.Provision.GetMaxNameAttempts())
}

func TestLoadFailsWithoutSecrets(t *testing.T) {
	t.Setenv("GIT_TOKEN", "")
	t.Setenv("BUILDER_PRIVATE_KEY", "")

	_, err := Load(writeConfig(t, minimalYAML))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git.token")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Auth:     AuthConfig{JWT: JWTConfig{Secret: "s"}},
			Database: DatabaseConfig{Driver: constants.DriverPostgres},
			Git:      GitConfig{Platform: constants.GitTypeGitea, Token: "t", Org: "acme"},
			Builder:  BuilderConfig{PrivateKey: "k", TemplateSpaceID: "tpl"},
		}
	}

	require.NoError(t, valid().Validate())

	c := valid()
	c.Builder.TemplateSpaceID = ""
	assert.ErrorContains(t, c.Validate(), "template_space_id")

	c = valid()
	c.Git.Platform = "gitlab"
	assert.ErrorContains(t, c.Validate(), "gitlab")

	c = valid()
	c.Database.Driver = "sqlite"
	assert.ErrorContains(t, c.Validate(), "sqlite")
}

func TestGetDSN(t *testing.T) {
	my := DatabaseConfig{Driver: constants.DriverMySQL, Host: "h", Port: 3306, Database: "d", Username: "u", Password: "p"}
	assert.Equal(t, "u:p@tcp(h:3306)/d?charset=utf8mb4&parseTime=True&loc=Local", my.GetDSN())

	pg := DatabaseConfig{Driver: constants.DriverPostgres, Host: "h", Port: 5432, Database: "d", Username: "u", Password: "p"}
	assert.Equal(t, "host=h port=5432 user=u password=p dbname=d sslmode=disable", pg.GetDSN())
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Second, (&ProvisionConfig{SettleDelay: "soon"}).GetSettleDelay())
	assert.Equal(t, time.Duration(0), (&ProvisionConfig{SettleDelay: "0s"}).GetSettleDelay())
}
