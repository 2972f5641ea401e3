package automation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenbook/internal/model"
	pkgErrors "greenbook/pkg/errors"
)

type stack struct {
	host     *fakeHost
	admin    *fakeAdmin
	projects *fakeProjects
	writer   *recordingWriter
	auto     *Automation
}

func newStack(t *testing.T) *stack {
	t.Helper()
	host := newFakeHost()
	host.addTemplateFile("tpl", "nextjs-boilerplate", "package.json", "{}")
	admin := &fakeAdmin{spaceID: "sp_1", publicKey: "pk_1"}
	projects := newFakeProjects()
	writer := &recordingWriter{}

	repos := NewRepositoryProvisioner(host, RepositoryOptions{
		Prefix:        "greenbook",
		TemplateOwner: "tpl",
		TemplateRepo:  "nextjs-boilerplate",
		SettleDelay:   time.Millisecond,
	}, nil)
	spaces := NewSpaceProvisioner(admin, "tpl_space", nil)

	return &stack{
		host:     host,
		admin:    admin,
		projects: projects,
		writer:   writer,
		auto:     New(repos, spaces, writer, projects, nil),
	}
}

func TestCreateProjectAcmeSite(t *testing.T) {
	s := newStack(t)

	project, err := s.auto.CreateProject(context.Background(), CreateProjectInput{
		Name:        "Acme Site",
		Description: "Marketing site",
		ClientID:    "c1",
	})
	require.NoError(t, err)

	assert.Equal(t, model.ProjectStatusNotDeployed, project.Status)
	assert.True(t, strings.HasSuffix(lo.FromPtr(project.RepositoryURL), "greenbook-acme-site"))
	assert.Equal(t, "sp_1", lo.FromPtr(project.BuilderSpaceID))
	assert.Equal(t, "pk_1", lo.FromPtr(project.BuilderPublicKey))
	assert.Equal(t, "c1", project.ClientID)
	assert.Equal(t, "Marketing site", lo.FromPtr(project.Description))
	require.Len(t, project.SeedReport, 1)
	assert.Equal(t, model.SeedCopied, project.SeedReport[0].Outcome)

	stored, err := s.projects.FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, "sp_1", lo.FromPtr(stored.BuilderSpaceID))
	assert.Empty(t, s.writer.calls)
}

func TestCreateProjectAbortsWhenTemplateUnreadable(t *testing.T) {
	s := newStack(t)
	s.host.listErr = errBoom

	project, err := s.auto.CreateProject(context.Background(), CreateProjectInput{Name: "Acme Site", ClientID: "c1"})
	require.Error(t, err)
	assert.Nil(t, project)
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeProvisioningError))
	assert.Empty(t, s.projects.rows)
	assert.Empty(t, s.admin.settings)
}

func TestCreateProjectKeepsEmptyPublicKey(t *testing.T) {
	s := newStack(t)
	s.admin.getErr = errBoom

	project, err := s.auto.CreateProject(context.Background(), CreateProjectInput{Name: "Acme Site", ClientID: "c1"})
	require.NoError(t, err)

	require.NotNil(t, project.BuilderPublicKey)
	assert.Equal(t, "", *project.BuilderPublicKey)
	assert.Nil(t, project.Description)
}

func TestCreateProjectSpaceFailureWritesNoRow(t *testing.T) {
	s := newStack(t)
	s.admin.createErr = errBoom

	_, err := s.auto.CreateProject(context.Background(), CreateProjectInput{Name: "Acme Site", ClientID: "c1"})
	require.Error(t, err)

	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeProvisioningError))
	assert.Empty(t, s.projects.rows)
}

func TestCreateProjectRepositoryFailureSkipsSpace(t *testing.T) {
	s := newStack(t)
	s.host.createErr = errBoom

	_, err := s.auto.CreateProject(context.Background(), CreateProjectInput{Name: "Acme Site", ClientID: "c1"})
	require.Error(t, err)

	assert.Empty(t, s.admin.settings)
	assert.Empty(t, s.projects.rows)
}

func TestCreateProjectPersistFailurePropagates(t *testing.T) {
	s := newStack(t)
	s.projects.createErr = pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "创建项目失败", errBoom)

	_, err := s.auto.CreateProject(context.Background(), CreateProjectInput{Name: "Acme Site", ClientID: "c1"})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeDatabaseError))
}

func seedProject(s *stack, repositoryURL *string) string {
	p := &model.Project{ClientID: "c1", Name: "Acme Site", RepositoryURL: repositoryURL, BuilderPublicKey: lo.ToPtr("pk_old")}
	_ = s.projects.Create(p)
	return p.ID
}

func TestUpdateBuilderKeyPushesToRepository(t *testing.T) {
	s := newStack(t)
	id := seedProject(s, lo.ToPtr("https://github.com/acme/greenbook-acme-site"))

	project, err := s.auto.UpdateBuilderKey(context.Background(), id, "pk_new")
	require.NoError(t, err)

	assert.Equal(t, "pk_new", lo.FromPtr(project.BuilderPublicKey))
	assert.Equal(t, []string{"https://github.com/acme/greenbook-acme-site#pk_new"}, s.writer.calls)
}

func TestUpdateBuilderKeyKeepsKeyWhenRepositoryWriteFails(t *testing.T) {
	s := newStack(t)
	s.writer.err = pkgErrors.Integration("写入仓库配置失败", errBoom)
	id := seedProject(s, lo.ToPtr("https://github.com/acme/greenbook-acme-site"))

	project, err := s.auto.UpdateBuilderKey(context.Background(), id, "pk_new")
	require.Error(t, err)
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeIntegrationError))
	require.NotNil(t, project)
	assert.Equal(t, "pk_new", lo.FromPtr(project.BuilderPublicKey))

	stored, err := s.projects.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, "pk_new", lo.FromPtr(stored.BuilderPublicKey))
}

func TestUpdateBuilderKeyWithoutRepositorySkipsWriter(t *testing.T) {
	s := newStack(t)
	s.writer.err = errBoom
	id := seedProject(s, nil)

	project, err := s.auto.UpdateBuilderKey(context.Background(), id, "pk_new")
	require.NoError(t, err)

	assert.Empty(t, s.writer.calls)
	assert.Equal(t, "pk_new", lo.FromPtr(project.BuilderPublicKey))

	emptyURL := seedProject(s, lo.ToPtr(""))
	_, err = s.auto.UpdateBuilderKey(context.Background(), emptyURL, "pk_new")
	require.NoError(t, err)
	assert.Empty(t, s.writer.calls)
}

func TestUpdateBuilderKeyUnknownProject(t *testing.T) {
	s := newStack(t)

	_, err := s.auto.UpdateBuilderKey(context.Background(), "missing", "pk")
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeNotFound))
	assert.Empty(t, s.writer.calls)
}
