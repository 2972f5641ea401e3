package router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenbook/internal/dto"
	"greenbook/internal/pkg/config"
	"greenbook/internal/pkg/jwt"
	"greenbook/pkg/constants"
	pkgErrors "greenbook/pkg/errors"
	"greenbook/pkg/utils"
)

// stubProjects 按预设返回的项目服务
type stubProjects struct {
	createErr error
	keyResp   *dto.ProjectResponse
	keyErr    error
	callerID  string
}

func (s *stubProjects) Create(_ context.Context, userID string, req *dto.ProjectCreateRequest) (*dto.ProjectResponse, error) {
	s.callerID = userID
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &dto.ProjectResponse{ID: "p-1", ClientID: req.ClientID, Name: req.Name, Status: "NOT_DEPLOYED"}, nil
}

func (s *stubProjects) Get(string, string) (*dto.ProjectResponse, error) {
	return nil, pkgErrors.ErrNoAccess
}

func (s *stubProjects) List(string, *dto.ProjectListQuery) ([]*dto.ProjectResponse, int64, error) {
	return []*dto.ProjectResponse{}, 0, nil
}

func (s *stubProjects) Update(string, string, *dto.ProjectUpdateRequest) (*dto.ProjectResponse, error) {
	return nil, pkgErrors.NotFound("项目不存在")
}

func (s *stubProjects) UpdateStatus(string, string, *dto.ProjectStatusRequest) (*dto.ProjectResponse, error) {
	return nil, pkgErrors.ErrNoAccess
}

func (s *stubProjects) Delete(string, string) error { return nil }

func (s *stubProjects) UpdateBuilderKey(context.Context, string, string, *dto.ProjectBuilderKeyRequest) (*dto.ProjectResponse, error) {
	return s.keyResp, s.keyErr
}

const (
	testClientID  = "0b0c3b5e-6f1e-4b59-9a44-1f3f1f3c2a10"
	testProjectID = "5a8f2c1d-3e4b-4c5d-8e9f-0a1b2c3d4e5f"
)

func setupRouter(t *testing.T, projects *stubProjects) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Auth: config.AuthConfig{JWT: config.JWTConfig{
		Secret:             "router-secret",
		AccessTokenExpire:  60,
		RefreshTokenExpire: 120,
	}}}
	prev := config.GlobalConfig
	config.GlobalConfig = cfg
	t.Cleanup(func() { config.GlobalConfig = prev })

	token, err := jwt.GenerateAccessToken("u-1", "ann@example.com", "Ann", constants.AuthTypeLocal)
	require.NoError(t, err)

	return New(cfg, Services{Project: projects}), token
}

func do(r *gin.Engine, method, path, token, body string) (*httptest.ResponseRecorder, utils.Response) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(constants.HeaderAuthorization, constants.HeaderBearerPrefix+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	r, _ := setupRouter(t, &stubProjects{})

	w, resp := do(r, http.MethodGet, "/api/v1/projects", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, pkgErrors.CodeUnauthorized, resp.Code)

	w, _ = do(r, http.MethodGet, "/api/v1/projects", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshTokenCannotCallAPI(t *testing.T) {
	r, _ := setupRouter(t, &stubProjects{})
	refresh, err := jwt.GenerateRefreshToken("u-1", "ann@example.com", "Ann", constants.AuthTypeLocal)
	require.NoError(t, err)

	w, _ := do(r, http.MethodGet, "/api/v1/projects", refresh, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProjectPassesCaller(t *testing.T) {
	projects := &stubProjects{}
	r, token := setupRouter(t, projects)

	w, resp := do(r, http.MethodPost, "/api/v1/projects", token, `{"name":"Acme Site","client_id":"`+testClientID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pkgErrors.CodeSuccess, resp.Code)
	assert.Equal(t, "u-1", projects.callerID)
}

func TestCreateProjectBindingError(t *testing.T) {
	r, token := setupRouter(t, &stubProjects{})

	w, resp := do(r, http.MethodPost, "/api/v1/projects", token, `{"client_id":"`+testClientID+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, resp.Detail)
}

func TestProvisioningFailureHidesDetail(t *testing.T) {
	projects := &stubProjects{
		createErr: pkgErrors.Provisioning("仓库创建失败", io.ErrUnexpectedEOF),
	}
	r, token := setupRouter(t, projects)

	w, resp := do(r, http.MethodPost, "/api/v1/projects", token, `{"name":"Acme Site","client_id":"`+testClientID+`"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, pkgErrors.ErrInternalError.Message, resp.Message)
	assert.NotContains(t, w.Body.String(), "unexpected EOF")
	assert.NotContains(t, w.Body.String(), "仓库创建失败")
}

func TestErrorStatusMapping(t *testing.T) {
	r, token := setupRouter(t, &stubProjects{})

	w, _ := do(r, http.MethodGet, "/api/v1/projects/"+testProjectID, token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(r, http.MethodPut, "/api/v1/projects/"+testProjectID, token, `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(r, http.MethodGet, "/api/v1/projects/not-a-uuid", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBuilderKeySyncFailureReturnsSavedProject(t *testing.T) {
	key := "pub-2"
	projects := &stubProjects{
		keyResp: &dto.ProjectResponse{ID: testProjectID, BuilderPublicKey: &key},
		keyErr:  pkgErrors.Integration("写入仓库配置失败", io.ErrUnexpectedEOF),
	}
	r, token := setupRouter(t, projects)

	w, resp := do(r, http.MethodPatch, "/api/v1/projects/"+testProjectID+"/builder-key", token, `{"builder_public_key":"pub-2"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, pkgErrors.CodeIntegrationError, resp.Code)
	assert.Contains(t, w.Body.String(), `"builder_public_key":"pub-2"`)
	assert.NotContains(t, w.Body.String(), "unexpected EOF")
}

func TestHealthAndMetrics(t *testing.T) {
	r, token := setupRouter(t, &stubProjects{})
	do(r, http.MethodGet, "/api/v1/projects", token, "")

	w, _ := do(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(r, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "greenbook_http_requests_total")
}
