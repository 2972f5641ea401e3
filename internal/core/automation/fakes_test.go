package automation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"greenbook/internal/model"
	"greenbook/internal/pkg/builder"
	"greenbook/internal/pkg/git/api"
	pkgErrors "greenbook/pkg/errors"
)

// fakeHost 内存版代码托管平台
type fakeHost struct {
	mu sync.Mutex

	owner     string
	taken     map[string]bool
	createErr error
	attempts  []string

	listErr  error
	template []api.ContentEntry
	// key: owner/repo/path
	files  map[string]*api.FileContent
	getErr map[string]error
	putErr map[string]error
	puts   []api.PutFileOptions
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		owner:  "acme",
		taken:  map[string]bool{},
		files:  map[string]*api.FileContent{},
		getErr: map[string]error{},
		putErr: map[string]error{},
	}
}

func fileKey(owner, repo, path string) string {
	return owner + "/" + repo + "/" + path
}

func (h *fakeHost) addTemplateFile(owner, repo, path, content string) {
	h.template = append(h.template, api.ContentEntry{Name: path, Path: path, Type: api.EntryFile})
	h.files[fileKey(owner, repo, path)] = &api.FileContent{Path: path, SHA: "tpl-" + path, Content: []byte(content)}
}

func (h *fakeHost) CreateRepository(_ context.Context, opts api.CreateRepositoryOptions) (*api.RepositoryInfo, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.attempts = append(h.attempts, opts.Name)
	if h.createErr != nil {
		return nil, h.createErr
	}
	if h.taken[opts.Name] {
		return nil, api.ErrNameExists
	}
	h.taken[opts.Name] = true
	return &api.RepositoryInfo{
		Name:     opts.Name,
		FullName: h.owner + "/" + opts.Name,
		Owner:    h.owner,
		Private:  opts.Private,
		HTMLURL:  "https://github.com/" + h.owner + "/" + opts.Name,
	}, nil
}

func (h *fakeHost) ListContents(_ context.Context, _, _, _ string) ([]api.ContentEntry, error) {
	if h.listErr != nil {
		return nil, h.listErr
	}
	return h.template, nil
}

func (h *fakeHost) GetFile(_ context.Context, owner, repo, path string) (*api.FileContent, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	key := fileKey(owner, repo, path)
	if err := h.getErr[key]; err != nil {
		return nil, err
	}
	f, ok := h.files[key]
	if !ok {
		return nil, api.ErrNotFound
	}
	return f, nil
}

func (h *fakeHost) PutFile(_ context.Context, owner, repo string, opts api.PutFileOptions) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.putErr[opts.Path]; err != nil {
		return err
	}
	h.puts = append(h.puts, opts)
	h.files[fileKey(owner, repo, opts.Path)] = &api.FileContent{Path: opts.Path, SHA: fmt.Sprintf("v%d", len(h.puts)), Content: opts.Content}
	return nil
}

// fakeAdmin 内存版 CMS 管理接口
type fakeAdmin struct {
	spaceID   string
	publicKey string
	createErr error
	getErr    error
	settings  []builder.SpaceSettings
}

func (a *fakeAdmin) CreateSpace(_ context.Context, settings builder.SpaceSettings) (string, error) {
	a.settings = append(a.settings, settings)
	if a.createErr != nil {
		return "", a.createErr
	}
	return a.spaceID, nil
}

func (a *fakeAdmin) GetSpace(_ context.Context, spaceID string) (*builder.Space, error) {
	if a.getErr != nil {
		return nil, a.getErr
	}
	return &builder.Space{ID: spaceID, APIKeys: []builder.APIKey{{Type: "public", Token: a.publicKey}}}, nil
}

// fakeProjects 内存版项目存储
type fakeProjects struct {
	rows      map[string]*model.Project
	createErr error
	seq       int
}

func newFakeProjects() *fakeProjects {
	return &fakeProjects{rows: map[string]*model.Project{}}
}

func (s *fakeProjects) Create(p *model.Project) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.seq++
	p.ID = fmt.Sprintf("p%d", s.seq)
	cp := *p
	s.rows[p.ID] = &cp
	return nil
}

func (s *fakeProjects) FindByID(id string) (*model.Project, error) {
	p, ok := s.rows[id]
	if !ok {
		return nil, pkgErrors.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *fakeProjects) UpdateBuilderKey(id, key string) error {
	p, ok := s.rows[id]
	if !ok {
		return pkgErrors.ErrRecordNotFound
	}
	k := key
	p.BuilderPublicKey = &k
	return nil
}

// recordingWriter 记录调用的配置写入器
type recordingWriter struct {
	calls []string
	err   error
}

func (w *recordingWriter) WriteConfig(_ context.Context, repositoryURL, publicKey string) error {
	w.calls = append(w.calls, repositoryURL+"#"+publicKey)
	return w.err
}

var errBoom = errors.New("boom")
