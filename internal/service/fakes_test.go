package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"greenbook/internal/core/automation"
	"greenbook/internal/model"
	"greenbook/internal/pkg/auth"
	"greenbook/internal/repository"
	pkgErrors "greenbook/pkg/errors"
)

var errBoom = errors.New("boom")

// memStore 内存版存储, 同时实现几个仓储接口
type memStore struct {
	seq      int
	users    map[string]*model.User
	clients  map[string]*model.Client
	members  map[string]*model.ClientUser
	projects map[string]*model.Project

	memberErr error
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]*model.User{},
		clients:  map[string]*model.Client{},
		members:  map[string]*model.ClientUser{},
		projects: map[string]*model.Project{},
	}
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memStore) addUser(name, email string) *model.User {
	u := &model.User{Name: name, Email: email, Role: auth.RoleUser, AuthProvider: "local"}
	u.ID = m.nextID("u")
	m.users[u.ID] = u
	return u
}

func (m *memStore) addClient(name string, createdBy string) *model.Client {
	c := &model.Client{CompanyName: name, CompanyEmail: "ops@" + strings.ToLower(name) + ".com", CreatedByID: createdBy}
	c.ID = m.nextID("c")
	m.clients[c.ID] = c
	return c
}

func (m *memStore) addMember(clientID, userID string, role auth.Role) *model.ClientUser {
	cu := &model.ClientUser{ClientID: clientID, UserID: userID, Role: role}
	cu.ID = m.nextID("m")
	m.members[cu.ID] = cu
	return cu
}

func (m *memStore) addProject(clientID, name string) *model.Project {
	p := &model.Project{ClientID: clientID, Name: name, Status: model.ProjectStatusNotDeployed}
	p.ID = m.nextID("p")
	m.projects[p.ID] = p
	return p
}

// userRepo
type fakeUserRepo struct{ *memStore }

func (r fakeUserRepo) Create(user *model.User) error {
	user.ID = r.nextID("u")
	r.users[user.ID] = user
	return nil
}

func (r fakeUserRepo) FindByID(id string, _ ...repository.QueryOption) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, pkgErrors.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pkgErrors.ErrRecordNotFound
}

func (r fakeUserRepo) Update(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r fakeUserRepo) UpdateName(id, name string) error {
	u, ok := r.users[id]
	if !ok {
		return pkgErrors.ErrRecordNotFound
	}
	u.Name = name
	return nil
}

func (r fakeUserRepo) UpdateLastLogin(string) error { return nil }

// clientRepo
type fakeClientRepo struct{ *memStore }

func (r fakeClientRepo) CreateWithAdmin(client *model.Client, adminUserID string) error {
	client.ID = r.nextID("c")
	r.clients[client.ID] = client
	r.addMember(client.ID, adminUserID, auth.RoleAdmin)
	return nil
}

func (r fakeClientRepo) FindByID(id string, _ ...repository.QueryOption) (*model.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, pkgErrors.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r fakeClientRepo) ListByMember(userID string, _, _ int, _ string) ([]*model.Client, int64, error) {
	var out []*model.Client
	for _, cu := range r.members {
		if cu.UserID == userID {
			out = append(out, r.clients[cu.ClientID])
		}
	}
	return out, int64(len(out)), nil
}

func (r fakeClientRepo) Update(client *model.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r fakeClientRepo) DeleteCascade(id string) error {
	for pid, p := range r.projects {
		if p.ClientID == id {
			delete(r.projects, pid)
		}
	}
	for mid, cu := range r.members {
		if cu.ClientID == id {
			delete(r.members, mid)
		}
	}
	delete(r.clients, id)
	return nil
}

// clientUserRepo
type fakeMemberRepo struct{ *memStore }

func (r fakeMemberRepo) Create(member *model.ClientUser) error {
	member.ID = r.nextID("m")
	r.members[member.ID] = member
	return nil
}

func (r fakeMemberRepo) FindByClientAndUser(clientID, userID string) (*model.ClientUser, error) {
	if r.memberErr != nil {
		return nil, r.memberErr
	}
	for _, cu := range r.members {
		if cu.ClientID == clientID && cu.UserID == userID {
			cp := *cu
			return &cp, nil
		}
	}
	return nil, pkgErrors.ErrRecordNotFound
}

func (r fakeMemberRepo) ListByClient(clientID string) ([]*model.ClientUser, error) {
	var out []*model.ClientUser
	for _, cu := range r.members {
		if cu.ClientID == clientID {
			cp := *cu
			cp.User = r.users[cu.UserID]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r fakeMemberRepo) ListByUser(userID string) ([]*model.ClientUser, error) {
	if r.memberErr != nil {
		return nil, r.memberErr
	}
	var out []*model.ClientUser
	for _, cu := range r.members {
		if cu.UserID == userID {
			cp := *cu
			cp.Client = r.clients[cu.ClientID]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r fakeMemberRepo) UpdateRole(id string, role auth.Role) error {
	r.members[id].Role = role
	return nil
}

func (r fakeMemberRepo) Delete(id string) error {
	delete(r.members, id)
	return nil
}

// projectRepo
type fakeProjectRepo struct {
	*memStore
	lastFilter repository.ProjectFilter
}

func (r *fakeProjectRepo) Create(project *model.Project) error {
	project.ID = r.nextID("p")
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) FindByID(id string) (*model.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, pkgErrors.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) List(filter repository.ProjectFilter) ([]*model.Project, int64, error) {
	r.lastFilter = filter
	var out []*model.Project
	for _, p := range r.projects {
		visible := false
		for _, id := range filter.ClientIDs {
			if id == p.ClientID {
				visible = true
			}
		}
		if !visible || (filter.ClientID != "" && filter.ClientID != p.ClientID) {
			continue
		}
		if filter.Status != "" && filter.Status != p.Status {
			continue
		}
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeProjectRepo) UpdateFields(id string, fields map[string]interface{}) error {
	p := r.projects[id]
	if name, ok := fields["name"].(string); ok {
		p.Name = name
	}
	return nil
}

func (r *fakeProjectRepo) UpdateStatus(id string, status model.ProjectStatus) error {
	r.projects[id].Status = status
	return nil
}

func (r *fakeProjectRepo) UpdateBuilderKey(id, key string) error {
	k := key
	r.projects[id].BuilderPublicKey = &k
	return nil
}

func (r *fakeProjectRepo) Delete(id string) error {
	delete(r.projects, id)
	return nil
}

// fakeAutomation 记录调用的项目开通流程
type fakeAutomation struct {
	projects  *fakeProjectRepo
	created   []automation.CreateProjectInput
	createErr error
	keyErr    error
}

func (a *fakeAutomation) CreateProject(_ context.Context, in automation.CreateProjectInput) (*model.Project, error) {
	a.created = append(a.created, in)
	if a.createErr != nil {
		return nil, a.createErr
	}
	url := "https://github.com/acme/greenbook-" + strings.ToLower(in.Name)
	p := &model.Project{ClientID: in.ClientID, Name: in.Name, Status: model.ProjectStatusNotDeployed, RepositoryURL: &url}
	if err := a.projects.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (a *fakeAutomation) UpdateBuilderKey(_ context.Context, projectID, key string) (*model.Project, error) {
	if err := a.projects.UpdateBuilderKey(projectID, key); err != nil {
		return nil, err
	}
	p, _ := a.projects.FindByID(projectID)
	return p, a.keyErr
}

// fakeLDAP 固定返回的 LDAP 认证
type fakeLDAP struct {
	identity *LDAPIdentity
	err      error
}

func (l *fakeLDAP) Authenticate(string, string) (*LDAPIdentity, error) {
	return l.identity, l.err
}
