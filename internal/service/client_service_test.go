package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenbook/internal/dto"
	"greenbook/internal/pkg/auth"
	pkgErrors "greenbook/pkg/errors"
)

func newClientServiceForTest(store *memStore) ClientService {
	authz := NewAuthorizationService(fakeMemberRepo{store})
	return NewClientService(fakeClientRepo{store}, &fakeProjectRepo{memStore: store}, authz)
}

func TestCreateClientMakesCreatorAdmin(t *testing.T) {
	store := newMemStore()
	u := store.addUser("Ann", "ann@example.com")
	svc := newClientServiceForTest(store)

	resp, err := svc.Create(u.ID, &dto.ClientCreateRequest{CompanyName: " Acme ", CompanyEmail: "ops@acme.com"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", resp.CompanyName)
	assert.Equal(t, u.ID, resp.CreatedByID)

	member, err := fakeMemberRepo{store}.FindByClientAndUser(resp.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, member.Role)
}

func TestCreateClientValidation(t *testing.T) {
	store := newMemStore()
	u := store.addUser("Ann", "ann@example.com")
	svc := newClientServiceForTest(store)

	tests := []struct {
		name string
		req  dto.ClientCreateRequest
	}{
		{name: "blank name", req: dto.ClientCreateRequest{CompanyName: "  ", CompanyEmail: "ops@acme.com"}},
		{name: "missing email", req: dto.ClientCreateRequest{CompanyName: "Acme"}},
		{name: "bad email", req: dto.ClientCreateRequest{CompanyName: "Acme", CompanyEmail: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(u.ID, &tt.req)
			require.Error(t, err)
			assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeValidationError))
		})
	}
	assert.Empty(t, store.clients)
}

func TestUpdateClientRequiresAdmin(t *testing.T) {
	store := newMemStore()
	admin := store.addUser("Admin", "admin@example.com")
	user := store.addUser("User", "user@example.com")
	c := store.addClient("Acme", admin.ID)
	store.addMember(c.ID, admin.ID, auth.RoleAdmin)
	store.addMember(c.ID, user.ID, auth.RoleUser)
	svc := newClientServiceForTest(store)

	_, err := svc.Update(user.ID, c.ID, &dto.ClientUpdateRequest{CompanyName: lo.ToPtr("Hijack")})
	require.Error(t, err)
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeForbidden))
	assert.Equal(t, "Acme", store.clients[c.ID].CompanyName)

	resp, err := svc.Update(admin.ID, c.ID, &dto.ClientUpdateRequest{City: lo.ToPtr("Berlin")})
	require.NoError(t, err)
	assert.Equal(t, "Acme", resp.CompanyName)
	assert.Equal(t, "Berlin", *resp.City)
}

func TestDeleteClientRemovesProjectsAndMembers(t *testing.T) {
	store := newMemStore()
	admin := store.addUser("Admin", "admin@example.com")
	c := store.addClient("Acme", admin.ID)
	other := store.addClient("Other", admin.ID)
	store.addMember(c.ID, admin.ID, auth.RoleAdmin)
	store.addMember(other.ID, admin.ID, auth.RoleAdmin)
	store.addProject(c.ID, "Site")
	kept := store.addProject(other.ID, "Shop")
	svc := newClientServiceForTest(store)

	require.NoError(t, svc.Delete(admin.ID, c.ID))

	assert.NotContains(t, store.clients, c.ID)
	assert.Len(t, store.projects, 1)
	assert.Contains(t, store.projects, kept.ID)
	assert.Len(t, store.members, 1)
}

func TestGetClient(t *testing.T) {
	store := newMemStore()
	creator := store.addUser("Creator", "creator@example.com")
	guest := store.addUser("Guest", "guest@example.com")
	outsider := store.addUser("Out", "out@example.com")
	c := store.addClient("Acme", creator.ID)
	store.addMember(c.ID, guest.ID, auth.RoleGuest)
	svc := newClientServiceForTest(store)

	// 创建者即使没有成员关系也能查看
	_, err := svc.Get(creator.ID, c.ID)
	require.NoError(t, err)

	_, err = svc.Get(guest.ID, c.ID)
	require.NoError(t, err)

	_, err = svc.Get(outsider.ID, c.ID)
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeForbidden))

	_, err = svc.Get(guest.ID, "c-missing")
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeNotFound))
}

func TestListProjectsRequiresMembership(t *testing.T) {
	store := newMemStore()
	guest := store.addUser("Guest", "guest@example.com")
	outsider := store.addUser("Out", "out@example.com")
	c := store.addClient("Acme", guest.ID)
	store.addMember(c.ID, guest.ID, auth.RoleGuest)
	store.addProject(c.ID, "Site")
	svc := newClientServiceForTest(store)

	items, total, err := svc.ListProjects(guest.ID, c.ID, &dto.PageQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Site", items[0].Name)

	_, _, err = svc.ListProjects(outsider.ID, c.ID, &dto.PageQuery{})
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeForbidden))
}
