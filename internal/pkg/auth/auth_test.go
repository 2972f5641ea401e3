package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	tests := []struct {
		role Role
		op   Operation
		want bool
	}{
		{RoleAdmin, OpClientDelete, true},
		{RoleUser, OpClientDelete, false},
		{RoleUser, OpProjectCreate, true},
		{RoleGuest, OpProjectCreate, false},
		{RoleUser, OpProjectBuilderKey, true},
		{RoleGuest, OpProjectBuilderKey, false},
		{RoleUser, OpProjectUpdateStatus, false},
		{RoleAdmin, OpProjectUpdateStatus, true},
		{RoleUser, OpProjectDelete, false},
		{RoleGuest, OpProjectView, true},
		{RoleGuest, OpMemberList, true},
		{RoleUser, OpMemberManage, false},
		{Role(""), OpClientCreate, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.op), func(t *testing.T) {
			assert.Equal(t, tt.want, Allow(tt.role, tt.op))
		})
	}
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" admin ")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, r)

	_, ok = ParseRole("owner")
	assert.False(t, ok)
}
