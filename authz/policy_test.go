package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanMutate(t *testing.T) {
	tests := []struct {
		name    string
		p       Principal
		ownerID string
		want    bool
	}{
		{
			name:    "admin owner",
			p:       Principal{ID: "u1", Roles: []string{RoleAdmin}},
			ownerID: "u1",
			want:    true,
		},
		{
			name:    "admin non-owner",
			p:       Principal{ID: "u1", Roles: []string{RoleAdmin}},
			ownerID: "u2",
			want:    true,
		},
		{
			name:    "non-admin owner",
			p:       Principal{ID: "u1", Roles: []string{RoleAuthor}},
			ownerID: "u1",
			want:    true,
		},
		{
			name:    "non-admin non-owner",
			p:       Principal{ID: "u1", Roles: []string{RoleAuthor}},
			ownerID: "u2",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanMutate(tt.p, tt.ownerID))
		})
	}
}

func TestCanMutateOwnerlessResource(t *testing.T) {
	admin := Principal{ID: "u1", Roles: []string{RoleAdmin}}
	author := Principal{ID: "u1", Roles: []string{RoleAuthor}}

	assert.True(t, CanMutate(admin, ""))
	assert.False(t, CanMutate(author, ""))
}

func TestCanMutateAnonymous(t *testing.T) {
	assert.False(t, CanMutate(Principal{}, "u1"))
	assert.False(t, CanMutate(Principal{}, ""))
}

func TestHasAnyRole(t *testing.T) {
	p := Principal{ID: "u1", Roles: []string{RoleAuthor}}

	assert.True(t, p.HasAnyRole(RoleAdmin, RoleAuthor))
	assert.False(t, p.HasAnyRole(RoleAdmin))
	assert.False(t, Principal{}.HasAnyRole(RoleAdmin, RoleAuthor))
}
