package permissions_test

import (
	"ohanna/permissions"
	"ohanna/shared/constant"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantStaff bool
	}{
		{name: "public health", path: "/v1/health", method: "GET", wantSkip: true, wantStaff: true},
		{name: "token exchange", path: "/v1/auth/token", method: "POST", wantSkip: true, wantStaff: true},
		{name: "staff reads bookings", path: "/v1/bookings/", method: "GET", wantStaff: true},
		{name: "staff reads calendar", path: "/v1/calendar/{year}/{month}", method: "get", wantStaff: true},
		{name: "staff shares", path: "/v1/bookings/{id}/share", method: "GET", wantStaff: true},
		{name: "admin saves", path: "/v1/bookings", method: "POST"},
		{name: "admin deletes", path: "/v1/bookings/{id}", method: "DELETE"},
		{name: "drafts are admin only", path: "/v1/drafts/{id}/commands", method: "POST"},
		{name: "unlisted route", path: "/v1/unknown", method: "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantStaff, permission.Allows(constant.RoleStaff))
			assert.True(t, permission.Allows(constant.RoleAdmin))
			assert.Equal(t, tt.wantSkip, permission.Allows(""))
		})
	}
}
