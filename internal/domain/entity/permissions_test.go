package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexsagar/teantea-api/internal/domain/entity"
)

func TestPermissionSet_UnmarshalListShape(t *testing.T) {
	raw := `[{"module":"inventory","actions":["read","update"]},{"module":"orders","actions":["create"]}]`

	var p entity.PermissionSet
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.True(t, p.Allows("inventory", "read"))
	assert.True(t, p.Allows("inventory", "update"))
	assert.True(t, p.Allows("orders", "create"))
	assert.False(t, p.Allows("inventory", "delete"))
	assert.False(t, p.Allows("menu", "read"))
}

func TestPermissionSet_UnmarshalMapShape(t *testing.T) {
	raw := `[{"module":"menu","actions":{"read":true,"update":false,"delete":true}}]`

	var p entity.PermissionSet
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.True(t, p.Allows("menu", "read"))
	assert.True(t, p.Allows("menu", "delete"))
	// A false flag is not a grant.
	assert.False(t, p.Allows("menu", "update"))
}

func TestPermissionSet_UnmarshalNormalizedObject(t *testing.T) {
	raw := `{"reports":{"read":true}}`

	var p entity.PermissionSet
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.True(t, p.Allows("reports", "read"))
}

func TestPermissionSet_MarshalDeterministic(t *testing.T) {
	p := entity.PermissionSet{}
	p.Grant("orders", "read")
	p.Grant("orders", "create")
	p.Grant("inventory", "read")

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"module":"inventory","actions":["read"]},{"module":"orders","actions":["create","read"]}]`,
		string(out))
}

func TestUserCan_AdminBypass(t *testing.T) {
	admin := &entity.User{Role: entity.RoleAdmin, Permissions: entity.PermissionSet{}}
	assert.True(t, admin.Can("anything", "delete"))

	staff := &entity.User{Role: entity.RoleStaff, Permissions: entity.PermissionSet{}}
	assert.False(t, staff.Can("orders", "read"))

	staff.Permissions.Grant("orders", "read")
	assert.True(t, staff.Can("orders", "read"))
	assert.False(t, staff.Can("orders", "delete"))
}
