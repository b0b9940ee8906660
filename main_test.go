package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/procargo/backoffice/backoffice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), ".env")))
	err := cmd.Execute()
	return out.String(), err
}

func writeSession(t *testing.T, role domain.Role, entityID string) string {
	t.Helper()
	blob := []byte(`{"token":"t","user":{"id":"u1","role":"` + string(role) + `","entityId":"` + entityID + `"}}`)
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, blob, 0o600))
	return path
}

func TestPermissionsCommand(t *testing.T) {
	out, err := runCommand(t, "permissions")
	require.NoError(t, err)

	var dump permissionsDump
	require.NoError(t, json.Unmarshal([]byte(out), &dump))
	assert.Len(t, dump.Roles, len(domain.AllRoles))
	assert.Equal(t, []domain.Role{domain.RoleGeneralManager}, dump.Guards[domain.ActionAuditLogRead].Roles)
}

func TestAuthorizeCommand(t *testing.T) {
	session := writeSession(t, domain.RoleClientDataEntry, "CUST001")

	out, err := runCommand(t, "authorize", "--session", session, "--action", string(domain.ActionOrderCreate))
	require.NoError(t, err)
	assert.Equal(t, "allowed\n", out)

	out, err = runCommand(t, "authorize", "--session", session, "--action", string(domain.ActionOrderApprove))
	assert.Error(t, err)
	assert.Equal(t, "denied\n", out)

	out, err = runCommand(t, "authorize", "--session", session, "--permission", "APPROVE_ORDER,ENTER_DATA")
	require.NoError(t, err)
	assert.Equal(t, "allowed\n", out)
}

func TestAuthorizeCommandRequiresTarget(t *testing.T) {
	session := writeSession(t, domain.RoleDriver, "")
	_, err := runCommand(t, "authorize", "--session", session)
	assert.Error(t, err)
}
