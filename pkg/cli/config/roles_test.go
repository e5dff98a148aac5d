package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/careledger/careledger/pkg/cli/config"
	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestParseRoles(t *testing.T) {
	t.Run("Valid seeds", func(t *testing.T) {
		seeds, err := config.ParseRoles([]byte(`
roles:
  - principal: root
    role: admin
  - principal: alice
    role: user
`))
		gt.NoError(t, err).Required()
		gt.Equal(t, 2, len(seeds))
		gt.Equal(t, types.UserRoleAdmin, seeds["root"])
		gt.Equal(t, types.UserRoleUser, seeds["alice"])
	})

	t.Run("Unknown role", func(t *testing.T) {
		_, err := config.ParseRoles([]byte("roles:\n  - principal: root\n    role: owner\n"))
		gt.Error(t, err)
	})

	t.Run("Missing principal", func(t *testing.T) {
		_, err := config.ParseRoles([]byte("roles:\n  - role: admin\n"))
		gt.Error(t, err)
	})

	t.Run("Duplicate principal", func(t *testing.T) {
		_, err := config.ParseRoles([]byte("roles:\n  - principal: a\n    role: admin\n  - principal: a\n    role: user\n"))
		gt.Error(t, err)
	})

	t.Run("Broken YAML", func(t *testing.T) {
		_, err := config.ParseRoles([]byte("roles: ["))
		gt.Error(t, err)
	})
}

func TestRolesLoad(t *testing.T) {
	t.Run("No file configured", func(t *testing.T) {
		var r config.Roles
		seeds, err := r.Load()
		gt.NoError(t, err)
		gt.Equal(t, 0, len(seeds))
	})

	t.Run("From file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roles.yaml")
		gt.NoError(t, os.WriteFile(path, []byte("roles:\n  - principal: root\n    role: admin\n"), 0o600)).Required()

		r := config.Roles{File: path}
		seeds, err := r.Load()
		gt.NoError(t, err).Required()
		gt.Equal(t, types.UserRoleAdmin, seeds["root"])
	})

	t.Run("Missing file", func(t *testing.T) {
		r := config.Roles{File: filepath.Join(t.TempDir(), "absent.yaml")}
		_, err := r.Load()
		gt.Error(t, err)
	})
}
