package config

import (
	"log/slog"
	"os"

	"github.com/careledger/careledger/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Roles holds the path of the role seed file
type Roles struct {
	File string
}

// RoleSeed is one entry of the role seed file
type RoleSeed struct {
	Principal types.Principal `yaml:"principal"`
	Role      types.UserRole  `yaml:"role"`
}

type roleFile struct {
	Roles []RoleSeed `yaml:"roles"`
}

// Flags returns CLI flags for role seeding
func (r *Roles) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "role-file",
			Usage:       "YAML file assigning roles to principals at startup",
			Category:    "Authorization",
			Sources:     cli.EnvVars("CARELEDGER_ROLE_FILE"),
			Destination: &r.File,
		},
	}
}

// Load reads the role seed file. No file configured yields no seeds.
func (r *Roles) Load() (map[types.Principal]types.UserRole, error) {
	if r.File == "" {
		return nil, nil
	}

	data, err := os.ReadFile(r.File)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "role file not found", goerr.V("path", r.File))
		}
		return nil, goerr.Wrap(err, "failed to read role file", goerr.V("path", r.File))
	}

	return ParseRoles(data)
}

// ParseRoles parses role seed YAML
func ParseRoles(data []byte) (map[types.Principal]types.UserRole, error) {
	var file roleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse role file")
	}

	seeds := make(map[types.Principal]types.UserRole, len(file.Roles))
	for i, seed := range file.Roles {
		if seed.Principal.IsAnonymous() {
			return nil, goerr.New("principal is required", goerr.V("index", i))
		}
		if !seed.Role.IsValid() {
			return nil, goerr.New("invalid role",
				goerr.V("index", i),
				goerr.V("principal", seed.Principal),
				goerr.V("role", seed.Role))
		}
		if _, dup := seeds[seed.Principal]; dup {
			return nil, goerr.New("duplicate principal", goerr.V("principal", seed.Principal))
		}
		seeds[seed.Principal] = seed.Role
	}
	return seeds, nil
}

// LogValue returns structured log value
func (r Roles) LogValue() slog.Value {
	return slog.GroupValue(slog.String("file", r.File))
}
