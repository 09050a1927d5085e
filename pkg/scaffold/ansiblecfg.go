package scaffold

import (
	"fmt"
	"os"
)

// AnsibleCfgName is the Ansible configuration file written for new projects
const AnsibleCfgName = "ansible.cfg"

// ansibleCfgTemplate points Ansible at the provisioned lint config and
// sets the defaults the shared hook configuration expects.
const ansibleCfgTemplate = `[defaults]
# Lint configuration provisioned under .config/ by pre-commit-setup
# (ansible-lint is configured via .config/ansible-lint.yml)
inventory = inventory
roles_path = roles
interpreter_python = auto_silent
stdout_callback = yaml

[ssh_connection]
pipelining = True
`

// WriteAnsibleCfg writes the ansible.cfg starting point in the current
// directory. An existing file is never modified. It reports whether the
// file was created.
func WriteAnsibleCfg() (bool, error) {
	if _, err := os.Stat(AnsibleCfgName); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat %s: %w", AnsibleCfgName, err)
	}

	if err := os.WriteFile(AnsibleCfgName, []byte(ansibleCfgTemplate), 0o600); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", AnsibleCfgName, err)
	}
	return true, nil
}
