package commands

import (
	"strings"

	"github.com/carnelle/portfolio/internal/logging"
	"github.com/carnelle/portfolio/pkg/interfaces"
)

const commandModuleRoot = "portfolio.commands"

// CommandLogger builds the logger for one command package, namespaced under
// portfolio.commands with the component fields every execution log carries.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
