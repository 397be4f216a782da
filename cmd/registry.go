package cmd

import (
	"github.com/spf13/cobra"

	"obracalc.GO/core/registry"
)

// Register queues a command for the root. Call from init() in custom
// packages; panics once Apply has sealed the registry.
func Register(c *cobra.Command) {
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: locked (register only during init before Apply)")
	}
	var queued []*cobra.Command
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		queued = v.([]*cobra.Command)
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, append(queued, c))
}

// Apply attaches every queued command to the root and seals the registry.
func Apply() {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		for _, c := range v.([]*cobra.Command) {
			rootCmd.AddCommand(c)
		}
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}
