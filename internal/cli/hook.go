package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const hookMarker = "brain guard"

var hookCmd = &cobra.Command{
	Use:   "hook install|uninstall|status",
	Short: "Manage the Claude Code guard hook",
	Long: `Install or remove brain guard as a Claude Code PreToolUse hook so
every Bash command the agent runs is checked against lessons first.

Examples:
  brain hook install
  brain hook status
  brain hook uninstall`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"install", "uninstall", "status"},
	RunE:      hookCommand,
}

func init() {
	rootCmd.AddCommand(hookCmd)
}

func settingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "settings.json"), nil
}

// guardHookEntry builds the PreToolUse hook record pointing at this binary.
func guardHookEntry() (map[string]any, error) {
	exe, err := os.Executable()
	if err != nil {
		exe = "brain"
	}
	return map[string]any{
		"matcher": "Bash",
		"hooks": []any{
			map[string]any{
				"type":    "command",
				"command": fmt.Sprintf("%s guard --auto-confirm \"$TOOL_INPUT\"", exe),
			},
		},
	}, nil
}

func hookCommand(cmd *cobra.Command, args []string) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}

	switch args[0] {
	case "status":
		return hookStatus(path)
	case "uninstall":
		return hookUninstall(path)
	case "install":
		return hookInstall(path)
	default:
		return fmt.Errorf("unknown hook action %q", args[0])
	}
}

func readSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var settings map[string]any
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return settings, nil
}

func writeSettings(path string, settings map[string]any) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0600)
}

// preToolUseHooks extracts the PreToolUse hook list, tolerating missing or
// oddly-shaped settings.
func preToolUseHooks(settings map[string]any) []any {
	hooks, ok := settings["hooks"].(map[string]any)
	if !ok {
		return nil
	}
	list, _ := hooks["PreToolUse"].([]any)
	return list
}

func isGuardHook(entry any) bool {
	data, err := json.Marshal(entry)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), hookMarker)
}

func hookStatus(path string) error {
	settings, err := readSettings(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("Not installed (settings.json not found)")
			return nil
		}
		return err
	}
	for _, entry := range preToolUseHooks(settings) {
		if isGuardHook(entry) {
			fmt.Println("Installed")
			return nil
		}
	}
	fmt.Println("Not installed")
	return nil
}

func hookUninstall(path string) error {
	settings, err := readSettings(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("Nothing to uninstall (settings.json not found)")
			return nil
		}
		return err
	}

	existing := preToolUseHooks(settings)
	kept := make([]any, 0, len(existing))
	for _, entry := range existing {
		if !isGuardHook(entry) {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(existing) {
		fmt.Println("Brain guard hook not found in settings")
		return nil
	}

	settings["hooks"].(map[string]any)["PreToolUse"] = kept
	if err := writeSettings(path, settings); err != nil {
		return err
	}
	fmt.Println("Brain guard hook removed")
	return nil
}

func hookInstall(path string) error {
	entry, err := guardHookEntry()
	if err != nil {
		return err
	}

	settings, err := readSettings(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		settings = map[string]any{
			"hooks": map[string]any{"PreToolUse": []any{entry}},
		}
		if err := writeSettings(path, settings); err != nil {
			return err
		}
		fmt.Printf("Brain guard installed (created %s)\n", path)
		return nil
	}

	for _, existing := range preToolUseHooks(settings) {
		if isGuardHook(existing) {
			fmt.Println("Brain guard hook already installed")
			return nil
		}
	}

	hooks, ok := settings["hooks"].(map[string]any)
	if !ok {
		hooks = map[string]any{}
		settings["hooks"] = hooks
	}
	list, _ := hooks["PreToolUse"].([]any)
	hooks["PreToolUse"] = append(list, entry)

	if err := writeSettings(path, settings); err != nil {
		return err
	}
	fmt.Println("Brain guard installed. Every Bash command will now be checked against lessons.")
	fmt.Println("Run 'brain hook status' to verify.")
	return nil
}
