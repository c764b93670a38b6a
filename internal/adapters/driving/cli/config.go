package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change persistent configuration.

Well-known keys:
  data.path              default corpus path
  assistant.model        Gemini model name
  graph.top_authors      authors included in the network view
  graph.top_communities  communities included in the network view`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the Gemini API key",
	Long:  `Prompts for the Gemini API key without echoing it and stores it in the config file.`,
	RunE:  runConfigSetKey,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetKeyCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Printf("  File: %s\n\n", configStore.Path())

	cmd.Println("[Data]")
	printSetting(cmd, "Path", configStore.GetString("data.path"))
	cmd.Println()

	cmd.Println("[Assistant]")
	printSetting(cmd, "Model", configStore.GetString("assistant.model"))
	if key := configStore.GetString("assistant.api_key"); key != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(key))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Println()

	cmd.Println("[Graph]")
	printIntSetting(cmd, "Top Authors", configStore.GetInt("graph.top_authors"), 15)
	printIntSetting(cmd, "Top Communities", configStore.GetInt("graph.top_communities"), 10)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	// Integers stay integers in the TOML file.
	var value any = raw
	if n, err := strconv.Atoi(raw); err == nil {
		value = n
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func runConfigSetKey(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Print("Enter Gemini API key: ")
	key := readPassword()
	cmd.Println()
	if key == "" {
		return errors.New("no key entered")
	}

	if err := configStore.Set("assistant.api_key", key); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	cmd.Println("API key stored.")
	return nil
}

func printSetting(cmd *cobra.Command, name, value string) {
	if value == "" {
		value = "(not set)"
	}
	cmd.Printf("  %s: %s\n", name, value)
}

func printIntSetting(cmd *cobra.Command, name string, value, fallback int) {
	if value == 0 {
		cmd.Printf("  %s: %d (default)\n", name, fallback)
		return
	}
	cmd.Printf("  %s: %d\n", name, value)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
