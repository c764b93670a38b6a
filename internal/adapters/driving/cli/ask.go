package cli

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/threadlens/threadlens/internal/core/domain"
)

var (
	askFilters     filterFlags
	askInteractive bool
	askSuggest     bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the AI assistant about the data",
	Long: `Sends a question about the filtered corpus to the configured AI
assistant, together with a digest of the current aggregates so
answers are grounded in the data on screen.

Requires a Gemini API key, either in the GEMINI_API_KEY environment
variable or stored via 'threadlens config set-key'.

Examples:
  threadlens ask "what topics are trending?"
  threadlens ask --community golang "who drives the conversation?"
  threadlens ask -i    # interactive session
  threadlens ask --suggest`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

func init() {
	askFilters.register(askCmd)
	askCmd.Flags().BoolVarP(&askInteractive, "interactive", "i", false, "start an interactive chat session")
	askCmd.Flags().BoolVar(&askSuggest, "suggest", false, "print suggested questions and exit")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	posts, err := askFilters.filteredPosts(cmd)
	if err != nil {
		return err
	}
	dataContext := buildDigest(posts)

	if askSuggest {
		cmd.Println("Suggested questions:")
		for _, q := range assistantService.Suggestions(cmd.Context(), dataContext) {
			cmd.Printf("  - %s\n", q)
		}
		return nil
	}

	if !assistantService.Available() {
		return errors.New("no assistant configured: set GEMINI_API_KEY or run 'threadlens config set-key'")
	}

	session := assistantService.NewSession()

	if len(args) == 1 {
		return askOnce(cmd, session, args[0], dataContext)
	}
	if !askInteractive {
		return errors.New("provide a question or use --interactive")
	}

	cmd.Printf("Interactive session over %d posts. Empty line or 'quit' to exit.\n\n", len(posts))
	reader := bufio.NewReader(os.Stdin)
	for {
		cmd.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil
		}
		question := strings.TrimSpace(line)
		if question == "" || question == "quit" || question == "exit" {
			return nil
		}
		if err := askOnce(cmd, session, question, dataContext); err != nil {
			cmd.Printf("Error: %v\n", err)
		}
	}
}

func askOnce(cmd *cobra.Command, session *domain.ChatSession, question, dataContext string) error {
	answer, err := assistantService.Ask(cmd.Context(), session, question, dataContext)
	if err != nil {
		return err
	}
	cmd.Println(answer)
	return nil
}
