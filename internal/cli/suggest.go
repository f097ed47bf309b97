package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sallie-oss/sallie/internal/assist"
	"github.com/sallie-oss/sallie/internal/prefs"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show proactive suggestions",
	Long:  `Evaluates the current memory and open tasks and prints anything the assistant would proactively bring up.`,
	RunE:  runSuggest,
}

func runSuggest(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	mem, err := openMemory(rt)
	if err != nil {
		return err
	}
	defer mem.Close()

	tasks, err := openRepo(rt)
	if err != nil {
		return err
	}
	defer tasks.Close()

	p, err := prefs.LoadFile(rt.cfg.Prefs.Path)
	if err != nil {
		return err
	}

	suggester := assist.NewSuggester(mem.Store(), tasks, p)
	suggestions, err := suggester.Suggest(context.Background())
	if err != nil {
		return err
	}

	if len(suggestions) == 0 {
		fmt.Println("Nothing to suggest right now.")
		return nil
	}
	for _, s := range suggestions {
		fmt.Printf("  • %s\n", s.Text)
		if verbose && s.Reason != "" {
			fmt.Printf("    (%s)\n", s.Reason)
		}
	}
	return nil
}
