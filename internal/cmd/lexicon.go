package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pthm/readcheck/internal/lexicon"
)

var lexiconList string

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Validate and summarize the lexicon",
	Long: `Load the lexicon (embedded, or from --lexicon-dir) and print the size
of each list. Loading fails with the file and line of the first bad row.

Examples:
  readcheck lexicon
  readcheck lexicon --lexicon-dir ./resources
  readcheck lexicon --list jargon`,
	Args: cobra.NoArgs,
	RunE: runLexicon,
}

func init() {
	lexiconCmd.Flags().StringVar(&lexiconList, "list", "", "Print the entries of one list (jargon, simple, difficult)")
	RootCmd.AddCommand(lexiconCmd)
}

func runLexicon(cmd *cobra.Command, args []string) error {
	lex, err := loadLexicon()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	switch lexiconList {
	case "":
	case "jargon":
		printTerms(cmd, lex.Jargon)
		return nil
	case "simple":
		printTerms(cmd, lex.SimpleWords)
		return nil
	case "difficult":
		words := make([]string, 0, lex.IgnorableDifficult.Len())
		for word := range lex.IgnorableDifficult {
			words = append(words, word)
		}
		sort.Strings(words)
		fmt.Fprintln(w, strings.Join(words, "\n"))
		return nil
	default:
		return fmt.Errorf("unknown list %q (want jargon, simple or difficult)", lexiconList)
	}

	source := "embedded"
	if cfg.Lexicon.Dir != "" {
		source = cfg.Lexicon.Dir
	}

	color.New(color.FgCyan, color.Bold).Fprintln(w, "Lexicon")
	color.New(color.FgHiBlack).Fprintf(w, "  %s\n\n", source)

	files := lexicon.DefaultFiles
	fmt.Fprintf(w, "  %-32s %s\n", files.Jargon, color.GreenString("%d terms", lex.Jargon.Len()))
	fmt.Fprintf(w, "  %-32s %s\n", files.SimpleWords, color.GreenString("%d words", lex.SimpleWords.Len()))
	fmt.Fprintf(w, "  %-32s %s\n", files.IgnorableDifficult, color.GreenString("%d words", lex.IgnorableDifficult.Len()))
	fmt.Fprintln(w)
	color.New(color.FgGreen).Fprintln(w, "✓ Lexicon is valid")
	return nil
}

func printTerms(cmd *cobra.Command, terms lexicon.Terms) {
	for _, e := range terms.Entries() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s >> %s\n", e.Term, e.Replacement)
	}
}
