package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opendict/wordscan/internal/language"
)

// NewLangsCmd creates the langs command.
func NewLangsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "langs",
		Short: "List supported languages and dictionary coverage",
		Long: `Langs lists every language the resolver accepts and which dictionary
sites serve it.

Both sites pair most languages with English only; WordReference also pairs
Spanish directly with French, Italian, Portuguese, and German.

Examples:
  # List all languages with per-site coverage
  wordscan langs

  # List only the languages one site serves
  wordscan langs --dictionary linguee`,
		RunE: runLangsCmd,
	}

	cmd.Flags().StringP("dictionary", "d", "",
		"Show only languages served by this dictionary (wordreference, linguee)")

	return cmd
}

// runLangsCmd executes the langs command.
func runLangsCmd(cmd *cobra.Command, _ []string) error {
	filter, err := cmd.Flags().GetString("dictionary")
	if err != nil {
		return err
	}
	filter = strings.ToLower(strings.TrimSpace(filter))

	switch filter {
	case "":
		writeLanguageTable(cmd, language.Supported())
	case "wordreference":
		writeCodeList(cmd, "WordReference", language.WordReferenceCodes())
	case "linguee":
		writeCodeList(cmd, "Linguee", language.LingueeCodes())
	default:
		return fmt.Errorf("unknown dictionary %q (valid names: wordreference, linguee)", filter)
	}

	return nil
}

// writeLanguageTable prints the full resolver table with per-site coverage
// marks. Coverage means the site pairs the language with English.
func writeLanguageTable(cmd *cobra.Command, langs []language.Language) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%-6s %-12s %-14s %s\n", "CODE", "LANGUAGE", "WORDREFERENCE", "LINGUEE")
	for _, lang := range langs {
		fmt.Fprintf(out, "%-6s %-12s %-14s %s\n",
			lang.Code,
			language.DisplayName(lang.Code),
			coverageMark(lang.Code == "en" || language.WordReferencePairSupported("en", lang.Code)),
			coverageMark(lang.Code == "en" || language.LingueePairSupported("en", lang.Code)),
		)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Most pairs need English on one side (e.g. en-es, fr-en).")
	fmt.Fprintln(out, "WordReference also serves Spanish paired with: fr, it, pt, de.")
}

// writeCodeList prints one site's language codes with display names.
func writeCodeList(cmd *cobra.Command, title string, codes []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s languages (paired with English):\n", title)
	for _, code := range codes {
		fmt.Fprintf(out, "  %-6s %s\n", code, language.DisplayName(code))
	}
}

// coverageMark renders a coverage cell.
func coverageMark(supported bool) string {
	if supported {
		return "yes"
	}
	return "-"
}
