// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lexiscan/internal/engine"
	"github.com/pdiddy/lexiscan/internal/pipeline"
	"github.com/pdiddy/lexiscan/internal/store"
	"github.com/pdiddy/lexiscan/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [document.pdf]",
	Short: "Extract structured facts from a single contract document",
	Long: `Extract runs the extraction pipeline over one document and prints the
result. The argument is a PDF path; pass --text to read plain text from a
file, or --text - to read it from stdin.

By default the result is printed as a readable summary. Use --json for the
raw extraction response, and --save to archive the result in the store.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("text", "", "read plain text from this file instead of a PDF ('-' for stdin)")
	extractCmd.Flags().Bool("json", false, "print the raw JSON extraction response")
	extractCmd.Flags().Bool("save", false, "archive the result in the extraction store")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	textPath, _ := cmd.Flags().GetString("text")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	save, _ := cmd.Flags().GetBool("save")

	if textPath == "" && len(args) == 0 {
		return fmt.Errorf("a PDF path or --text is required")
	}

	cfg := pipelineConfig()
	pipe, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var rec *types.DocumentRecord
	if textPath != "" {
		text, name, err := readText(textPath)
		if err != nil {
			return err
		}
		rec, err = pipe.RunText(ctx, text, nil)
		if err != nil {
			return err
		}
		rec.Filename = name
	} else {
		rec, err = pipe.RunFile(ctx, args[0])
		if err != nil {
			return err
		}
	}

	if warning := engine.CheckDateOrder(rec.Response.Dates); warning != "" {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
	}

	if save {
		st, err := store.NewStore(cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Save(ctx, rec); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved as %s\n", rec.ID)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec.Response)
	}

	printSummary(os.Stdout, rec.Response)
	return nil
}

func readText(path string) (text, name string, err error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return string(data), path, nil
}

func printSummary(w io.Writer, resp *types.ExtractionResponse) {
	fmt.Fprintln(w, "Dates:")
	if len(resp.Dates) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, d := range resp.Dates {
		fmt.Fprintf(w, "  %s  %s\n", d.Date, d.Context)
	}

	fmt.Fprintln(w, "Amounts:")
	if resp.ContractValue != nil {
		fmt.Fprintf(w, "  contract value: %s %s\n",
			resp.ContractValue.Currency, formatAmount(resp.ContractValue.Amount))
	}
	for _, a := range resp.AdvancePayment {
		fmt.Fprintf(w, "  advance payment: %s %s\n", a.Currency, formatAmount(a.Amount))
	}
	for _, a := range resp.OtherAmounts {
		fmt.Fprintf(w, "  other: %s %s\n", a.Currency, formatAmount(a.Amount))
	}
	if resp.ContractValue == nil && len(resp.AdvancePayment) == 0 && len(resp.OtherAmounts) == 0 {
		fmt.Fprintln(w, "  (none)")
	}

	fmt.Fprintln(w, "Parties:")
	if len(resp.Parties) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, p := range resp.Parties {
		fmt.Fprintf(w, "  %-40s  %-18s  %.2f\n", p.Name, p.Role, p.Confidence)
	}
}

func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	return strings.TrimSuffix(s, ".00")
}
