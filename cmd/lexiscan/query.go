// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lexiscan/internal/store"
	"github.com/pdiddy/lexiscan/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query [id]",
	Short: "Query archived extraction results",
	Long: `Query lists archived extractions, newest first. Pass an ID for the full
record of one extraction, or --party to find documents naming a given
contracting party (matching ignores case and legal suffixes).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("party", "", "find documents naming this contracting party")
	queryCmd.Flags().Int("limit", 0, "maximum number of results")
	queryCmd.Flags().Bool("json", false, "print results as JSON")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	party, _ := cmd.Flags().GetString("party")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg := pipelineConfig()
	st, err := store.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()

	if len(args) == 1 {
		rec, err := st.Get(ctx, args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	var records []*types.DocumentRecord
	if party != "" {
		records, err = st.FindByParty(ctx, party)
	} else {
		records, err = st.List(ctx, limit)
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		if records == nil {
			records = []*types.DocumentRecord{}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-24s  %-20s  %s\n", "ID", "Filename", "Created", "Parties")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, rec := range records {
		names := make([]string, 0, len(rec.Response.Parties))
		for _, p := range rec.Response.Parties {
			names = append(names, p.Name)
		}
		parties := strings.Join(names, "; ")
		if len(parties) > 40 {
			parties = parties[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-24s  %-20s  %s\n",
			rec.ID, truncate(rec.Filename, 24), rec.CreatedAt.Format("2006-01-02 15:04:05"), parties)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
