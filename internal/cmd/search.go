package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/pokeknower/pokeknower/internal/core"
	"github.com/pokeknower/pokeknower/internal/core/store"
	"github.com/pokeknower/pokeknower/internal/output"
)

var searchFlags struct {
	query      string
	typ        string
	gen        int
	minAttack  string
	minDefense string
	minStamina string
	page       int
	pageSize   int
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the catalog from the command line",
	Long: `Search the catalog with the same filter semantics as the HTTP API.
Unparseable numeric filters are ignored rather than rejected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := store.Open(ctx, appCfg.Store)
		if err != nil {
			return err
		}
		defer st.Close() // nolint:errcheck

		if err := st.Migrate(ctx); err != nil {
			return err
		}

		catalog, err := st.LoadCatalog(ctx)
		if err != nil {
			return err
		}

		// Route flag values through the same lenient parser the HTTP
		// layer uses, so both surfaces behave identically.
		params := url.Values{}
		params.Set("q", searchFlags.query)
		params.Set("type", searchFlags.typ)
		if searchFlags.gen != 0 {
			params.Set("gen", fmt.Sprint(searchFlags.gen))
		}
		params.Set("minAttack", searchFlags.minAttack)
		params.Set("minDefense", searchFlags.minDefense)
		params.Set("minStamina", searchFlags.minStamina)

		criteria := core.CriteriaFromValues(params)

		pageSize := searchFlags.pageSize
		if pageSize < 1 || pageSize > appCfg.Search.MaxPageSize {
			pageSize = appCfg.Search.DefaultPageSize
		}

		page := core.Search(catalog, criteria, searchFlags.page, pageSize)

		formatter := &output.TableFormatter{}
		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPage(page))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchFlags.query, "query", "q", "", "name substring (case-insensitive)")
	searchCmd.Flags().StringVarP(&searchFlags.typ, "type", "t", "", "type filter (matches main or secondary type)")
	searchCmd.Flags().IntVar(&searchFlags.gen, "gen", 0, "generation filter (1-9)")
	searchCmd.Flags().StringVar(&searchFlags.minAttack, "min-attack", "", "minimum attack")
	searchCmd.Flags().StringVar(&searchFlags.minDefense, "min-defense", "", "minimum defense")
	searchCmd.Flags().StringVar(&searchFlags.minStamina, "min-stamina", "", "minimum stamina")
	searchCmd.Flags().IntVar(&searchFlags.page, "page", 1, "result page (1-indexed)")
	searchCmd.Flags().IntVar(&searchFlags.pageSize, "page-size", 0, "results per page")
}
