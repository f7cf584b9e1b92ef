// Package output renders CLI results for humans.
package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pokeknower/pokeknower/internal/core"
	"github.com/pokeknower/pokeknower/internal/core/predict"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct{}

// FormatPage renders one page of search results.
func (f *TableFormatter) FormatPage(page core.Page) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Name", "Type", "ATK", "DEF", "HP", "SPD", "Weight", "Height"})

	for _, p := range page.Items {
		t.AppendRow(table.Row{
			p.Number,
			p.Name,
			typeLabel(p),
			p.Attack,
			p.Defense,
			p.Stamina,
			p.Speed,
			fmt.Sprintf("%.1f kg", p.WeightKG),
			fmt.Sprintf("%.1f m", p.HeightM),
		})
	}

	t.AppendFooter(table.Row{
		"",
		fmt.Sprintf("page %d/%d", page.Page, page.TotalPages),
		fmt.Sprintf("%d matches", page.TotalCount),
		"", "", "", "", "", "",
	})

	return t.Render()
}

// FormatPrediction renders a prediction with its ranked alternatives.
func (f *TableFormatter) FormatPrediction(result *predict.Result) string {
	if result == nil {
		return ""
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Rank", "Species", "Confidence"})
	for i, alt := range result.Alternatives {
		t.AppendRow(table.Row{i + 1, alt.Label, fmt.Sprintf("%.2f%%", alt.Confidence)})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Prediction: %s (%.2f%%, %s)\n", result.Label, result.Confidence, result.Source)
	if result.Stats != nil {
		fmt.Fprintf(&b, "Stats: #%d %s | ATK %d / DEF %d / HP %d\n",
			result.Stats.Number, typeLabel(*result.Stats),
			result.Stats.Attack, result.Stats.Defense, result.Stats.Stamina)
	}
	b.WriteString(t.Render())
	return b.String()
}

func typeLabel(p core.Pokemon) string {
	if p.SecondaryType != "" {
		return fmt.Sprintf("%s/%s", p.MainType, p.SecondaryType)
	}
	return string(p.MainType)
}
