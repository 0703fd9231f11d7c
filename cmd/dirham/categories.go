package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dirhamflow/dirhamflow/internal/cli"
	"github.com/dirhamflow/dirhamflow/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Show the category keyword table",
		Long: `Show the merchant keyword table used to categorize transactions.
Categories are matched top to bottom and the first keyword hit wins;
merchants matching nothing fall into Other.`,
		Args: cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(cli.FormatTitle("Categories"))
			for _, rule := range model.CategoryRules {
				fmt.Printf("%s%s\n",
					cli.LabelStyle.Render(string(rule.Category)),
					strings.Join(rule.Keywords, ", "))
			}
			fmt.Printf("%s%s\n",
				cli.LabelStyle.Render(string(model.CategoryOther)),
				cli.SubtleStyle.Render("(fallback)"))
		},
	}
}
