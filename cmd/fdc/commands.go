package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fdcapi/fdcapi/client"
)

// listFlags binds the paging and sorting flags shared by list and search.
type listFlags struct {
	dataTypes  []string
	pageSize   int
	pageNumber int
	sortBy     string
	sortOrder  string
}

func (f *listFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.dataTypes, "data-type", nil, `Data types to include, e.g. "Foundation,SR Legacy"`)
	cmd.Flags().IntVar(&f.pageSize, "page-size", 0, fmt.Sprintf("Results per page (1-%d)", client.MaxPageSize))
	cmd.Flags().IntVar(&f.pageNumber, "page", 0, "Page number, starting at 1")
	cmd.Flags().StringVar(&f.sortBy, "sort-by", "", "Sort field: dataType.keyword, lowercaseDescription.keyword, fdcId, publishedDate")
	cmd.Flags().StringVar(&f.sortOrder, "sort-order", "", "Sort order: asc or desc")
}

func (f *listFlags) options() client.ListOptions {
	o := client.ListOptions{
		PageSize:   f.pageSize,
		PageNumber: f.pageNumber,
		SortBy:     client.SortField(f.sortBy),
		SortOrder:  client.SortOrder(f.sortOrder),
	}
	for _, dt := range f.dataTypes {
		o.DataTypes = append(o.DataTypes, client.DataType(strings.TrimSpace(dt)))
	}
	return o
}

// foodFlags binds the detail flags shared by food and foods.
type foodFlags struct {
	format    string
	nutrients []int
}

func (f *foodFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.format, "format", "", "Record format: abridged or full")
	cmd.Flags().IntSliceVar(&f.nutrients, "nutrients", nil, "Nutrient numbers to include (max 25), e.g. 203,204,205")
}

func (f *foodFlags) options() client.FoodOptions {
	return client.FoodOptions{Format: client.Format(f.format), Nutrients: f.nutrients}
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		for _, part := range strings.Split(a, ",") {
			if part = strings.TrimSpace(part); part == "" {
				continue
			}
			id, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid fdcId %q", part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func newSearchCmd(g *globalFlags) *cobra.Command {
	var lf listFlags
	var brandOwner string

	cmd := &cobra.Command{
		Use:   "search QUERY...",
		Short: "Search foods by keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := client.SearchOptions{ListOptions: lf.options(), BrandOwner: brandOwner}
			query := strings.Join(args, " ")
			return g.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.SearchFoods(ctx, query, opts)
			})
		},
	}
	lf.bind(cmd)
	cmd.Flags().StringVar(&brandOwner, "brand-owner", "", "Restrict Branded results to this brand owner")
	return cmd
}

func newFoodCmd(g *globalFlags) *cobra.Command {
	var ff foodFlags

	cmd := &cobra.Command{
		Use:   "food FDC_ID",
		Short: "Fetch a single food by fdcId",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid fdcId %q", args[0])
			}
			return g.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetFood(ctx, id, ff.options())
			})
		},
	}
	ff.bind(cmd)
	return cmd
}

func newFoodsCmd(g *globalFlags) *cobra.Command {
	var ff foodFlags

	cmd := &cobra.Command{
		Use:   "foods FDC_ID...",
		Short: fmt.Sprintf("Fetch up to %d foods by fdcId", client.MaxFdcIDs),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			return g.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetFoods(ctx, ids, ff.options())
			})
		},
	}
	ff.bind(cmd)
	return cmd
}

func newListCmd(g *globalFlags) *cobra.Command {
	var lf listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List foods in abridged form, one page at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.ListFoods(ctx, lf.options())
			})
		},
	}
	lf.bind(cmd)
	return cmd
}

func newSummaryCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "summary FDC_ID",
		Short: "Show calories and macronutrients of a food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid fdcId %q", args[0])
			}
			return g.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				return c.GetFoodSummary(ctx, id)
			})
		},
	}
}

func newSpecCmd(g *globalFlags) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "spec",
		Short: "Print the API's OpenAPI document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(ctx context.Context, c *client.Client) (any, error) {
				var spec *client.APISpec
				var err error
				if asYAML {
					spec, err = c.YAMLSpec(ctx)
				} else {
					spec, err = c.JSONSpec(ctx)
				}
				if err != nil {
					return nil, err
				}
				return spec.Raw, nil
			})
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Fetch the YAML document instead of JSON")
	return cmd
}
