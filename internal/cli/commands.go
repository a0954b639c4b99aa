package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"toyinventory/internal/core"
	"toyinventory/pkg/domain"
)

func listCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every toy in inventory order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printToys(cmd, s.inv.List(), "(no toys in inventory)")
			return nil
		},
	}
}

func searchCmd(s *session) *cobra.Command {
	var serial, name, category string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search by serial number, name or category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := core.Criterion{Field: core.BySerialNumber, Value: serial}
			switch {
			case cmd.Flags().Changed("name"):
				c = core.Criterion{Field: core.ByName, Value: name}
			case cmd.Flags().Changed("category"):
				c = core.Criterion{Field: core.ByCategory, Value: category}
			}
			toys, err := s.inv.Search(c)
			if err != nil {
				return err
			}
			printToys(cmd, toys, "no matching toys")
			return nil
		},
	}
	cmd.Flags().StringVar(&serial, "serial", "", "exact 10 digit serial number")
	cmd.Flags().StringVar(&name, "name", "", "case-insensitive part of the name")
	cmd.Flags().StringVar(&category, "category", "", "Figure|Animal|Puzzle|BoardGame")
	cmd.MarkFlagsOneRequired("serial", "name", "category")
	cmd.MarkFlagsMutuallyExclusive("serial", "name", "category")
	return cmd
}

func buyCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <serial>",
		Short: "Sell one unit of a toy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.inv.Purchase(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Toy.Name(), res)
			return s.save(cmd)
		},
	}
}

func addCmd(s *session) *cobra.Command {
	var f domain.Fields
	var kind string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a toy; the serial number prefix selects its category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if kind != "" {
				k, err := domain.ParseKind(kind)
				if err != nil {
					return err
				}
				f.Kind = k
			}
			toy, err := s.inv.AddFields(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added: %s\n", toy)
			return s.save(cmd)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&kind, "kind", "", "expected category; must agree with the serial prefix")
	fl.StringVar(&f.SerialNumber, "serial", "", "10 digit serial number")
	fl.StringVar(&f.Name, "name", "", "toy name")
	fl.StringVar(&f.Brand, "brand", "", "brand")
	fl.StringVar(&f.Price, "price", "", "unit price")
	fl.StringVar(&f.AvailableCount, "count", "", "units in stock")
	fl.StringVar(&f.AgeAppropriate, "age", "", "minimum age")
	fl.StringVar(&f.Classification, "classification", "", "figure classification: A|D|H")
	fl.StringVar(&f.Material, "material", "", "animal material")
	fl.StringVar(&f.Size, "size", "", "animal size: S|M|L")
	fl.StringVar(&f.PuzzleType, "puzzle-type", "", "puzzle type: M|C|L|T|R")
	fl.StringVar(&f.MinPlayers, "min-players", "", "board game minimum players")
	fl.StringVar(&f.MaxPlayers, "max-players", "", "board game maximum players")
	fl.StringVar(&f.Designers, "designers", "", "comma separated board game designers")
	_ = cmd.MarkFlagRequired("serial")
	return cmd
}

func removeCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <serial>",
		Short: "Remove a toy regardless of stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toy, err := s.inv.Remove(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed: %s\n", toy)
			return s.save(cmd)
		},
	}
}

func suggestCmd(s *session) *cobra.Command {
	var (
		minAge   int
		maxPrice string
		category string
	)
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest gifts by minimum age, maximum price and category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var fc core.FilterCriteria
			if cmd.Flags().Changed("min-age") {
				if err := domain.CheckNonNegative("min age", minAge); err != nil {
					return err
				}
				fc.MinAge = &minAge
			}
			if cmd.Flags().Changed("max-price") {
				p, err := domain.ParseNonNegativePrice("max price", maxPrice)
				if err != nil {
					return err
				}
				fc.MaxPrice = &p
			}
			if cmd.Flags().Changed("category") {
				k, err := domain.ParseKind(category)
				if err != nil {
					return err
				}
				fc.Category = &k
			}
			printToys(cmd, s.inv.Filter(fc), "no toys match")
			return nil
		},
	}
	cmd.Flags().IntVar(&minAge, "min-age", 0, "minimum age appropriate")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "maximum price")
	cmd.Flags().StringVar(&category, "category", "", "Figure|Animal|Puzzle|BoardGame")
	return cmd
}

func checkCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report records that could not be loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, d := range s.diags {
				fmt.Fprintln(out, d.String())
			}
			if n := len(s.diags); n > 0 {
				return fmt.Errorf("%d invalid record(s)", n)
			}
			fmt.Fprintf(out, "%d records ok\n", s.inv.Len())
			return nil
		},
	}
}
