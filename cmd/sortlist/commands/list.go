package commands

import (
	"fmt"
	"strings"

	"github.com/bradenaw/juniper/xslices"
	"github.com/spf13/cobra"

	"github.com/bradenaw/sortedlist"
)

func newInsertCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "insert VALUE...",
		Short: "Insert values in sorted order and print the list",
		RunE: func(_ *cobra.Command, args []string) error {
			l, err := s.listOf(args)
			if err != nil {
				return err
			}
			return s.render(l)
		},
	}
}

func newDeleteCommand(s *session) *cobra.Command {
	var (
		value string
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "delete --value V VALUE...",
		Short: "Build a list, delete a value from it, and print what is left",
		RunE: func(_ *cobra.Command, args []string) error {
			l, err := s.listOf(args)
			if err != nil {
				return err
			}
			target, err := s.parse(value)
			if err != nil {
				return err
			}
			n, err := l.Delete(target, all)
			if err != nil {
				return err
			}
			s.logger.Info("deleted", "value", target, "nodes", n)
			return s.render(l)
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "value to delete")
	cmd.Flags().BoolVar(&all, "all", true, "delete every node holding the value, not just one")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newSearchCommand(s *session) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "search --value V VALUE...",
		Short: "Build a list and print every node holding a value",
		RunE: func(_ *cobra.Command, args []string) error {
			l, err := s.listOf(args)
			if err != nil {
				return err
			}
			target, err := s.parse(value)
			if err != nil {
				return err
			}
			found, err := l.Search(target)
			if err != nil {
				return err
			}
			s.logger.Info("found", "value", target, "nodes", len(found))
			lines := xslices.Map(found, sortedlist.Node[sortedlist.Value].String)
			_, err = fmt.Fprintln(s.out, strings.Join(lines, "\n"))
			return err
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "value to search for")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newMergeCommand(s *session) *cobra.Command {
	var left, right []string

	cmd := &cobra.Command{
		Use:   "merge --left a,b,c --right d,e,f",
		Short: "Build two lists, merge the second into the first, and print the result",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			l, err := s.listOf(left)
			if err != nil {
				return err
			}
			r, err := s.listOf(right)
			if err != nil {
				return err
			}
			merged, err := l.Merge(r)
			if err != nil {
				return err
			}
			s.logger.Info("merged", "left", len(left), "right", len(right), "nodes", merged.Len())
			return s.render(merged)
		},
	}

	cmd.Flags().StringSliceVar(&left, "left", nil, "values of the first list")
	cmd.Flags().StringSliceVar(&right, "right", nil, "values of the second list")

	return cmd
}
