package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dylan-marx/rangesum/internal/ranges"
	"github.com/spf13/cobra"
)

func (a *app) newExpandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expand [summary...]",
		Short: "Expand a range summary back into a list",
		Example: "  rangesum expand \"1, 3, 6-8\"\n" +
			"  rangesum expand -- -3--1",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExpand(cmd, args)
		},
	}
}

func (a *app) runExpand(cmd *cobra.Command, args []string) error {
	validate := func(s string) error {
		_, err := ranges.Expand(s)
		return err
	}

	input, err := a.readInput(cmd, args, summaryPrompt, validate)
	if handled, err := a.handleAbort(err); handled {
		return err
	}
	if err != nil {
		return err
	}

	set, err := ranges.Expand(input)
	if err != nil {
		return fmt.Errorf("failed to expand summary: %w", err)
	}

	values := set.Values()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	a.logger.Debug("Expanded", "values", len(values))
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, ranges.Delimiter))
	return nil
}
