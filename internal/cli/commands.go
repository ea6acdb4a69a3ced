package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucvt/tick/internal/session"
	"github.com/lucvt/tick/internal/ui"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a new item (text can be multiple words)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, st, err := app.open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			it, err := sess.Add(cmd.Context(), strings.Join(args, " "))
			if errors.Is(err, session.ErrEmptyText) {
				return errUsage("add: empty text")
			}
			if err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("added #%d", it.ID))
			return nil
		},
	}
}

func newLsCmd(app *App) *cobra.Command {
	var group bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, st, err := app.open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			ui.Panel(listingLines(sess.Items(), group))
			return nil
		},
	}
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle done for the item with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errUsage("done: not a number: " + args[0])
			}
			sess, st, err := app.open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if !sess.Toggle(cmd.Context(), id) {
				ui.Hint("Hint: run `tick ls` to see valid ids")
				return errUsage(fmt.Sprintf("done: no item with id %d", id))
			}
			ui.OK(fmt.Sprintf("toggled #%d", id))
			return nil
		},
	}
}

func newRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove the item with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errUsage("rm: not a number: " + args[0])
			}
			sess, st, err := app.open(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if !sess.Remove(cmd.Context(), id) {
				ui.Hint("Hint: run `tick ls` to see valid ids")
				return errUsage(fmt.Sprintf("rm: no item with id %d", id))
			}
			ui.OK(fmt.Sprintf("removed #%d", id))
			return nil
		},
	}
}
