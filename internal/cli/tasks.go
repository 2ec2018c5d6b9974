package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"git.sr.ht/~jakintosh/tasklist/internal/domain"
)

func newAddCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name...>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, added, err := a.tasks.AddTask(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to add: task name is blank.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added #%d %s\n", task.ID, task.Name)
			return nil
		},
	}
}

func newToggleCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Mark a task complete, or incomplete again",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			toggled, err := a.tasks.ToggleTask(id)
			if err != nil {
				return err
			}
			if !toggled {
				fmt.Fprintf(cmd.OutOrStdout(), "No task #%d.\n", id)
				return nil
			}
			task, _ := domain.NewTaskList(a.tasks.Tasks()).Find(id)
			fmt.Fprintf(cmd.OutOrStdout(), "#%d %s is now %s\n", id, task.Name, status(task))
			return nil
		},
	}
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			deleted, err := a.tasks.DeleteTask(id)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "No task #%d.\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted #%d\n", id)
			return nil
		},
	}
}

func newListCommand(a *app) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := domain.ParseFilter(filter)
			if err != nil {
				return fmt.Errorf("%w: %q (want all, todo or done)", err, filter)
			}
			a.tasks.SetFilter(f)
			printTasks(cmd.OutOrStdout(), a.tasks.VisibleTasks())
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "which tasks to show: all, todo or done")
	return cmd
}

func printTasks(w io.Writer, tasks []domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks.")
		return
	}
	for _, row := range domain.Numbered(tasks) {
		mark := " "
		if row.Completed {
			mark = "x"
		}
		fmt.Fprintf(w, "%d. [%s] %s (#%d)\n", row.Index, mark, row.Name, row.ID)
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}

func status(t domain.Task) string {
	if t.Completed {
		return "done"
	}
	return "to do"
}
