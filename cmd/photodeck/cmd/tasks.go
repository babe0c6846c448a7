package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/photodeck/photodeck-go/api"
)

const watchInterval = 2 * time.Second

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List processing tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := conn.Tasks(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tASSET\tSTATUS\tRESULT")
		for _, task := range list {
			result := ""
			if task.ResultPath != nil {
				result = *task.ResultPath
			}
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", task.ID, task.ImageAssetID, task.Status, result)
		}
		return w.Flush()
	},
}

var taskCmd = &cobra.Command{
	Use:   "task <task-id>",
	Short: "Show one processing task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "task")
		if err != nil {
			return err
		}
		task, err := conn.Task(cmd.Context(), id)
		if err != nil {
			return err
		}
		printTask(task)
		return nil
	},
}

var processCmd = &cobra.Command{
	Use:   "process <asset-id>",
	Short: "Start the processing pipeline for an uploaded asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assetID, err := parseID(args[0], "asset")
		if err != nil {
			return err
		}
		tenantID := session.Current().TenantID
		if tenantID == nil {
			return errors.New("no tenant selected; run `photodeck tenants` and `photodeck use <id>`")
		}

		task, err := conn.CreateTask(cmd.Context(), api.TaskCreateRequest{
			TenantID:     *tenantID,
			ImageAssetID: assetID,
		})
		if err != nil {
			return err
		}
		fmt.Printf("task %d accepted (%s); follow it with `photodeck watch %d`\n", task.ID, task.Status, task.ID)
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch <task-id>",
	Short: "Poll a task until it completes or fails",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "task")
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		for {
			task, err := conn.Task(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("task %d: %s\n", task.ID, task.Status)
			if task.Status.Terminal() {
				printTask(task)
				if task.Status == api.TaskFailed {
					return errors.New("task failed")
				}
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(watchInterval):
			}
		}
	},
}

func parseID(arg, kind string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", kind, arg)
	}
	return id, nil
}

func printTask(task api.Task) {
	fmt.Printf("task:\t%d\nasset:\t%d\nstatus:\t%s\n", task.ID, task.ImageAssetID, task.Status)
	if task.ResultPath != nil {
		fmt.Printf("result:\t%s\n", *task.ResultPath)
	}
	if task.ErrorMessage != nil {
		fmt.Printf("error:\t%s\n", *task.ErrorMessage)
	}
}

func init() {
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(watchCmd)
}
