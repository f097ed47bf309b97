package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sallie-oss/sallie/internal/repo"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long:  `Commands for tracking the user's to-do items.`,
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent tasks",
	RunE:  runTaskList,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskRm,
}

var taskListLimit int

func init() {
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskRmCmd)

	taskListCmd.Flags().IntVarP(&taskListLimit, "limit", "n", 20, "maximum tasks to list")
}

// openRepo builds the repository manager from the runtime config.
func openRepo(rt *runtime) (*repo.Manager, error) {
	return repo.NewManager(rt.cfg.Repo.Driver, rt.cfg.Repo.Path, rt.bus)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	mgr, err := openRepo(rt)
	if err != nil {
		return err
	}
	defer mgr.Close()

	task, err := mgr.CreateTask(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Added task %s: %s\n", task.ID, task.Title)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	mgr, err := openRepo(rt)
	if err != nil {
		return err
	}
	defer mgr.Close()

	tasks, err := mgr.ListTasks(taskListLimit)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks yet. Add one with 'sallie task add'.")
		return nil
	}

	fmt.Println("Tasks:")
	fmt.Println("------")
	for _, task := range tasks {
		marker := " "
		if task.IsDone() {
			marker = "x"
		}
		fmt.Printf("  [%s] %s  %s\n", marker, task.ID, task.Title)
	}
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	mgr, err := openRepo(rt)
	if err != nil {
		return err
	}
	defer mgr.Close()

	task, err := mgr.CompleteTask(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Done: %s\n", task.Title)
	return nil
}

func runTaskRm(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	mgr, err := openRepo(rt)
	if err != nil {
		return err
	}
	defer mgr.Close()

	if err := mgr.DeleteTask(args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}
