package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sallie-oss/sallie/internal/memory"
)

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Manage the hierarchical memory store",
	Long:  `Commands for inspecting and editing stored memories.`,
}

var memorySetCmd = &cobra.Command{
	Use:   "set <level> <key> <value>",
	Short: "Store a value under a hierarchy level",
	Args:  cobra.ExactArgs(3),
	RunE:  runMemorySet,
}

var memoryGetCmd = &cobra.Command{
	Use:   "get <level> <key>",
	Short: "Look up a stored value",
	Args:  cobra.ExactArgs(2),
	RunE:  runMemoryGet,
}

var memoryRmCmd = &cobra.Command{
	Use:   "rm <level> <key>",
	Short: "Remove a stored value",
	Args:  cobra.ExactArgs(2),
	RunE:  runMemoryRm,
}

var memoryLevelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List hierarchy levels and entry counts",
	RunE:  runMemoryLevels,
}

var memoryExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the store as JSON lines to a file or stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMemoryExport,
}

var memoryImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the store with a previously exported snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runMemoryImport,
}

var memoryCheckpointCmd = &cobra.Command{
	Use:   "checkpoint",
	Short: "Save a timestamped checkpoint of the store",
	RunE:  runMemoryCheckpoint,
}

func init() {
	memoryCmd.AddCommand(memorySetCmd)
	memoryCmd.AddCommand(memoryGetCmd)
	memoryCmd.AddCommand(memoryRmCmd)
	memoryCmd.AddCommand(memoryLevelsCmd)
	memoryCmd.AddCommand(memoryExportCmd)
	memoryCmd.AddCommand(memoryImportCmd)
	memoryCmd.AddCommand(memoryCheckpointCmd)
}

// openMemory builds a restored memory manager from the runtime config.
func openMemory(rt *runtime) (*memory.Manager, error) {
	mgr, err := memory.NewManager(rt.cfg.Memory.Driver, rt.cfg.Memory.Path, rt.bus)
	if err != nil {
		return nil, err
	}
	if err := mgr.Restore(); err != nil {
		mgr.Close()
		return nil, err
	}
	return mgr, nil
}

func runMemorySet(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	mgr, err := openMemory(rt)
	if err != nil {
		return err
	}
	defer mgr.Close()

	level, key, value := args[0], args[1], args[2]
	if err := mgr.Store().Insert(level, key, value); err != nil {
		return err
	}
	if err := mgr.Flush(); err != nil {
		return err
	}

	rt.logger.Debug("memory stored", "level", level, "key", key)
	fmt.Printf("Stored %s/%s\n", level, key)
	return nil
}

func runMemoryGet(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	mgr, err := openMemory(rt)
	if err != nil {
		return err
	}
	defer mgr.Close()

	level, key := args[0], args[1]
	value, err := mgr.Store().Lookup(level, key)
	if errors.Is(err, memory.ErrNotFound) {
		fmt.Printf("No memory stored under %s/%s\n", level, key)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(value)
	return nil
}

func runMemoryRm(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	mgr, err := openMemory(rt)
	if err != nil {
		return err
	}
	defer mgr.Close()

	level, key := args[0], args[1]
	if mgr.Store().Remove(level, key) {
		if err := mgr.Flush(); err != nil {
			return err
		}
		fmt.Printf("Removed %s/%s\n", level, key)
	} else {
		fmt.Printf("Nothing stored under %s/%s\n", level, key)
	}
	return nil
}

func runMemoryLevels(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	mgr, err := openMemory(rt)
	if err != nil {
		return err
	}
	defer mgr.Close()

	store := mgr.Store()
	levels := store.Levels()
	if len(levels) == 0 {
		fmt.Println("Memory is empty.")
		return nil
	}

	counts := make(map[string]int)
	for _, e := range store.Snapshot() {
		counts[e.Level]++
	}

	fmt.Println("Hierarchy Levels:")
	fmt.Println("-----------------")
	for _, level := range levels {
		fmt.Printf("  %-12s %d entries\n", level, counts[level])
	}
	return nil
}

func runMemoryExport(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	mgr, err := openMemory(rt)
	if err != nil {
		return err
	}
	defer mgr.Close()

	out := os.Stdout
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return mgr.Store().Persist(out)
}

func runMemoryImport(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	mgr, err := openMemory(rt)
	if err != nil {
		return err
	}
	defer mgr.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	if err := mgr.Store().Load(f); err != nil {
		return err
	}
	if err := mgr.Flush(); err != nil {
		return err
	}

	fmt.Printf("Imported %d entries\n", mgr.Store().Len())
	return nil
}

func runMemoryCheckpoint(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	mgr, err := openMemory(rt)
	if err != nil {
		return err
	}
	defer mgr.Close()

	path, err := mgr.SaveCheckpoint(".sallie/checkpoints")
	if err != nil {
		return err
	}
	fmt.Printf("Checkpoint saved: %s\n", path)
	return nil
}
