package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sallie-oss/sallie/internal/event"
	"github.com/sallie-oss/sallie/internal/prefs"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage user preferences",
	Long:  `Commands for reading and editing the preferences document.`,
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all preferences",
	RunE:  runPrefsShow,
}

var prefsGetCmd = &cobra.Command{
	Use:   "get <field>",
	Short: "Print one preference value",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrefsGet,
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set one preference value",
	Args:  cobra.ExactArgs(2),
	RunE:  runPrefsSet,
}

var prefsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the preferences file location",
	RunE:  runPrefsPath,
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsPathCmd)
}

func runPrefsShow(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	p, err := prefs.LoadFile(rt.cfg.Prefs.Path)
	if err != nil {
		return err
	}

	fmt.Println("Preferences:")
	fmt.Println("------------")
	fmt.Printf("  display_name:          %s\n", p.DisplayName)
	fmt.Printf("  persona:               %s\n", p.Persona)
	fmt.Printf("  locale:                %s\n", p.Locale)
	fmt.Printf("  notifications_enabled: %t\n", p.NotificationsEnabled)
	fmt.Printf("  proactive_suggestions: %t\n", p.ProactiveSuggestions)
	if p.QuietHoursStart != "" {
		fmt.Printf("  quiet_hours:           %s - %s\n", p.QuietHoursStart, p.QuietHoursEnd)
	}
	return nil
}

func runPrefsGet(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	p, err := prefs.LoadFile(rt.cfg.Prefs.Path)
	if err != nil {
		return err
	}

	value, err := p.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	p, err := prefs.LoadFile(rt.cfg.Prefs.Path)
	if err != nil {
		return err
	}

	field, value := args[0], args[1]
	if err := p.Set(field, value); err != nil {
		return err
	}
	if err := p.SaveFile(rt.cfg.Prefs.Path); err != nil {
		return err
	}

	if rt.bus != nil {
		_ = rt.bus.Emit(event.NewEvent(event.PrefsSaved, map[string]interface{}{"field": field}))
	}
	fmt.Printf("Set %s = %s\n", field, value)
	return nil
}

func runPrefsPath(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	fmt.Println(rt.cfg.Prefs.Path)
	return nil
}
