package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/indieorganic/OpenCello/profile"
)

var profileInitForce bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage mold parameter profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var profileInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the reference cello profile",
	Long: `Writes a profile file seeded with the reference cello parameters.
Edit it to fit the instrument, then point the mold command at it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := profile.DefaultFileName
		if len(args) > 0 {
			path = args[0]
		}
		if !profileInitForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, pass --force to overwrite", path)
			}
		}
		if err := profile.Default().Save(path); err != nil {
			return err
		}
		fmt.Printf("✅ Profile written: %s\n", path)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Print a profile after validation",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := profile.DefaultFileName
		if len(args) > 0 {
			path = args[0]
		}
		prof, err := profile.Load(path)
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(4)
		defer enc.Close()
		return enc.Encode(prof)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileInitCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileInitCmd.Flags().BoolVar(&profileInitForce, "force", false, "Overwrite an existing profile")
}
