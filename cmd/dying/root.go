package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(app *application) *cobra.Command {
	root := &cobra.Command{
		Use:   "dying",
		Short: "Drive the dying condition of characters",
		Long: `dying keeps a character's dying state, conditions and markers in step with
its hit points. Set REDIS_URL to share state with other processes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.ready() {
				return nil
			}
			return app.init(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.close()
		},
	}

	root.AddCommand(
		newCreateCmd(app),
		newShowCmd(app),
		newUpdateCmd(app),
		newDamageCmd(app),
		newSaveCmd(app),
		newListenCmd(app),
	)
	root.AddCommand(newOperationCmds(app)...)

	return root
}
