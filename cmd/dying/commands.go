package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dying-condition/internal/domain/character"
	"github.com/KirkDiggler/dying-condition/internal/events"
)

func newCreateCmd(app *application) *cobra.Command {
	var (
		name       string
		maxHP      int
		exhaustion int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a character at full hit points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			char := &character.Character{
				Name:       name,
				HitPoints:  character.HitPoints{Value: maxHP, Max: maxHP},
				Exhaustion: exhaustion,
				State:      character.StateAlive,
			}
			if err := app.provider.CharacterRepository.Create(cmd.Context(), char); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), char.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Character name")
	cmd.Flags().IntVar(&maxHP, "max-hp", 10, "Maximum hit points")
	cmd.Flags().IntVar(&exhaustion, "exhaustion", 0, "Starting exhaustion level")

	return cmd
}

// characterView is what show prints
type characterView struct {
	*character.Character
	Markers []string `json:"markers"`
}

func newShowCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "show <character-id>",
		Short: "Print a character and its markers as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCharacter(cmd.Context(), app, cmd.OutOrStdout(), args[0])
		},
	}
}

func printCharacter(ctx context.Context, app *application, out io.Writer, id string) error {
	char, err := app.provider.CharacterRepository.Get(ctx, id)
	if err != nil {
		return err
	}
	names, err := app.provider.ConditionService.CurrentMarkers(ctx, id)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(characterView{Character: char, Markers: names})
}

func newUpdateCmd(app *application) *cobra.Command {
	var publish bool

	cmd := &cobra.Command{
		Use:   "update <character-id> <attribute> <value>",
		Short: "Write an attribute and react to the change",
		Long: `Writes one attribute, e.g. "attributes.hp.value", and announces the change.
By default the change is handled in this process. With --publish it is sent
to the updates channel for a running "dying listen" to pick up.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, path := args[0], character.AttributePath(args[1])

			if err := app.provider.CharacterRepository.WriteAttribute(ctx, id, path, args[2]); err != nil {
				return err
			}

			event := events.NewAttributesChangedEvent(id, path)
			if publish {
				if app.redisClient == nil {
					return fmt.Errorf("--publish needs a reachable REDIS_URL")
				}
				return events.NewPublisher(app.redisClient, app.cfg.Redis.Channel).Publish(ctx, event)
			}

			if err := app.provider.Bus.Emit(ctx, event); err != nil {
				return err
			}
			return printCharacter(ctx, app, cmd.OutOrStdout(), id)
		},
	}

	cmd.Flags().BoolVar(&publish, "publish", false, "Publish the change instead of handling it here")

	return cmd
}

func newDamageCmd(app *application) *cobra.Command {
	var multiplier float64

	cmd := &cobra.Command{
		Use:   "damage <character-id> <amount>",
		Short: "Apply damage, negative amounts heal hit points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			if err := app.provider.DyingService.ApplyDamage(cmd.Context(), args[0], amount, multiplier); err != nil {
				return err
			}
			return printCharacter(cmd.Context(), app, cmd.OutOrStdout(), args[0])
		},
	}

	cmd.Flags().Float64Var(&multiplier, "multiplier", 1, "Resistance or vulnerability multiplier")

	return cmd
}

func newSaveCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "save <character-id>",
		Short: "Roll a death saving throw",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := app.provider.DeathSaveService.RollDeathSave(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if outcome == nil {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no death save needed")
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), outcome.String()); err != nil {
				return err
			}
			return printCharacter(cmd.Context(), app, cmd.OutOrStdout(), args[0])
		},
	}
}

// newOperationCmds exposes the state machine's direct transitions
func newOperationCmds(app *application) []*cobra.Command {
	ops := []struct {
		use   string
		short string
		run   func(ctx context.Context, id string) error
	}{
		{"kill", "Kill a character outright", func(ctx context.Context, id string) error {
			return app.provider.DyingService.Kill(ctx, id)
		}},
		{"stabilize", "Stabilize a dying character", func(ctx context.Context, id string) error {
			return app.provider.DyingService.Stabilize(ctx, id)
		}},
		{"heal", "Bring a character back to alive", func(ctx context.Context, id string) error {
			return app.provider.DyingService.Heal(ctx, id)
		}},
		{"injure", "Knock a character down or deepen dying", func(ctx context.Context, id string) error {
			return app.provider.DyingService.Injure(ctx, id)
		}},
		{"sync", "Re-derive the state from hit points and dying", func(ctx context.Context, id string) error {
			return app.provider.DyingService.UpdateState(ctx, id)
		}},
	}

	cmds := make([]*cobra.Command, 0, len(ops))
	for _, op := range ops {
		op := op
		cmds = append(cmds, &cobra.Command{
			Use:   op.use + " <character-id>",
			Short: op.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := op.run(cmd.Context(), args[0]); err != nil {
					return err
				}
				return printCharacter(cmd.Context(), app, cmd.OutOrStdout(), args[0])
			},
		})
	}
	return cmds
}
