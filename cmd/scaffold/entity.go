// Entity demo commands for the scaffold CLI.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scaffold/pkg/scaffold"
	"github.com/mesh-intelligence/scaffold/pkg/types"
)

// Entity command flag values.
var (
	flagCapabilities []string
	flagID           string
	flagTags         []string
	flagNotes        []string
)

var entityCmd = &cobra.Command{
	Use:   "entity",
	Short: "Inspect and construct scaffolded entities",
}

var entityFieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Print the augmented field list for a capability set",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := scaffold.Augment(nil, flagCapabilities...)
		if err != nil {
			return err
		}
		for _, f := range fields {
			fmt.Printf("%s %s\n", color.New(color.FgGreen).Sprint(f.Name), f.Type)
		}
		return nil
	},
}

var entityNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Construct a demo entity and print its canonical JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := scaffold.Define(nil, flagCapabilities...)
		if err != nil {
			return err
		}

		explicit := map[string]any{}
		if flagID != "" {
			explicit["id"] = flagID
		}
		if len(flagTags) > 0 {
			tags := types.Tags{}
			for _, tag := range flagTags {
				tags.AddTag(tag)
			}
			explicit["tags"] = tags
		}
		if len(flagNotes) > 0 {
			notes := types.Notes{}
			for _, note := range flagNotes {
				notes.InsertNote("scaffold", []byte(note), cfg.NoteAccess)
			}
			explicit["notes"] = notes
		}

		out, err := types.Serialize(def.Initializer(explicit))
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{entityFieldsCmd, entityNewCmd} {
		c.Flags().StringSliceVar(&flagCapabilities, "capabilities", nil,
			"capabilities to scaffold (addresses, email_addresses, metadata, notes, phone_numbers, tags)")
	}
	entityNewCmd.Flags().StringVar(&flagID, "id", "", "explicit entity id (wins over the generated default)")
	entityNewCmd.Flags().StringSliceVar(&flagTags, "tag", nil, "tag to add (repeatable)")
	entityNewCmd.Flags().StringSliceVar(&flagNotes, "note", nil, "note content to add (repeatable)")

	entityCmd.AddCommand(entityFieldsCmd)
	entityCmd.AddCommand(entityNewCmd)
}
