// Countries lookup command for the scaffold CLI.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/scaffold/pkg/countries"
)

// Lookup flag values.
var (
	flagISO2  string
	flagISO3  string
	flagPhone string
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Look up the packaged country reference table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := countries.Load()

		var country *countries.Country
		switch {
		case flagISO2 != "":
			country = table.ByISO2(flagISO2)
		case flagISO3 != "":
			country = table.ByISO3(flagISO3)
		case flagPhone != "":
			country = table.ByPhoneCode(flagPhone)
		default:
			fmt.Printf("%d countries loaded\n", len(table.List))
			return nil
		}

		if country == nil {
			fmt.Println(color.New(color.FgYellow).Sprint("no match"))
			return nil
		}
		printCountry(country)
		return nil
	},
}

func init() {
	countriesCmd.Flags().StringVar(&flagISO2, "iso2", "", "look up by ISO alpha-2 code")
	countriesCmd.Flags().StringVar(&flagISO3, "iso3", "", "look up by ISO alpha-3 code")
	countriesCmd.Flags().StringVar(&flagPhone, "phone", "", "look up by international phone code")
	countriesCmd.MarkFlagsMutuallyExclusive("iso2", "iso3", "phone")
}

func printCountry(c *countries.Country) {
	fmt.Printf("%s\n", color.New(color.FgGreen).Sprint(c.Name))
	fmt.Printf("  phone: +%s\n", c.PhoneCode)
	fmt.Printf("  iso2:  %s\n", c.ISO2Code)
	fmt.Printf("  iso3:  %s\n", c.ISO3Code)
}
