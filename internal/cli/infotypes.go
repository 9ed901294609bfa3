package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var infoTypesCmd = &cobra.Command{
	Use:   "infotypes",
	Short: "Info type reference",
}

type infoTypeGroup struct {
	Category string
	Names    []string
}

var knownInfoTypes = []infoTypeGroup{
	{
		Category: "contact",
		Names: []string{
			"EMAIL_ADDRESS",
			"PHONE_NUMBER",
			"US_TOLLFREE_PHONE_NUMBER",
		},
	},
	{
		Category: "government",
		Names: []string{
			"US_SOCIAL_SECURITY_NUMBER",
			"US_PASSPORT",
			"US_DRIVERS_LICENSE_NUMBER",
			"UK_NATIONAL_INSURANCE_NUMBER",
			"CANADA_SIN",
		},
	},
	{
		Category: "financial",
		Names: []string{
			"CREDIT_CARD_NUMBER",
			"IBAN_CODE",
			"SWIFT_CODE",
			"US_BANK_ROUTING_MICR",
		},
	},
	{
		Category: "health",
		Names: []string{
			"US_HEALTHCARE_NPI",
			"US_DEA_NUMBER",
			"UK_NATIONAL_HEALTH_SERVICE_NUMBER",
		},
	},
	{
		Category: "network",
		Names: []string{
			"IP_ADDRESS",
			"MAC_ADDRESS",
			"IMEI_HARDWARE_ID",
		},
	},
	{
		Category: "image",
		Names: []string{
			"FACE",
		},
	},
}

var infoTypesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List commonly used info type names",
	Run: func(cmd *cobra.Command, args []string) {
		for _, group := range knownInfoTypes {
			fmt.Fprintf(os.Stdout, "%s:\n", group.Category)
			for _, name := range group.Names {
				fmt.Fprintf(os.Stdout, "  - %s\n", name)
			}
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintln(os.Stdout, "Names are passed through as-is; the service accepts info types beyond this list.")
	},
}

func init() {
	infoTypesCmd.AddCommand(infoTypesListCmd)
}
