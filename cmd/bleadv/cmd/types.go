package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/xaionaro-go/bleadv"
)

// typesCmd represents the types command
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported advertising data types",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tags := make([]int, 0, len(bleadv.TypeName))
		for tag := range bleadv.TypeName {
			tags = append(tags, int(tag))
		}
		sort.Ints(tags)

		for _, tag := range tags {
			fmt.Printf("0x%02X %s\n", tag, bleadv.TypeName[byte(tag)])
		}
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
