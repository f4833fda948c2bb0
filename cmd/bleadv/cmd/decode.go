package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xaionaro-go/bleadv"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode an advertising payload given as hex",
	Long: `Decode an advertising payload given as a hex string. Spaces, colons
and dashes between octets are ignored.

Example:
  bleadv decode 0201060709476f70686572`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := parseHex(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse the payload: %w", err)
		}

		for _, result := range bleadv.DispatchAll(cmd.Context(), buf) {
			name, ok := bleadv.TypeName[result.Type]
			if !ok {
				name = "(unassigned)"
			}
			if result.Err != nil {
				fmt.Printf("0x%02X %-42s error: %v\n", result.Type, name, result.Err)
				continue
			}
			fmt.Printf("0x%02X %-42s %+v\n", result.Type, name, result.Value)
		}
		return nil
	},
}

func parseHex(s string) ([]byte, error) {
	r := strings.NewReplacer(" ", "", ":", "", "-", "", "0x", "", "0X", "")
	return hex.DecodeString(r.Replace(s))
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
