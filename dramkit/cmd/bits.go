package cmd

import (
	"fmt"

	"github.com/sarchlab/dramkit/bitfield"
	"github.com/spf13/cobra"
)

var fieldCmd = &cobra.Command{
	Use:   "field <addr> <bit_width> <pos>",
	Short: "Extract a bit field from an address.",
	Long: "`field 0xABCD 4 4` prints the 4 bits of 0xABCD starting at " +
		"bit 4. Numbers accept 0x and 0b prefixes.",
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseUint(args[0], "address", 64)
		if err != nil {
			return err
		}

		width, err := parseUint(args[1], "bit width", 32)
		if err != nil {
			return err
		}

		pos, err := parseUint(args[2], "position", 32)
		if err != nil {
			return err
		}

		var v uint32

		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			v, err = bitfield.CheckedModuloWidth(
				addr, uint32(width), uint32(pos))
			if err != nil {
				return err
			}
		} else {
			v = bitfield.ModuloWidth(addr, uint32(width), uint32(pos))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d %#x\n", v, v)

		return nil
	},
}

var bitCmd = &cobra.Command{
	Use:   "bit <value> <pos>",
	Short: "Print the bit of a value at a position.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bits, err := parseUint(args[0], "value", 64)
		if err != nil {
			return err
		}

		pos, err := parseUint(args[1], "position", 32)
		if err != nil {
			return err
		}

		var b uint8

		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			b, err = bitfield.CheckedGetBitInPos(bits, uint32(pos))
			if err != nil {
				return err
			}
		} else {
			b = bitfield.GetBitInPos(bits, uint32(pos))
		}

		fmt.Fprintln(cmd.OutOrStdout(), b)

		return nil
	},
}

var log2Cmd = &cobra.Command{
	Use:   "log2 <power_of_two>",
	Short: "Print the number of bits needed to index a power-of-two count.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseUint(args[0], "power of two", 32)
		if err != nil {
			return err
		}

		var l uint32

		if strict, _ := cmd.Flags().GetBool("strict"); strict {
			l, err = bitfield.CheckedLogBase2(uint32(n))
			if err != nil {
				return err
			}
		} else {
			l = bitfield.LogBase2(uint32(n))
		}

		fmt.Fprintln(cmd.OutOrStdout(), l)

		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{fieldCmd, bitCmd, log2Cmd} {
		c.Flags().Bool("strict", false,
			"Reject arguments outside the valid range")
		rootCmd.AddCommand(c)
	}
}
