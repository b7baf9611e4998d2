package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/with-sky/lammp-go/arith"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lammpctl",
		Short: "arbitrary-precision arithmetic core — demo CLI",
	}

	var hexIn bool

	mulCmd := &cobra.Command{
		Use:   "mul <a> <b>",
		Short: "multiply two unsigned integers, picking the dispatcher tier by operand size",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0], hexIn)
			if err != nil {
				return err
			}
			b, err := parseArg(args[1], hexIn)
			if err != nil {
				return err
			}
			out := make([]arith.Word, len(a)+len(b))
			arith.Mul(a, b, out)
			fmt.Println(formatResult(out, hexIn))
			return nil
		},
	}

	sqrCmd := &cobra.Command{
		Use:   "sqr <a>",
		Short: "square an unsigned integer via the dedicated squaring path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0], hexIn)
			if err != nil {
				return err
			}
			out := make([]arith.Word, 2*len(a))
			arith.Sqr(a, out)
			fmt.Println(formatResult(out, hexIn))
			return nil
		},
	}

	divCmd := &cobra.Command{
		Use:   "div <a> <b>",
		Short: "divide two unsigned integers, printing quotient and remainder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0], hexIn)
			if err != nil {
				return err
			}
			b, err := parseArg(args[1], hexIn)
			if err != nil {
				return err
			}
			quo := make([]arith.Word, len(a)+1)
			rem := make([]arith.Word, len(b))
			arith.Div(a, b, quo, rem)
			fmt.Printf("quotient:  %s\n", formatResult(quo, hexIn))
			fmt.Printf("remainder: %s\n", formatResult(rem, hexIn))
			return nil
		},
	}

	toBaseCmd := &cobra.Command{
		Use:   "to-decimal <hex>",
		Short: "convert a hex magnitude to decimal via the radix converter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := arith.ParseHexString(args[0])
			if err != nil {
				return err
			}
			fmt.Println(arith.FormatDecimalString(x))
			return nil
		},
	}

	for _, c := range []*cobra.Command{mulCmd, sqrCmd, divCmd} {
		c.Flags().BoolVar(&hexIn, "hex", false, "interpret operands (and print results) as hex instead of decimal")
	}
	rootCmd.AddCommand(mulCmd, sqrCmd, divCmd, toBaseCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseArg(s string, hex bool) ([]arith.Word, error) {
	if hex {
		return arith.ParseHexString(s)
	}
	return arith.ParseDecimalString(s)
}

func formatResult(x []arith.Word, hex bool) string {
	if hex {
		return "0x" + arith.FormatHexString(x)
	}
	return arith.FormatDecimalString(x)
}
