package main

import (
	"fmt"
	"os"

	"github.com/oisee/bignum/pkg/bigint"
	"github.com/oisee/bignum/pkg/biguint"
	"github.com/oisee/bignum/pkg/birand"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary-precision integer calculator",
	}

	rootCmd.AddCommand(
		newAddCmd(),
		newSubCmd(),
		newMulCmd(),
		newDivCmd(),
		newPowCmd(),
		newRandCmd(),
		newConvertCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseArg(s string) (*bigint.Int, error) {
	z := new(bigint.Int)
	return z.SetString(s)
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add A B",
		Short: "Print A + B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return fmt.Errorf("parsing A: %w", err)
			}
			b, err := parseArg(args[1])
			if err != nil {
				return fmt.Errorf("parsing B: %w", err)
			}
			fmt.Println(new(bigint.Int).Add(a, b))
			return nil
		},
	}
}

func newSubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub A B",
		Short: "Print A - B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return fmt.Errorf("parsing A: %w", err)
			}
			b, err := parseArg(args[1])
			if err != nil {
				return fmt.Errorf("parsing B: %w", err)
			}
			fmt.Println(new(bigint.Int).Sub(a, b))
			return nil
		},
	}
}

func newMulCmd() *cobra.Command {
	var karatsubaThreshold int
	cmd := &cobra.Command{
		Use:   "mul A B",
		Short: "Print A * B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if karatsubaThreshold > 0 {
				biguint.SetKaratsubaThreshold(karatsubaThreshold)
			}
			a, err := parseArg(args[0])
			if err != nil {
				return fmt.Errorf("parsing A: %w", err)
			}
			b, err := parseArg(args[1])
			if err != nil {
				return fmt.Errorf("parsing B: %w", err)
			}
			fmt.Println(new(bigint.Int).Mul(a, b))
			return nil
		},
	}
	cmd.Flags().IntVar(&karatsubaThreshold, "karatsuba-threshold", 0,
		"override the schoolbook/Karatsuba crossover (limbs); 0 keeps the default")
	return cmd
}

func newDivCmd() *cobra.Command {
	var floor, asFloat bool
	cmd := &cobra.Command{
		Use:   "div A B",
		Short: "Print the quotient and remainder of A / B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArg(args[0])
			if err != nil {
				return fmt.Errorf("parsing A: %w", err)
			}
			b, err := parseArg(args[1])
			if err != nil {
				return fmt.Errorf("parsing B: %w", err)
			}
			if asFloat {
				q, err := a.QuoFloat64(b)
				if err != nil {
					return err
				}
				fmt.Println(q)
				return nil
			}
			var q, r bigint.Int
			if floor {
				if _, _, err := q.DivMod(a, b, &r); err != nil {
					return err
				}
			} else {
				if _, _, err := q.QuoRem(a, b, &r); err != nil {
					return err
				}
			}
			fmt.Printf("%s r %s\n", q.String(), r.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&floor, "floor", false, "use floor division (remainder takes B's sign) instead of truncating toward zero")
	cmd.Flags().BoolVar(&asFloat, "float", false, "print A / B as a true-division float64 instead of quotient and remainder")
	return cmd
}

func newPowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow BASE EXP",
		Short: "Print BASE ** EXP (EXP must be non-negative)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseArg(args[0])
			if err != nil {
				return fmt.Errorf("parsing BASE: %w", err)
			}
			exp, err := parseArg(args[1])
			if err != nil {
				return fmt.Errorf("parsing EXP: %w", err)
			}
			var z bigint.Int
			if _, err := z.Exp(base, exp); err != nil {
				return err
			}
			fmt.Println(z.String())
			return nil
		},
	}
}

func newRandCmd() *cobra.Command {
	var bits, limbs int
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Print a random non-negative BigUint with the given bit width or limb count",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := birand.New()
			switch {
			case limbs > 0:
				fmt.Println(birand.Limbs(r, uint(limbs)))
			case bits > 0:
				fmt.Println(birand.UintN(r, uint(bits)))
			default:
				return fmt.Errorf("one of --bits or --limbs must be positive")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 128, "bit width of the random value")
	cmd.Flags().IntVar(&limbs, "limbs", 0, "exact 64-bit limb count of the random value (overrides --bits)")
	return cmd
}

func newConvertCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "convert N",
		Short: "Print N in binary, octal, decimal, and hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseArg(args[0])
			if err != nil {
				return fmt.Errorf("parsing N: %w", err)
			}
			switch format {
			case "", "all":
				fmt.Printf("bin: %#b\n", n)
				fmt.Printf("oct: %#o\n", n)
				fmt.Printf("dec: %d\n", n)
				fmt.Printf("hex: %#x\n", n)
			case "bin":
				fmt.Printf("%#b\n", n)
			case "oct":
				fmt.Printf("%#o\n", n)
			case "dec":
				fmt.Printf("%d\n", n)
			case "hex":
				fmt.Printf("%#x\n", n)
			default:
				return fmt.Errorf("unknown format %q: want bin, oct, dec, hex, or all", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "all", "bin, oct, dec, hex, or all")
	return cmd
}
