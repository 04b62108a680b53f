package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	fixnum "github.com/shabbyrobe/go-fixnum"
	"github.com/spf13/pflag"
)

// limbcheck runs a single BigNumber operation and checks it against math/big
// with the same fixed-width rules applied. It is a debugging aid for failures
// turned up by the fuzzer; paste the operands in and look at the limbs.

const usage = `BigNumber limb checker

Usage: limbcheck [--op=add|sub|mul|quo|pow] [--dump] [--verbose] <a> <b>

Operands are decimal, or 0x-prefixed hex. For pow, <b> is a small exponent.
`

var errMismatch = errors.New("limbcheck: result does not match math/big")

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if err := run(log, os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("limbcheck failed")
		os.Exit(1)
	}
}

func run(log zerolog.Logger, args []string) error {
	flags := pflag.NewFlagSet("limbcheck", pflag.ContinueOnError)
	op := flags.String("op", "mul", "Operation to run: add, sub, mul, quo, pow")
	dump := flags.Bool("dump", false, "Dump the significant limbs of the operands and result")
	verbose := flags.BoolP("verbose", "v", false, "Log at debug level")
	flags.Usage = func() { fmt.Fprint(os.Stderr, usage, flags.FlagUsages()) }

	if err := flags.Parse(args); err != nil {
		return err
	}
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	if flags.NArg() != 2 {
		flags.Usage()
		return fmt.Errorf("limbcheck: expected 2 operands, found %d", flags.NArg())
	}

	ab, err := parseOperand(flags.Arg(0))
	if err != nil {
		return err
	}
	a, accurate := fixnum.FromBigInt(ab)
	if !accurate {
		return fmt.Errorf("limbcheck: operand %q does not fit in a BigNumber", flags.Arg(0))
	}

	var result fixnum.BigNumber
	var expected *big.Int

	switch *op {
	case "pow":
		k, err := strconv.ParseUint(flags.Arg(1), 10, 32)
		if err != nil {
			return fmt.Errorf("limbcheck: bad exponent %q: %w", flags.Arg(1), err)
		}
		log.Debug().Uint64("exponent", k).Msg("repeated multiplication")
		result = pow(&a, k)
		expected = new(big.Int).Exp(ab, new(big.Int).SetUint64(k), wrap())

	default:
		bb, err := parseOperand(flags.Arg(1))
		if err != nil {
			return err
		}
		b, accurate := fixnum.FromBigInt(bb)
		if !accurate {
			return fmt.Errorf("limbcheck: operand %q does not fit in a BigNumber", flags.Arg(1))
		}
		if *dump {
			dumpLimbs(log, "b", &b)
		}

		result, expected, err = apply(*op, &a, &b, ab, bb)
		if err != nil {
			return err
		}
	}

	if *dump {
		dumpLimbs(log, "a", &a)
		dumpLimbs(log, "result", &result)
	}

	got := result.AsBigInt()
	log.Info().
		Str("op", *op).
		Int("limbs", result.LimbLen()).
		Int("bitlen", result.BitLen()).
		Msg("computed")
	log.Debug().Str("got", got.String()).Str("expected", expected.String()).Msg("values")

	if got.Cmp(expected) != 0 {
		exp, _ := fixnum.FromBigInt(expected)
		for i := 0; i < fixnum.NumberSize; i++ {
			if exp.Limb(i) != result.Limb(i) {
				log.Error().Int("limb", i).
					Uint32("expected", exp.Limb(i)).
					Uint32("got", result.Limb(i)).
					Msg("first differing limb")
				break
			}
		}
		return errMismatch
	}

	log.Info().Msg("ok")
	return nil
}

func apply(op string, a, b *fixnum.BigNumber, ab, bb *big.Int) (result fixnum.BigNumber, expected *big.Int, err error) {
	switch op {
	case "add":
		result = a.Add(b)
		expected = new(big.Int).Add(ab, bb)
		expected.Mod(expected, wrap())

	case "sub":
		result = a.Sub(b)
		expected = new(big.Int).Sub(ab, bb)
		if expected.Sign() < 0 {
			expected.SetInt64(0)
		}

	case "mul":
		result = a.Mul(b)
		expected = new(big.Int).Mul(ab, bb)
		expected.Mod(expected, wrap())

	case "quo":
		result, err = a.Quo(b)
		if err != nil {
			return result, nil, err
		}
		expected = new(big.Int).Quo(ab, bb)

	default:
		return result, nil, fmt.Errorf("limbcheck: unknown op %q", op)
	}
	return result, expected, nil
}

func pow(a *fixnum.BigNumber, k uint64) fixnum.BigNumber {
	out := fixnum.From16(1)
	for i := uint64(0); i < k; i++ {
		out.MulAssign(a)
	}
	return out
}

// wrap returns Base^NumberSize, the modulus of the wrapping operations.
func wrap() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), fixnum.NumberSize*16)
}

func parseOperand(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.ReplaceAll(s, "_", ""), 0)
	if !ok {
		return nil, fmt.Errorf("limbcheck: operand %q is not an integer", s)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("limbcheck: operand %q is negative", s)
	}
	return v, nil
}

func dumpLimbs(log zerolog.Logger, name string, n *fixnum.BigNumber) {
	limbs := n.Limbs()
	log.Info().Str("operand", name).Int("limbs", n.LimbLen()).
		Msg("dump\n" + spew.Sdump(limbs[:n.LimbLen()]))
}
