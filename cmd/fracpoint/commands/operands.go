package commands

import (
	"fmt"
	"io"
	"strings"
)

// operandPair splits four tokens into the two "a b" texts of a binary
// operation. Tokens come from args, or from appCtx.In when args is empty.
func operandPair(args []string) (string, string, error) {
	toks := args
	if len(toks) == 0 {
		b, err := io.ReadAll(appCtx.In)
		if err != nil {
			return "", "", fmt.Errorf("reading operands: %w", err)
		}
		toks = strings.Fields(string(b))
	}
	if len(toks) != 4 {
		return "", "", fmt.Errorf("expected 4 operand tokens, got %d", len(toks))
	}
	return toks[0] + " " + toks[1], toks[2] + " " + toks[3], nil
}
