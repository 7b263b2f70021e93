package fraction

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fracpoint/internal/domain"
)

// Parse reads "num den" from text. Exactly two integer tokens are accepted;
// a zero den fails with an error wrapping domain.ErrInvalidDenominator.
func Parse(text string) (Fraction, error) {
	fields := strings.Fields(text)
	if len(fields) > 2 {
		return Fraction{}, parseError(2, domain.ErrTrailingInput)
	}
	var toks [2]string
	copy(toks[:], fields)
	return fromTokens(toks[0], toks[1])
}

// Scan implements fmt.Scanner, reading the next two integer tokens as
// "num den". f is only modified on success.
func (f *Fraction) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'v', 'd':
	default:
		return fmt.Errorf("fraction: unsupported scan verb %%%c", verb)
	}
	var toks [2]string
	for i := range toks {
		tok, err := state.Token(true, nil)
		if err != nil {
			return parseError(i, err)
		}
		toks[i] = string(tok)
	}
	v, err := fromTokens(toks[0], toks[1])
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func fromTokens(numTok, denTok string) (Fraction, error) {
	num, err := atoi(0, numTok)
	if err != nil {
		return Fraction{}, err
	}
	den, err := atoi(1, denTok)
	if err != nil {
		return Fraction{}, err
	}
	f, err := New(num, den)
	if err != nil {
		return Fraction{}, parseError(1, err)
	}
	return f, nil
}

func atoi(i int, tok string) (int, error) {
	if tok == "" {
		return 0, parseError(i, io.ErrUnexpectedEOF)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, parseError(i, err)
	}
	return v, nil
}

func parseError(i int, err error) error {
	return &domain.ParseError{Kind: domain.FractionInput, Token: i, Err: err}
}
