package point

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fracpoint/internal/domain"
)

// Parse reads "x y" from text. Exactly two float tokens are accepted.
func Parse(text string) (Point, error) {
	fields := strings.Fields(text)
	if len(fields) > 2 {
		return Point{}, parseError(2, domain.ErrTrailingInput)
	}
	var toks [2]string
	copy(toks[:], fields)
	return fromTokens(toks)
}

// Scan implements fmt.Scanner, reading the next two float tokens as "x y".
// p is only modified on success.
func (p *Point) Scan(state fmt.ScanState, verb rune) error {
	switch verb {
	case 'v', 'f', 'g', 'e':
	default:
		return fmt.Errorf("point: unsupported scan verb %%%c", verb)
	}
	var toks [2]string
	for i := range toks {
		tok, err := state.Token(true, nil)
		if err != nil {
			return parseError(i, err)
		}
		toks[i] = string(tok)
	}
	v, err := fromTokens(toks)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func fromTokens(toks [2]string) (Point, error) {
	var xy [2]float64
	for i, tok := range toks {
		if tok == "" {
			return Point{}, parseError(i, io.ErrUnexpectedEOF)
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Point{}, parseError(i, err)
		}
		xy[i] = v
	}
	return New(xy[0], xy[1]), nil
}

func parseError(i int, err error) error {
	return &domain.ParseError{Kind: domain.PointInput, Token: i, Err: err}
}
