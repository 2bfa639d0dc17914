package test

import (
	"math/rand"
	"strconv"
	"strings"
)

const validTokens = "+;-;*;/;(;);0;7;42;1000;9223372036854775807"

// GetRandomTokens returns size lexically valid tokens joined by spaces. The
// result is rarely a well-formed expression.
func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}

// GetRandomExpr returns a well-formed expression nested at most depth levels.
// Literals stay small so most expressions evaluate without overflow.
func GetRandomExpr(r *rand.Rand, depth int) string {
	if depth <= 0 {
		return strconv.Itoa(r.Intn(20))
	}

	switch r.Intn(6) {
	case 0:
		return strconv.Itoa(r.Intn(100))
	case 1:
		return "(" + GetRandomExpr(r, depth-1) + ")"
	case 2:
		return string("+-"[r.Intn(2)]) + GetRandomExpr(r, depth-1)
	default:
		op := string("+-*/"[r.Intn(4)])
		return GetRandomExpr(r, depth-1) + " " + op + " " + GetRandomExpr(r, depth-1)
	}
}
