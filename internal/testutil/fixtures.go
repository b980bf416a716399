package testutil

import "strings"

// Positions shared by tests across packages.
const (
	StartFEN     = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	AfterE4FEN   = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	SicilianFEN  = "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2"
	RooksFEN     = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"
	TwoRooksFEN  = "4k3/8/8/8/8/8/8/R4RK1 w - - 0 1"
	PromotionFEN = "4k3/P7/8/8/8/8/8/4K3 w - - 0 1"
	LoneKingFEN  = "8/8/8/8/8/8/8/4K3 w - - 0 1"
)

// Moves splits a space-separated move list such as "e4 e5 Nf3".
func Moves(list string) []string {
	return strings.Fields(list)
}
