package classifier

import (
	"regexp"
	"strings"
)

// Keyword sets used by classification and sentiment. All entries are
// lowercase; matching is done against lowercased text.

var pnlKeywords = []string{
	"pnl",
	"p&l",
	"profit",
	"roi",
	"+%",
	"unrealized",
	"realized gain",
	"total return",
	"account balance",
	"portfolio up",
}

var groupPromoKeywords = []string{
	"join",
	"vip",
	"signal group",
	"free signals",
	"premium signals",
	"paid group",
	"inner circle",
	"exclusive group",
	"sign up",
	"membership",
	"subscribe",
}

var scamKeywords = []string{
	"scam",
	"scammer",
	"rug",
	"rugged",
	"rug pull",
	"fake",
	"fraud",
	"ponzi",
	"exit scam",
	"lost my money",
	"stolen",
	"beware",
	"warning",
	"do not trust",
	"fake pnl",
	"photoshopped",
}

var dramaKeywords = []string{
	"exposed",
	"called out",
	"beef",
	"drama",
	"receipts",
	"ratio",
	"caught",
	"lying",
	"lied",
	"clown",
	"fraud exposed",
	"unfollow",
	"blocked",
	"feud",
}

var positiveKeywords = []string{
	"great",
	"amazing",
	"profit",
	"moon",
	"bullish",
	"win",
	"winner",
	"gains",
	"lfg",
	"lets go",
	"nailed it",
	"fire",
	"goat",
	"legend",
	"insane",
	"bank",
	"cash",
	"hit",
	"accurate",
	"on point",
	"best",
	"love",
}

var negativeKeywords = []string{
	"scam",
	"loss",
	"fake",
	"rug",
	"rugged",
	"rekt",
	"wrecked",
	"bad",
	"terrible",
	"worst",
	"avoid",
	"trash",
	"garbage",
	"lost",
	"down",
	"bearish",
	"failed",
	"fraud",
	"liar",
	"disappointing",
}

var cryptoKeywords = []string{
	"btc",
	"eth",
	"bitcoin",
	"ethereum",
	"crypto",
	"defi",
	"nft",
	"altcoin",
	"token",
	"blockchain",
	"web3",
	"trading",
	"chart",
	"ta",
	"technical analysis",
	"entry",
	"exit",
	"long",
	"short",
	"leverage",
	"futures",
	"spot",
	"binance",
	"bybit",
	"dex",
	"swap",
	"yield",
	"airdrop",
	"whale",
	"pump",
	"dump",
	"degen",
	"hodl",
	"usdt",
	"usdc",
	"solana",
	"sol",
}

// wordBoundaryPatterns caches the compiled word-boundary regex for each
// keyword that qualifies for boundary matching.
var wordBoundaryPatterns = buildWordBoundaryPatterns(
	pnlKeywords, groupPromoKeywords, scamKeywords, dramaKeywords,
	positiveKeywords, negativeKeywords, cryptoKeywords,
)

var nonLetter = regexp.MustCompile(`[^a-zA-Z]`)

func buildWordBoundaryPatterns(keywordSets ...[]string) map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp)

	for _, keywords := range keywordSets {
		for _, kw := range keywords {
			if useSubstringMatch(kw) {
				continue
			}

			if _, ok := patterns[kw]; !ok {
				patterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
			}
		}
	}

	return patterns
}

// useSubstringMatch reports whether the keyword is too short or too special
// for word-boundary matching. Keywords like "+%" or "ta" fall back to a plain
// substring check.
func useSubstringMatch(kw string) bool {
	return len(kw) <= 2 || nonLetter.MatchString(kw)
}

// countMatches counts how many keywords from the list appear in the
// lowercased text.
func countMatches(text string, keywords []string) int {
	count := 0

	for _, kw := range keywords {
		if useSubstringMatch(kw) {
			if strings.Contains(text, kw) {
				count++
			}
		} else if wordBoundaryPatterns[kw].MatchString(text) {
			count++
		}
	}

	return count
}
