package scan

import (
	"regexp"
)

// Extraction patterns for Japanese bar receipts. Ordering matters: the
// first pattern that yields a valid value wins, and labeled fields take
// priority over bare ones.

var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`合計[:\s]*[¥￥]?\s*([0-9,]+)`),
	regexp.MustCompile(`(?i)(?:お会計|会計|計|TOTAL)[:\s]*[¥￥]?\s*([0-9,]+)`),
	regexp.MustCompile(`[¥￥]\s*([0-9,]+)\s*(?:円)?`),
	regexp.MustCompile(`([0-9,]+)\s*円`),
	regexp.MustCompile(`(?:売上|売り上げ)[:\s]*[¥￥]?\s*([0-9,]+)`),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{4})[/\-年](\d{1,2})[/\-月](\d{1,2})`),
	regexp.MustCompile(`(\d{1,2})[/\-月](\d{1,2})日?`),
	regexp.MustCompile(`R?(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{1,2})`),
}

var customerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:お客様|顧客|名前|Name)[:\s]*([^\n\r]+)`),
	regexp.MustCompile(`([^\n\r]+)\s*(?:様|さん|さま)`),
	regexp.MustCompile(`(?:指名|担当|キャスト)[:\s]*([^\n\r]+)`),
}

var drinkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:ドリンク|drinks?)[:\s]*(\d+)`),
	regexp.MustCompile(`(\d+)\s*(?:杯|はい|ドリンク)`),
	regexp.MustCompile(`(?:ドリンク|飲み物)[^\d]*(\d+)`),
}

var champagnePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:シャンパン|champagne|ボトル|bottle)[:\s]*([^\n\r¥￥0-9]+)`),
	regexp.MustCompile(`(?i)(モエ|ドンペリ|ヴーヴクリコ|アルマンド|クリュッグ|ペリエ|ace)[^\n\r]*`),
}

// champagneBrands are matched by substring before the looser patterns run.
var champagneBrands = []string{
	"モエ・エ・シャンドン",
	"ドンペリニヨン",
	"ドンペリ",
	"ヴーヴクリコ",
	"アルマンド",
	"クリュッグ",
	"ペリエジュエ",
	"ベルエポック",
	"アンジェロ",
	"モエ",
	"エース",
	"ACE",
	"Dom Perignon",
}

var paymentLabeled = regexp.MustCompile(`(?i)(?:支払|決済|payment)[:\s]*(現金|カード|CASH|CARD|クレジット)`)

var cardKeywords = []string{"カード", "card", "クレジット", "credit", "visa", "master"}

var cashKeywords = []string{"現金", "cash", "キャッシュ"}

var honorificSuffix = regexp.MustCompile(`(様|さん|さま)$`)
