package classify

import "strings"

// Summary labels produced by the default rules.
const (
	LabelSoftware          = "ソフトウェア使用料"
	LabelPostage           = "郵便料金"
	LabelBooks             = "書籍代"
	LabelAI                = "AI使用料"
	LabelCommunication     = "通信費"
	LabelTrain             = "電車代・特急券代"
	LabelTaxi              = "タクシー代"
	LabelSurvey            = "外注アンケート調査費"
	LabelSubcontracting    = "外注費"
	LabelBookPurchase      = "書籍購入費"
	LabelSupplies          = "消耗品費"
	LabelMeetingMeal       = "会議用飲食費"
	LabelMeeting           = "会議費"
	LabelEntertainmentMeal = "接待飲食費"
	LabelEntertainmentGift = "接待贈答費"
)

// Account names with their own rules.
const (
	AccountSubcontracting = "外注費"
	AccountBooks          = "新聞図書費"
	AccountSupplies       = "消耗品費"
	AccountMeeting        = "会議費"
	AccountEntertainment  = "接待交際費"
	AccountTravel         = "旅費交通費"
)

var (
	postageKeywords = []string{"証紙切手引受", "切手", "郵便"}
	aiToolKeywords  = []string{"Claude", "ChatGPT", "GitHub", "OpenAI", "AI"}
	trainKeywords   = []string{
		"JR東車券", "新幹線", "特急", "JR乗車券", "乗車券類", "JR", "乗車券", "電車",
		"スイカ", "SUICA", "PASMO", "パスモ", "ICカード",
	}
	mealKeywords          = []string{"カフェ", "食事", "飲食"}
	entertainmentMeal     = []string{"飲食", "食事", "カラオケ"}
	entertainmentGift     = []string{"スイーツ", "ショコラ", "贈答", "ギフト"}
	bookstoreToken        = "ヨドバシ"
	crowdsourcingPlatform = "クラウドワークス"
	surveyKeyword         = "質問・アンケート"
	taxiKeyword           = "タクシー"
)

// DefaultRules returns the classification chain. Keyword rules that apply to
// every account come first, then the per-account rules.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:   "software",
			Match:  func(in Input) bool { return containsFold(in.Description, "Creative C") },
			Result: Label(LabelSoftware),
		},
		{
			Name:   "postage",
			Match:  func(in Input) bool { return containsAny(in.Description, postageKeywords) },
			Result: Label(LabelPostage),
		},
		{
			Name:   "bookstore",
			Match:  func(in Input) bool { return counterpartyContains(in, bookstoreToken) },
			Result: Label(LabelBooks),
		},
		{
			Name: "ai-tool",
			Match: func(in Input) bool {
				for _, kw := range aiToolKeywords {
					if containsFold(in.Description, kw) {
						return true
					}
				}
				return false
			},
			Result: Label(LabelAI),
		},
		{
			Name: "connectivity",
			Match: func(in Input) bool {
				lower := strings.ToLower(in.Description)
				return strings.HasPrefix(lower, "home wifi") ||
					strings.Contains(lower, "wifi") ||
					strings.Contains(in.Description, "インターネット")
			},
			Result: Label(LabelCommunication),
		},
		{
			Name:   "rail",
			Match:  func(in Input) bool { return containsAny(in.Description, trainKeywords) },
			Result: Label(LabelTrain),
		},
		{
			Name:   "taxi",
			Match:  func(in Input) bool { return strings.Contains(in.Description, taxiKeyword) },
			Result: Label(LabelTaxi),
		},
		{
			Name:  "subcontracting",
			Match: accountIs(AccountSubcontracting),
			Result: func(in Input) string {
				if !strings.Contains(in.Description, surveyKeyword) {
					return LabelSubcontracting
				}
				if counterpartyContains(in, crowdsourcingPlatform) {
					return LabelSurvey + " " + crowdsourcingPlatform
				}
				return LabelSurvey
			},
		},
		{
			Name:   "books",
			Match:  accountIs(AccountBooks),
			Result: Label(LabelBookPurchase),
		},
		{
			Name:   "supplies",
			Match:  accountIs(AccountSupplies),
			Result: Label(LabelSupplies),
		},
		{
			Name:  "meeting",
			Match: accountIs(AccountMeeting),
			Result: func(in Input) string {
				if containsAny(in.Description, mealKeywords) {
					return LabelMeetingMeal
				}
				return LabelMeeting
			},
		},
		{
			// Entertainment never surfaces free text: meal unless it is clearly a gift.
			Name:  "entertainment",
			Match: accountIs(AccountEntertainment),
			Result: func(in Input) string {
				if containsAny(in.Description, entertainmentMeal) {
					return LabelEntertainmentMeal
				}
				if containsAny(in.Description, entertainmentGift) {
					return LabelEntertainmentGift
				}
				return LabelEntertainmentMeal
			},
		},
		{
			Name:  "travel",
			Match: accountIs(AccountTravel),
			Result: func(in Input) string {
				if strings.Contains(in.Description, taxiKeyword) {
					return LabelTaxi
				}
				return LabelTrain
			},
		},
	}
}

func accountIs(name string) func(Input) bool {
	return func(in Input) bool { return in.Account == name }
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func counterpartyContains(in Input, token string) bool {
	return strings.Contains(in.Creditor, token) || strings.Contains(in.Debtor, token)
}
