package accounts

import "github.com/cleared-dev/shiwake/internal/model"

// DefaultChart returns the built-in chart of accounts for an entity type.
func DefaultChart(entityType string) []model.Account {
	switch entityType {
	case "sole_proprietor":
		return soleProprietorChart()
	default:
		return soleProprietorChart()
	}
}

func chart(t model.AccountType, names ...string) []model.Account {
	accts := make([]model.Account, len(names))
	for i, n := range names {
		accts[i] = model.Account{Name: n, Type: t}
	}
	return accts
}

// soleProprietorChart is the general-purpose chart used for blue-form returns.
func soleProprietorChart() []model.Account {
	var c []model.Account
	c = append(c, chart(model.AccountTypeAsset,
		"現金", "小口現金", "普通預金", "当座預金", "定期預金", "売掛金", "未収金", "有価証券",
		"商品", "製品", "原材料", "仕掛品", "貯蔵品", "前払費用", "立替金", "仮払金", "短期貸付金",
		"建物", "建物付属設備", "構築物", "機械装置", "車両運搬具", "工具器具備品", "土地",
		"電話加入権", "ソフトウェア", "長期前払費用", "敷金", "保証金", "繰延資産", "クレジットカード",
	)...)
	c = append(c, chart(model.AccountTypeLiability,
		"買掛金", "未払金", "短期借入金", "前受金", "預り金", "仮受金", "未払費用", "未払法人税等",
		"未払消費税", "未払事業税", "賞与引当金", "長期借入金", "退職給付引当金",
	)...)
	c = append(c, chart(model.AccountTypeEquity,
		"資本金", "元入金", "資本準備金", "利益準備金", "繰越利益剰余金", "当期純利益",
	)...)
	c = append(c, chart(model.AccountTypeRevenue,
		"売上高", "製品売上高", "商品売上高", "サービス売上高", "雑収入", "受取利息", "受取配当金",
		"為替差益", "有価証券売却益", "固定資産売却益",
	)...)
	c = append(c, chart(model.AccountTypeExpense,
		"仕入高", "製品仕入高", "商品仕入高", "外注費", "給料賃金", "役員報酬", "アルバイト給与",
		"賞与", "退職金", "法定福利費", "福利厚生費", "雑給", "通勤費", "広告宣伝費", "荷造運賃",
		"販売促進費", "旅費交通費", "通信費", "交際費", "会議費", "接待交際費", "事務用品費",
		"消耗品費", "水道光熱費", "新聞図書費", "支払手数料", "支払報酬", "支払保険料", "修繕費",
		"保守料", "リース料", "地代家賃", "家賃", "管理費", "租税公課", "減価償却費",
		"貸倒引当金繰入", "雑費", "支払利息", "為替差損", "有価証券売却損", "固定資産売却損",
		"貸倒損失", "雑損失", "研修費",
	)...)
	return c
}
