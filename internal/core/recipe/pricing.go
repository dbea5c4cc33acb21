package recipe

// DefaultLocationFactor 未列出的地區使用的價格係數
const DefaultLocationFactor = 1.0

// LocationFactors 各城市的價格係數，僅為靜態對照表
var LocationFactors = map[string]float64{
	"New York":      1.2,
	"San Francisco": 1.3,
	"Chicago":       1.1,
	"Austin":        0.9,
}

// FactorFor 取得地區係數，未知地區回傳 1.0
func FactorFor(location string) float64 {
	if f, ok := LocationFactors[location]; ok {
		return f
	}
	return DefaultLocationFactor
}

// AdjustPrices 依地區係數重新計算食材價格與總價，回傳新的 Recipe，不修改輸入
func AdjustPrices(r Recipe, location string) Recipe {
	factor := FactorFor(location)
	out := r.Clone()
	for i := range out.Ingredients {
		out.Ingredients[i].Price *= factor
	}
	out.TotalPrice = sumPrices(out.Ingredients)
	out.PricePerServing = perServing(out.TotalPrice, out.Servings)
	return out
}

// AdjustAll 對整個結果集套用地區係數
func AdjustAll(recipes []Recipe, location string) []Recipe {
	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, AdjustPrices(r, location))
	}
	return out
}
