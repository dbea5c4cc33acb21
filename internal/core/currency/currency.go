package currency

import "fmt"

// USDToRONRate 匯率（2025 年 4 月），1 USD = 4.32 RON
const USDToRONRate = 4.32

// USDToRON 將美元換算為列伊
func USDToRON(usd float64) float64 {
	return usd * USDToRONRate
}

// FormatRON 格式化為兩位小數加上幣別，例如 "12.34 RON"
func FormatRON(amount float64) string {
	return fmt.Sprintf("%.2f RON", amount)
}
