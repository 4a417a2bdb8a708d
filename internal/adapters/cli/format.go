package cli

import (
	"fmt"
	"strconv"
	"time"
)

// formatDuration renders a run time as hours and minutes, e.g. "14h 24m"
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	if seconds != 0 {
		return fmt.Sprintf("%dh %02dm %02ds", hours, minutes, seconds)
	}
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}

// formatQuantity renders a quantity without trailing zeros
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// formatMoney renders an amount with two decimals
func formatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// formatPercent renders an efficiency as a percentage
func formatPercent(value float64) string {
	return fmt.Sprintf("%.2f%%", value*100)
}
