// Package whatsapp builds wa.me deep links that open a chat pre-filled with a
// message. It never sends anything itself.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

const baseURL = "https://wa.me/"

// Link builds a wa.me deep link for the given phone number and message text.
// The number is used verbatim apart from stripping characters wa.me rejects.
func Link(number, message string) string {
	cleaned := strings.NewReplacer("+", "", " ", "", "-", "").Replace(number)
	return baseURL + cleaned + "?text=" + url.QueryEscape(message)
}

// ReminderMessage formats the fee reminder text for a student with a pending due.
func ReminderMessage(name, academyName string, due float64) string {
	return fmt.Sprintf(
		"Hello %s, this is a gentle reminder from %s. You have a pending fee due of ₹%s. Please clear it at your earliest convenience. Thank you.",
		name, academyName, formatAmount(due),
	)
}

// ReceiptMessage formats the text accompanying a shared fee receipt.
func ReceiptMessage(name, academyName string, paid float64) string {
	return fmt.Sprintf(
		"Hello %s, please find attached your fee receipt for Rs. %s. Thank you - %s",
		name, formatAmount(paid), academyName,
	)
}

// formatAmount renders a fee amount without a trailing ".00" for whole values.
func formatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%d", int64(amount))
	}
	return fmt.Sprintf("%.2f", amount)
}
