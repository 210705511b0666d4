// Package render formats game state for the terminal. The core packages
// never print; everything the player sees goes through here or cmd.
package render

import (
	"fmt"
	"strings"

	"Investle/internal/game"
	"Investle/internal/model"
)

// ANSI cell backgrounds for the three proximity tiers.
const (
	styleReset = "\033[0m"
	styleMatch = "\033[42;30m" // green
	styleNear  = "\033[43;30m" // yellow
	styleMiss  = "\033[100;37m" // gray
)

const cellWidth = 14

var columns = []string{"Ticker", "Name", "Sector", "Country", "Mkt Cap", "Price", "IPO", "1Y Ret", "Dividend"}

// Header returns the column header line of the guess board.
func Header() string {
	var b strings.Builder
	for _, col := range columns {
		fmt.Fprintf(&b, "%-*s", cellWidth, col)
	}
	return b.String()
}

// Row formats one accepted guess with its per-attribute feedback.
func Row(e model.Entity, cmp model.Comparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-*s", cellWidth, e.Ticker)
	fmt.Fprintf(&b, "%-*s", cellWidth, clip(e.Name))

	b.WriteString(cell(e.Sector, cmp[model.AttrSector]))
	b.WriteString(cell(e.Country, cmp[model.AttrCountry]))
	b.WriteString(cell(game.BucketLabel(MarketCapBucketOf(e)), cmp[model.AttrMarketCap]))
	b.WriteString(cell(fmt.Sprintf("$%.2f", e.Price), cmp[model.AttrPrice]))
	b.WriteString(cell(fmt.Sprintf("%d", e.IPOYear), cmp[model.AttrIPOYear]))
	b.WriteString(cell(fmt.Sprintf("%+.1f%%", e.OneYearReturnPct), cmp[model.AttrOneYearReturn]))
	b.WriteString(cell(dividendText(e), cmp[model.AttrDividendYield]))

	return b.String()
}

// MarketCapBucketOf returns the bucket index of the entity's market cap.
func MarketCapBucketOf(e model.Entity) int {
	return game.MarketCapBucket(e.MarketCap)
}

// Reveal formats the secret once the session is over.
func Reveal(secret model.Entity, won bool) string {
	var b strings.Builder

	if won {
		fmt.Fprintf(&b, "Correct! The mystery stock is %s – %s.\n", secret.Ticker, secret.Name)
	} else {
		fmt.Fprintf(&b, "Out of guesses! The mystery stock was %s – %s.\n", secret.Ticker, secret.Name)
	}
	fmt.Fprintf(&b, "Sector: %s\n", secret.Sector)
	fmt.Fprintf(&b, "Country: %s, Market cap: %.1fB, Price: $%.2f\n", secret.Country, secret.MarketCap, secret.Price)
	fmt.Fprintf(&b, "IPO Year: %d, 1Y Return: %+.1f%%, Dividend yield: %s\n",
		secret.IPOYear, secret.OneYearReturnPct, dividendText(secret))

	return b.String()
}

// Suggestions formats "did you mean" candidates for unresolved input.
func Suggestions(entities []model.Entity) string {
	if len(entities) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Did you mean:\n")
	for _, e := range entities {
		fmt.Fprintf(&b, "  %s – %s\n", e.Ticker, e.Name)
	}
	return b.String()
}

func cell(value string, res model.AttributeResult) string {
	text := value
	switch res.Direction {
	case model.DirectionUp:
		text += " ▲"
	case model.DirectionDown:
		text += " ▼"
	}
	return fmt.Sprintf("%s %-*s%s", styleFor(res.Category), cellWidth-1, clip(text), styleReset)
}

func styleFor(c model.Category) string {
	switch c {
	case model.CategoryMatch:
		return styleMatch
	case model.CategoryNear:
		return styleNear
	default:
		return styleMiss
	}
}

func dividendText(e model.Entity) string {
	if e.DividendYieldPct > 0 {
		return fmt.Sprintf("%.2f%%", e.DividendYieldPct)
	}
	return "None"
}

func clip(s string) string {
	r := []rune(s)
	if len(r) <= cellWidth-2 {
		return s
	}
	return string(r[:cellWidth-3]) + "…"
}
