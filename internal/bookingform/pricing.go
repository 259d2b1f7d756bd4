package bookingform

import (
	"wargameshc/internal/catalog"
	"wargameshc/internal/utils"
)

// Currency of the price estimate, derived from the active language.
type Currency string

const (
	CurrencyTHB Currency = "THB"
	CurrencyUSD Currency = "USD"
)

// CurrencyFor maps the UI language to the pricing currency. This is a pure
// function of language, not separately stored state.
func CurrencyFor(lang catalog.Lang) Currency {
	if lang == catalog.LangTH {
		return CurrencyTHB
	}
	return CurrencyUSD
}

// Rates are the per-night unit prices per currency. Children are
// informational only and never priced. The exact numbers are a product
// decision, so they are configuration, not constants.
type Rates struct {
	PlayerTHB    int64
	CompanionTHB int64
	PlayerUSD    int64
	CompanionUSD int64
}

// DefaultRates returns the published 2026 season rates.
func DefaultRates() Rates {
	return Rates{
		PlayerTHB:    7000,
		CompanionTHB: 3500,
		PlayerUSD:    200,
		CompanionUSD: 100,
	}
}

// Estimate is the structured price breakdown shown next to the form and
// embedded in the submission payload. Only the selected currency is sent.
type Estimate struct {
	Currency          Currency `json:"currency"`
	CurrencySymbol    string   `json:"currencySymbol"`
	PlayerPerNight    int64    `json:"playerPricePerNight"`
	CompanionPerNight int64    `json:"companionPricePerNight"`
	PlayersTotal      int64    `json:"playersTotal"`
	CompanionsTotal   int64    `json:"companionsTotal"`
	Total             int64    `json:"total"`
	DisplayTotal      string   `json:"displayTotal"`
}

// Estimate computes the price breakdown. Pure: identical inputs always
// yield identical output, linear in nights and in players/adults
// independently.
func (r Rates) Estimate(playerCount, nights, adultCompanions int, lang catalog.Lang) Estimate {
	if playerCount < 1 {
		playerCount = 1
	}
	if nights < 1 {
		nights = 1
	}
	if adultCompanions < 0 {
		adultCompanions = 0
	}

	currency := CurrencyFor(lang)

	var playerRate, companionRate int64
	var symbol string
	if currency == CurrencyTHB {
		playerRate = r.PlayerTHB
		companionRate = r.CompanionTHB
		symbol = "฿"
	} else {
		playerRate = r.PlayerUSD
		companionRate = r.CompanionUSD
		symbol = "$"
	}

	playersTotal := int64(playerCount) * int64(nights) * playerRate
	companionsTotal := int64(adultCompanions) * int64(nights) * companionRate
	total := playersTotal + companionsTotal

	display := utils.FormatUSD(total)
	if currency == CurrencyTHB {
		display = utils.FormatBaht(total)
	}

	return Estimate{
		Currency:          currency,
		CurrencySymbol:    symbol,
		PlayerPerNight:    playerRate,
		CompanionPerNight: companionRate,
		PlayersTotal:      playersTotal,
		CompanionsTotal:   companionsTotal,
		Total:             total,
		DisplayTotal:      display,
	}
}
