package handlers

import (
	"net/http"

	"wargameshc/internal/bookingform"
	"wargameshc/internal/catalog"

	"github.com/gin-gonic/gin"
)

var packageOrder = []string{
	bookingform.PackageDayVisit,
	bookingform.PackageWeekendWarrior,
	bookingform.PackageCampaignWeekend,
	bookingform.PackageExtendedCampaign,
	bookingform.PackageCustom,
}

var accommodationOrder = []string{
	bookingform.AccommodationBasic,
	bookingform.AccommodationStandard,
	bookingform.AccommodationPremium,
}

// GET /api/catalog?lang=en|th
// Everything the booking form needs to render: events, package types,
// accommodation levels, and the per-night rates for the active currency.
func GetCatalog(c *gin.Context) {
	lang := catalog.Normalize(c.Query("lang"))

	events := make([]gin.H, 0, 4)
	for _, ev := range catalog.All() {
		includes := make([]string, 0, len(ev.Includes))
		for _, item := range ev.Includes {
			includes = append(includes, item.For(lang))
		}
		events = append(events, gin.H{
			"id":          ev.ID,
			"title":       ev.Title.For(lang),
			"dateRange":   ev.DateRange.For(lang),
			"duration":    ev.Duration.For(lang),
			"playerRange": ev.PlayerRange.For(lang),
			"description": ev.Description.For(lang),
			"includes":    includes,
			"ruleset":     ev.Ruleset,
			"checkIn":     ev.CheckIn,
			"checkOut":    ev.CheckOut,
		})
	}

	packages := make([]gin.H, 0, len(packageOrder))
	for _, id := range packageOrder {
		packages = append(packages, gin.H{"id": id, "name": bookingform.PackageName(id, lang)})
	}

	accommodations := make([]gin.H, 0, len(accommodationOrder))
	for _, id := range accommodationOrder {
		accommodations = append(accommodations, gin.H{"id": id, "name": bookingform.AccommodationName(id, lang)})
	}

	rates := configuredRates()
	currency := bookingform.CurrencyFor(lang)
	perNight := gin.H{"currency": currency}
	if currency == bookingform.CurrencyTHB {
		perNight["player"] = rates.PlayerTHB
		perNight["companion"] = rates.CompanionTHB
	} else {
		perNight["player"] = rates.PlayerUSD
		perNight["companion"] = rates.CompanionUSD
	}

	RespondSuccess(c, http.StatusOK, gin.H{
		"language":       string(lang),
		"events":         events,
		"packages":       packages,
		"accommodations": accommodations,
		"ratesPerNight":  perNight,
	})
}
