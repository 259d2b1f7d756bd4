// Package bookingform owns the lifecycle of one in-progress booking draft:
// the dynamic player list, date range, package/accommodation selection,
// derived duration and price estimate, validation, and submission to the
// booking API. One Controller instance backs one open booking modal.
package bookingform

import "wargameshc/internal/catalog"

// Package type identifiers, as submitted by the form.
const (
	PackageDayVisit         = "day-visit"
	PackageWeekendWarrior   = "weekend-warrior"
	PackageCampaignWeekend  = "campaign-weekend"
	PackageExtendedCampaign = "extended-campaign"
	PackageCustom           = "custom"
)

// Accommodation identifiers.
const (
	AccommodationBasic    = "basic"
	AccommodationStandard = "standard"
	AccommodationPremium  = "premium"
)

var packageNames = map[string]catalog.Text{
	PackageDayVisit:         {EN: "Day Visit", TH: "เยี่ยมชมรายวัน"},
	PackageWeekendWarrior:   {EN: "Weekend Warrior (2D/1N)", TH: "Weekend Warrior (2 วัน 1 คืน)"},
	PackageCampaignWeekend:  {EN: "Campaign Weekend (3D/2N)", TH: "Campaign Weekend (3 วัน 2 คืน)"},
	PackageExtendedCampaign: {EN: "Extended Campaign (5D/4N)", TH: "Extended Campaign (5 วัน 4 คืน)"},
	PackageCustom:           {EN: "Custom Package", TH: "แพ็คเกจกำหนดเอง"},
}

var accommodationNames = map[string]catalog.Text{
	AccommodationBasic:    {EN: "Basic (Shared Room)", TH: "ห้องพักรวม"},
	AccommodationStandard: {EN: "Standard (Private Room)", TH: "ห้องส่วนตัว"},
	AccommodationPremium:  {EN: "Premium (En-suite)", TH: "ห้องพรีเมียม"},
}

// ValidPackage reports whether id is a known package type.
func ValidPackage(id string) bool {
	_, ok := packageNames[id]
	return ok
}

// ValidAccommodation reports whether id is a known accommodation level.
func ValidAccommodation(id string) bool {
	_, ok := accommodationNames[id]
	return ok
}

// PackageName resolves the display name for a package type, falling back to
// the raw identifier for unknown values.
func PackageName(id string, lang catalog.Lang) string {
	if t, ok := packageNames[id]; ok {
		return t.For(lang)
	}
	return id
}

// AccommodationName resolves the display name for an accommodation level.
func AccommodationName(id string, lang catalog.Lang) string {
	if t, ok := accommodationNames[id]; ok {
		return t.For(lang)
	}
	return id
}
