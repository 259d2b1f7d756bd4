// Package catalog holds the static bookable-event reference data. It is
// compiled in: events change a few times a year and ship with the site.
package catalog

import "strings"

// Lang selects translated labels and, downstream, the pricing currency.
type Lang string

const (
	LangEN Lang = "en"
	LangTH Lang = "th"
)

// Normalize maps unknown language codes to English.
func Normalize(l string) Lang {
	if strings.EqualFold(l, string(LangTH)) {
		return LangTH
	}
	return LangEN
}

// Text is a translated label. For falls back to English.
type Text struct {
	EN string
	TH string
}

func (t Text) For(lang Lang) string {
	if lang == LangTH && t.TH != "" {
		return t.TH
	}
	return t.EN
}

// Event describes one bookable campaign weekend.
// CheckIn/CheckOut are the fixed dates the booking form locks to
// (DD/MM/YYYY, same format the form uses).
type Event struct {
	ID          string
	Title       Text
	DateRange   Text
	Duration    Text
	PlayerRange Text
	Description Text
	Includes    []Text
	Ruleset     string

	CheckIn    string
	CheckOut   string
	MinPlayers int
	MaxPlayers int
}

var events = []Event{
	{
		ID:          "waterloo",
		Title:       Text{EN: "Waterloo Campaign", TH: "Waterloo Campaign"},
		DateRange:   Text{EN: "6-10 March 2026", TH: "6-10 มีนาคม 2026"},
		Duration:    Text{EN: "5 Days / 4 Nights", TH: "5 วัน 4 คืน"},
		PlayerRange: Text{EN: "8-12 players", TH: "8-12 คน"},
		Description: Text{
			EN: "Join us for an epic recreation of the legendary Waterloo Campaign! This multi-day event will allow you to command armies and make the critical decisions that shaped European history.",
			TH: "มาร่วมกับเราในการจำลองแคมเปญ Waterloo อันเป็นตำนาน! อีเวนต์หลายวันนี้จะให้คุณบัญชาการกองทัพและตัดสินใจสำคัญที่หล่อหลอมประวัติศาสตร์ยุโรป",
		},
		Includes: []Text{
			{EN: "Accommodation for 4 nights", TH: "ที่พักสำหรับ 4 คืน"},
			{EN: "All meals (breakfast, lunch, dinner)", TH: "อาหารทุกมื้อ (อาหารเช้า กลางวัน เย็น)"},
			{EN: "Complete miniature armies and terrain", TH: "กองทัพโมเดลและฉากสมบูรณ์"},
			{EN: "Expert game master guidance", TH: "คำแนะนำจาก Game Master ผู้เชี่ยวชาญ"},
			{EN: "Historical reference materials", TH: "เอกสารอ้างอิงทางประวัติศาสตร์"},
			{EN: "Event certificate and photos", TH: "ใบประกาศนียบัตรและรูปภาพจากอีเวนต์"},
		},
		Ruleset:    "Black Powder / General de Brigade",
		CheckIn:    "06/03/2026",
		CheckOut:   "10/03/2026",
		MinPlayers: 8,
		MaxPlayers: 12,
	},
	{
		ID:          "normandy",
		Title:       Text{EN: "Break-out from Normandy", TH: "Break-out from Normandy"},
		DateRange:   Text{EN: "13-16 March 2026", TH: "13-16 มีนาคม 2026"},
		Duration:    Text{EN: "4 Days / 3 Nights", TH: "4 วัน 3 คืน"},
		PlayerRange: Text{EN: "10-16 players", TH: "10-16 คน"},
		Description: Text{
			EN: "Experience the intensity of Operation Cobra and the Normandy breakout! Command Allied or German forces in this pivotal WWII campaign that changed the course of the war in Western Europe.",
			TH: "สัมผัสความเข้มข้นของปฏิบัติการโคบราและการยึดนอร์มังดี! บัญชาการกองกำลังฝ่ายสัมพันธมิตรหรือเยอรมันในแคมเปญ WWII สำคัญนี้ที่เปลี่ยนทิศทางสงครามในยุโรปตะวันตก",
		},
		Includes: []Text{
			{EN: "Accommodation for 3 nights", TH: "ที่พักสำหรับ 3 คืน"},
			{EN: "All meals included", TH: "อาหารทุกมื้อ"},
			{EN: "Massive WWII miniature collection", TH: "คอลเล็กชันโมเดล WWII ขนาดใหญ่"},
			{EN: "Detailed Normandy terrain boards", TH: "กระดานภูมิประเทศนอร์มังดีโดยละเอียด"},
			{EN: "Tank and aircraft models", TH: "โมเดลรถถังและเครื่องบิน"},
			{EN: "Campaign booklet and maps", TH: "หนังสือแคมเปญและแผนที่"},
		},
		Ruleset:    "Bolt Action / Chain of Command",
		CheckIn:    "13/03/2026",
		CheckOut:   "16/03/2026",
		MinPlayers: 10,
		MaxPlayers: 16,
	},
	{
		ID:          "agincourt",
		Title:       Text{EN: "Battle of Agincourt", TH: "Battle of Agincourt"},
		DateRange:   Text{EN: "20-24 March 2026", TH: "20-24 มีนาคม 2026"},
		Duration:    Text{EN: "5 Days / 4 Nights", TH: "5 วัน 4 คืน"},
		PlayerRange: Text{EN: "12-20 players", TH: "12-20 คน"},
		Description: Text{
			EN: "Relive one of history's most famous battles! The Battle of Agincourt (1415) where Henry V's outnumbered English army achieved a stunning victory against French nobility.",
			TH: "จำลองหนึ่งในสงครามที่มีชื่อเสียงที่สุดในประวัติศาสตร์! สงคราม Agincourt (1415) ที่กองทัพอังกฤษของเฮนรี่ที่ 5 ได้รับชัยชนะอันน่าทึ่งเหนือชนชั้นสูงฝรั่งเศส",
		},
		Includes: []Text{
			{EN: "Accommodation for 4 nights", TH: "ที่พักสำหรับ 4 คืน"},
			{EN: "All medieval-themed meals", TH: "อาหารธีมยุคกลางทุกมื้อ"},
			{EN: "1,500+ medieval miniatures", TH: "โมเดลยุคกลางกว่า 1,500 ตัว"},
			{EN: "Authentic Agincourt terrain", TH: "ภูมิประเทศ Agincourt ที่สมจริง"},
			{EN: "Historical costume option", TH: "ตัวเลือกเครื่องแต่งกายยุคกลาง"},
			{EN: "Medieval banquet dinner", TH: "งานเลี้ยงอาหารยุคกลาง"},
		},
		Ruleset:    "Lion Rampant / Hail Caesar",
		CheckIn:    "20/03/2026",
		CheckOut:   "24/03/2026",
		MinPlayers: 12,
		MaxPlayers: 20,
	},
	{
		ID:          "rome",
		Title:       Text{EN: "Glory of Rome 64 AD", TH: "Glory of Rome 64 AD"},
		DateRange:   Text{EN: "27-30 March 2026", TH: "27-30 มีนาคม 2026"},
		Duration:    Text{EN: "4 Days / 3 Nights", TH: "4 วัน 3 คืน"},
		PlayerRange: Text{EN: "8-14 players", TH: "8-14 คน"},
		Description: Text{
			EN: "Command the legendary Roman legions at the height of their power! Experience ancient warfare with disciplined infantry, cavalry, and siege weapons.",
			TH: "บัญชาการกองทหารโรมันในยุครุ่งเรือง! สัมผัสสงครามโบราณด้วยทหารราบที่มีวินัย ทหารม้า และอาวุธล้อมเมือง",
		},
		Includes: []Text{
			{EN: "Accommodation for 3 nights", TH: "ที่พักสำหรับ 3 คืน"},
			{EN: "All meals with Roman theme", TH: "อาหารทุกมื้อธีมโรมัน"},
			{EN: "Complete Roman & enemy armies", TH: "กองทัพโรมันและกองทัพศัตรูครบชุด"},
			{EN: "Ancient battlefield terrain", TH: "ภูมิประเทศสนามรบโบราณ"},
			{EN: "Legion tactics workshop", TH: "การอบรมยุทธวิธีของกองทหาร"},
			{EN: "Roman military demonstration", TH: "การสาธิตทหารโรมัน"},
		},
		Ruleset:    "Hail Caesar / Impetus",
		CheckIn:    "27/03/2026",
		CheckOut:   "30/03/2026",
		MinPlayers: 8,
		MaxPlayers: 14,
	},
}

var byID = func() map[string]Event {
	m := make(map[string]Event, len(events))
	for _, e := range events {
		m[e.ID] = e
	}
	return m
}()

// Get resolves an event by its identifier.
func Get(id string) (Event, bool) {
	e, ok := byID[id]
	return e, ok
}

// All returns events in display order.
func All() []Event {
	out := make([]Event, len(events))
	copy(out, events)
	return out
}
