package calendar

import (
	"strings"

	"github.com/hsinyuw/herbcal/internal/models"
)

// AnchorYear is the calendar's anchor: day-of-year 1 is January 1 of
// this year, and the solar-term table below carries this year's dates.
const AnchorYear = 2026

// Metadata describes the shipped calendar edition.
var Metadata = struct {
	Year       int
	Title      string
	Subtitle   string
	Version    string
	TotalDays  int
	TotalHerbs int
}{
	Year:       AnchorYear,
	Title:      "2026 中藥正念日曆",
	Subtitle:   "Traditional Chinese Medicine Mindfulness Calendar",
	Version:    "1.0.0",
	TotalDays:  365,
	TotalHerbs: 54,
}

// Herbs is the fixed, ordered herb catalog cycled through by
// day-of-year. Treat as read-only; the engine never mutates it.
var Herbs = []models.Herb{
	{ID: 1, Name: "人參", Effect: "大補元氣"},
	{ID: 2, Name: "黃耆", Effect: "補氣固表"},
	{ID: 3, Name: "當歸", Effect: "補血活血"},
	{ID: 4, Name: "枸杞", Effect: "滋補肝腎"},
	{ID: 5, Name: "紅棗", Effect: "補中益氣"},
	{ID: 6, Name: "茯苓", Effect: "健脾寧心"},
	{ID: 7, Name: "白朮", Effect: "健脾益氣"},
	{ID: 8, Name: "甘草", Effect: "調和諸藥"},
	{ID: 9, Name: "生薑", Effect: "溫中散寒"},
	{ID: 10, Name: "肉桂", Effect: "溫補命門"},
	{ID: 11, Name: "附子", Effect: "回陽救逆"},
	{ID: 12, Name: "乾薑", Effect: "溫中暖脾"},
	{ID: 13, Name: "陳皮", Effect: "理氣健脾"},
	{ID: 14, Name: "半夏", Effect: "化痰降逆"},
	{ID: 15, Name: "麥門冬", Effect: "滋陰潤燥"},
	{ID: 16, Name: "五味子", Effect: "斂肺滋腎"},
	{ID: 17, Name: "山藥", Effect: "補脾養胃"},
	{ID: 18, Name: "蓮子", Effect: "養心安神"},
	{ID: 19, Name: "芡實", Effect: "固腎益精"},
	{ID: 20, Name: "龍眼肉", Effect: "養血安神"},
	{ID: 21, Name: "酸棗仁", Effect: "安神助眠"},
	{ID: 22, Name: "遠志", Effect: "開心益智"},
	{ID: 23, Name: "柏子仁", Effect: "養心安神"},
	{ID: 24, Name: "合歡皮", Effect: "解鬱安神"},
	{ID: 25, Name: "夜交藤", Effect: "養血安神"},
	{ID: 26, Name: "天麻", Effect: "息風止眩"},
	{ID: 27, Name: "鉤藤", Effect: "清熱平肝"},
	{ID: 28, Name: "石決明", Effect: "平肝明目"},
	{ID: 29, Name: "珍珠母", Effect: "安神定驚"},
	{ID: 30, Name: "龍骨", Effect: "鎮靜安神"},
	{ID: 31, Name: "牡蠣", Effect: "收斂固澀"},
	{ID: 32, Name: "代赭石", Effect: "重鎮降逆"},
	{ID: 33, Name: "磁石", Effect: "鎮心安神"},
	{ID: 34, Name: "琥珀", Effect: "安神定志"},
	{ID: 35, Name: "柴胡", Effect: "疏肝解鬱"},
	{ID: 36, Name: "香附", Effect: "理氣解鬱"},
	{ID: 37, Name: "川芎", Effect: "行氣活血"},
	{ID: 38, Name: "丹參", Effect: "活血養心"},
	{ID: 39, Name: "紅花", Effect: "活血祛瘀"},
	{ID: 40, Name: "桃仁", Effect: "活血祛瘀"},
	{ID: 41, Name: "益母草", Effect: "活血調經"},
	{ID: 42, Name: "雞血藤", Effect: "補血活絡"},
	{ID: 43, Name: "延胡索", Effect: "活血止痛"},
	{ID: 44, Name: "鬱金", Effect: "行氣解鬱"},
	{ID: 45, Name: "薑黃", Effect: "活血行氣"},
	{ID: 46, Name: "三七", Effect: "化瘀止血"},
	{ID: 47, Name: "蒲黃", Effect: "活血止血"},
	{ID: 48, Name: "五靈脂", Effect: "活血止痛"},
	{ID: 49, Name: "茵陳", Effect: "清利濕熱"},
	{ID: 50, Name: "金錢草", Effect: "清熱利濕"},
	{ID: 51, Name: "車前草", Effect: "清熱利尿"},
	{ID: 52, Name: "澤瀉", Effect: "利水滲濕"},
	{ID: 53, Name: "薏苡仁", Effect: "健脾祛濕"},
	{ID: 54, Name: "滑石", Effect: "清熱利濕"},
}

// SolarTerms holds the 24 jieqi of the anchor year, ordered by date.
// One term is active at any time: the latest term whose date is not
// after the query date.
var SolarTerms = []models.SolarTerm{
	{Name: "小寒", Date: "2026-01-05", Season: models.SeasonWinter},
	{Name: "大寒", Date: "2026-01-20", Season: models.SeasonWinter},
	{Name: "立春", Date: "2026-02-04", Season: models.SeasonSpring},
	{Name: "雨水", Date: "2026-02-19", Season: models.SeasonSpring},
	{Name: "驚蟄", Date: "2026-03-05", Season: models.SeasonSpring},
	{Name: "春分", Date: "2026-03-20", Season: models.SeasonSpring},
	{Name: "清明", Date: "2026-04-04", Season: models.SeasonSpring},
	{Name: "穀雨", Date: "2026-04-20", Season: models.SeasonSpring},
	{Name: "立夏", Date: "2026-05-05", Season: models.SeasonSummer},
	{Name: "小滿", Date: "2026-05-21", Season: models.SeasonSummer},
	{Name: "芒種", Date: "2026-06-05", Season: models.SeasonSummer},
	{Name: "夏至", Date: "2026-06-21", Season: models.SeasonSummer},
	{Name: "小暑", Date: "2026-07-07", Season: models.SeasonSummer},
	{Name: "大暑", Date: "2026-07-22", Season: models.SeasonSummer},
	{Name: "立秋", Date: "2026-08-07", Season: models.SeasonAutumn},
	{Name: "處暑", Date: "2026-08-23", Season: models.SeasonAutumn},
	{Name: "白露", Date: "2026-09-07", Season: models.SeasonAutumn},
	{Name: "秋分", Date: "2026-09-23", Season: models.SeasonAutumn},
	{Name: "寒露", Date: "2026-10-08", Season: models.SeasonAutumn},
	{Name: "霜降", Date: "2026-10-23", Season: models.SeasonAutumn},
	{Name: "立冬", Date: "2026-11-07", Season: models.SeasonWinter},
	{Name: "小雪", Date: "2026-11-22", Season: models.SeasonWinter},
	{Name: "大雪", Date: "2026-12-07", Season: models.SeasonWinter},
	{Name: "冬至", Date: "2026-12-21", Season: models.SeasonWinter},
}

// previousYearEnd is the fallback term for dates before the anchor
// year's first term: the prior year's winter solstice.
var previousYearEnd = models.SolarTerm{Name: "冬至", Date: "2025-12-22", Season: models.SeasonWinter}

// termThemes maps a solar-term name to its wellness theme.
var termThemes = map[string]models.SeasonTheme{
	"小寒": {Theme: "藏精養腎", Color: "#4A5568"},
	"大寒": {Theme: "溫補禦寒", Color: "#2D3748"},
	"立春": {Theme: "升發陽氣", Color: "#68D391"},
	"雨水": {Theme: "調養脾胃", Color: "#9AE6B4"},
	"驚蟄": {Theme: "疏肝理氣", Color: "#48BB78"},
	"春分": {Theme: "平調陰陽", Color: "#38A169"},
	"清明": {Theme: "柔肝養肺", Color: "#2F855A"},
	"穀雨": {Theme: "健脾祛濕", Color: "#276749"},
	"立夏": {Theme: "養心安神", Color: "#FC8181"},
	"小滿": {Theme: "清熱利濕", Color: "#F56565"},
	"芒種": {Theme: "清暑益氣", Color: "#E53E3E"},
	"夏至": {Theme: "養陰生津", Color: "#C53030"},
	"小暑": {Theme: "消暑寧心", Color: "#9B2C2C"},
	"大暑": {Theme: "清熱解暑", Color: "#822727"},
	"立秋": {Theme: "養陰潤燥", Color: "#ED8936"},
	"處暑": {Theme: "滋陰潤肺", Color: "#DD6B20"},
	"白露": {Theme: "養肺防燥", Color: "#C05621"},
	"秋分": {Theme: "平補陰陽", Color: "#9C4221"},
	"寒露": {Theme: "養陰防燥", Color: "#7B341E"},
	"霜降": {Theme: "養肺潤燥", Color: "#652B19"},
	"立冬": {Theme: "滋陰補腎", Color: "#63B3ED"},
	"小雪": {Theme: "溫腎助陽", Color: "#4299E1"},
	"大雪": {Theme: "溫補強身", Color: "#3182CE"},
	"冬至": {Theme: "養藏固本", Color: "#2B6CB0"},
}

// defaultTheme is returned for unrecognized term names. Lookups
// degrade to defaults instead of failing.
var defaultTheme = models.SeasonTheme{Theme: "調和身心", Color: "#718096"}

// seasonColors maps a season tag to its display palette.
var seasonColors = map[models.Season]models.ColorPair{
	models.SeasonSpring: {Primary: "#48BB78", Secondary: "#9AE6B4", Background: "from-green-50 to-emerald-100"},
	models.SeasonSummer: {Primary: "#F56565", Secondary: "#FC8181", Background: "from-red-50 to-orange-100"},
	models.SeasonAutumn: {Primary: "#ED8936", Secondary: "#F6AD55", Background: "from-orange-50 to-amber-100"},
	models.SeasonWinter: {Primary: "#4299E1", Secondary: "#63B3ED", Background: "from-blue-50 to-cyan-100"},
}

// HerbCategories is the ordered effect-keyword classification used by
// the herb browser. 全部 matches everything; 其他 catches herbs whose
// effect names none of the keyword groups.
var HerbCategories = []string{"全部", "補氣", "補血", "安神", "活血", "清熱", "其他"}

var categoryKeywords = map[string][]string{
	"補氣": {"補氣", "益氣"},
	"補血": {"補血", "養血"},
	"安神": {"安神", "寧心"},
	"活血": {"活血", "化瘀"},
	"清熱": {"清熱", "利濕"},
}

// HerbMatchesCategory reports whether a herb belongs to the named
// effect category. An empty category matches everything.
func HerbMatchesCategory(h models.Herb, category string) bool {
	switch category {
	case "", "全部":
		return true
	case "其他":
		for _, keywords := range categoryKeywords {
			for _, keyword := range keywords {
				if strings.Contains(h.Effect, keyword) {
					return false
				}
			}
		}
		return true
	}
	for _, keyword := range categoryKeywords[category] {
		if strings.Contains(h.Effect, keyword) {
			return true
		}
	}
	return false
}

// IsHerbCategory reports whether the name is a known filter category.
func IsHerbCategory(name string) bool {
	for _, category := range HerbCategories {
		if category == name {
			return true
		}
	}
	return false
}

// HasTheme reports whether a solar term carries its own theme entry,
// as opposed to falling back to the default.
func HasTheme(termName string) bool {
	_, ok := termThemes[termName]
	return ok
}

// HerbByName returns the catalog entry with the given display name.
func HerbByName(name string) (models.Herb, bool) {
	for _, h := range Herbs {
		if h.Name == name {
			return h, true
		}
	}
	return models.Herb{}, false
}
