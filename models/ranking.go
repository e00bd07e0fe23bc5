package models

// RankingEntry is the display shape of a listing inside a top list. It is
// derived from already-loaded listing and owner data and carries no further
// query obligations for the presentation layer.
type RankingEntry struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	User         string   `json:"user"`
	Age          int      `json:"age,omitempty"`
	City         string   `json:"city"`
	Price        float64  `json:"price"`
	Rating       float64  `json:"rating"`
	TotalReviews int      `json:"totalReviews"`
	PhotoURL     string   `json:"photoUrl"`
	Category     string   `json:"category"`
	Featured     bool     `json:"featured"`
	VIP          bool     `json:"vip"`
	Phone        string   `json:"phone,omitempty"`
	WhatsApp     bool     `json:"whatsapp"`
	Services     []string `json:"services,omitempty"`
}

// SiteStats summarizes platform-wide figures for the home page.
type SiteStats struct {
	TotalListings       int     `json:"totalListings"`
	TotalCities         int     `json:"totalCities"`
	TotalReviews        int     `json:"totalReviews"`
	AverageSatisfaction float64 `json:"averageSatisfaction"`
}

// HomeRankings bundles every top list shown on the home page.
type HomeRankings struct {
	TopFemale       []RankingEntry `json:"topFemale"`
	TopMale         []RankingEntry `json:"topMale"`
	TopTrans        []RankingEntry `json:"topTrans"`
	FeaturedOfMonth []RankingEntry `json:"featuredOfMonth"`
	NewAndVerified  []RankingEntry `json:"newAndVerified"`
	Stats           SiteStats      `json:"stats"`
}
