package entity

// Banner is one home page banner image. DisplayOrder is the authoritative
// position within the site banner set.
type Banner struct {
	Identifier   string `json:"identifier"`
	ImageURL     string `json:"imageUrl"`
	DisplayOrder int    `json:"displayOrder"`
}

type BannerConfig struct {
	Banners []Banner `json:"banners"`
}

type NextWeekEvent struct {
	Content string `json:"content"`
}

// HomeInfo is the aggregate payload behind the public home endpoint.
type HomeInfo struct {
	Banners       BannerConfig  `json:"banners"`
	NextWeekEvent NextWeekEvent `json:"nextWeekEvent"`
}
