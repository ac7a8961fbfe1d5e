package entity

// BoardCategory selects which board a post belongs to. Values are the wire
// strings the backend expects in the category query parameter.
type BoardCategory string

const (
	CategorySundayWorship    BoardCategory = "SUNDAY_WORSHIP"
	CategoryWednesdayWorship BoardCategory = "WEDNESDAY_WORSHIP"
	CategoryFridayPrayer     BoardCategory = "FRIDAY_PRAYER"
	CategoryDawnPrayer       BoardCategory = "DAWN_PRAYER"
	CategorySpecialWorship   BoardCategory = "SPECIAL_WORSHIP"
	CategoryBoard            BoardCategory = "BOARD"
	CategoryAlbum            BoardCategory = "ALBUM"
	CategoryArchive          BoardCategory = "ARCHIVE"
	CategoryChurchNews       BoardCategory = "CHURCH_NEWS"
	CategoryMembersNews      BoardCategory = "CHURCH_PEOPLE_NEWS"
)

func (c BoardCategory) Valid() bool {
	switch c {
	case CategorySundayWorship, CategoryWednesdayWorship, CategoryFridayPrayer,
		CategoryDawnPrayer, CategorySpecialWorship, CategoryBoard, CategoryAlbum,
		CategoryArchive, CategoryChurchNews, CategoryMembersNews:
		return true
	}
	return false
}

// BoardImage is an ordered post image. DisplayOrder is the authoritative
// position within the post.
type BoardImage struct {
	Identifier   string `json:"identifier"`
	ImageURL     string `json:"imageUrl"`
	DisplayOrder int    `json:"displayOrder"`
}

// BoardFile is a post file attachment. Files carry no display order.
type BoardFile struct {
	Identifier       string `json:"identifier"`
	FileURL          string `json:"fileUrl"`
	OriginalFileName string `json:"originalFileName"`
	FileSize         int64  `json:"fileSize"`
}

type BoardSummary struct {
	Identifier string        `json:"identifier"`
	Category   BoardCategory `json:"category"`
	Title      string        `json:"title"`
	AuthorName string        `json:"authorName"`
	ViewCount  int           `json:"viewCount"`
	CreatedAt  string        `json:"createdAt"`
	HasImage   bool          `json:"hasImage"`
	HasFile    bool          `json:"hasFile"`
}

type BoardDetail struct {
	Identifier       string        `json:"identifier"`
	Category         BoardCategory `json:"category"`
	Title            string        `json:"title"`
	Content          string        `json:"content"`
	AuthorIdentifier string        `json:"authorIdentifier"`
	AuthorName       string        `json:"authorName"`
	ViewCount        int           `json:"viewCount"`
	CreatedAt        string        `json:"createdAt"`
	CanEdit          bool          `json:"canEdit"`
	CanDelete        bool          `json:"canDelete"`
	Images           []BoardImage  `json:"images"`
	Files            []BoardFile   `json:"files"`
	Comments         []Comment     `json:"comments"`
}

// Page is the backend's pagination wrapper for list endpoints.
type Page[T any] struct {
	Content       []T `json:"content"`
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}
