package entity

// Comment as delivered inside a board detail payload. Replies nest to
// arbitrary depth; the order of Replies is server order and must be preserved.
//
// CanEdit and CanDelete are computed server side for the requesting viewer.
// A moderator may hold them on someone else's comment, so they must never be
// recomputed from AuthorIdentifier on the client.
type Comment struct {
	Identifier              string    `json:"identifier"`
	Content                 string    `json:"content"`
	AuthorIdentifier        string    `json:"authorIdentifier"`
	AuthorName              string    `json:"authorName"`
	CreatedAt               string    `json:"createdAt"`
	CanEdit                 bool      `json:"canEdit"`
	CanDelete               bool      `json:"canDelete"`
	ParentCommentIdentifier string    `json:"parentCommentIdentifier,omitempty"`
	Replies                 []Comment `json:"replies,omitempty"`
}
