package model

import (
	"time"
)

// Comment 评论记录，支持嵌套回复
type Comment struct {
	Id        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Replies   []Comment `json:"replies"`
}

// CloneComments 深拷贝评论列表，包括嵌套回复
func CloneComments(comments []Comment) []Comment {
	out := make([]Comment, len(comments))
	copy(out, comments)
	for i := range out {
		out[i].Replies = CloneComments(out[i].Replies)
	}
	return out
}
