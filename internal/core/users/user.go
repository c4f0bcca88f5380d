package users

import (
	"time"
)

// UserView is the public read model of a user account
type UserView struct {
	Published        time.Time `json:"published" db:"published"`
	Avatar           *string   `json:"avatar,omitempty" db:"avatar"`
	Name             string    `json:"name" db:"name"`
	ID               int       `json:"id" db:"id"`
	NumberOfPosts    int       `json:"number_of_posts" db:"number_of_posts"`
	PostScore        int       `json:"post_score" db:"post_score"`
	NumberOfComments int       `json:"number_of_comments" db:"number_of_comments"`
	CommentScore     int       `json:"comment_score" db:"comment_score"`
	Admin            bool      `json:"admin" db:"admin"`
	Banned           bool      `json:"banned" db:"banned"`
}
