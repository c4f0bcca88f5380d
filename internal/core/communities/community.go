package communities

import (
	"time"
)

// CommunityView is the read model of a community shown alongside a post
type CommunityView struct {
	Published           time.Time  `json:"published" db:"published"`
	Updated             *time.Time `json:"updated,omitempty" db:"updated"`
	Description         *string    `json:"description,omitempty" db:"description"`
	Name                string     `json:"name" db:"name"`
	Title               string     `json:"title" db:"title"`
	CreatorName         string     `json:"creator_name" db:"creator_name"`
	ID                  int        `json:"id" db:"id"`
	CreatorID           int        `json:"creator_id" db:"creator_id"`
	NumberOfSubscribers int        `json:"number_of_subscribers" db:"number_of_subscribers"`
	NumberOfPosts       int        `json:"number_of_posts" db:"number_of_posts"`
	Removed             bool       `json:"removed" db:"removed"`
	Deleted             bool       `json:"deleted" db:"deleted"`
	NSFW                bool       `json:"nsfw" db:"nsfw"`
	Subscribed          bool       `json:"subscribed" db:"subscribed"`
}

// ModeratorView is one entry of a community's moderator roster
type ModeratorView struct {
	Published     time.Time `json:"published" db:"published"`
	UserName      string    `json:"user_name" db:"user_name"`
	CommunityName string    `json:"community_name" db:"community_name"`
	ID            int       `json:"id" db:"id"`
	CommunityID   int       `json:"community_id" db:"community_id"`
	UserID        int       `json:"user_id" db:"user_id"`
}
