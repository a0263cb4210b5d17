package domain

// Author is the poster shown on a feed card
type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// Post is an outfit shared to the feed
type Post struct {
	ID       string `json:"id"`
	Author   Author `json:"user"`
	Image    string `json:"image"`
	Caption  string `json:"caption,omitempty"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
}

// ProfileSummary is a user as listed in search results
type ProfileSummary struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Followers   string `json:"followers"`
}
