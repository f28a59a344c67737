package api

import "time"

// UserResponse mirrors the backend user record
type UserResponse struct {
	ID            string          `json:"id"`
	Username      string          `json:"username"`
	Email         string          `json:"email"`
	Subscriptions []TopicResponse `json:"subscriptions,omitempty"`
}

// TopicResponse mirrors the backend topic record
type TopicResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ArticleResponse mirrors the backend article record, comments included
// when fetched by id
type ArticleResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"createdAt"`
	Author    UserResponse      `json:"author"`
	Topic     TopicResponse     `json:"topic"`
	Comments  []CommentResponse `json:"comments,omitempty"`
}

// CommentResponse mirrors the backend comment record
type CommentResponse struct {
	ID        string       `json:"id"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
	Author    UserResponse `json:"author"`
}

// CreateArticleRequest publishes a new article under a topic
type CreateArticleRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
	TopicID string `json:"topicId" validate:"required"`
}

// CreateCommentRequest adds a comment to an article
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// ArticleSort selects the ordering of the article list
type ArticleSort string

const (
	SortDateAsc  ArticleSort = "date_asc"
	SortDateDesc ArticleSort = "date_desc"
)
