package dto

import "readnest/internal/models"

// CreateBlogPostRequest: payload for a new blog post. Submit=true sends the
// post straight to the approval queue instead of saving a draft.
type CreateBlogPostRequest struct {
	Title   string   `json:"title" binding:"required,max=200"`
	Content string   `json:"content" binding:"required"`
	BookID  *string  `json:"book_id,omitempty"`
	Tags    []string `json:"tags"`
	Emoji   *string  `json:"emoji,omitempty"`
	Submit  bool     `json:"submit"`
}

func (r CreateBlogPostRequest) ToModel() models.BlogPost {
	status := models.StatusDraft
	if r.Submit {
		status = models.StatusPending
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.BlogPost{
		Title:   r.Title,
		Content: r.Content,
		BookID:  r.BookID,
		Tags:    tags,
		Emoji:   r.Emoji,
		Status:  status,
	}
}

type BlogPostListResponse struct {
	Items []models.BlogPost `json:"items"`
	Total int               `json:"total"`
}
