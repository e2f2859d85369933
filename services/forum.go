package services

import (
	"strings"

	"eduportal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostInput struct {
	Title     string `json:"title" validate:"required,notblank,min=3,max=200"`
	Content   string `json:"content" validate:"required,notblank,min=1,max=20000"`
	SubjectID *uint  `json:"subject_id"`
}

type PostUpdateInput struct {
	Title     string `json:"title" validate:"omitempty,notblank,min=3,max=200"`
	Content   string `json:"content" validate:"omitempty,notblank,max=20000"`
	SubjectID *uint  `json:"subject_id"`
}

type CommentInput struct {
	Content string `json:"content" validate:"required,notblank,min=1,max=5000"`
}

type PostFilter struct {
	SubjectID uint   `query:"subject_id"`
	AuthorID  uint   `query:"author_id"`
	Search    string `query:"search"`
}

func ListPosts(f PostFilter, p Page) ([]models.ForumPost, Pagination, error) {
	q := db().Model(&models.ForumPost{})
	if f.SubjectID != 0 {
		q = q.Where("subject_id = ?", f.SubjectID)
	}
	if f.AuthorID != 0 {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	if f.Search != "" {
		pattern := likePattern(f.Search)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}
	var out []models.ForumPost
	pg, err := paginate(q, p, "pinned desc, created_at desc", &out, "Author", "Subject")
	return out, pg, err
}

func GetPost(id uint) (*models.ForumPost, error) {
	var post models.ForumPost
	err := db().Preload("Author").Preload("Subject").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at asc, id asc") }).
		Preload("Comments.Author").
		First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Post")
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading post")
	}
	return &post, nil
}

func CreatePost(actor *models.User, in PostInput) (*models.ForumPost, error) {
	if err := requireRef(&models.Subject{}, in.SubjectID, "Subject"); err != nil {
		return nil, err
	}
	post := models.ForumPost{
		Title:     strings.TrimSpace(in.Title),
		Content:   in.Content,
		AuthorID:  actor.ID,
		SubjectID: in.SubjectID,
	}
	if err := db().Omit(clause.Associations).Create(&post).Error; err != nil {
		return nil, errors.Wrap(err, "creating post")
	}
	return GetPost(post.ID)
}

func authoredPost(actor *models.User, id uint) (*models.ForumPost, error) {
	var post models.ForumPost
	if err := first(&post, id, "Post"); err != nil {
		return nil, err
	}
	if post.AuthorID != actor.ID && !actor.IsAdmin() {
		return nil, errNotAllowed
	}
	return &post, nil
}

func UpdatePost(actor *models.User, id uint, in PostUpdateInput) (*models.ForumPost, error) {
	post, err := authoredPost(actor, id)
	if err != nil {
		return nil, err
	}
	if err := requireRef(&models.Subject{}, in.SubjectID, "Subject"); err != nil {
		return nil, err
	}
	if in.Title != "" {
		post.Title = strings.TrimSpace(in.Title)
	}
	if in.Content != "" {
		post.Content = in.Content
	}
	if in.SubjectID != nil {
		post.SubjectID = in.SubjectID
	}
	if err := db().Omit(clause.Associations).Save(post).Error; err != nil {
		return nil, errors.Wrap(err, "updating post")
	}
	return GetPost(post.ID)
}

// DeletePost removes a post and its comments.
func DeletePost(actor *models.User, id uint) error {
	post, err := authoredPost(actor, id)
	if err != nil {
		return err
	}
	return errors.Wrap(db().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(post).Error
	}), "deleting post")
}

func PinPost(id uint, pinned bool) (*models.ForumPost, error) {
	var post models.ForumPost
	if err := first(&post, id, "Post"); err != nil {
		return nil, err
	}
	if err := db().Model(&post).Update("pinned", pinned).Error; err != nil {
		return nil, errors.Wrap(err, "pinning post")
	}
	return GetPost(id)
}

// Comments

func ListComments(postID uint, p Page) ([]models.Comment, Pagination, error) {
	if _, err := GetPost(postID); err != nil {
		return nil, Pagination{}, err
	}
	q := db().Model(&models.Comment{}).Where("post_id = ?", postID)
	var out []models.Comment
	pg, err := paginate(q, p, "created_at asc, id asc", &out, "Author")
	return out, pg, err
}

func loadComment(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := first(&comment, id, "Comment", "Author"); err != nil {
		return nil, err
	}
	return &comment, nil
}

func CreateComment(actor *models.User, postID uint, in CommentInput) (*models.Comment, error) {
	var post models.ForumPost
	if err := first(&post, postID, "Post"); err != nil {
		return nil, err
	}
	comment := models.Comment{PostID: postID, AuthorID: actor.ID, Content: in.Content}
	if err := db().Omit(clause.Associations).Create(&comment).Error; err != nil {
		return nil, errors.Wrap(err, "creating comment")
	}
	return loadComment(comment.ID)
}

// UpdateComment is reserved to the comment author.
func UpdateComment(actor *models.User, id uint, in CommentInput) (*models.Comment, error) {
	comment, err := loadComment(id)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != actor.ID {
		return nil, errNotAllowed
	}
	comment.Content = in.Content
	if err := db().Model(comment).Update("content", in.Content).Error; err != nil {
		return nil, errors.Wrap(err, "updating comment")
	}
	return comment, nil
}

func DeleteComment(actor *models.User, id uint) error {
	comment, err := loadComment(id)
	if err != nil {
		return err
	}
	if comment.AuthorID != actor.ID && !actor.IsAdmin() {
		return errNotAllowed
	}
	return errors.Wrap(db().Delete(comment).Error, "deleting comment")
}
