package articlecontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chauvanhung/hoanglinhmedicine-api/listing"
	"github.com/chauvanhung/hoanglinhmedicine-api/models"
)

type articleResponse struct {
	models.HealthArticle
	Tags []string `json:"tags"`
}

func toResponse(a models.HealthArticle) articleResponse {
	return articleResponse{HealthArticle: a, Tags: a.TagList()}
}

// GetArticles lists published health articles.
// Query params: search (title/excerpt), category, sort_by (newest|views|likes).
func GetArticles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var articles []models.HealthArticle
		if err := db.Order("published_at DESC").Find(&articles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
			return
		}

		query := listing.Query[models.HealthArticle]{
			Search: c.Query("search"),
			SearchFields: []func(models.HealthArticle) string{
				func(a models.HealthArticle) string { return a.Title },
				func(a models.HealthArticle) string { return a.Excerpt },
				func(a models.HealthArticle) string { return a.Author },
			},
			Matches: []listing.Match[models.HealthArticle]{
				{Value: c.Query("category"), Field: func(a models.HealthArticle) string { return a.Category }},
			},
		}
		switch c.Query("sort_by") {
		case "views":
			query.Less = listing.ByInt(func(a models.HealthArticle) int { return a.Views }, false)
		case "likes":
			query.Less = listing.ByInt(func(a models.HealthArticle) int { return a.Likes }, false)
		}

		filtered := listing.Apply(articles, query)
		out := make([]articleResponse, 0, len(filtered))
		for _, a := range filtered {
			out = append(out, toResponse(a))
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetArticleByID returns one article and bumps its view counter with an
// atomic column update, not a read-modify-write.
func GetArticleByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var article models.HealthArticle
		if err := db.First(&article, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}

		if err := db.Model(&article).
			UpdateColumn("views", gorm.Expr("views + 1")).Error; err == nil {
			article.Views++
		}

		c.JSON(http.StatusOK, toResponse(article))
	}
}

// POST /articles/:id/like
func LikeArticle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Model(&models.HealthArticle{}).
			Where("id = ?", id).
			UpdateColumn("likes", gorm.Expr("likes + 1"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like article"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Liked"})
	}
}

type ArticleInput struct {
	Title    string   `json:"title" binding:"required"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content" binding:"required"`
	Author   string   `json:"author"`
	Category string   `json:"category"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
	ReadTime int      `json:"read_time"`
}

// CreateArticle publishes a new article (admin).
func CreateArticle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ArticleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		article := models.HealthArticle{
			Title:       input.Title,
			Excerpt:     input.Excerpt,
			Content:     input.Content,
			Author:      input.Author,
			Category:    input.Category,
			Image:       input.Image,
			ReadTime:    input.ReadTime,
			PublishedAt: time.Now(),
		}
		article.SetTags(input.Tags)

		if err := db.Create(&article).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
			return
		}
		c.JSON(http.StatusCreated, toResponse(article))
	}
}

// UpdateArticle edits an article (admin).
func UpdateArticle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var article models.HealthArticle
		if err := db.First(&article, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}

		var input ArticleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		article.Title = input.Title
		article.Excerpt = input.Excerpt
		article.Content = input.Content
		article.Author = input.Author
		article.Category = input.Category
		article.Image = input.Image
		article.ReadTime = input.ReadTime
		article.SetTags(input.Tags)

		if err := db.Save(&article).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
			return
		}
		c.JSON(http.StatusOK, toResponse(article))
	}
}

// DeleteArticle soft deletes an article (admin).
func DeleteArticle(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Delete(&models.HealthArticle{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
	}
}
