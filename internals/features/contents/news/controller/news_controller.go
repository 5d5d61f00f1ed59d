// file: internals/features/contents/news/controller/news_controller.go
package controller

import (
	"errors"
	"io"
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kbcms_backend/internals/constants"
	"kbcms_backend/internals/features/contents/news/dto"
	"kbcms_backend/internals/features/contents/news/model"
	"kbcms_backend/internals/features/contents/news/repository"
	newsValidator "kbcms_backend/internals/features/contents/news/validator"
	helpers "kbcms_backend/internals/helpers"
	s3helper "kbcms_backend/internals/helpers/s3"
)

type NewsController struct {
	Repo *repository.NewsRepository
	S3   *s3helper.S3Service
}

func NewNewsController(db *gorm.DB, s3 *s3helper.S3Service) *NewsController {
	return &NewsController{
		Repo: repository.NewNewsRepository(db),
		S3:   s3,
	}
}

// =============================
// ➕ Create News (multipart, satu field "file" opsional)
// =============================
func (ctrl *NewsController) CreateNews(c *fiber.Ctx) error {
	body, ok := c.Locals(newsValidator.LocalsNewsRequest).(*dto.CreateNewsRequest)
	if !ok {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body", helpers.ErrTypeValidation)
	}

	var uploadedFilePath *string
	if file, ferr := CollectUploadFile(c); ferr != nil {
		return helpers.JsonAppError(c, ferr)
	} else if file != nil {
		result, upErr := ctrl.S3.UploadFilesS3(c.UserContext(), file, "news")
		if upErr != nil {
			log.Printf("[ERROR] Error uploading file to S3: %v (file=%s)", upErr, file.OriginalName)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "File upload failed", helpers.ErrTypeFileUpload)
		}
		uploadedFilePath = &result.S3URL
	}

	news := model.NewsModel{
		NewsTitle:       body.Title,
		NewsSubTitle:    body.SubTitle,
		NewsDescription: body.Description,
		NewsCategory:    body.Category,
		NewsType:        body.Type,
		NewsHasQuiz:     body.HasQuiz,
		NewsAuthor:      body.Author,
		NewsIsActive:    true,
	}
	if body.ContentURL != "" {
		news.NewsContentURL = &body.ContentURL
	}
	news.NewsUploadFile = uploadedFilePath
	news.ApplyStatus(body.Status)

	if err := news.SetQuizQuestions(toModelQuestions(body.QuizQuestions)); err != nil {
		return helpers.JsonAppError(c, err)
	}

	if err := ctrl.Repo.Create(&news); err != nil {
		return helpers.JsonAppError(c, err)
	}

	return helpers.JsonOK(c, constants.MsgNewsCreated, dto.ToCreatedNewsDTO(news))
}

// =============================
// 📄 Get News (filter + pagination, urut terbaru)
// =============================
func (ctrl *NewsController) GetNews(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 10, 100)

	filter := map[string]any{"news_is_active": true}
	if v := c.Query("category"); v != "" {
		filter["news_category"] = v
	}
	if v := c.Query("status"); v != "" {
		filter["news_status"] = v
	}
	if v := c.Query("author"); v != "" {
		filter["news_author"] = v
	}
	if v := c.Query("hasQuiz"); v != "" {
		filter["news_has_quiz"] = v == "true"
	}
	if v := c.Query("type"); v != "" {
		filter["news_type"] = v
	}

	rows, pagination, err := ctrl.Repo.FindMany(filter, repository.QueryOptions{
		Page:  paging.Page,
		Limit: paging.Limit,
		Sort:  "news_created_at DESC",
	})
	if err != nil {
		return helpers.JsonAppError(c, err)
	}

	articles := make([]dto.NewsDTO, 0, len(rows))
	for _, row := range rows {
		articles = append(articles, dto.ToNewsDTO(row))
	}

	return helpers.JsonOK(c, constants.MsgNewsRetrieved, fiber.Map{
		"articles":   articles,
		"pagination": pagination,
	})
}

// =============================
// 🔍 Get News By ID (read dengan efek samping: view count naik)
// =============================
func (ctrl *NewsController) GetNewsByID(c *fiber.Ctx) error {
	id := c.Params("id")

	filter := map[string]any{"news_id": id, "news_is_active": true}
	article, err := ctrl.Repo.FindOne(filter, repository.QueryOptions{})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, constants.MsgNewsNotFound, helpers.ErrTypeArticleNotFound)
		}
		return helpers.JsonAppError(c, err)
	}

	if err := ctrl.Repo.IncrementCounter(map[string]any{"news_id": id}, "news_view_count"); err != nil {
		log.Printf("[WARN] gagal increment view count: %v", err)
	}
	article.NewsViewCount++

	return helpers.JsonOK(c, constants.MsgNewsRetrieved, fiber.Map{
		"article": dto.ToNewsDTO(*article),
	})
}

// =============================
// 🔄 Update News (file baru menimpa URL lama; object lama TIDAK dihapus)
// =============================
func (ctrl *NewsController) UpdateNews(c *fiber.Ctx) error {
	id := c.Params("id")

	body, parseErr := parseUpdateNewsBody(c)
	if parseErr != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, parseErr.Error(), helpers.ErrTypeValidation)
	}

	article, err := ctrl.Repo.FindOne(map[string]any{"news_id": id, "news_is_active": true}, repository.QueryOptions{})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, constants.MsgNewsNotFound, helpers.ErrTypeArticleNotFound)
		}
		return helpers.JsonAppError(c, err)
	}

	if file, ferr := CollectUploadFile(c); ferr != nil {
		return helpers.JsonAppError(c, ferr)
	} else if file != nil {
		result, upErr := ctrl.S3.UploadFilesS3(c.UserContext(), file, "news")
		if upErr != nil {
			log.Printf("[ERROR] Error uploading file to S3 for update: %v (file=%s)", upErr, file.OriginalName)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "File upload failed", helpers.ErrTypeFileUpload)
		}
		// Flow update memprioritaskan CDN URL.
		url := result.CDNURL
		if url == "" {
			url = result.S3URL
		}
		article.NewsUploadFile = &url
		log.Printf("[INFO] File uploaded to S3 for update: key=%s cdn=%s", result.S3Key, result.CDNURL)
	}

	if body.Title != nil {
		article.NewsTitle = *body.Title
	}
	if body.SubTitle != nil {
		article.NewsSubTitle = *body.SubTitle
	}
	if body.Description != nil {
		article.NewsDescription = *body.Description
	}
	if body.Category != nil {
		article.NewsCategory = *body.Category
	}
	if body.Type != nil {
		article.NewsType = *body.Type
	}
	if body.ContentURL != nil {
		article.NewsContentURL = body.ContentURL
	}
	if body.HasQuiz != nil {
		article.NewsHasQuiz = *body.HasQuiz
	}
	if body.Author != nil {
		article.NewsAuthor = *body.Author
	}
	if body.QuizQuestions != nil {
		if err := article.SetQuizQuestions(toModelQuestions(body.QuizQuestions)); err != nil {
			return helpers.JsonAppError(c, err)
		}
	}
	if body.Status != nil {
		article.ApplyStatus(*body.Status)
	}

	if err := ctrl.Repo.DB.Save(article).Error; err != nil {
		return helpers.JsonAppError(c, err)
	}

	return helpers.JsonOK(c, constants.MsgNewsUpdated, fiber.Map{
		"article": dto.ToNewsDTO(*article),
	})
}

// =============================
// 🗑️ Delete News (soft delete: flip news_is_active)
// =============================
func (ctrl *NewsController) DeleteNews(c *fiber.Ctx) error {
	id := c.Params("id")

	deleted, err := ctrl.Repo.Delete(map[string]any{"news_id": id, "news_is_active": true})
	if err != nil {
		return helpers.JsonAppError(c, err)
	}
	if !deleted {
		return helpers.JsonError(c, fiber.StatusNotFound, constants.MsgNewsNotFound, helpers.ErrTypeArticleNotFound)
	}

	return helpers.JsonOK(c, constants.MsgNewsDeleted, nil)
}

/* ===============================
   Helpers
=================================*/

// CollectUploadFile mengambil field "file" (opsional): maksimum 50 MiB di
// ingress, hanya image/video, independen dari ambang strategi uploader.
func CollectUploadFile(c *fiber.Ctx) (*s3helper.UploadFile, error) {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return nil, nil
	}

	if fh.Size > constants.MaxUploadFileSize {
		return nil, helpers.NewAppError(helpers.ErrTypeValidation, fiber.StatusBadRequest, "File too large (max 50MB)")
	}

	mimeType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") && !strings.HasPrefix(mimeType, "video/") {
		return nil, helpers.NewAppError(helpers.ErrTypeValidation, fiber.StatusBadRequest, "Only image and video files are allowed")
	}

	src, err := fh.Open()
	if err != nil {
		return nil, helpers.NewFileUploadError("Failed to read uploaded file")
	}
	defer src.Close()

	buf, err := io.ReadAll(src)
	if err != nil {
		return nil, helpers.NewFileUploadError("Failed to read uploaded file")
	}

	return &s3helper.UploadFile{
		Buffer:       buf,
		OriginalName: fh.Filename,
		MimeType:     mimeType,
		Size:         fh.Size,
	}, nil
}

func parseUpdateNewsBody(c *fiber.Ctx) (*dto.UpdateNewsRequest, error) {
	var body dto.UpdateNewsRequest

	ct := string(c.Request().Header.ContentType())
	if strings.HasPrefix(ct, fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, errors.New("Invalid request body")
		}
		get := func(key string) *string {
			if vals, ok := form.Value[key]; ok && len(vals) > 0 {
				return &vals[0]
			}
			return nil
		}
		body.Title = get("title")
		body.SubTitle = get("subTitle")
		body.Description = get("description")
		body.Category = get("category")
		body.Type = get("type")
		body.ContentURL = get("content_url")
		body.Status = get("status")
		body.Author = get("author")
		if v := get("hasQuiz"); v != nil {
			b := *v == "true"
			body.HasQuiz = &b
		}
		if raw := get("quizQuestions"); raw != nil && *raw != "" {
			if err := sonic.UnmarshalString(*raw, &body.QuizQuestions); err != nil {
				return nil, errors.New("Invalid JSON format for quizQuestions")
			}
		}
		return &body, nil
	}

	if err := c.BodyParser(&body); err != nil {
		return nil, errors.New("Invalid request body")
	}
	return &body, nil
}

func toModelQuestions(in []dto.QuizQuestionRequest) []model.NewsQuizQuestion {
	out := make([]model.NewsQuizQuestion, 0, len(in))
	for _, q := range in {
		out = append(out, model.NewsQuizQuestion{
			Question:       q.Question,
			Options:        q.Options,
			CorrectAnswers: q.CorrectAnswers,
		})
	}
	return out
}
