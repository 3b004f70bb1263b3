package publicapi

import (
	"encoding/json"
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"hireflow-backend/controllers"
	candidatehandler "hireflow-backend/lib/candidate"
	filestorage "hireflow-backend/lib/file-storage"
	jobhandler "hireflow-backend/lib/job"
	apimodels "hireflow-backend/models/api"
	candidateapimodels "hireflow-backend/models/api/candidate"
)

const maxResumeSize = 5 * 1024 * 1024 // 5 МБ

var allowedResumeTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

type publicApplyApiController struct {
	controllers.BaseAPIController
}

func InitPublicApplyApiRouters(app *fiber.App) {
	controller := publicApplyApiController{}
	app.Route("job", func(router fiber.Router) {
		router.Get(":id", controller.getJob)
	})
	app.Route("apply", func(router fiber.Router) {
		router.Post(":id", controller.apply)
	})
}

// @Summary Публичная карточка вакансии
// @Tags Отклик
// @Description Карточка вакансии для страницы отклика, доступна только в статусе published
// @Param   id          		path    string  	true	"job ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/job/{id} [get]
func (c *publicApplyApiController) getJob(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := jobhandler.Instance.GetPublished(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отклик на вакансию
// @Tags Отклик
// @Description Публичная подача отклика с анкетой и файлом резюме
// @Accept  multipart/form-data
// @Param   id          		path    	string  true	"job ID"
// @Param   data				formData	string	true	"анкета кандидата (json)"
// @Param   resume				formData	file 	true	"файл резюме (pdf, doc, docx, до 5 МБ)"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/apply/{id} [post]
func (c *publicApplyApiController) apply(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger := log.WithField("job_id", jobID)

	var payload candidateapimodels.CandidateData
	if err = json.Unmarshal([]byte(ctx.FormValue("data")), &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось разобрать анкету кандидата"))
	}
	payload.JobID = jobID
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := ctx.FormFile("resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не прикреплён файл резюме"))
	}
	if file.Size > maxResumeSize {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("файл резюме больше 5 МБ"))
	}
	contentType := file.Header.Get(fiber.HeaderContentType)
	if _, ok := allowedResumeTypes[contentType]; !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("допустимы только файлы pdf, doc и docx"))
	}

	buffer, err := file.Open()
	if err != nil {
		logger.WithError(err).Error("Ошибка при получении файла резюме")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		logger.WithError(err).Error("Ошибка при загрузке файла резюме")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resumeURL, err := filestorage.Instance.UploadResume(ctx.UserContext(), jobID, payload.Name, file.Filename, contentType, fileBody)
	if err != nil {
		logger.WithError(err).Error("Ошибка сохранения файла резюме")
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("не удалось сохранить файл резюме"))
	}

	id, err := candidatehandler.Instance.Create(payload, resumeURL)
	if err != nil {
		return c.SendError(ctx, logger, err, "Ошибка создания отклика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}
