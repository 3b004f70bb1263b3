package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"hireflow-backend/config"
	"hireflow-backend/fiberlog"
	candidatehandler "hireflow-backend/lib/candidate"
	xlsexport "hireflow-backend/lib/export/xls"
	filestorage "hireflow-backend/lib/file-storage"
	fitscorehandler "hireflow-backend/lib/fitscore"
	interviewhandler "hireflow-backend/lib/interview"
	jobhandler "hireflow-backend/lib/job"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	xlsexport.NewHandler()
	filestorage.NewHandler()
	if err := filestorage.Instance.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("Ошибка создания бакета для резюме")
	}
	jobhandler.NewHandler()
	candidatehandler.NewHandler()
	interviewhandler.NewHandler()
	fitscorehandler.NewHandler()
}
