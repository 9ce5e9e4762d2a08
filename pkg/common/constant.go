package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyIrrigationDBType string = "IRRIGATION_DB_TYPE"
	EnvKeyIrrigationDbPath string = "IRRIGATION_DB_PATH"
	EnvKeyIrrigationDbDSN  string = "IRRIGATION_DB_DSN"
	EnvKeyIrrigationLogDir string = "IRRIGATION_LOG_DIR"

	EnvKeyIrrigationHttpHostPort string = "IRRIGATION_HTTP_HOST_PORT"

	EnvKeyIrrigationDefaultRate  string = "IRRIGATION_DEFAULT_RATE"
	EnvKeyIrrigationDefaultBurst string = "IRRIGATION_DEFAULT_BURST"

	EnvKeyIrrigationTrainWorkers    string = "IRRIGATION_TRAIN_WORKERS"
	EnvKeyIrrigationTrainWindowDays string = "IRRIGATION_TRAIN_WINDOW_DAYS"
	EnvKeyIrrigationRetrainInterval string = "IRRIGATION_RETRAIN_INTERVAL"

	DefaultHttpHostPort    string = ":1080"
	DefaultSqliteDbPath    string = "irrigation.db"
	DefaultTrainWorkers    int    = 4
	DefaultTrainWindowDays int    = 100

	LoggerNameIrrigationCore string = "irrigation_core"
	LoggerNameRestfulServer  string = "restful_server"
	LoggerNamePipelineBatch  string = "pipeline_batch"
	LoggerNameCli            string = "irrigationctl"

	LoggerFieldIrrigationCategory string = "category"

	LoggerCategoryAggregate  string = "aggregate"
	LoggerCategoryRainMatch  string = "rainmatch"
	LoggerCategoryTraining   string = "training"
	LoggerCategoryModelStore string = "model_store"
	LoggerCategoryPrediction string = "prediction"
	LoggerCategoryTrend      string = "trend"
)
