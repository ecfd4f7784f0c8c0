package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	ultrapanel "ultrapanel_admin_back"
	"ultrapanel_admin_back/pkg/cache"
	"ultrapanel_admin_back/pkg/handler"
	"ultrapanel_admin_back/pkg/panelapi"
	"ultrapanel_admin_back/pkg/repository"
	"ultrapanel_admin_back/pkg/service"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))
	logrus.Infoln("Iniciando console administrativo")
	if err := godotenv.Load(); err != nil {
		logrus.Infof("Erro ao carregar variáveis de ambiente .env: %s \n", err)
	}

	if err := InitConfig(); err != nil {
		logrus.Fatalf("Erro (viper) ao inicializar o config .yaml: %s \n", err.Error())
	}
	logrus.Infoln("Config YAML inicializado")

	db, err := repository.NewPostgresDB(repository.Config{
		Host:     viper.GetString("db.host"),
		Port:     viper.GetString("db.port"),
		Username: viper.GetString("db.username"),
		Password: os.Getenv("DB_PASS_LOCAL"),
		DBName:   viper.GetString("db.dbname"),
		SSLMode:  viper.GetString("db.sslmode"),
	})
	if err != nil {
		logrus.Fatalf("Erro ao conectar no banco de dados: %s \n", err.Error())
	}
	logrus.Info("Banco de dados conectado")

	client := panelapi.NewClient(
		viper.GetString("panel.base_url"),
		viper.GetDuration("panel.timeout"),
	)

	repos := repository.NewRepository(db)
	service := service.NewService(client, repos)
	handler := handler.NewHandler(service)

	go func() {
		for range time.Tick(10 * time.Minute) {
			cache.Purge()
		}
	}()

	srv := new(ultrapanel.Server)
	if err := srv.Run(os.Getenv("PORT"), handler.InitRoute()); err != nil {
		logrus.Fatalf("Erro ao iniciar o servidor: %s \n", err)
	}
}

func InitConfig() error {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}
