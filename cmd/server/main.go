package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Malvezin/miglesMakeStore/internal/api"
	"github.com/Malvezin/miglesMakeStore/internal/config"
	"github.com/Malvezin/miglesMakeStore/internal/infra/consumer"
	"github.com/Malvezin/miglesMakeStore/internal/infra/producer"
	"github.com/Malvezin/miglesMakeStore/internal/infra/repository/db"
	"github.com/Malvezin/miglesMakeStore/internal/infra/repository/redis_repo"
	"github.com/Malvezin/miglesMakeStore/internal/pkg/metrics"
	"github.com/Malvezin/miglesMakeStore/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao carregar configuração")
	}

	conn, err := db.GetDbConn(cf.DbName, cf.DbHost, cf.DbPort, cf.DbUser, cf.DbPas)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao conectar no postgres")
	}

	dao := db.NewDbDao(conn)
	if err := dao.InitMigrate(); err != nil {
		log.Fatal().Err(err).Msg("falha ao migrar o schema")
	}
	if cf.SeedCatalog {
		if err := dao.SeedProducts(); err != nil {
			log.Fatal().Err(err).Msg("falha ao semear o catálogo")
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cf.RedisAddr,
		Password: cf.RedisPassword,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("falha ao conectar no redis")
	}

	productRepo := db.NewProductRepo(dao)
	orderRepo := db.NewOrderRepo(dao)
	userRepo := db.NewUserRepo(dao)
	eventRepo := db.NewOrderEventRepo(dao)
	cartRepo := redis_repo.NewCartRepo(redisClient)
	sessionRepo := redis_repo.NewSessionRepo(redisClient)

	brokers := cf.Brokers()
	eventProducer := producer.NewOrderEventProducer(brokers, cf.KafkaTopic)
	eventConsumer := consumer.NewOrderEventConsumer(brokers, cf.KafkaTopic, cf.KafkaGroupID, eventRepo)
	if eventConsumer.Enabled() {
		if err := eventConsumer.Start(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("falha ao iniciar o consumidor de eventos")
		}
	} else {
		log.Info().Msg("feed de eventos desabilitado (sem brokers)")
	}

	svcs := api.Services{
		Catalog:   service.NewCatalogService(productRepo),
		Cart:      service.NewCartService(cartRepo, productRepo),
		Checkout:  service.NewCheckoutService(orderRepo, cartRepo, userRepo, productRepo, eventProducer),
		Order:     service.NewOrderService(orderRepo, eventRepo, eventProducer),
		User:      service.NewUserService(userRepo, sessionRepo),
		Dashboard: service.NewDashboardService(productRepo, orderRepo, userRepo),
	}

	m := metrics.NewStoreMetrics()
	router := api.NewRouter(svcs, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cf.ServerPort),
		Handler: router,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		log.Info().Msg("sinal de desligamento recebido")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("erro ao desligar o servidor")
		}

		eventConsumer.Stop()
		if err := eventProducer.Close(); err != nil {
			log.Error().Err(err).Msg("erro ao fechar o produtor de eventos")
		}
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("erro ao fechar o redis")
		}

		shutdownCompleted <- struct{}{}
	}()

	log.Info().Str("addr", srv.Addr).Msg("loja no ar")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("servidor encerrou com erro")
	}
	<-shutdownCompleted
	log.Info().Msg("desligamento concluído")
}
