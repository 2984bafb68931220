package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	deliveryHTTP "github.com/superj80820/account-service/auth/delivery/http"
	accountMongoRepo "github.com/superj80820/account-service/auth/repository/account/mongo"
	authJWTRepo "github.com/superj80820/account-service/auth/repository/auth/jwt"
	accountUseCaseLib "github.com/superj80820/account-service/auth/usecase/account"
	authUseCaseLib "github.com/superj80820/account-service/auth/usecase/auth"
	httpKit "github.com/superj80820/account-service/kit/http"
	httpMiddlewareKit "github.com/superj80820/account-service/kit/http/middleware"
	loggerKit "github.com/superj80820/account-service/kit/logger"
	traceKit "github.com/superj80820/account-service/kit/trace"
	utilKit "github.com/superj80820/account-service/kit/util"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"
)

const (
	SYSTEM_NAME  = "system"
	SERVICE_NAME = "account"
)

func main() {
	var (
		enableTracer = utilKit.GetEnvBool("ENABLE_TRACER", false)
		enableMetric = utilKit.GetEnvBool("ENABLE_METRIC", false)
		env          = utilKit.GetEnvString("ENV", "development")
		jwtSecret    = utilKit.GetRequireEnvString("JWT_SECRET")
		mongoURI     = utilKit.GetEnvString("MONGO_URI", "mongodb://localhost:27017")
		httpAddr     = utilKit.GetEnvString("HTTP_ADDR", ":9092")
	)

	logLevel := loggerKit.InfoLevel
	if env == "development" {
		logLevel = loggerKit.DebugLevel
	}
	logger, err := loggerKit.NewLogger("./go.log", logLevel)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoDB, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := mongoDB.Disconnect(context.Background()); err != nil {
			logger.Error(err.Error())
		}
	}()

	accountRepo, err := accountMongoRepo.CreateAccountRepo(ctx, mongoDB)
	if err != nil {
		panic(err)
	}
	authRepo, err := authJWTRepo.CreateAuthRepo(jwtSecret)
	if err != nil {
		panic(err)
	}

	accountUseCase, err := accountUseCaseLib.CreateAccountUseCase(accountRepo, authRepo, logger)
	if err != nil {
		panic(err)
	}
	authUseCase, err := authUseCaseLib.CreateAuthUseCase(authRepo, accountRepo, logger)
	if err != nil {
		panic(err)
	}

	var tracer trace.Tracer
	if enableTracer {
		tracer, err = traceKit.CreateTracer(context.Background(), SERVICE_NAME)
		if err != nil {
			panic(err)
		}
	} else {
		tracer = traceKit.CreateNoOpTracer()
	}

	customMiddleware := endpoint.Chain(
		httpMiddlewareKit.CreateLoggingMiddleware(logger),
		httpMiddlewareKit.CreateMetrics(SYSTEM_NAME, SERVICE_NAME),
	)
	authMiddleware := httpMiddlewareKit.CreateAuthMiddleware(func(ctx context.Context, token string) (interface{}, error) {
		account, err := authUseCase.Verify(ctx, token)
		if err != nil {
			return nil, err
		}
		return account, nil
	})

	g := new(run.Group)
	{
		r := mux.NewRouter()
		options := []httptransport.ServerOption{
			httptransport.ServerBefore(httpKit.CustomBeforeCtx(tracer)),
			httptransport.ServerAfter(httpKit.CustomAfterCtx),
			httptransport.ServerErrorEncoder(httpKit.EncodeHTTPErrorResponse()),
		}
		r.Methods("POST").Path("/api/v1/account/register").Handler(
			httptransport.NewServer(
				customMiddleware(deliveryHTTP.MakeAccountRegisterEndpoint(accountUseCase)),
				deliveryHTTP.DecodeAccountRegisterRequest,
				deliveryHTTP.EncodeAccountRegisterResponse,
				options...,
			))
		r.Methods("POST").Path("/api/v1/auth/login").Handler(
			httptransport.NewServer(
				customMiddleware(deliveryHTTP.MakeAuthLoginEndpoint(authUseCase)),
				deliveryHTTP.DecodeAuthLoginRequest,
				deliveryHTTP.EncodeAuthLoginResponse,
				options...,
			))
		r.Methods("GET").Path("/api/v1/account/profile").Handler(
			httptransport.NewServer(
				customMiddleware(authMiddleware(deliveryHTTP.MakeAccountProfileEndpoint())),
				deliveryHTTP.DecodeAccountProfileRequest,
				deliveryHTTP.EncodeAccountProfileResponse,
				options...,
			))
		r.Methods("PUT").Path("/api/v1/account/profile").Handler(
			httptransport.NewServer(
				customMiddleware(authMiddleware(deliveryHTTP.MakeAccountUpdateProfileEndpoint(accountUseCase))),
				deliveryHTTP.DecodeAccountUpdateProfileRequest,
				deliveryHTTP.EncodeAccountUpdateProfileResponse,
				options...,
			))
		r.Methods("DELETE").Path("/api/v1/account/profile").Handler(
			httptransport.NewServer(
				customMiddleware(authMiddleware(deliveryHTTP.MakeAccountDeleteProfileEndpoint(accountUseCase))),
				deliveryHTTP.DecodeAccountDeleteProfileRequest,
				deliveryHTTP.EncodeAccountDeleteProfileResponse,
				options...,
			))
		if enableMetric {
			r.Handle("/metrics", promhttp.Handler())
		}
		httpSrv := http.Server{
			Addr:    httpAddr,
			Handler: r,
		}
		g.Add(func() error {
			logger.Info("http server listen on " + httpAddr)
			return httpSrv.ListenAndServe()
		}, func(err error) {
			if err != nil {
				logger.Error(err.Error())
			}
			httpSrv.Close()
		})
	}
	if err := g.Run(); err != nil {
		logger.Error(err.Error())
	}
}
