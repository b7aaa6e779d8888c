package main

import (
	"context"
	"log"
	"time"

	"moviedb-backend/infrastructure/config"
	"moviedb-backend/infrastructure/di"
	"moviedb-backend/interfaces/http/rest"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var (
	// chiLambda wraps the Chi router for AWS Lambda integration
	chiLambda *chiadapter.ChiLambdaV2

	container *di.Container

	// coldStart tracks whether this is a cold start invocation
	coldStart = true

	coldStartTime time.Time
)

// init runs during cold start
func init() {
	coldStartTime = time.Now()
	log.Println("Lambda cold start initiated")

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	router := rest.NewRouter(
		container.Config,
		container.Reviews,
		container.Catalog,
		container.Verifier,
		container.Logger,
	)
	handler := router.Setup()

	chiRouter, ok := handler.(*chi.Mux)
	if !ok {
		log.Fatal("Failed to cast handler to chi.Mux")
	}
	chiLambda = chiadapter.NewV2(chiRouter)

	log.Printf("Lambda cold start completed in %v", time.Since(coldStartTime))
}

// Handler is the Lambda function handler
func Handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	resp, err := chiLambda.ProxyWithContextV2(ctx, req)

	if resp.Headers == nil {
		resp.Headers = make(map[string]string)
	}
	if coldStart {
		resp.Headers["X-Cold-Start"] = "true"
		resp.Headers["X-Cold-Start-Duration"] = time.Since(coldStartTime).String()
		coldStart = false
	} else {
		resp.Headers["X-Cold-Start"] = "false"
	}
	if req.RequestContext.RequestID != "" {
		resp.Headers["X-Request-ID"] = req.RequestContext.RequestID
	}

	if resp.StatusCode >= 400 && container != nil && container.Logger != nil {
		container.Logger.Warn("Lambda error response",
			zap.String("method", req.RequestContext.HTTP.Method),
			zap.String("path", req.RequestContext.HTTP.Path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("request_id", req.RequestContext.RequestID),
		)
	}

	return resp, err
}

func main() {
	lambda.Start(Handler)
}
