package main

import (
	"context"

	"user-processing-api/internal/config"
	"user-processing-api/internal/handlers"
	"user-processing-api/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := lambda.GetContainerManager().Initialize(cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	manager := lambda.GetContainerManager()

	container, err := manager.GetContainer(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}
	manager.UpdateLastUsed()

	// Convert API Gateway event to generic request. Routing is the
	// gateway's job, so every event that reaches this function is a
	// process-user request.
	req := lambda.FromAPIGatewayRequest(event)

	userHandler := handlers.NewUserHandler(container.UserService, container.Logger)
	resp, err := userHandler.HandleProcess(ctx, req)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	return lambda.ToAPIGatewayResponse(resp), nil
}

func main() {
	awslambda.Start(handler)
}
