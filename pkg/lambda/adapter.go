package lambda

import (
	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

const contentTypeJSON = "application/json"

// FromAPIGatewayRequest converts an API Gateway proxy event into the
// transport-neutral envelope. The request ID comes from the gateway's
// request context when present so log lines correlate with gateway
// access logs.
func FromAPIGatewayRequest(event events.APIGatewayProxyRequest) *Request {
	requestID := event.RequestContext.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
		PathParams:  event.PathParameters,
		RequestID:   requestID,
	}
}

// ToAPIGatewayResponse converts an envelope response into the API
// Gateway proxy shape. A nil response becomes a plain 500 so the
// gateway never sees an empty reply.
func ToAPIGatewayResponse(resp *Response) events.APIGatewayProxyResponse {
	if resp == nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": contentTypeJSON},
			Body:       `{"error": "Internal server error"}`,
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}

// NewJSONResponse builds an envelope response carrying a JSON body.
func NewJSONResponse(statusCode int, body []byte) *Response {
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": contentTypeJSON},
		Body:       body,
	}
}
