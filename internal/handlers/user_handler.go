package handlers

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-processing-api/internal/middleware"
	"user-processing-api/internal/models"
	"user-processing-api/internal/services"
	"user-processing-api/pkg/lambda"
)

// UserHandler handles user processing requests in both deployment
// modes. The gin method adapts HTTP requests into envelopes; the Lambda
// entrypoint builds envelopes from API Gateway events. Both end up in
// HandleProcess.
type UserHandler struct {
	userService services.UserService
	logger      *logrus.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// HandleProcess processes a user payload carried in the request
// envelope. It never propagates a failure to the caller: decode
// errors, service errors, and panics all collapse into the 500 body,
// so err is always nil and the response is always well-formed JSON.
func (h *UserHandler) HandleProcess(ctx context.Context, req *lambda.Request) (resp *lambda.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			message := fmt.Sprintf("%v", r)
			kind := panicKind(r)
			h.logError(message, kind)
			resp = internalErrorResponse(message, kind)
			err = nil
		}
	}()

	h.logger.WithFields(logrus.Fields{
		"request_id": req.RequestID,
		"method":     req.Method,
		"path":       req.Path,
		"headers":    req.Headers,
		"body":       string(req.Body),
	}).Info("Received event")

	payload, parseErr := models.ParseUserPayload(req.Body)
	if parseErr != nil {
		h.logError(parseErr.Error(), errorKind(parseErr))
		return internalErrorResponse(parseErr.Error(), errorKind(parseErr)), nil
	}

	result, processErr := h.userService.ProcessUser(ctx, payload)
	if processErr != nil {
		h.logError(processErr.Error(), errorKind(processErr))
		return internalErrorResponse(processErr.Error(), errorKind(processErr)), nil
	}

	if !result.Accepted() {
		return jsonResponse(400, models.ValidationErrorResponse{Error: result.Reason}), nil
	}

	return jsonResponse(200, models.NewProcessUserResponse(result.User)), nil
}

// @Summary Process a user
// @Description Validate and echo back the id and name of a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserPayload true "User identity"
// @Success 200 {object} models.ProcessUserResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.InternalErrorResponse
// @Router /users/process [post]
func (h *UserHandler) ProcessUser(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.logError(err.Error(), errorKind(err))
		writeResponse(c, internalErrorResponse(err.Error(), errorKind(err)))
		return
	}

	req := &lambda.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     singleValued(c.Request.Header),
		QueryParams: singleValued(c.Request.URL.Query()),
		Body:        body,
		RequestID:   c.GetString(middleware.RequestIDKey),
	}

	resp, err := h.HandleProcess(c.Request.Context(), req)
	if err != nil {
		h.logError(err.Error(), errorKind(err))
		resp = internalErrorResponse(err.Error(), errorKind(err))
	}

	writeResponse(c, resp)
}

func (h *UserHandler) logError(message, kind string) {
	h.logger.WithField("error_type", kind).Errorf("Error: %s", message)
}

// singleValued flattens multi-valued HTTP headers and query parameters
// into the envelope's map shape, keeping the first value of each key.
func singleValued(values map[string][]string) map[string]string {
	out := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out
}

// writeResponse copies an envelope response onto the gin context. A nil
// response becomes a plain 500, matching lambda.ToAPIGatewayResponse.
func writeResponse(c *gin.Context, resp *lambda.Response) {
	if resp == nil {
		resp = lambda.NewJSONResponse(500, []byte(`{"error": "Internal server error"}`))
	}
	contentType := resp.Headers["Content-Type"]
	if contentType == "" {
		contentType = "application/json"
	}
	for key, value := range resp.Headers {
		if key == "Content-Type" {
			continue
		}
		c.Header(key, value)
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
}
