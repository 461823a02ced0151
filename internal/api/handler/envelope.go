package handler

import "github.com/labstack/echo/v4"

// apiResponse is the uniform envelope every endpoint returns, success and
// failure alike. StatusCode mirrors the HTTP status of the response.
type apiResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, apiResponse{StatusCode: status, Message: message, Data: data})
}
