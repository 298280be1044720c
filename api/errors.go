package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Domenick1991/workershub/internal/domain"
	"github.com/Domenick1991/workershub/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const notFoundMessage = "Not found."

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps service errors onto the public error shapes.
func respondError(c *gin.Context, err error) {
	if verr, ok := domain.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, verr.Fields)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: notFoundMessage})
		return
	}

	logger.ErrorLog(c.Request.Context(), err, "%s %s failed", c.Request.Method, c.FullPath())
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// pathID parses the :id parameter and responds 404 when it is not a positive integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, errorResponse{Error: notFoundMessage})
		return 0, false
	}
	return id, true
}

// bindError converts a gin binding failure into field-keyed messages.
func bindError(err error) *domain.ValidationError {
	verr := &domain.ValidationError{}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			verr.Add(fe.Field(), fieldMessage(fe))
		}
		return verr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		verr.Add(typeErr.Field, fmt.Sprintf("Incorrect type. Expected %s.", typeErr.Type.Kind()))
		return verr
	}

	verr.Add("detail", "JSON parse error - "+err.Error())
	return verr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "phone":
		return "Enter a valid phone number."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	default:
		return fmt.Sprintf("Invalid value (%s).", fe.Tag())
	}
}
