// Package httputil provides helpers shared by all HTTP handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON request body to the struct passed in.
//
// Type mismatches are returned as-is since json.UnmarshalTypeError
// names the offending field, which is the most useful message for the
// client. Everything else becomes one of the package's errors.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(&data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		return err
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}
