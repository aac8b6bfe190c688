package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var errEmptyBody = errors.New("el cuerpo de la solicitud está vacío")

// BindNestedOrFlat binds the request body to obj and validates its binding tags.
// It accepts both a nested object under key (e.g. {"client": {...}}) and a flat
// object (e.g. {...}), so clients can wrap payloads the way they prefer.
func BindNestedOrFlat(c *gin.Context, key string, obj interface{}) error {
	var bodyBytes []byte
	if c.Request.Body != nil {
		bodyBytes, _ = io.ReadAll(c.Request.Body)
	}
	// Restore body for subsequent reads
	c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return errEmptyBody
	}

	if err := unmarshalNestedOrFlat(bodyBytes, key, obj); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(obj)
}

func unmarshalNestedOrFlat(body []byte, key string, obj interface{}) error {
	var nestedMap map[string]json.RawMessage
	if err := json.Unmarshal(body, &nestedMap); err == nil {
		if val, ok := nestedMap[key]; ok {
			return json.Unmarshal(val, obj)
		}
	}
	return json.Unmarshal(body, obj)
}
