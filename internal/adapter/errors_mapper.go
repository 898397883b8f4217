// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-drive-desk/internal/app"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	message := responseMessage(body)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return newError(message, app.MsgBadRequest, ErrBadRequest, body)
	case http.StatusUnauthorized:
		return newError(message, app.MsgUnauthorized, ErrUnauthorized, body)
	case http.StatusForbidden:
		return newError(message, app.MsgForbidden, ErrForbidden, body)
	case http.StatusNotFound:
		return newError(message, app.MsgNotFound, ErrNotFound, body)
	case http.StatusConflict:
		return newError(message, app.MsgConflict, ErrConflict, body)
	case http.StatusBadGateway:
		return newError(message, app.MsgWorkerUnavailable, ErrBadGateway, body)
	case http.StatusInternalServerError:
		return newError(message, app.MsgInternalServerError, ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		if message == "" {
			message = body
		}
		return app.New(message, fmt.Errorf("http %d: %s", resp.StatusCode(), body))
	}
}

func newError(message, fallback string, sentinel error, body string) *app.Error {
	if message == "" {
		message = fallback
	}
	return app.New(message, fmt.Errorf("%w: %s", sentinel, body))
}

// responseMessage extracts the human-readable part of an error body: the
// envelope's message field for JSON bodies, the trimmed text otherwise.
func responseMessage(body string) string {
	if body == "" {
		return ""
	}

	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &env); err == nil {
		return strings.TrimSpace(env.Message)
	}

	if len(body) > 200 {
		return ""
	}
	return body
}
