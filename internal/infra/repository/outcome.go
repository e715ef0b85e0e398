package repository

import (
	"bytes"
	"encoding/json"
	"net/http"

	"cancha-client/internal/gateway"
	"cancha-client/internal/infra"
)

// Classification helpers shared by every repository. Each remote call ends in
// exactly one of: a decoded payload, or a RemoteError. Nothing below the
// usecase layer is allowed to surface raw transport errors.

func networkErr(err error) error {
	return infra.NewRemoteErr(infra.KindNetwork, 0, err.Error(), err)
}

// httpErr converts a non-success response, preferring the structured {error}
// body over the resource-specific default message.
func httpErr(resp *gateway.Response, defaultMsg string) error {
	msg := resp.ErrorMessage()
	if msg == "" {
		msg = defaultMsg
	}
	return infra.NewRemoteErr(infra.KindHTTP, resp.Status, msg, nil)
}

func isEmptyBody(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// decodePayload handles operations that must return a payload: a success
// status with a missing or unusable body is a decode failure.
func decodePayload(resp *gateway.Response, v any, decodeMsg string) error {
	if isEmptyBody(resp.Body) {
		return infra.NewRemoteErr(infra.KindDecode, resp.Status, decodeMsg, nil)
	}
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return infra.NewRemoteErr(infra.KindDecode, resp.Status, decodeMsg, err)
	}
	return nil
}

// decodeLookup handles lookups: an absent body on success reads as not-found
// rather than a decode fault.
func decodeLookup(resp *gateway.Response, v any, notFoundMsg string) error {
	if isEmptyBody(resp.Body) {
		return infra.NewRemoteErr(infra.KindHTTP, http.StatusNotFound, notFoundMsg, nil)
	}
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return infra.NewRemoteErr(infra.KindDecode, resp.Status, notFoundMsg, err)
	}
	return nil
}
