package action

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/tidwall/gjson"
)

// Doer sends a built request. The hertz client satisfies it and is safe for
// concurrent use by every character.
type Doer interface {
	Do(ctx context.Context, req *protocol.Request, resp *protocol.Response) error
}

// DecodeEnvelope checks the { data?, error? } contract and returns the data
// payload. Error payloads are classified: 490 -> ErrNoOp, 499 ->
// ErrCooldownRejected, anything else -> *APIError.
func DecodeEnvelope(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%w: response body is not json", ErrTransport)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return gjson.Result{}, protocolError("envelope is not an object")
	}

	data := root.Get("data")
	apiErr := root.Get("error")
	hasData, hasErr := present(data), present(apiErr)
	switch {
	case hasData && hasErr:
		return gjson.Result{}, protocolError("both data and error present")
	case hasData:
		return data, nil
	case hasErr:
		return gjson.Result{}, classifyError(apiErr)
	default:
		return gjson.Result{}, protocolError("neither data nor error present")
	}
}

func classifyError(apiErr gjson.Result) error {
	code := apiErr.Get("code")
	if code.Type != gjson.Number {
		return protocolError("error payload without numeric code")
	}
	message := apiErr.Get("message").String()
	switch int(code.Int()) {
	case CodeNoOp:
		return fmt.Errorf("%w: %s", ErrNoOp, message)
	case CodeCooldownActive:
		return fmt.Errorf("%w: %s", ErrCooldownRejected, message)
	default:
		return &APIError{Code: int(code.Int()), Message: message}
	}
}

func present(r gjson.Result) bool {
	return r.Exists() && r.Type != gjson.Null
}

// cooldownSeconds extracts data.cooldown.remaining_seconds; negative values
// clamp to zero.
func cooldownSeconds(data gjson.Result) (int, error) {
	rs := data.Get("cooldown.remaining_seconds")
	if rs.Type != gjson.Number {
		return 0, protocolError("missing cooldown.remaining_seconds")
	}
	seconds := int(rs.Int())
	if seconds < 0 {
		seconds = 0
	}
	return seconds, nil
}

// Send executes req and decodes the response envelope. It is the shared path
// for queued actions and immediate reads.
func Send(ctx context.Context, doer Doer, req *protocol.Request) (gjson.Result, error) {
	body, err := roundTrip(ctx, doer, req)
	if err != nil {
		return gjson.Result{}, err
	}
	return DecodeEnvelope(body)
}

func roundTrip(ctx context.Context, doer Doer, req *protocol.Request) ([]byte, error) {
	resp := protocol.AcquireResponse()
	defer protocol.ReleaseResponse(resp)

	if err := doer.Do(ctx, req, resp); err != nil {
		return nil, transportError(err)
	}
	body := resp.Body()
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}
