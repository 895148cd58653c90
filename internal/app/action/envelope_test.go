package action

import (
	"errors"
	"testing"
)

func TestDecodeEnvelope(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		wantErr  error
		wantKind FailureKind
	}{
		{name: "data", body: cooldownBody(12)},
		{name: "noop", body: errorBody(490, "Character already at this location."), wantErr: ErrNoOp, wantKind: KindNoOp},
		{name: "cooldown", body: errorBody(499, "Character in cooldown."), wantErr: ErrCooldownRejected, wantKind: KindCooldownRejected},
		{name: "other code", body: errorBody(497, "Character inventory is full."), wantErr: ErrAPI, wantKind: KindAPI},
		{name: "both", body: `{"data":{"cooldown":{"remaining_seconds":1}},"error":{"code":499,"message":"x"}}`, wantErr: ErrProtocolViolation, wantKind: KindProtocolViolation},
		{name: "neither", body: `{}`, wantErr: ErrProtocolViolation, wantKind: KindProtocolViolation},
		{name: "null slots", body: `{"data":null,"error":null}`, wantErr: ErrProtocolViolation, wantKind: KindProtocolViolation},
		{name: "null data with error", body: `{"data":null,"error":{"code":490,"message":"here"}}`, wantErr: ErrNoOp, wantKind: KindNoOp},
		{name: "not an object", body: `[1,2]`, wantErr: ErrProtocolViolation, wantKind: KindProtocolViolation},
		{name: "error without code", body: `{"error":{"message":"?"}}`, wantErr: ErrProtocolViolation, wantKind: KindProtocolViolation},
		{name: "not json", body: `<html>bad gateway</html>`, wantErr: ErrTransport, wantKind: KindTransport},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeEnvelope([]byte(tc.body))
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if got := KindOf(err); got != tc.wantKind {
				t.Fatalf("kind mismatch: got=%s want=%s", got, tc.wantKind)
			}
		})
	}
}

func TestDecodeEnvelope_APIErrorKeepsCodeAndMessage(t *testing.T) {
	_, err := DecodeEnvelope([]byte(errorBody(478, "Missing item or insufficient quantity.")))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T %v", err, err)
	}
	if apiErr.Code != 478 || apiErr.Message != "Missing item or insufficient quantity." {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestCooldownSeconds(t *testing.T) {
	data, err := DecodeEnvelope([]byte(cooldownBody(25)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got, err := cooldownSeconds(data)
	if err != nil || got != 25 {
		t.Fatalf("expected 25s, got %d err=%v", got, err)
	}

	data, _ = DecodeEnvelope([]byte(`{"data":{"cooldown":{"remaining_seconds":-3}}}`))
	if got, err := cooldownSeconds(data); err != nil || got != 0 {
		t.Fatalf("expected negative cooldown clamped to 0, got %d err=%v", got, err)
	}

	data, _ = DecodeEnvelope([]byte(`{"data":{"character":{}}}`))
	if _, err := cooldownSeconds(data); !errors.Is(err, ErrProtocolViolation) {
		t.Fatalf("expected protocol violation for missing cooldown, got %v", err)
	}
}

func TestKindOf_Unknown(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != KindUnknown {
		t.Fatalf("expected unknown kind, got %s", got)
	}
	if got := KindOf(nil); got != "" {
		t.Fatalf("expected empty kind for nil, got %s", got)
	}
}
