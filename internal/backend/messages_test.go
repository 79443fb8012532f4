package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/nfrund/bloomly/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLoginMessage(t *testing.T) {
	assert.Equal(t, "Invalid credentials", LoginMessage(&Error{Kind: KindStatus, StatusCode: 401, Message: "Invalid credentials"}))
	assert.Equal(t, MsgLoginFailed, LoginMessage(&Error{Kind: KindStatus, StatusCode: 500}))
	assert.Equal(t, MsgLoginUnavailable, LoginMessage(&Error{Kind: KindTransport, Err: context.DeadlineExceeded}))
	assert.Equal(t, MsgLoginUnavailable, LoginMessage(&Error{Kind: KindDecode, Err: errors.New("EOF")}))
}

func TestRegisterMessage(t *testing.T) {
	assert.Equal(t, MsgRegisterUnexpected, RegisterMessage(&Error{Kind: KindStatus, StatusCode: 202, Err: domain.ErrUnexpectedStatus}))
	assert.Equal(t, "Email taken", RegisterMessage(&Error{Kind: KindStatus, StatusCode: 409, Message: "Email taken"}))
	assert.Equal(t, MsgRegisterUnavailable, RegisterMessage(&Error{Kind: KindTransport, Err: errors.New("refused")}))
}

func TestPredictMessage(t *testing.T) {
	assert.Equal(t, MsgPredictFailed, PredictMessage(&Error{Kind: KindStatus, StatusCode: 500, Message: "model not loaded"}))
}
