package backend

import (
	"errors"

	"github.com/nfrund/bloomly/internal/domain"
)

// User-facing texts for failed calls. The web views and the CLI show the
// same wording.
const (
	MsgPredictFailed       = "Server error! Make sure the prediction backend is running."
	MsgLoginFailed         = "Login failed. Please try again."
	MsgLoginUnavailable    = "Something went wrong. Please try again later."
	MsgRegisterUnexpected  = "Something went wrong. Please try again."
	MsgRegisterUnavailable = "Something went wrong. Check your backend connection."
)

// LoginMessage maps a failed login. Status errors show the backend's message
// when it sent one; transport and decode failures get the generic text.
func LoginMessage(err error) string {
	if IsStatus(err) {
		return UserMessage(err, MsgLoginFailed)
	}
	return MsgLoginUnavailable
}

// RegisterMessage maps a failed registration.
func RegisterMessage(err error) string {
	if errors.Is(err, domain.ErrUnexpectedStatus) {
		return MsgRegisterUnexpected
	}
	return UserMessage(err, MsgRegisterUnavailable)
}

// PredictMessage maps a failed prediction. The backend's own message is
// never shown.
func PredictMessage(error) string {
	return MsgPredictFailed
}
