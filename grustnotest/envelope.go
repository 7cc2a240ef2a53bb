package grustnotest

import (
	"encoding/json"
	"errors"
	"net/http"

	grustnogram "github.com/grustnolabs/go-grustnogram"
)

// Envelope error codes the stub emits beyond the four the SDK maps to
// sentinels. The production API leaves these undocumented; any of them
// must surface through the SDK as ErrUnknown.
const (
	codeAuthRequired  = 104
	codeBadPhoneKey   = 105
	codeBadActivation = 106
	codeNotFound      = 107
	codeNotYours      = 108
	codeBadComplaint  = 109
	codeBadPassword   = 110
	codeInternal      = 111
	codeBadRequest    = 112
)

// envelope is the uniform response shape of the API: a list of numeric
// error codes and an arbitrary data payload. An empty err list means
// success.
type envelope struct {
	Err  []int `json:"err"`
	Data any   `json:"data"`
}

// errorCodeMap pairs state-level sentinels with the HTTP status and the
// envelope code the stub responds with. Statuses are deliberately varied:
// a correct client decides by the envelope alone.
var errorCodeMap = map[error]struct {
	status int
	code   int
}{
	errEmailTaken:       {http.StatusUnprocessableEntity, grustnogram.CodeEmailExists},
	errLoginTaken:       {http.StatusUnprocessableEntity, grustnogram.CodeLoginExists},
	errUserNotFound:     {http.StatusNotFound, grustnogram.CodeUserNotFound},
	errBadPassword:      {http.StatusUnauthorized, grustnogram.CodeBadCredentials},
	errBadPhoneKey:      {http.StatusUnprocessableEntity, codeBadPhoneKey},
	errBadCode:          {http.StatusUnprocessableEntity, codeBadActivation},
	errNotFound:         {http.StatusNotFound, codeNotFound},
	errNotYours:         {http.StatusForbidden, codeNotYours},
	errBadComplaintType: {http.StatusUnprocessableEntity, codeBadComplaint},
}

func writeEnvelope(w http.ResponseWriter, status int, errs []int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Err: errs, Data: data})
}

// writeData responds with a successful envelope. The err list is present
// and empty, matching what the production API sends on success.
func writeData(w http.ResponseWriter, data any) {
	writeEnvelope(w, http.StatusOK, []int{}, data)
}

// writeError translates a state-level sentinel into its envelope code.
// Unrecognized errors become an internal-error envelope.
func writeError(w http.ResponseWriter, err error) {
	for target, m := range errorCodeMap {
		if errors.Is(err, target) {
			writeEnvelope(w, m.status, []int{m.code}, nil)
			return
		}
	}
	writeEnvelope(w, http.StatusInternalServerError, []int{codeInternal}, nil)
}
