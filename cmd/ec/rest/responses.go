package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apierr "github.com/echo-commerce/echo-commerce/api/types/errors"
	cerr "github.com/echo-commerce/echo-commerce/cmd/ec/errors"
)

type MessageFor map[StatusCodeRange]string

// unmarshal http response which has json content.
//
// Status 401 is special-cased into ErrUnauthorized, so that callers can
// detect a stale token wherever it happens.
//
// args:
//   - resp: http response to be processed.
//   - v: value which response should be.
//   - messageFor: title of error message for HTTP status code range.
//
// return:
//
//	error if...
//	- can not read response body
//	- response body is not shaped of v
//	- status code is in 4xx or 5xx
func unmarshalJsonResponse[T any](resp *http.Response, v *T, messageFor MessageFor) error {
	scr := StatusCodeRangeOf(resp)
	if scr <= Status2xx {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			message := fmt.Sprintf("unexpected error: %s (status code = %d)", err.Error(), resp.StatusCode)
			return cerr.NewCuiError(message, cerr.WithCause(err))
		}
		return nil
	}

	body, rerr := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		if rerr == nil {
			if detail, err := parseErrorMessage(body); err == nil && detail != "" {
				return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
			}
		}
		return ErrUnauthorized
	}

	message, ok := messageFor[scr]
	if !ok {
		message = scr.String()
	}

	if rerr != nil {
		return cerr.NewCuiError(
			fmt.Sprintf(
				"%s\ncannot read server message: %s",
				message, rerr.Error(),
			),
			cerr.WithCause(rerr),
		)
	}

	if detail, err := parseErrorMessage(body); err == nil {
		return cerr.NewCuiError(
			message,
			cerr.WithDetail(func(summary string) (string, error) {
				return summary + ": " + detail, nil
			}),
		)
	}

	return cerr.NewCuiError(
		message,
		cerr.WithDetail(func(summary string) (string, error) {
			return summary + "\n" + string(body), nil
		}),
	)
}

// unmarshalResponseDiscardingPayload drains resp and reports only its status.
func unmarshalResponseDiscardingPayload(resp *http.Response, messageFor MessageFor) error {
	var ignore json.RawMessage
	return unmarshalJsonResponseOrEmpty(resp, &ignore, messageFor)
}

// like unmarshalJsonResponse, but tolerate an empty success body.
func unmarshalJsonResponseOrEmpty[T any](resp *http.Response, v *T, messageFor MessageFor) error {
	scr := StatusCodeRangeOf(resp)
	if scr <= Status2xx {
		buf, err := io.ReadAll(resp.Body)
		if err != nil {
			return cerr.NewCuiError(
				fmt.Sprintf("cannot read server response (status code = %d)", resp.StatusCode),
				cerr.WithCause(err),
			)
		}
		if len(buf) == 0 {
			return nil
		}
		if err := json.Unmarshal(buf, v); err != nil {
			message := fmt.Sprintf("unexpected error: %s (status code = %d)", err.Error(), resp.StatusCode)
			return cerr.NewCuiError(message, cerr.WithCause(err))
		}
		return nil
	}
	return unmarshalJsonResponse(resp, v, messageFor)
}

func jsonUnmarshal[T any](buf []byte) (*T, error) {
	ret := new(T)
	if err := json.Unmarshal(buf, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// parseErrorMessage folds an error response body into one display string.
//
// The backend sends {"detail": "..."} or {"detail": [field errors...]};
// both shapes end up as one line (field errors joined). Anything else is
// passed through as-is.
func parseErrorMessage(body []byte) (string, error) {
	if eresp, err := jsonUnmarshal[apierr.ErrorMessage](body); err == nil {
		if s := eresp.String(); s != "" {
			return s, nil
		}
	}

	if msg, err := jsonUnmarshal[struct {
		Message *string `json:"message"`
	}](body); err == nil && msg.Message != nil {
		return *msg.Message, nil
	}

	return string(body), nil
}
