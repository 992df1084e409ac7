package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestWithCode(t *testing.T) {
	tts := []struct {
		err      error
		code     int
		expected *codedError
	}{
		{
			err:  errors.New("simple error"),
			code: 404,
			expected: &codedError{
				msg:  "simple error",
				code: 404,
			},
		},
		{
			err: &codedError{
				msg:  "custom error",
				code: 200,
			},
			code: 501,
			expected: &codedError{
				msg:  "custom error",
				code: 501,
			},
		},
		{
			err: &codedError{
				msg:   "keep cause",
				code:  125,
				cause: &codedError{msg: "I am the cause"},
			},
			code: 305,
			expected: &codedError{
				msg:   "keep cause",
				code:  305,
				cause: &codedError{msg: "I am the cause"},
			},
		},
		{
			// nil input should give nil output
			err:      nil,
			code:     305,
			expected: nil,
		},
	}

	for i, tt := range tts {
		err, _ := WithCode(tt.code)(tt.err).(*codedError)
		assertErrors(tt.expected, err, t, fmt.Sprintf("%d WithCode", i))
	}
}

func TestWithCause(t *testing.T) {
	tts := []struct {
		err      error
		cause    error
		expected *codedError
	}{
		{
			err:   errors.New("simple error"),
			cause: errors.New("I am the cause"),
			expected: &codedError{
				msg:   "simple error",
				code:  500,
				cause: &codedError{msg: "I am the cause", code: DefaultCode},
			},
		},
		{
			err: &codedError{
				msg:  "coded error",
				code: 404,
			},
			cause: errors.New("I am the cause"),
			expected: &codedError{
				msg:   "coded error",
				code:  404,
				cause: &codedError{msg: "I am the cause", code: DefaultCode},
			},
		},
		{
			err: errors.New("simple error"),
			cause: &codedError{
				msg:  "coded cause",
				code: 403,
			},
			expected: &codedError{
				msg:   "simple error",
				code:  403,
				cause: &codedError{msg: "coded cause", code: 403},
			},
		},
		{
			err:      nil,
			cause:    errors.New("I am the cause"),
			expected: nil,
		},
	}

	for i, tt := range tts {
		err, _ := WithCause(tt.cause)(tt.err).(*codedError)
		assertErrors(tt.expected, err, t, fmt.Sprintf("%d WithCause", i))
	}
}

func TestNew(t *testing.T) {
	err := New("oh no", BadRequest())
	if err.Error() != "oh no" {
		t.Errorf("incorrect message: expected %s got %s", "oh no", err.Error())
	}

	coded, ok := err.(Error)
	if !ok {
		t.Fatal("error should be an errors.Error")
	} else if coded.Code() != 400 {
		t.Errorf("incorrect code: expected 400 got %d", coded.Code())
	}
}

func assertErrors(expected, actual *codedError, t *testing.T, name string) {
	if expected == nil {
		if actual != nil {
			t.Errorf("%s - expected nil got %+v", name, actual)
		}
		return
	}

	if actual == nil {
		t.Errorf("%s - expected %+v got nil", name, expected)
		return
	}

	if expected.msg != actual.msg {
		t.Errorf("%s - incorrect message: expected %s got %s", name, expected.msg, actual.msg)
	}
	if expected.code != actual.code {
		t.Errorf("%s - incorrect code: expected %d got %d", name, expected.code, actual.code)
	}
	if expected.cause != nil {
		assertErrors(expected.cause, actual.cause, t, name+" (cause)")
	}
}
