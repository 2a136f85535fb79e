package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	// argument err
	ErrCLIInvalidArgs = 1101
	ErrCLIDecodeHex   = 1102
	ErrCLIInvalidFlag = 1103

	// input err
	ErrCLIOpenFile  = 1201
	ErrCLIReadInput = 1202
	ErrCLIParseList = 1203

	// verification err
	ErrCLIChecksumMismatch = 1301
	ErrCLIChecksumMissing  = 1302
	ErrCLISelfTest         = 1303

	// other err
	ErrCLIConfig     = 1701
	ErrCLIUnknownErr = 1702
)

var ErrCode = map[uint32]string{
	ErrCLIInvalidArgs:      "Invalid arguments",
	ErrCLIDecodeHex:        "Argument must be hexadecimal string",
	ErrCLIInvalidFlag:      "Invalid flag value",
	ErrCLIOpenFile:         "Failed to open file",
	ErrCLIReadInput:        "Failed to read input",
	ErrCLIParseList:        "Failed to parse checksum list",
	ErrCLIChecksumMismatch: "Computed checksum did not match",
	ErrCLIChecksumMissing:  "Listed file could not be read",
	ErrCLISelfTest:         "Known-answer self test failed",
	ErrCLIConfig:           "Failed to load config",
	ErrCLIUnknownErr:       "Unknown error",
}

// CodeError pairs an error code with the error that caused it.
type CodeError struct {
	Code uint32
	Err  error
}

// New returns a CodeError for code, wrapping err when it is not nil.
func New(code uint32, err error) *CodeError {
	return &CodeError{Code: code, Err: err}
}

// Newf returns a CodeError whose cause is a formatted message.
func Newf(code uint32, format string, args ...interface{}) *CodeError {
	return &CodeError{Code: code, Err: errors.Errorf(format, args...)}
}

// Message returns the text registered for the code.
func (e *CodeError) Message() string {
	if msg, ok := ErrCode[e.Code]; ok {
		return msg
	}
	return ErrCode[ErrCLIUnknownErr]
}

func (e *CodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%d: %s", e.Code, e.Message())
	}
	return fmt.Sprintf("%d: %s: %v", e.Code, e.Message(), e.Err)
}

// Cause lets errors.Cause reach the wrapped error.
func (e *CodeError) Cause() error { return e.Err }

// Code extracts the code of the first CodeError in err's cause chain,
// returning ErrCLIUnknownErr when there is none.
func Code(err error) uint32 {
	for err != nil {
		if ce, ok := err.(*CodeError); ok {
			return ce.Code
		}
		cause, ok := err.(interface{ Cause() error })
		if !ok {
			break
		}
		err = cause.Cause()
	}
	return ErrCLIUnknownErr
}
