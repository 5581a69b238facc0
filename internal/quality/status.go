package quality

import "fmt"

// ReturnCode enumerates every outcome a provider operation may report.
// The numeric values are part of the binary contract with vendor libraries
// and are written verbatim into result logs; they must never be renumbered.
type ReturnCode uint16

const (
	// Success indicates the operation completed normally.
	Success ReturnCode = 0
	// UnknownError is the catch-all failure code.
	UnknownError ReturnCode = 1
	// ConfigError indicates a failure reading configuration files.
	ConfigError ReturnCode = 2
	// RefuseInput is an elective refusal to process the input.
	RefuseInput ReturnCode = 3
	// ExtractError is an involuntary failure to process the image.
	ExtractError ReturnCode = 4
	// ParseError indicates the input data could not be parsed.
	ParseError ReturnCode = 5
	// TemplateCreationError is an elective refusal to produce a template.
	TemplateCreationError ReturnCode = 6
	// VerifTemplateError indicates an input template came from a failed
	// feature extraction.
	VerifTemplateError ReturnCode = 7
	// FaceDetectionError indicates no face could be detected in the image.
	FaceDetectionError ReturnCode = 8
	// NumDataError indicates the implementation cannot support the number
	// of input images.
	NumDataError ReturnCode = 9
	// TemplateFormatError indicates a defective or mis-formatted template.
	TemplateFormatError ReturnCode = 10
	// EnrollDirError indicates an operation on the enrollment directory
	// failed.
	EnrollDirError ReturnCode = 11
	// InputLocationError indicates the input files or names seem incorrect.
	InputLocationError ReturnCode = 12
	// MemoryError indicates a memory allocation failure.
	MemoryError ReturnCode = 13
	// NotImplemented is the sentinel for an optional capability the loaded
	// provider declines to support at all. It is not a per-record failure.
	NotImplemented ReturnCode = 14
	// VendorError is a vendor-defined failure.
	VendorError ReturnCode = 15
)

func (c ReturnCode) String() string {
	switch c {
	case Success:
		return "Success"
	case UnknownError:
		return "UnknownError"
	case ConfigError:
		return "ConfigError"
	case RefuseInput:
		return "RefuseInput"
	case ExtractError:
		return "ExtractError"
	case ParseError:
		return "ParseError"
	case TemplateCreationError:
		return "TemplateCreationError"
	case VerifTemplateError:
		return "VerifTemplateError"
	case FaceDetectionError:
		return "FaceDetectionError"
	case NumDataError:
		return "NumDataError"
	case TemplateFormatError:
		return "TemplateFormatError"
	case EnrollDirError:
		return "EnrollDirError"
	case InputLocationError:
		return "InputLocationError"
	case MemoryError:
		return "MemoryError"
	case NotImplemented:
		return "NotImplemented"
	case VendorError:
		return "VendorError"
	}
	return fmt.Sprintf("ReturnCode(%d)", uint16(c))
}

// ReturnStatus is the status a provider operation reports: a code plus an
// optional vendor-supplied information string.
type ReturnStatus struct {
	Code ReturnCode
	Info string
}

// OK reports whether the status is Success.
func (s ReturnStatus) OK() bool { return s.Code == Success }

// NotImplemented reports whether the status carries the capability-absent
// sentinel. Callers branch on this, never on the raw numeric value.
func (s ReturnStatus) NotImplemented() bool { return s.Code == NotImplemented }

func (s ReturnStatus) String() string {
	if s.Info == "" {
		return s.Code.String()
	}
	return fmt.Sprintf("%s (%s)", s.Code, s.Info)
}
