package pphtml

import "errors"

// Sentinel errors for compile failures. Every failure aborts the whole
// compile; there is no partial output.
var (
	// ErrInvalidTag means a tag is in neither the standard HTML5 set nor
	// the extension allow-list.
	ErrInvalidTag = errors.New("pphtml: invalid tag")

	// ErrEvaluation means the evaluator could not resolve an expression
	// to a primitive value.
	ErrEvaluation = errors.New("pphtml: evaluation failed")

	// ErrMalformedAttrList means an attribute list had a key without a
	// paired value slot (odd length).
	ErrMalformedAttrList = errors.New("pphtml: malformed attribute list")

	// ErrNotElement means the root of a compile was not an element.
	ErrNotElement = errors.New("pphtml: root is not an element")
)

// IsInvalidTag checks if err is a tag validation failure.
func IsInvalidTag(err error) bool {
	return errors.Is(err, ErrInvalidTag)
}

// IsEvaluation checks if err is an evaluator failure.
func IsEvaluation(err error) bool {
	return errors.Is(err, ErrEvaluation)
}

// IsMalformedAttrList checks if err is an attribute pairing failure.
func IsMalformedAttrList(err error) bool {
	return errors.Is(err, ErrMalformedAttrList)
}

// IsNotElement checks if err is a non-element root failure.
func IsNotElement(err error) bool {
	return errors.Is(err, ErrNotElement)
}
