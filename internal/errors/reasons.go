package errors

// Reason refines a Code with the progression rule that rejected the operation.
// It travels in the error metadata under MetaReason so it survives wrapping
// and gRPC conversion.
type Reason string

// MetaReason is the metadata key holding the Reason
const MetaReason = "reason"

// Progression reasons
const (
	ReasonAlreadyOwned       Reason = "ALREADY_OWNED"
	ReasonInsufficientEP     Reason = "INSUFFICIENT_EP"
	ReasonNotFound           Reason = "NOT_FOUND"
	ReasonGodAlreadySelected Reason = "GOD_ALREADY_SELECTED"
	ReasonParseError         Reason = "PARSE_ERROR"
	ReasonEmptyCandidateSet  Reason = "EMPTY_CANDIDATE_SET"
	ReasonNotEligible        Reason = "NOT_ELIGIBLE"
	ReasonCatalogLocked      Reason = "CATALOG_LOCKED"
	ReasonChoiceCanceled     Reason = "CHOICE_CANCELED"
)

// Code returns the error code a reason is reported with
func (r Reason) Code() Code {
	switch r {
	case ReasonAlreadyOwned:
		return CodeAlreadyExists
	case ReasonInsufficientEP:
		return CodeResourceExhausted
	case ReasonNotFound:
		return CodeNotFound
	case ReasonParseError:
		return CodeInvalidArgument
	case ReasonChoiceCanceled:
		return CodeCanceled
	case ReasonGodAlreadySelected, ReasonEmptyCandidateSet, ReasonNotEligible, ReasonCatalogLocked:
		return CodeFailedPrecondition
	default:
		return CodeInternal
	}
}

// NewWithReason creates an error carrying the reason and its code
func NewWithReason(reason Reason, message string) *Error {
	return New(reason.Code(), message).WithMeta(MetaReason, string(reason))
}

// NewWithReasonf creates an error carrying the reason with a formatted message
func NewWithReasonf(reason Reason, format string, args ...interface{}) *Error {
	return Newf(reason.Code(), format, args...).WithMeta(MetaReason, string(reason))
}

// GetReason extracts the progression reason from an error, empty if none
func GetReason(err error) Reason {
	meta := GetMeta(err)
	if meta == nil {
		return ""
	}
	switch v := meta[MetaReason].(type) {
	case string:
		return Reason(v)
	case Reason:
		return v
	}
	return ""
}

// AlreadyOwnedf reports a purchase of an ability the character already has
func AlreadyOwnedf(format string, args ...interface{}) *Error {
	return NewWithReasonf(ReasonAlreadyOwned, format, args...)
}

// InsufficientEPf reports a purchase the remaining EP cannot cover
func InsufficientEPf(format string, args ...interface{}) *Error {
	return NewWithReasonf(ReasonInsufficientEP, format, args...)
}

// AbilityNotFoundf reports an ability id missing from a catalog or character
func AbilityNotFoundf(format string, args ...interface{}) *Error {
	return NewWithReasonf(ReasonNotFound, format, args...)
}

// GodAlreadySelectedf reports a second god selection
func GodAlreadySelectedf(format string, args ...interface{}) *Error {
	return NewWithReasonf(ReasonGodAlreadySelected, format, args...)
}

// ParseErrorf reports malformed catalog or character data
func ParseErrorf(format string, args ...interface{}) *Error {
	return NewWithReasonf(ReasonParseError, format, args...)
}

// WrapParseError wraps a decoding failure as a parse error
func WrapParseError(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return WrapWithCode(err, CodeInvalidArgument, message).WithMeta(MetaReason, string(ReasonParseError))
}

// EmptyCandidateSetf reports a grant step with nothing to choose from
func EmptyCandidateSetf(format string, args ...interface{}) *Error {
	return NewWithReasonf(ReasonEmptyCandidateSet, format, args...)
}

// NotEligiblef reports a purchase whose prerequisites are not met
func NotEligiblef(format string, args ...interface{}) *Error {
	return NewWithReasonf(ReasonNotEligible, format, args...)
}

// CatalogLockedf reports access to a catalog the character has not unlocked
func CatalogLockedf(format string, args ...interface{}) *Error {
	return NewWithReasonf(ReasonCatalogLocked, format, args...)
}

// ChoiceCanceled reports a choice the user backed out of
func ChoiceCanceled(message string) *Error {
	return NewWithReason(ReasonChoiceCanceled, message)
}

// IsAlreadyOwned checks if an error rejects an owned ability
func IsAlreadyOwned(err error) bool {
	return GetReason(err) == ReasonAlreadyOwned
}

// IsInsufficientEP checks if an error rejects a purchase for lack of EP
func IsInsufficientEP(err error) bool {
	return GetReason(err) == ReasonInsufficientEP
}

// IsGodAlreadySelected checks if an error rejects a second god selection
func IsGodAlreadySelected(err error) bool {
	return GetReason(err) == ReasonGodAlreadySelected
}

// IsParseError checks if an error reports malformed data
func IsParseError(err error) bool {
	return GetReason(err) == ReasonParseError
}

// IsEmptyCandidateSet checks if an error reports an empty grant step
func IsEmptyCandidateSet(err error) bool {
	return GetReason(err) == ReasonEmptyCandidateSet
}

// IsNotEligible checks if an error rejects an ability on prerequisites
func IsNotEligible(err error) bool {
	return GetReason(err) == ReasonNotEligible
}

// IsCatalogLocked checks if an error rejects a locked catalog
func IsCatalogLocked(err error) bool {
	return GetReason(err) == ReasonCatalogLocked
}

// IsChoiceCanceled checks if an error reports a canceled choice
func IsChoiceCanceled(err error) bool {
	return GetReason(err) == ReasonChoiceCanceled
}
