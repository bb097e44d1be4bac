package utils

import (
	"doctrack-service/internal/pkg/constvars"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	slotDatePattern = regexp.MustCompile(constvars.RegexSlotDate)
	slotTimePattern = regexp.MustCompile(constvars.RegexSlotTime)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("slot_date", validateSlotDate)
	validate.RegisterValidation("slot_time", validateSlotTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func IsValidSlotDate(slotDate string) bool {
	return slotDatePattern.MatchString(slotDate)
}

func IsValidSlotTime(slotTime string) bool {
	return slotTimePattern.MatchString(slotTime)
}

// CanonicalSlotDate rewrites a valid date label as d_m_yyyy without leading
// zeros. Invalid input is returned unchanged.
func CanonicalSlotDate(slotDate string) string {
	parts := slotDatePattern.FindStringSubmatch(strings.TrimSpace(slotDate))
	if parts == nil {
		return slotDate
	}
	return trimLeadingZero(parts[1]) + "_" + trimLeadingZero(parts[2]) + "_" + parts[3]
}

// CanonicalSlotTime rewrites a valid time label as h:mmAM, upper case and
// without the space before the meridiem. Invalid input is returned unchanged.
func CanonicalSlotTime(slotTime string) string {
	parts := slotTimePattern.FindStringSubmatch(strings.TrimSpace(slotTime))
	if parts == nil {
		return slotTime
	}
	return trimLeadingZero(parts[1]) + ":" + parts[2] + strings.ToUpper(parts[3])
}

func trimLeadingZero(number string) string {
	n, err := strconv.Atoi(number)
	if err != nil {
		return number
	}
	return strconv.Itoa(n)
}

func validateSlotDate(fl validator.FieldLevel) bool {
	return IsValidSlotDate(fl.Field().String())
}

func validateSlotTime(fl validator.FieldLevel) bool {
	return IsValidSlotTime(fl.Field().String())
}
