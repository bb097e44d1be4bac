package constvars

// Capture groups are read by the slot label canonicalizers.
const (
	RegexSlotDate = `^(0?[1-9]|[12][0-9]|3[01])_(0?[1-9]|1[0-2])_(\d{4})$`
	RegexSlotTime = `^(0?[1-9]|1[0-2]):([0-5][0-9]) ?(AM|PM|am|pm)$`
)
