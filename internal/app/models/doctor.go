package models

type Address struct {
	Line1 string `bson:"line1" json:"line1"`
	Line2 string `bson:"line2" json:"line2"`
}

// Doctor is the doctor availability record. SlotsBooked maps a slot date key
// (day_month_year) to the time labels already taken on that day.
type Doctor struct {
	ID          string              `bson:"_id" json:"_id"`
	Name        string              `bson:"name" json:"name"`
	Email       string              `bson:"email" json:"email"`
	Image       string              `bson:"image,omitempty" json:"image,omitempty"`
	Speciality  string              `bson:"speciality" json:"speciality"`
	Degree      string              `bson:"degree" json:"degree"`
	Experience  string              `bson:"experience" json:"experience"`
	About       string              `bson:"about" json:"about"`
	Available   bool                `bson:"available" json:"available"`
	Fees        float64             `bson:"fees" json:"fees"`
	Address     Address             `bson:"address" json:"address"`
	SlotsBooked map[string][]string `bson:"slots_booked" json:"slots_booked"`
}

// IsSlotBooked reports whether slotTime is already taken on slotDate.
func (d *Doctor) IsSlotBooked(slotDate, slotTime string) bool {
	for _, booked := range d.SlotsBooked[slotDate] {
		if booked == slotTime {
			return true
		}
	}
	return false
}

// Snapshot strips the ledger so the profile can be embedded in an appointment.
func (d *Doctor) Snapshot() DoctorSnapshot {
	return DoctorSnapshot{
		ID:         d.ID,
		Name:       d.Name,
		Email:      d.Email,
		Image:      d.Image,
		Speciality: d.Speciality,
		Degree:     d.Degree,
		Fees:       d.Fees,
		Address:    d.Address,
	}
}

type DoctorSnapshot struct {
	ID         string  `bson:"_id" json:"_id"`
	Name       string  `bson:"name" json:"name"`
	Email      string  `bson:"email" json:"email"`
	Image      string  `bson:"image,omitempty" json:"image,omitempty"`
	Speciality string  `bson:"speciality" json:"speciality"`
	Degree     string  `bson:"degree" json:"degree"`
	Fees       float64 `bson:"fees" json:"fees"`
	Address    Address `bson:"address" json:"address"`
}
