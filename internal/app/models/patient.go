package models

type Patient struct {
	ID      string  `bson:"_id" json:"_id"`
	Name    string  `bson:"name" json:"name"`
	Email   string  `bson:"email" json:"email"`
	Image   string  `bson:"image,omitempty" json:"image,omitempty"`
	Phone   string  `bson:"phone" json:"phone"`
	Gender  string  `bson:"gender,omitempty" json:"gender,omitempty"`
	Dob     string  `bson:"dob,omitempty" json:"dob,omitempty"`
	Address Address `bson:"address" json:"address"`
}

func (p *Patient) Snapshot() PatientSnapshot {
	return PatientSnapshot{
		ID:      p.ID,
		Name:    p.Name,
		Email:   p.Email,
		Image:   p.Image,
		Phone:   p.Phone,
		Gender:  p.Gender,
		Dob:     p.Dob,
		Address: p.Address,
	}
}

type PatientSnapshot struct {
	ID      string  `bson:"_id" json:"_id"`
	Name    string  `bson:"name" json:"name"`
	Email   string  `bson:"email" json:"email"`
	Image   string  `bson:"image,omitempty" json:"image,omitempty"`
	Phone   string  `bson:"phone" json:"phone"`
	Gender  string  `bson:"gender,omitempty" json:"gender,omitempty"`
	Dob     string  `bson:"dob,omitempty" json:"dob,omitempty"`
	Address Address `bson:"address" json:"address"`
}
