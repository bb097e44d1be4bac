package models

import "doctrack-service/internal/pkg/constvars"

// Principal is the verified caller identity handed over by the auth layer.
type Principal struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

func (p Principal) IsPatient() bool { return p.Role == constvars.RolePatient }
func (p Principal) IsDoctor() bool  { return p.Role == constvars.RoleDoctor }
func (p Principal) IsAdmin() bool   { return p.Role == constvars.RoleAdmin }
