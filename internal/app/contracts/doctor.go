package contracts

import (
	"context"
	"doctrack-service/internal/app/models"
)

// DoctorRepository owns the doctor availability record. The slot methods are
// single conditional updates so concurrent callers never both win one slot.
type DoctorRepository interface {
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	// PushBookedSlot appends slotTime to the slotDate bucket only when the doctor
	// is available and the time is absent. It reports whether the append happened.
	PushBookedSlot(ctx context.Context, doctorID, slotDate, slotTime string) (bool, error)
	// PullBookedSlot removes slotTime from the slotDate bucket. It reports whether
	// anything was removed; an absent bucket or entry is not an error.
	PullBookedSlot(ctx context.Context, doctorID, slotDate, slotTime string) (bool, error)
	ToggleAvailability(ctx context.Context, doctorID string) (*models.Doctor, error)
	Count(ctx context.Context) (int64, error)
}

type SlotUsecase interface {
	Reserve(ctx context.Context, doctorID, slotDate, slotTime string) error
	Release(ctx context.Context, doctorID, slotDate, slotTime string) error
	GetDoctorSlots(ctx context.Context, doctorID string) (*models.Doctor, error)
	ChangeAvailability(ctx context.Context, doctorID string) (*models.Doctor, error)
}
