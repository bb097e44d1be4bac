// Package coretest holds in-memory stores that honour the same conditional
// update guards as the Mongo repositories. Only tests import it.
package coretest

import (
	"context"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/pkg/constvars"
	"errors"
	"sort"
	"sync"
	"time"
)

var ErrStoreDown = errors.New("store unavailable")

type DoctorStore struct {
	mu      sync.Mutex
	doctors map[string]*models.Doctor
	// FailPull makes PullBookedSlot return an error.
	FailPull bool
}

var _ contracts.DoctorRepository = (*DoctorStore)(nil)

func NewDoctorStore(doctors ...models.Doctor) *DoctorStore {
	store := &DoctorStore{doctors: make(map[string]*models.Doctor)}
	for i := range doctors {
		doctor := doctors[i]
		if doctor.SlotsBooked == nil {
			doctor.SlotsBooked = make(map[string][]string)
		}
		store.doctors[doctor.ID] = &doctor
	}
	return store
}

func copyDoctor(d *models.Doctor) *models.Doctor {
	out := *d
	out.SlotsBooked = make(map[string][]string, len(d.SlotsBooked))
	for date, times := range d.SlotsBooked {
		out.SlotsBooked[date] = append([]string{}, times...)
	}
	return &out
}

func (s *DoctorStore) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doctor, ok := s.doctors[doctorID]
	if !ok {
		return nil, nil
	}
	return copyDoctor(doctor), nil
}

func (s *DoctorStore) PushBookedSlot(ctx context.Context, doctorID, slotDate, slotTime string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doctor, ok := s.doctors[doctorID]
	if !ok || !doctor.Available || doctor.IsSlotBooked(slotDate, slotTime) {
		return false, nil
	}
	doctor.SlotsBooked[slotDate] = append(doctor.SlotsBooked[slotDate], slotTime)
	return true, nil
}

func (s *DoctorStore) PullBookedSlot(ctx context.Context, doctorID, slotDate, slotTime string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailPull {
		return false, ErrStoreDown
	}
	doctor, ok := s.doctors[doctorID]
	if !ok || !doctor.IsSlotBooked(slotDate, slotTime) {
		return false, nil
	}
	kept := make([]string, 0, len(doctor.SlotsBooked[slotDate]))
	for _, booked := range doctor.SlotsBooked[slotDate] {
		if booked != slotTime {
			kept = append(kept, booked)
		}
	}
	doctor.SlotsBooked[slotDate] = kept
	return true, nil
}

func (s *DoctorStore) ToggleAvailability(ctx context.Context, doctorID string) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doctor, ok := s.doctors[doctorID]
	if !ok {
		return nil, nil
	}
	doctor.Available = !doctor.Available
	return copyDoctor(doctor), nil
}

func (s *DoctorStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.doctors)), nil
}

type PatientStore struct {
	patients map[string]models.Patient
}

var _ contracts.PatientRepository = (*PatientStore)(nil)

func NewPatientStore(patients ...models.Patient) *PatientStore {
	store := &PatientStore{patients: make(map[string]models.Patient)}
	for _, patient := range patients {
		store.patients[patient.ID] = patient
	}
	return store
}

func (s *PatientStore) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, ok := s.patients[patientID]
	if !ok {
		return nil, nil
	}
	return &patient, nil
}

func (s *PatientStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.patients)), nil
}

type AppointmentStore struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
	// FailCreate and FailWrites simulate an unreachable store.
	FailCreate bool
	FailWrites bool
}

var _ contracts.AppointmentRepository = (*AppointmentStore)(nil)

func NewAppointmentStore(appointments ...models.Appointment) *AppointmentStore {
	store := &AppointmentStore{appointments: make(map[string]*models.Appointment)}
	for i := range appointments {
		appointment := appointments[i]
		store.appointments[appointment.ID] = &appointment
	}
	return store
}

func copyAppointment(a *models.Appointment) *models.Appointment {
	out := *a
	out.PaymentReferences = append([]string{}, a.PaymentReferences...)
	return &out
}

func (s *AppointmentStore) Create(ctx context.Context, appointment *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailCreate {
		return ErrStoreDown
	}
	s.appointments[appointment.ID] = copyAppointment(appointment)
	return nil
}

func (s *AppointmentStore) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	appointment, ok := s.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	return copyAppointment(appointment), nil
}

func (s *AppointmentStore) findByReference(reference string) *models.Appointment {
	for _, appointment := range s.appointments {
		if appointment.HasPaymentReference(reference) {
			return appointment
		}
	}
	return nil
}

func (s *AppointmentStore) FindByPaymentReference(ctx context.Context, reference string) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return nil, ErrStoreDown
	}
	appointment := s.findByReference(reference)
	if appointment == nil {
		return nil, nil
	}
	return copyAppointment(appointment), nil
}

func (s *AppointmentStore) FindAll(ctx context.Context, filter contracts.AppointmentFilter) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]models.Appointment, 0)
	for _, appointment := range s.appointments {
		if filter.PatientID != "" && appointment.PatientID != filter.PatientID {
			continue
		}
		if filter.DoctorID != "" && appointment.DoctorID != filter.DoctorID {
			continue
		}
		result = append(result, *copyAppointment(appointment))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	if filter.Limit > 0 && int64(len(result)) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (s *AppointmentStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.appointments)), nil
}

func (s *AppointmentStore) MarkCancelled(ctx context.Context, appointmentID, cancelledBy string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return false, ErrStoreDown
	}
	appointment, ok := s.appointments[appointmentID]
	if !ok || appointment.Cancelled || appointment.IsCompleted {
		return false, nil
	}
	appointment.Cancelled = true
	appointment.CancelledBy = cancelledBy
	appointment.CancelledAt = &at
	appointment.UpdatedAt = at
	return true, nil
}

func (s *AppointmentStore) MarkCompleted(ctx context.Context, appointmentID, doctorID string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	appointment, ok := s.appointments[appointmentID]
	if !ok || appointment.DoctorID != doctorID || appointment.Cancelled || appointment.IsCompleted || !appointment.Payment {
		return false, nil
	}
	appointment.IsCompleted = true
	appointment.CompletedAt = &at
	appointment.UpdatedAt = at
	return true, nil
}

func (s *AppointmentStore) AttachPaymentAttempt(ctx context.Context, appointmentID string, attempt models.PaymentAttempt, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	appointment, ok := s.appointments[appointmentID]
	if !ok || appointment.Payment || appointment.Cancelled {
		return false, nil
	}
	appointment.PaymentReference = attempt.Reference
	appointment.PaymentReferences = append(appointment.PaymentReferences, attempt.Reference)
	appointment.PaymentStatus = constvars.PaymentStatusPending
	appointment.PaymentMethod = attempt.Method
	appointment.TransactionID = attempt.TransactionID
	appointment.TransactionStatus = constvars.TransactionStatusPending
	appointment.UpdatedAt = at
	return true, nil
}

func (s *AppointmentStore) MarkPaid(ctx context.Context, reference, transactionID string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return false, ErrStoreDown
	}
	appointment := s.findByReference(reference)
	if appointment == nil || appointment.Payment {
		return false, nil
	}
	appointment.Payment = true
	appointment.PaymentStatus = constvars.PaymentStatusPaid
	appointment.PaymentDate = &at
	appointment.TransactionStatus = constvars.TransactionStatusCompleted
	appointment.UpdatedAt = at
	if transactionID != "" {
		appointment.TransactionID = transactionID
	}
	return true, nil
}

func (s *AppointmentStore) MarkPaymentFailed(ctx context.Context, reference, transactionID string, at time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return false, ErrStoreDown
	}
	var appointment *models.Appointment
	for _, candidate := range s.appointments {
		if candidate.PaymentReference == reference {
			appointment = candidate
		}
	}
	if appointment == nil || appointment.Payment {
		return false, nil
	}
	appointment.PaymentStatus = constvars.PaymentStatusFailed
	appointment.TransactionStatus = constvars.TransactionStatusFailed
	appointment.UpdatedAt = at
	if transactionID != "" {
		appointment.TransactionID = transactionID
	}
	return true, nil
}

// Get returns a copy of the stored record, or nil.
func (s *AppointmentStore) Get(appointmentID string) *models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	appointment, ok := s.appointments[appointmentID]
	if !ok {
		return nil
	}
	return copyAppointment(appointment)
}
