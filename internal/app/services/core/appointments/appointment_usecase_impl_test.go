package appointments

import (
	"context"
	"doctrack-service/internal/app/contracts"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/app/services/core/coretest"
	"doctrack-service/internal/app/services/core/slots"
	"doctrack-service/internal/app/services/shared/scheduler"
	"doctrack-service/internal/pkg/constvars"
	"doctrack-service/internal/pkg/dto/requests"
	"doctrack-service/internal/pkg/exceptions"
	"fmt"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	uc           *appointmentUsecase
	doctors      *coretest.DoctorStore
	appointments *coretest.AppointmentStore
	events       *coretest.EventRecorder
	scheduler    contracts.Scheduler
	clock        *clock.Mock
}

var (
	patientP1 = models.Principal{ID: "P1", Role: constvars.RolePatient}
	patientP2 = models.Principal{ID: "P2", Role: constvars.RolePatient}
	doctorD1  = models.Principal{ID: "D1", Role: constvars.RoleDoctor}
	doctorD2  = models.Principal{ID: "D2", Role: constvars.RoleDoctor}
	admin     = models.Principal{ID: "A1", Role: constvars.RoleAdmin}
)

func newFixture(appointments ...models.Appointment) *fixture {
	doctors := coretest.NewDoctorStore(
		models.Doctor{ID: "D1", Name: "Dr. Richard James", Available: true, Fees: 1500},
		models.Doctor{ID: "D2", Name: "Dr. Emily Larson", Available: true, Fees: 800},
		models.Doctor{ID: "D3", Name: "Dr. Sarah Patel", Available: false, Fees: 900},
	)
	patients := coretest.NewPatientStore(
		models.Patient{ID: "P1", Name: "Jane Wanjiru", Phone: "254700000001"},
		models.Patient{ID: "P2", Name: "John Otieno", Phone: "254700000002"},
	)
	store := coretest.NewAppointmentStore(appointments...)
	recorder := &coretest.EventRecorder{}
	clk := clock.NewMock()
	clk.Set(time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC))
	logger := zap.NewNop()
	tasks := scheduler.NewSchedulerService(clk, logger)

	return &fixture{
		uc: &appointmentUsecase{
			AppointmentRepository: store,
			DoctorRepository:      doctors,
			PatientRepository:     patients,
			SlotUsecase:           slots.NewSlotUsecase(doctors, logger),
			EventPublisher:        recorder,
			Scheduler:             tasks,
			Clock:                 clk,
			Log:                   logger,
		},
		doctors:      doctors,
		appointments: store,
		events:       recorder,
		scheduler:    tasks,
		clock:        clk,
	}
}

func bookRequest(doctorID string) *requests.BookAppointment {
	return &requests.BookAppointment{DoctorID: doctorID, SlotDate: "10_5_2025", SlotTime: "10:00AM"}
}

func TestBook(t *testing.T) {
	ctx := context.Background()

	t.Run("same slot twice is taken", func(t *testing.T) {
		f := newFixture()

		booked, err := f.uc.Book(ctx, patientP1, bookRequest("D1"))
		require.NoError(t, err)
		assert.Equal(t, string(models.AppointmentStateBooked), booked.State)
		assert.Equal(t, 1500.0, booked.Amount)
		assert.Equal(t, constvars.PaymentStatusPending, booked.PaymentStatus)
		assert.False(t, booked.Payment)

		_, err = f.uc.Book(ctx, patientP2, bookRequest("D1"))
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodeSlotTaken))

		total, _ := f.appointments.Count(ctx)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, []string{constvars.EventAppointmentBooked}, f.events.Types())
	})

	t.Run("slot labels are stored canonically", func(t *testing.T) {
		f := newFixture()

		booked, err := f.uc.Book(ctx, patientP1, &requests.BookAppointment{DoctorID: "D1", SlotDate: "09_05_2025", SlotTime: "10:00 am"})
		require.NoError(t, err)
		stored := f.appointments.Get(booked.ID)
		assert.Equal(t, "9_5_2025", stored.SlotDate)
		assert.Equal(t, "10:00AM", stored.SlotTime)

		_, err = f.uc.Book(ctx, patientP2, &requests.BookAppointment{DoctorID: "D1", SlotDate: "9_5_2025", SlotTime: "10:00 AM"})
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodeSlotTaken))

		require.NoError(t, f.uc.Cancel(ctx, patientP1, booked.ID))
		doctor, _ := f.doctors.FindByID(ctx, "D1")
		assert.Empty(t, doctor.SlotsBooked["9_5_2025"])
	})

	t.Run("fee is a snapshot", func(t *testing.T) {
		f := newFixture()
		booked, err := f.uc.Book(ctx, patientP1, bookRequest("D2"))
		require.NoError(t, err)

		stored := f.appointments.Get(booked.ID)
		assert.Equal(t, 800.0, stored.Amount)
		assert.Equal(t, "Dr. Emily Larson", stored.DoctorData.Name)
		assert.Equal(t, "254700000001", stored.PatientData.Phone)
		assert.Equal(t, f.clock.Now().UnixMilli(), stored.Date)
	})

	t.Run("missing input never touches the ledger", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Book(ctx, patientP1, &requests.BookAppointment{DoctorID: "D1", SlotTime: "10:00AM"})
		assert.Equal(t, constvars.ErrKindValidation, exceptions.Kind(err))

		doctor, _ := f.doctors.FindByID(ctx, "D1")
		assert.Empty(t, doctor.SlotsBooked)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Book(ctx, patientP1, bookRequest("D9"))
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodeDoctorNotFound))
	})

	t.Run("unavailable doctor", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Book(ctx, patientP1, bookRequest("D3"))
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodeDoctorUnavailable))
	})

	t.Run("unknown patient leaves the slot free", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Book(ctx, models.Principal{ID: "P9", Role: constvars.RolePatient}, bookRequest("D1"))
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodePatientNotFound))

		doctor, _ := f.doctors.FindByID(ctx, "D1")
		assert.False(t, doctor.IsSlotBooked("10_5_2025", "10:00AM"))
	})

	t.Run("failed create releases the slot", func(t *testing.T) {
		f := newFixture()
		f.appointments.FailCreate = true

		_, err := f.uc.Book(ctx, patientP1, bookRequest("D1"))
		require.Error(t, err)

		doctor, _ := f.doctors.FindByID(ctx, "D1")
		assert.False(t, doctor.IsSlotBooked("10_5_2025", "10:00AM"))
		assert.Empty(t, f.events.Types())
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("book cancel book", func(t *testing.T) {
		f := newFixture()
		first, err := f.uc.Book(ctx, patientP1, bookRequest("D1"))
		require.NoError(t, err)

		require.NoError(t, f.uc.Cancel(ctx, patientP1, first.ID))
		stored := f.appointments.Get(first.ID)
		assert.True(t, stored.Cancelled)
		assert.Equal(t, models.AppointmentStateCancelled, stored.State())
		assert.Equal(t, constvars.RolePatient, stored.CancelledBy)

		second, err := f.uc.Book(ctx, patientP2, bookRequest("D1"))
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, []string{
			constvars.EventAppointmentBooked,
			constvars.EventAppointmentCancelled,
			constvars.EventAppointmentBooked,
		}, f.events.Types())
	})

	t.Run("cancel drops the pending mock completion", func(t *testing.T) {
		f := newFixture()
		booked, err := f.uc.Book(ctx, patientP1, bookRequest("D1"))
		require.NoError(t, err)

		fired := make(chan struct{}, 1)
		f.scheduler.Schedule(fmt.Sprintf(constvars.TaskKeyMockCompletionFormat, booked.ID), 3*time.Second, func(ctx context.Context) {
			fired <- struct{}{}
		})
		other, err := f.uc.Book(ctx, patientP2, &requests.BookAppointment{DoctorID: "D2", SlotDate: "10_5_2025", SlotTime: "11:00AM"})
		require.NoError(t, err)
		f.scheduler.Schedule(fmt.Sprintf(constvars.TaskKeyMockCompletionFormat, other.ID), time.Hour, func(ctx context.Context) {})
		require.Equal(t, 2, f.scheduler.Pending())

		require.NoError(t, f.uc.Cancel(ctx, patientP1, booked.ID))
		assert.Equal(t, 1, f.scheduler.Pending())

		f.clock.Add(5 * time.Second)
		select {
		case <-fired:
			t.Fatal("mock completion ran for a cancelled appointment")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("cancelling twice is already cancelled", func(t *testing.T) {
		f := newFixture()
		booked, err := f.uc.Book(ctx, patientP1, bookRequest("D1"))
		require.NoError(t, err)

		require.NoError(t, f.uc.Cancel(ctx, patientP1, booked.ID))
		err = f.uc.Cancel(ctx, patientP1, booked.ID)
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodeAlreadyCancelled))
	})

	t.Run("unknown appointment", func(t *testing.T) {
		f := newFixture()
		err := f.uc.Cancel(ctx, patientP1, "missing")
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodeAppointmentNotFound))
	})

	t.Run("ownership", func(t *testing.T) {
		f := newFixture()
		booked, err := f.uc.Book(ctx, patientP1, bookRequest("D1"))
		require.NoError(t, err)

		err = f.uc.Cancel(ctx, patientP2, booked.ID)
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodeNotOwner))
		err = f.uc.Cancel(ctx, doctorD2, booked.ID)
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodeNotOwner))
		assert.False(t, f.appointments.Get(booked.ID).Cancelled)

		assert.NoError(t, f.uc.Cancel(ctx, doctorD1, booked.ID))
	})

	t.Run("admin bypasses ownership", func(t *testing.T) {
		f := newFixture()
		booked, err := f.uc.Book(ctx, patientP1, bookRequest("D1"))
		require.NoError(t, err)

		require.NoError(t, f.uc.Cancel(ctx, admin, booked.ID))
		assert.Equal(t, constvars.RoleAdmin, f.appointments.Get(booked.ID).CancelledBy)
	})

	t.Run("failed release keeps the cancellation", func(t *testing.T) {
		f := newFixture()
		booked, err := f.uc.Book(ctx, patientP1, bookRequest("D1"))
		require.NoError(t, err)

		f.doctors.FailPull = true
		require.NoError(t, f.uc.Cancel(ctx, patientP1, booked.ID))
		assert.True(t, f.appointments.Get(booked.ID).Cancelled)

		doctor, _ := f.doctors.FindByID(ctx, "D1")
		assert.True(t, doctor.IsSlotBooked("10_5_2025", "10:00AM"))
	})

	t.Run("completed appointment cannot be cancelled", func(t *testing.T) {
		f := newFixture(models.Appointment{ID: "A1", PatientID: "P1", DoctorID: "D1", Payment: true, IsCompleted: true})
		err := f.uc.Cancel(ctx, patientP1, "A1")
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodeAlreadyCompleted))
	})
}

func TestComplete(t *testing.T) {
	ctx := context.Background()
	paid := models.Appointment{ID: "A1", PatientID: "P1", DoctorID: "D1", Amount: 1500, Payment: true, PaymentStatus: constvars.PaymentStatusPaid}

	t.Run("paid appointment completes once", func(t *testing.T) {
		f := newFixture(paid)

		completed, err := f.uc.Complete(ctx, doctorD1, "A1")
		require.NoError(t, err)
		assert.True(t, completed.IsCompleted)
		assert.Equal(t, string(models.AppointmentStateCompleted), completed.State)

		_, err = f.uc.Complete(ctx, doctorD1, "A1")
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodeAlreadyCompleted))
		assert.Equal(t, []string{constvars.EventAppointmentCompleted}, f.events.Types())
	})

	t.Run("unpaid appointment", func(t *testing.T) {
		f := newFixture(models.Appointment{ID: "A1", PatientID: "P1", DoctorID: "D1"})
		_, err := f.uc.Complete(ctx, doctorD1, "A1")
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodePaymentNotSettled))
	})

	t.Run("another doctor", func(t *testing.T) {
		f := newFixture(paid)
		_, err := f.uc.Complete(ctx, doctorD2, "A1")
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodeNotOwner))
	})

	t.Run("cancelled appointment", func(t *testing.T) {
		cancelled := paid
		cancelled.Cancelled = true
		f := newFixture(cancelled)
		_, err := f.uc.Complete(ctx, doctorD1, "A1")
		assert.True(t, exceptions.HasCode(err, constvars.ErrCodeAppointmentCancelled))
	})
}

func TestListsAndDashboards(t *testing.T) {
	ctx := context.Background()
	f := newFixture(
		models.Appointment{ID: "A1", PatientID: "P1", DoctorID: "D1", Amount: 1500, Date: 1, Payment: true},
		models.Appointment{ID: "A2", PatientID: "P2", DoctorID: "D1", Amount: 1500, Date: 2, Payment: true, IsCompleted: true},
		models.Appointment{ID: "A3", PatientID: "P1", DoctorID: "D1", Amount: 1500, Date: 3},
		models.Appointment{ID: "A4", PatientID: "P1", DoctorID: "D2", Amount: 800, Date: 4, Cancelled: true},
	)

	mine, err := f.uc.ListForPatient(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "A4", mine[0].ID)

	forDoctor, err := f.uc.ListForDoctor(ctx, "D1")
	require.NoError(t, err)
	assert.Len(t, forDoctor, 3)

	all, err := f.uc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	doctorDashboard, err := f.uc.DoctorDashboard(ctx, "D1")
	require.NoError(t, err)
	assert.Equal(t, 3000.0, doctorDashboard.Earnings)
	assert.Equal(t, 3, doctorDashboard.Appointments)
	assert.Equal(t, 2, doctorDashboard.Patients)
	assert.Equal(t, "A3", doctorDashboard.LatestAppointments[0].ID)

	adminDashboard, err := f.uc.AdminDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), adminDashboard.Doctors)
	assert.Equal(t, int64(2), adminDashboard.Patients)
	assert.Equal(t, int64(4), adminDashboard.Appointments)
	assert.Len(t, adminDashboard.LatestAppointments, 4)
}
