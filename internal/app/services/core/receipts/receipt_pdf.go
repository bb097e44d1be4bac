package receipts

import (
	"bytes"
	"doctrack-service/internal/app/models"
	"doctrack-service/internal/pkg/constvars"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const receiptDateLayout = "02 Jan 2006 15:04 MST"

func renderReceipt(appointment *models.Appointment, issuedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(20, 60, 120)
	pdf.CellFormat(0, 10, "Doctor Appointment Payment Receipt", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, "Issued "+issuedAt.Format(receiptDateLayout), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	addDetail(pdf, "Receipt", "Details", true)
	addDetail(pdf, "Appointment ID", appointment.ID, false)
	addDetail(pdf, "Patient", appointment.PatientData.Name, false)
	addDetail(pdf, "Doctor", appointment.DoctorData.Name, false)
	addDetail(pdf, "Speciality", appointment.DoctorData.Speciality, false)
	addDetail(pdf, "Slot", appointment.SlotDate+" "+appointment.SlotTime, false)
	addDetail(pdf, "Payment method", appointment.PaymentMethod, false)
	addDetail(pdf, "Payment reference", appointment.PaymentReference, false)
	addDetail(pdf, "Transaction ID", appointment.TransactionID, false)
	if appointment.PaymentDate != nil {
		addDetail(pdf, "Paid on", appointment.PaymentDate.UTC().Format(receiptDateLayout), false)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 10, "Amount paid: "+constvars.JengaCurrencyCode+" "+strconv.FormatFloat(appointment.Amount, 'f', 2, 64), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	pdf.SetY(pdf.GetY() + 12)
	pdf.CellFormat(0, 10, "This is a computer generated receipt", "", 1, "R", false, 0, "")

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func addDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 12)
	} else {
		pdf.SetFont("Arial", "", 10)
	}
	pdf.CellFormat(50, 9, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 9, value, "1", 1, "", false, 0, "")
}
