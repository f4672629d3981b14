package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// AttendanceReportData feeds the parent attendance email.
type AttendanceReportData struct {
	StudentName string
	Grade       string
	PeriodStart string
	PeriodEnd   string
	TotalDays   int
	PresentDays int
	AbsentDays  int
	ApologyDays int
	Percentage  int
	Remark      string
}

// FeesReportData feeds the parent fee statement email.
type FeesReportData struct {
	StudentName string
	RollNumber  string
	Department  string
	TuitionFees float64
	HostelFees  float64
	MessFees    float64
	TotalFees   float64
}

var attendanceReportTmpl = template.Must(template.New("attendance_report").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Attendance Report: {{.StudentName}}</h2>
  <p>Grade: {{.Grade}}<br>Period: {{.PeriodStart}} to {{.PeriodEnd}}</p>
  <table border="1" cellpadding="6" cellspacing="0" style="border-collapse: collapse;">
    <tr><td>School days</td><td>{{.TotalDays}}</td></tr>
    <tr><td>Present</td><td>{{.PresentDays}}</td></tr>
    <tr><td>Absent</td><td>{{.AbsentDays}}</td></tr>
    <tr><td>Absent with apology</td><td>{{.ApologyDays}}</td></tr>
    <tr><td><b>Attendance</b></td><td><b>{{.Percentage}}%</b></td></tr>
  </table>
  <p>Overall attendance: <b>{{.Remark}}</b></p>
  <p>Please contact the school office if anything looks wrong.</p>
</body>
</html>`))

var feesReportTmpl = template.Must(template.New("fees_report").Parse(`
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Fee Statement: {{.StudentName}}</h2>
  <p>Roll number: {{.RollNumber}}<br>Department: {{.Department}}</p>
  <table border="1" cellpadding="6" cellspacing="0" style="border-collapse: collapse;">
    <tr><td>Tuition fees</td><td>{{printf "%.2f" .TuitionFees}}</td></tr>
    <tr><td>Hostel fees</td><td>{{printf "%.2f" .HostelFees}}</td></tr>
    <tr><td>Mess fees</td><td>{{printf "%.2f" .MessFees}}</td></tr>
    <tr><td><b>Total</b></td><td><b>{{printf "%.2f" .TotalFees}}</b></td></tr>
  </table>
</body>
</html>`))

// RenderAttendanceReport produces the HTML body for a parent attendance email.
func RenderAttendanceReport(data AttendanceReportData) (string, error) {
	var buf bytes.Buffer
	if err := attendanceReportTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render attendance report: %w", err)
	}
	return buf.String(), nil
}

// RenderFeesReport produces the HTML body for a fee statement email.
func RenderFeesReport(data FeesReportData) (string, error) {
	var buf bytes.Buffer
	if err := feesReportTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render fees report: %w", err)
	}
	return buf.String(), nil
}
