package normalize

import (
	"strings"

	"github.com/calegray/facade/internal/model"
)

// DOB violations carry status two ways: a disposition date when the
// violation was cured, and a category string that reads "ACTIVE" or
// "DISMISSED". Disposition date wins; otherwise the category decides; with
// neither the status is UNKNOWN.
func mapDOBViolation(r model.RawRecord) (model.NormalizedRecord, bool) {
	key := str(r, "isn_dob_bis_viol", "number")
	if key == "" {
		return model.NormalizedRecord{}, false
	}

	status := model.StatusUnknown
	if str(r, "disposition_date") != "" {
		status = model.StatusResolved
	} else if cat := upper(str(r, "violation_category")); cat != "" {
		if strings.Contains(cat, "ACTIVE") {
			status = model.StatusOpen
		} else if strings.Contains(cat, "DISMISSED") || strings.Contains(cat, "RESOLVED") {
			status = model.StatusResolved
		}
	}

	return model.NormalizedRecord{
		Kind:          model.KindViolation,
		NaturalKey:    key,
		IssuedAt:      date(r, "issue_date"),
		Status:        status,
		Description:   str(r, "description", "violation_type"),
		SeverityClass: str(r, "violation_type_code", "violation_class"),
	}, true
}

// HPD violations carry an explicit status string.
func mapHPDViolation(r model.RawRecord) (model.NormalizedRecord, bool) {
	key := str(r, "violationid")
	if key == "" {
		return model.NormalizedRecord{}, false
	}

	status := model.StatusUnknown
	switch upper(str(r, "violationstatus")) {
	case "OPEN":
		status = model.StatusOpen
	case "CLOSE", "CLOSED":
		status = model.StatusResolved
	}

	return model.NormalizedRecord{
		Kind:          model.KindViolation,
		NaturalKey:    key,
		IssuedAt:      date(r, "novissueddate", "inspectiondate"),
		Status:        status,
		Description:   str(r, "novdescription"),
		SeverityClass: str(r, "class"),
	}, true
}

// Elevator filings report a device result; a satisfactory result closes the
// record, an unsatisfactory or overdue one leaves it open.
func mapElevatorInspection(r model.RawRecord) (model.NormalizedRecord, bool) {
	key := str(r, "filing_number", "tr6_no")
	if key == "" {
		return model.NormalizedRecord{}, false
	}

	result := upper(str(r, "filing_status", "device_status"))
	status := model.StatusUnknown
	switch {
	case result == "":
	case strings.Contains(result, "SATISFACTORY") && !strings.Contains(result, "UNSATISFACTORY"),
		strings.Contains(result, "NO DEFECTS"), strings.Contains(result, "ACCEPTED"):
		status = model.StatusResolved
	case strings.Contains(result, "UNSATISFACTORY"), strings.Contains(result, "DEFECT"),
		strings.Contains(result, "FAIL"), strings.Contains(result, "OVERDUE"):
		status = model.StatusOpen
	}

	return model.NormalizedRecord{
		Kind:             model.KindInspection,
		NaturalKey:       key,
		IssuedAt:         date(r, "status_date", "inspection_date"),
		Status:           status,
		Description:      str(r, "remarks", "filing_status"),
		DeviceID:         str(r, "device_number"),
		InspectionResult: result,
	}, true
}

// Boiler filings flag defects explicitly.
func mapBoilerInspection(r model.RawRecord) (model.NormalizedRecord, bool) {
	key := str(r, "tracking_number")
	if key == "" {
		return model.NormalizedRecord{}, false
	}

	defects := upper(str(r, "defects_exist"))
	status := model.StatusUnknown
	switch defects {
	case "YES", "TRUE":
		status = model.StatusOpen
	case "NO", "FALSE":
		status = model.StatusResolved
	}

	return model.NormalizedRecord{
		Kind:             model.KindInspection,
		NaturalKey:       key,
		IssuedAt:         date(r, "inspection_date"),
		Status:           status,
		Description:      str(r, "report_status", "inspection_type"),
		DeviceID:         str(r, "boiler_id"),
		InspectionResult: upper(str(r, "report_status", "defects_exist")),
	}, true
}

// 311 complaints carry an explicit status string.
func mapComplaint311(r model.RawRecord) (model.NormalizedRecord, bool) {
	key := str(r, "unique_key")
	if key == "" {
		return model.NormalizedRecord{}, false
	}

	status := model.StatusUnknown
	switch upper(str(r, "status")) {
	case "CLOSED", "RESOLVED":
		status = model.StatusResolved
	case "OPEN", "ASSIGNED", "IN PROGRESS", "PENDING", "STARTED":
		status = model.StatusOpen
	}

	desc := str(r, "complaint_type")
	if d := str(r, "descriptor"); d != "" {
		if desc != "" {
			desc += ": " + d
		} else {
			desc = d
		}
	}

	return model.NormalizedRecord{
		Kind:        model.KindComplaint,
		NaturalKey:  key,
		IssuedAt:    date(r, "created_date"),
		Status:      status,
		Description: desc,
	}, true
}

// Electrical permits close on sign-off; an issued permit without one is
// still open work.
func mapElectricalPermit(r model.RawRecord) (model.NormalizedRecord, bool) {
	key := str(r, "job_filing_number")
	if key == "" {
		return model.NormalizedRecord{}, false
	}

	completed := date(r, "completion_date", "signoff_date")
	status := model.StatusUnknown
	if !completed.IsZero() {
		status = model.StatusResolved
	} else if s := upper(str(r, "filing_status", "permit_status")); s != "" {
		status = model.StatusOpen
	}

	return model.NormalizedRecord{
		Kind:        model.KindPermit,
		NaturalKey:  key,
		IssuedAt:    date(r, "filing_date", "issued_date"),
		Status:      status,
		Description: str(r, "job_description", "work_type"),
		WorkType:    str(r, "work_type", "permit_type"),
		CompletedAt: completed,
	}, true
}
